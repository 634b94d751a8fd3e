package cmd

import (
	"os"
	"sync"

	"github.com/logstruct/logstruct/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	format  string
)

// RootCmd is the logstruct command tree root.
var RootCmd = &cobra.Command{
	Use:   "logstruct",
	Short: "Classify the structuredness of business-process event logs",
	Long: `logstruct reads an XES event log, mines the temporal and existential
dependencies between its activities, and classifies the process into a
structuredness category: Structured, Semi-Structured, Loosely Structured,
one of the two mixed categories, or Unstructured.

The classification comes with the list of matched rules so the verdict
can be traced back to the dependency profile that produced it.`,
}

var (
	uiOnce   sync.Once
	sharedUI *ui.UI
)

// GetUI returns the process-wide UI, created on first use from the
// format flag and TTY state.
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		sharedUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return sharedUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
}
