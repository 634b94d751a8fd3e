package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logstruct/logstruct/internal/mining"
	"github.com/logstruct/logstruct/internal/xes"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <log.xes>",
	Short: "Print the mined dependency matrix of an event log",
	Long: `Parse an XES event log and print the dependency matrix the classifier
would be fed, one entry per activity pair with its mined temporal and
existential relations.

Examples:
  logstruct matrix order-handling.xes
  logstruct matrix --format json order-handling.xes > matrix.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runMatrix,
	SilenceUsage: true,
}

func init() {
	matrixCmd.Flags().Float64Var(&temporalThreshold, "temporal-threshold", 1.0,
		"Confidence threshold for temporal dependencies (0.0-1.0)")
	matrixCmd.Flags().Float64Var(&existentialThreshold, "existential-threshold", 1.0,
		"Confidence threshold for existential dependencies (0.0-1.0)")
	RootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	tThresh, eThresh, err := resolveThresholds(cmd)
	if err != nil {
		return err
	}

	traces, err := xes.ParseFile(path)
	if err != nil {
		return err
	}

	matrix := mining.Generate(traces, tThresh, eThresh)

	if verbose {
		fmt.Fprintf(os.Stderr, "Mined %d activity pairs from %d traces\n", len(matrix), len(traces))
	}

	return newReporter(GetUI()).ReportMatrix(path, matrix)
}
