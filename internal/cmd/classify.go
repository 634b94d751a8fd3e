package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logstruct/logstruct/internal/classify"
	"github.com/logstruct/logstruct/internal/config"
	"github.com/logstruct/logstruct/internal/mining"
	"github.com/logstruct/logstruct/internal/reporter"
	"github.com/logstruct/logstruct/internal/ui"
	"github.com/logstruct/logstruct/internal/xes"
	"github.com/spf13/cobra"
)

var (
	temporalThreshold    float64
	existentialThreshold float64
	showRatios           bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <log.xes>",
	Short: "Classify the structuredness of an event log",
	Long: `Parse an XES event log, mine its dependency matrix and classify the
process into a structuredness category.

Examples:
  logstruct classify order-handling.xes
  logstruct classify --ratios order-handling.xes
  logstruct classify --temporal-threshold 0.9 order-handling.xes
  logstruct classify --format json order-handling.xes > result.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runClassify,
	SilenceUsage: true,
}

func init() {
	classifyCmd.Flags().Float64Var(&temporalThreshold, "temporal-threshold", 1.0,
		"Confidence threshold for temporal dependencies (0.0-1.0)")
	classifyCmd.Flags().Float64Var(&existentialThreshold, "existential-threshold", 1.0,
		"Confidence threshold for existential dependencies (0.0-1.0)")
	classifyCmd.Flags().BoolVar(&showRatios, "ratios", false,
		"Also print the nine dependency ratios")
	RootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	tThresh, eThresh, err := resolveThresholds(cmd)
	if err != nil {
		return err
	}

	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: parse the log
	if progress != nil {
		progress.SetStage(ui.StageParseLog)
		progress.SetOperation(filepath.Base(path))
	}

	traces, err := xes.ParseFile(path)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %d traces from %s\n", len(traces), path)
	}

	// Stage 2: mine the dependency matrix
	var report mining.Progress
	if progress != nil {
		progress.SetStage(ui.StageMineMatrix)
		report = func(done, total int) {
			if done == 0 {
				progress.SetPairCount(total)
				return
			}
			// Throttle updates so large alphabets don't flood the UI.
			if done == total || done%64 == 0 {
				progress.SetPairsDone(done)
			}
		}
	}

	matrix := mining.GenerateWithProgress(traces, tThresh, eThresh, report)

	if verbose {
		fmt.Fprintf(os.Stderr, "Mined %d activity pairs (temporal %.2f, existential %.2f)\n",
			len(matrix), tThresh, eThresh)
	}

	// Stage 3: classify
	if progress != nil {
		progress.SetStage(ui.StageClassify)
	}

	output := classify.Classify(matrix)

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	rep := newReporter(u)
	return rep.Report(reporter.Result{
		Log:        path,
		Traces:     len(traces),
		Entries:    len(matrix),
		Output:     output,
		ShowRatios: showRatios,
	})
}

// resolveThresholds merges flag values with the optional config file and
// validates the range before any computation happens.
func resolveThresholds(cmd *cobra.Command) (float64, float64, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return 0, 0, err
	}

	tThresh := temporalThreshold
	if !cmd.Flags().Changed("temporal-threshold") && cfg.TemporalThreshold != nil {
		tThresh = *cfg.TemporalThreshold
	}
	eThresh := existentialThreshold
	if !cmd.Flags().Changed("existential-threshold") && cfg.ExistentialThreshold != nil {
		eThresh = *cfg.ExistentialThreshold
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		format = cfg.Format
	}

	if tThresh < 0.0 || tThresh > 1.0 {
		return 0, 0, fmt.Errorf("temporal threshold must be between 0.0 and 1.0, got %v", tThresh)
	}
	if eThresh < 0.0 || eThresh > 1.0 {
		return 0, 0, fmt.Errorf("existential threshold must be between 0.0 and 1.0, got %v", eThresh)
	}
	return tThresh, eThresh, nil
}

func newReporter(u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(os.Stdout)
	}
	return reporter.NewTerminalReporter(os.Stdout, u)
}
