package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/logger"
	"csv-comparison/feature/batch"
	"csv-comparison/feature/definition"
	"csv-comparison/feature/report"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	failOnBreaks bool
	skipHistory  bool
	quietCompare bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <reference> <candidate> [definition] [output-dir]",
	Short: "Compare a candidate file or directory with a reference",
	Long: `Compares two delimited files using a comparison definition.

When the reference is a directory, every file in it is compared with its
counterpart in the candidate directory and the definition must be a catalog
that maps file name patterns to definitions.

The definition defaults to compare.definition_file and the output directory
to compare.output_dir. Without an output directory the breaks are printed.

Examples:
  # Single comparison printed to the console
  compare reference.csv candidate.csv definition.xml

  # Directory comparison with report files
  compare ./reference ./candidate catalog.xml ./results`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&failOnBreaks, "fail-on-breaks", false, "Exit with an error when differences are found")
	compareCmd.Flags().BoolVar(&skipHistory, "no-history", false, "Do not record the run in the history database")
	compareCmd.Flags().BoolVarP(&quietCompare, "quiet", "q", false, "Hide the progress spinner")
	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(true)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	if skipHistory {
		rt.store = nil
	}

	reference, candidate := args[0], args[1]
	definitionFile := rt.cfg.Compare.DefinitionFile
	if len(args) > 2 {
		definitionFile = args[2]
	}
	if definitionFile == "" {
		return fmt.Errorf("no comparison definition given")
	}
	outputDir := rt.cfg.Compare.OutputDir
	if len(args) > 3 {
		outputDir = args[3]
	}

	ctx := cmd.Context()

	if info, err := os.Stat(reference); err == nil && info.IsDir() {
		return runBatch(ctx, rt, reference, candidate, definitionFile, outputDir)
	}
	return runSingle(ctx, rt, reference, candidate, definitionFile, outputDir)
}

// startSpinner shows progress on stderr unless --quiet is set and returns the stop function.
func startSpinner(suffix string) func() {
	if quietCompare {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}

func runSingle(ctx context.Context, rt *runtime, reference, candidate, definitionFile, outputDir string) error {
	def, err := definition.Load(definitionFile)
	if err != nil {
		return err
	}

	comparer, err := compare.NewComparer(def, compare.WithLogger(rt.log), compare.WithOpener(rt.opener()))
	if err != nil {
		return err
	}

	if timeout := rt.cfg.Compare.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.WithSources(rt.log, reference, candidate).Info("Comparing files")
	stop := startSpinner(" Comparing files...")
	start := time.Now()
	result, err := comparer.CompareFiles(ctx, reference, candidate)
	stop()
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	elapsed := time.Since(start)

	if outputDir == "" {
		report.Print(os.Stdout, result)
	} else {
		writer, err := rt.reportWriter(outputDir)
		if err != nil {
			return err
		}
		if _, err := writer.Write(ctx, report.SingleName, def, result, elapsed); err != nil {
			return err
		}
	}

	if rt.store != nil {
		if id, err := rt.store.Save(ctx, def, result, elapsed); err != nil {
			rt.log.Warn("Failed to record comparison", zap.Error(err))
		} else {
			rt.log.Info("Recorded comparison", zap.Uint("id", id))
		}
	}

	rt.log.Info("Comparison complete",
		zap.Int("breaks", len(result.Breaks)),
		zap.Int64("reference_rows", result.ReferenceRows),
		zap.Int64("candidate_rows", result.CandidateRows),
		zap.Duration("elapsed", elapsed),
	)

	if failOnBreaks && result.HasBreaks() {
		return fmt.Errorf("%d differences found", len(result.Breaks))
	}
	return nil
}

func runBatch(ctx context.Context, rt *runtime, referenceDir, candidateDir, catalogFile, outputDir string) error {
	catalog, err := definition.LoadCatalog(catalogFile)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithLogger(rt.log), batch.WithOpener(rt.opener())}
	if outputDir != "" {
		writer, err := rt.reportWriter(outputDir)
		if err != nil {
			return err
		}
		opts = append(opts, batch.WithReports(writer))
	}
	if rt.store != nil {
		opts = append(opts, batch.WithRecorder(rt.store))
	}

	stop := startSpinner(" Comparing directories...")
	outcomes, err := batch.NewRunner(catalog, opts...).Run(ctx, referenceDir, candidateDir)
	stop()
	if err != nil {
		return fmt.Errorf("directory comparison failed: %w", err)
	}

	breaks := 0
	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		breaks += len(o.Result.Breaks)
		if outputDir == "" {
			report.Print(os.Stdout, o.Result)
		}
	}

	summary := batch.Summary(outcomes)
	rt.log.Info("Directory comparison complete",
		zap.Int("compared", summary[batch.StatusCompared]),
		zap.Int("skipped", summary[batch.StatusSkipped]),
		zap.Int("failed", summary[batch.StatusFailed]),
		zap.Int("breaks", breaks),
	)

	if summary[batch.StatusFailed] > 0 {
		return fmt.Errorf("%d comparisons failed", summary[batch.StatusFailed])
	}
	if failOnBreaks && breaks > 0 {
		return fmt.Errorf("%d differences found", breaks)
	}
	return nil
}
