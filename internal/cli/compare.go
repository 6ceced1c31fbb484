package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jvdberg/fileregress/pkg/compare"
	"github.com/jvdberg/fileregress/pkg/config"
	"github.com/jvdberg/fileregress/pkg/logging"
	"github.com/jvdberg/fileregress/pkg/output"
	"github.com/jvdberg/fileregress/pkg/regress"
	"github.com/jvdberg/fileregress/pkg/storage"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	BaseFolder   string
	TestFolder   string
	Exclude      []string
	Comparison   string
	Output       string
	Progress     bool
	Report       string
	ReportFormat string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a test folder against a base folder",
		Long: `Compare every file in the test folder against the base (reference)
folder and report missing, extra and modified files. Exits non-zero when
any difference is found.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVar(&compareFlags.BaseFolder, "base_folder", "", "base (reference) folder for comparison (required)")
	cmd.Flags().StringVar(&compareFlags.TestFolder, "test_folder", "", "test (candidate) folder for comparison (required)")
	cmd.MarkFlagRequired("base_folder")
	cmd.MarkFlagRequired("test_folder")

	cmd.Flags().StringSliceVar(&compareFlags.Exclude, "exclude", []string{}, "glob patterns to exclude (comma-separated)")
	cmd.Flags().StringVar(&compareFlags.Comparison, "comparison", "", "comparison method: md5, sha256, binary, auto")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().BoolVar(&compareFlags.Progress, "progress", true, "show a progress bar on a terminal")
	cmd.Flags().StringVar(&compareFlags.Report, "report", "", "write differences report to file")
	cmd.Flags().StringVar(&compareFlags.ReportFormat, "report-format", "human", "differences report format: human, json")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)
	if cmd.Flags().Changed("progress") {
		cfg.Output.Progress = compareFlags.Progress
	}

	if err := validateCompareFlags(); err != nil {
		return err
	}

	operation, err := createOperation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create comparison operation: %w", err)
	}

	base, err := storage.NewLocal(compareFlags.BaseFolder)
	if err != nil {
		return err
	}
	defer base.Close()

	test, err := storage.NewLocal(compareFlags.TestFolder)
	if err != nil {
		return err
	}
	defer test.Close()

	comparator, err := compare.New(operation.Method, operation.BinaryThreshold, operation.BufferSize)
	if err != nil {
		return err
	}

	formatter := selectFormatter(cfg)
	logger := logging.Component("compare")

	engine := regress.NewEngine(base, test, comparator, formatter, logger, operation)

	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if compareFlags.Report != "" {
		if err := output.WriteReport(report, compareFlags.Report, compareFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write differences report: %w", err)
		}
	}

	os.Exit(report.Status.ExitCode())
	return nil
}

// selectFormatter picks the output formatter from config and terminal state
func selectFormatter(cfg *config.Config) output.Formatter {
	if cfg.Output.Quiet {
		return output.NewNullFormatter()
	}

	if cfg.Output.Format == "json" {
		return output.NewJSONFormatter(os.Stdout)
	}

	if cfg.Output.Progress && term.IsTerminal(int(os.Stdout.Fd())) {
		return output.NewProgressFormatter(os.Stdout)
	}

	return output.NewHumanFormatter(os.Stdout, globalFlags.Verbose)
}
