package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvdberg/fileregress/internal/cli"
	"github.com/jvdberg/fileregress/pkg/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fileregress",
		Short: "Directory regression comparison utility",
		Long: `fileregress compares a test folder against a base (reference) folder to
detect missing, extra and modified files. It is a regression-testing aid
for file-producing pipelines and ships a synthetic test-data generator.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewGenerateCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}

// initLogging configures the global logger from flags before any command runs
func initLogging() {
	flags := cli.GetGlobalFlags()
	cfg := logging.DefaultConfig()

	if flags.LogLevel != "" {
		cfg.Level = flags.LogLevel
	} else if flags.Verbose {
		cfg.Level = "debug"
	}
	if flags.LogFormat != "" {
		cfg.Format = flags.LogFormat
	}

	logging.Init(cfg)
}
