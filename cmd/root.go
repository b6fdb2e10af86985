package cmd

import (
	"fmt"
	"os"

	"csv-comparison/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csv-comparison",
	Short: "CSV Comparison Service",
	Long: `CSV Comparison reconciles two delimited text files row by row.
Rows are matched by key columns, compared column by column with optional
numeric tolerance, and every discrepancy is reported as a break.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
