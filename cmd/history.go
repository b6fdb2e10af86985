package cmd

import (
	"fmt"
	"os"
	"strconv"

	"csv-comparison/feature/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyLimit int

// historyCmd lists recorded comparisons
var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show recorded comparisons",
	Long:  `Lists recorded comparison runs, or prints the breaks of a single run when an id is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(false)
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if rt.store == nil {
			return fmt.Errorf("history database is not enabled or unreachable")
		}

		if len(args) == 1 {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}
			run, err := rt.store.Get(cmd.Context(), uint(id))
			if err != nil {
				return err
			}
			report.Print(os.Stdout, run.Result())
			return nil
		}

		runs, err := rt.store.List(cmd.Context(), historyLimit, 0)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println(text.FgYellow.Sprint("No comparisons recorded"))
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"ID", "Date", "Breaks", "Duration", "Reference", "Candidate"})
		for _, r := range runs {
			breaks := text.FgGreen.Sprint(r.BreakCount)
			if r.BreakCount > 0 {
				breaks = text.FgRed.Sprint(r.BreakCount)
			}
			t.AppendRow(table.Row{
				r.ID,
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				breaks,
				fmt.Sprintf("%dms", r.DurationMs),
				r.ReferenceSource,
				r.CandidateSource,
			})
		}
		t.Render()
		return nil
	},
}

// historyCheckCmd verifies the history schema
var historyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the history database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(false)
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if rt.store == nil {
			return fmt.Errorf("history database is not enabled or unreachable")
		}

		missing, err := rt.store.CheckSchema()
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			rt.log.Warn("History schema is missing columns", zap.Strings("columns", missing))
			return fmt.Errorf("%d columns missing", len(missing))
		}
		rt.log.Info("History schema matches the expected definition.")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of runs to list")
	historyCmd.AddCommand(historyCheckCmd)
	RootCmd.AddCommand(historyCmd)
}
