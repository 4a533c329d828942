package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanders/sextant/internal/history"
	"github.com/mlanders/sextant/internal/ui"
)

var (
	historyLimit  int
	historyIntent string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent intent resolutions",
	Long: `Lists recent 'sxt find' resolutions for this workspace, newest first.

Examples:
  sxt history
  sxt history -n 50
  sxt history --intent analyze`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := history.Open(getWorkspacePath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer db.Close()

		var records []history.Record
		if historyIntent != "" {
			records, err = db.RecentForIntent(historyIntent, historyLimit)
		} else {
			records, err = db.Recent(historyLimit)
		}
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			if records == nil {
				records = []history.Record{}
			}
			outputSuccess(records, &Meta{Count: len(records)})
			return nil
		}

		if len(records) == 0 {
			fmt.Println(ui.Info("No resolutions recorded yet"))
			return nil
		}

		fmt.Println(ui.Header("Resolution history"))
		for _, rec := range records {
			ts := rec.Timestamp.Local().Format(time.DateTime)
			line := fmt.Sprintf("%s  %s", ui.Muted.Render(ts), ui.CommandName(rec.Intent))
			if rec.Input != "" {
				line += fmt.Sprintf(" %q", rec.Input)
			}
			fmt.Printf("  %s\n", line)
			if rec.TopMatch != "" {
				fmt.Printf("      %s %s\n", ui.Muted.Render("→"), rec.TopMatch)
			} else {
				fmt.Printf("      %s\n", ui.Muted.Render("no matches"))
			}
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show")
	historyCmd.Flags().StringVar(&historyIntent, "intent", "", "Only show resolutions of this intent")
	rootCmd.AddCommand(historyCmd)
}
