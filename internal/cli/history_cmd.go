package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magpiemd/magpie/internal/history"
	"github.com/magpiemd/magpie/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent batch edits in this vault",
	Long: `History lists recent batch runs recorded for the vault, newest first.
Dry runs and runs that made no changes are not recorded.

  mgp history
  mgp history --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyLimit int

func runHistory(cmd *cobra.Command, args []string) error {
	hlog, err := history.Open(getVaultPath())
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer hlog.Close()

	entries, err := hlog.Recent(historyLimit)
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(entries, &Meta{Count: len(entries)})
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("no history recorded")
		return nil
	}

	tbl := ui.NewTable(4)
	for _, e := range entries {
		tbl.AddRow(e.RanAt.Format("2006-01-02 15:04"), ui.Key(e.Action), e.Summary, fmt.Sprintf("%d file(s)", e.Files))
	}
	fmt.Print(tbl.String())
	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
