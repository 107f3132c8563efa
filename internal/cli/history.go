package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent build invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		events, err := wire.HistoryService().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to read build history: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("no builds recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tRECIPE\tDIRECTORY\tCOMMAND")
		for _, e := range events {
			name := e.RecipeName
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.StartedAt, name, e.Dir, e.Command)
		}
		w.Flush()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of builds to show")
}

// HistoryCmd returns the history command.
func HistoryCmd() *cobra.Command {
	return historyCmd
}
