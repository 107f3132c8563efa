package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/version"
	"github.com/example/anvil/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current build pair and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context) error {
			cfg := wire.Config()
			state := wire.RestoreService().State()
			count := len(wire.RecipeService().List())

			fmt.Println(version.String())
			fmt.Printf("recipes: %d (%s)\n", count, cfg.RecipeFile)
			fmt.Printf("runner:  %s\n", cfg.Runner)
			if cfg.HistoryDisabled {
				fmt.Println("history: disabled")
			} else {
				fmt.Printf("history: %s\n", cfg.HistoryDB)
			}

			if state.Unset() {
				fmt.Printf("current build: %s\n", color.New(color.FgYellow).Sprint("(none)"))
			} else {
				fmt.Printf("current build: %s in %s\n",
					color.New(color.FgGreen).Sprint(state.Command), state.Dir)
			}
			return nil
		})
	},
}

// StatusCmd returns the status command.
func StatusCmd() *cobra.Command {
	return statusCmd
}
