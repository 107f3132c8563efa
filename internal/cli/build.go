package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/app"
	"github.com/example/anvil/internal/wire"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Re-run the current build, or pick a recipe",
	Long: `Re-invoke the current (directory, command) pair. When no build pair is
active yet, or with --pick, the saved recipes are offered for selection
and the chosen one is restored and run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pick, _ := cmd.Flags().GetBool("pick")
		return withSession(cmd.Context(), func(ctx context.Context) error {
			restore := wire.RestoreService()

			if pick || restore.State().Unset() {
				err := restore.InteractiveSelect(ctx)
				if errors.Is(err, app.ErrNoRecipes) {
					return fmt.Errorf("no recipes saved; anvil add bookmarks one")
				}
				return err
			}
			return restore.RunCurrent(ctx)
		})
	},
}

func init() {
	buildCmd.Flags().BoolP("pick", "p", false, "choose a recipe instead of re-running the current build")
}

// BuildCmd returns the build command.
func BuildCmd() *cobra.Command {
	return buildCmd
}
