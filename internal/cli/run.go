package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/wire"
)

var runCmd = &cobra.Command{
	Use:   "run <key>",
	Short: "Run the recipe bound to a shortcut key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chars := []rune(args[0])
		if len(chars) != 1 {
			return fmt.Errorf("shortcut must be a single character, got %q", args[0])
		}
		c := chars[0]
		replay, _ := cmd.Flags().GetBool("replay-prev")

		return withSession(cmd.Context(), func(ctx context.Context) error {
			bound := false
			for _, e := range wire.RecipeService().List() {
				if e.Shortcut == c {
					bound = true
					break
				}
			}
			if !bound {
				fmt.Printf("nothing bound to %q\n", c)
				return nil
			}
			return wire.RestoreService().RunShortcut(ctx, c, replay)
		})
	},
}

func init() {
	runCmd.Flags().BoolP("replay-prev", "r", false, "replay the previous build before switching to the bound recipe")
}

// RunCmd returns the run command.
func RunCmd() *cobra.Command {
	return runCmd
}
