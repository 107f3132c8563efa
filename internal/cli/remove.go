package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/wire"
)

var removeCmd = &cobra.Command{
	Use:   "remove [dir]",
	Short: "Delete a recipe and release its shortcut",
	Long: `Remove the recipe for a (directory, command) pair. With no arguments the
current build pair is removed; recipes are keyed by the exact pair, so a
different command in the same directory is a different recipe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context) error {
			recipes := wire.RecipeService()
			state := wire.RestoreService().State()

			dir := state.Dir
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("cannot determine directory: %w", err)
				}
				dir = cwd
			}
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}

			command, _ := cmd.Flags().GetString("command")
			if command == "" {
				command = state.Command
			}
			if command == "" {
				return fmt.Errorf("no current build; pass --command to name the recipe")
			}

			key := models.RecipeKey{Dir: dir, Command: command}
			entry, found := recipes.Lookup(key)
			if !found {
				fmt.Printf("no recipe for %q in %s\n", command, dir)
				return nil
			}

			if err := recipes.Remove(ctx, key); err != nil {
				return err
			}
			fmt.Printf("✓ Removed recipe %q\n", entry.Name)
			return nil
		})
	},
}

func init() {
	removeCmd.Flags().StringP("command", "c", "", "build command of the recipe to remove")
}

// RemoveCmd returns the remove command.
func RemoveCmd() *cobra.Command {
	return removeCmd
}
