package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/primary"
	"github.com/example/anvil/internal/wire"
)

var addCmd = &cobra.Command{
	Use:   "add [dir]",
	Short: "Bookmark a build pair as a recipe",
	Long: `Save a (directory, command) pair under a display name, optionally bound
to a single-character shortcut. With no arguments the current build pair
is bookmarked; missing pieces are prompted for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context) error {
			recipes := wire.RecipeService()
			state := wire.RestoreService().State()
			prompt := wire.Prompter()

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
				var err error
				command, err = prompt.AskString("Build command", "")
				if err != nil {
					return err
				}
			}

			key := models.RecipeKey{Dir: dir, Command: command}

			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				var err error
				name, err = prompt.AskString("Recipe name", recipes.SuggestName(key))
				if err != nil {
					return err
				}
			}

			var shortcut rune
			if cmd.Flags().Changed("key") {
				if k, _ := cmd.Flags().GetString("key"); k != "" {
					shortcut = []rune(k)[0]
				}
			} else {
				var err error
				shortcut, err = prompt.AskChar("Shortcut key (enter for none):")
				if err != nil {
					return err
				}
			}

			resp, err := recipes.Add(ctx, primary.AddRecipeRequest{
				Dir:      dir,
				Command:  command,
				Name:     name,
				Shortcut: shortcut,
			})
			if err != nil {
				return err
			}

			if resp.Replaced {
				fmt.Printf("✓ Updated recipe %q\n", resp.Recipe.Name)
			} else {
				fmt.Printf("✓ Saved recipe %q\n", resp.Recipe.Name)
			}
			if resp.Recipe.Shortcut != 0 {
				fmt.Printf("  anvil run %c re-runs it\n", resp.Recipe.Shortcut)
			}
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringP("command", "c", "", "build command to bookmark")
	addCmd.Flags().StringP("name", "n", "", "display name for the recipe")
	addCmd.Flags().StringP("key", "k", "", "single-character shortcut (empty for none)")
}

// AddCmd returns the add command.
func AddCmd() *cobra.Command {
	return addCmd
}
