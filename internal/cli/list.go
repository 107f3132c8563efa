package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the saved recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Enabling the session renders the menu; nothing else to do.
		return withSession(cmd.Context(), func(ctx context.Context) error {
			return nil
		})
	},
}

// ListCmd returns the list command.
func ListCmd() *cobra.Command {
	return listCmd
}
