package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/anvil/internal/cli"
	"github.com/example/anvil/internal/version"
	"github.com/example/anvil/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "anvil",
		Short:   "anvil - build recipe bookmarks",
		Version: version.String(),
		Long: `anvil saves (directory, command) build pairs as named recipes, recalls
them by name or single-key shortcut, and re-invokes them on demand.`,
	}

	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.RemoveCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.BuildCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	// Flush unsaved recipes when the process is torn down mid-session.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		wire.Hooks().RunAll()
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		wire.Hooks().RunAll()
		os.Exit(1)
	}
}
