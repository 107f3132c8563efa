// Package cli contains the cobra commands for anvil. Commands talk to
// the services through the primary ports only.
package cli

import (
	"context"

	"github.com/example/anvil/internal/wire"
)

// withSession brackets a command with subsystem enable/disable: load the
// recipe file, run the command, save and clear. The command's own error
// wins; a failed save on the way out surfaces only when the command
// itself succeeded.
func withSession(ctx context.Context, fn func(ctx context.Context) error) error {
	lc := wire.Lifecycle()
	if err := lc.Enable(ctx); err != nil {
		return err
	}
	fnErr := fn(ctx)
	if err := lc.Disable(ctx); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}
