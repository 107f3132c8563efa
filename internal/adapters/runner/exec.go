// Package runner contains BuildRunner implementations: a direct shell
// runner and a tmux-backed one.
package runner

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/example/anvil/internal/models"
)

// ExecRunner runs the build command through the shell in the build
// directory, streaming output to the configured writers.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates a runner writing build output to the given writers.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

// Run executes the build and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, state models.BuildState) error {
	if state.Unset() {
		return fmt.Errorf("no build command to run")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", state.Command)
	cmd.Dir = state.Dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%q in %s: %w", state.Command, state.Dir, err)
	}
	return nil
}
