package runner

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/GianlucaP106/gotmux/gotmux"

	"github.com/example/anvil/internal/models"
)

// TmuxRunner starts builds inside a window of a dedicated tmux session,
// so long builds keep running after the CLI exits and their output stays
// inspectable.
type TmuxRunner struct {
	tmux    *gotmux.Tmux
	session string
}

// NewTmuxRunner creates a runner targeting the named tmux session.
func NewTmuxRunner(session string) (*TmuxRunner, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &TmuxRunner{tmux: tmux, session: session}, nil
}

// Run places the build in a window of the runner's session, creating the
// session on first use. It returns once the build has been handed to
// tmux; it does not wait for the build to finish.
func (r *TmuxRunner) Run(ctx context.Context, state models.BuildState) error {
	if state.Unset() {
		return fmt.Errorf("no build command to run")
	}

	window, err := r.buildWindow(state)
	if err != nil {
		return err
	}

	panes, err := window.ListPanes()
	if err != nil || len(panes) == 0 {
		return fmt.Errorf("failed to get build pane: %w", err)
	}

	// respawn-pane -k replaces the pane's shell with the build command
	// directly. Passing the command as argv avoids gotmux's single-quote
	// wrapping of ShellCommand, which breaks multi-word commands.
	cmd := exec.CommandContext(ctx, "tmux", "respawn-pane", "-t", panes[0].Id, "-k", "sh", "-c", state.Command)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to start build in tmux: %w", err)
	}
	return nil
}

// buildWindow returns a window in the runner's session to host the
// build, named after the build directory.
func (r *TmuxRunner) buildWindow(state models.BuildState) (*gotmux.Window, error) {
	name := filepath.Base(state.Dir)

	session, err := r.getSession(r.session)
	if err != nil {
		return nil, err
	}

	if session == nil {
		session, err = r.tmux.NewSession(&gotmux.SessionOptions{
			Name:           r.session,
			StartDirectory: state.Dir,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create session %s: %w", r.session, err)
		}
		windows, err := session.ListWindows()
		if err != nil {
			return nil, fmt.Errorf("failed to list windows: %w", err)
		}
		if len(windows) == 0 {
			return nil, fmt.Errorf("no windows found in new session")
		}
		if err := windows[0].Rename(name); err != nil {
			return nil, fmt.Errorf("failed to rename window: %w", err)
		}
		return windows[0], nil
	}

	window, err := session.NewWindow(&gotmux.NewWindowOptions{
		WindowName:     name,
		StartDirectory: state.Dir,
		DoNotAttach:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window %s: %w", name, err)
	}
	return window, nil
}

// getSession returns the named session, or nil if it does not exist.
func (r *TmuxRunner) getSession(name string) (*gotmux.Session, error) {
	sessions, err := r.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}
