package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/example/anvil/internal/models"
)

func TestExecRunner_RunsInBuildDirectory(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := NewExecRunner(&out, io.Discard)

	err := r.Run(context.Background(), models.BuildState{Dir: dir, Command: "pwd"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), dir) {
		t.Errorf("pwd printed %q, want the build directory %q", out.String(), dir)
	}
}

func TestExecRunner_FailureSurfaces(t *testing.T) {
	r := NewExecRunner(io.Discard, io.Discard)

	err := r.Run(context.Background(), models.BuildState{Dir: t.TempDir(), Command: "exit 3"})
	if err == nil {
		t.Fatal("failing command did not error")
	}
	if !strings.Contains(err.Error(), "exit 3") {
		t.Errorf("error %q does not name the command", err)
	}
}

func TestExecRunner_UnsetStateRefused(t *testing.T) {
	r := NewExecRunner(io.Discard, io.Discard)

	if err := r.Run(context.Background(), models.BuildState{}); err == nil {
		t.Fatal("unset state did not error")
	}
}
