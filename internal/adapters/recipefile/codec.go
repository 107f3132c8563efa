package recipefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

// Codec implements secondary.RecipeFile against a single path.
type Codec struct {
	path string
	now  func() time.Time
}

// New creates a codec for the given file path.
func New(path string) *Codec {
	return &Codec{path: path, now: time.Now}
}

// Save writes the entry list and the build-state snapshot atomically:
// the payload goes to a temp file in the target directory first and is
// renamed over the old file only once fully written.
func (c *Codec) Save(entries []models.Recipe, state models.BuildState) error {
	payload := encode(entries, state, c.now())

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".recipes-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.WriteString(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", c.path, err)
	}
	return nil
}

// Load reads and parses the file. A missing or unreadable file yields
// an empty result; first runs and wiped state dirs are not errors.
func (c *Codec) Load() (*secondary.LoadResult, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return &secondary.LoadResult{}, nil
	}
	res, err := parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	return res, nil
}

func encode(entries []models.Recipe, state models.BuildState, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, ";; anvil recipes, generated %s\n", now.UTC().Format(time.RFC3339))
	b.WriteString(";; entry shape: ((dir . command) name shortcut?)\n")

	b.WriteString("(recipes")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n  ((%s . %s) %s",
			strconv.Quote(e.Key.Dir), strconv.Quote(e.Key.Command), strconv.Quote(e.Name))
		if e.Shortcut != 0 {
			b.WriteString(" " + encodeChar(e.Shortcut))
		}
		b.WriteString(")")
	}
	b.WriteString(")\n")

	// The snapshot lives under its own field names so a load can never
	// alias it onto the live build state.
	if state.Dir != "" {
		fmt.Fprintf(&b, "(last-directory . %s)\n", strconv.Quote(state.Dir))
	}
	if state.Command != "" {
		fmt.Fprintf(&b, "(last-command . %s)\n", strconv.Quote(state.Command))
	}

	b.WriteString(";; coding: utf-8\n")
	return b.String()
}

func encodeChar(c rune) string {
	if unicode.IsLetter(c) || unicode.IsDigit(c) {
		return "?" + string(c)
	}
	return `?\` + string(c)
}
