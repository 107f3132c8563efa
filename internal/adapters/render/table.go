// Package render draws the recipe menu for terminals.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/anvil/internal/models"
)

// TableRenderer implements secondary.MenuRenderer as a plain table.
// Wire it to io.Discard for commands that should stay quiet.
type TableRenderer struct {
	out io.Writer
}

// NewTableRenderer creates a renderer writing to out.
func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

// Render draws all entries, marking the one whose pair matches the
// active build state.
func (r *TableRenderer) Render(entries []models.Recipe, state models.BuildState) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "no recipes saved")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tKEY\tNAME\tDIRECTORY\tCOMMAND")
	for _, e := range entries {
		marker := " "
		if !state.Unset() && e.Key == state.Key() {
			marker = color.New(color.FgGreen).Sprint("✓")
		}
		shortcut := "-"
		if e.Shortcut != 0 {
			shortcut = string(e.Shortcut)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, shortcut, e.Name, e.Key.Dir, e.Key.Command)
	}
	w.Flush()

	if state.Unset() {
		return
	}
	if containsKey(entries, state.Key()) {
		fmt.Fprintln(r.out, "\ncurrent build is saved; anvil build re-runs it")
	} else {
		fmt.Fprintln(r.out, "\ncurrent build is not saved; anvil add bookmarks it")
	}
}

func containsKey(entries []models.Recipe, key models.RecipeKey) bool {
	for _, e := range entries {
		if e.Key == key {
			return true
		}
	}
	return false
}
