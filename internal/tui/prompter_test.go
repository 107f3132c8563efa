package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPickerModel_EnterChoosesSelected(t *testing.T) {
	m := newPickerModel("Pick a recipe", []string{"alpha", "beta", "gamma"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(pickerModel)
	if got.chosen != "beta" {
		t.Errorf("chosen = %q, want beta", got.chosen)
	}
}

func TestPickerModel_EscapeCancels(t *testing.T) {
	m := newPickerModel("Pick", []string{"alpha"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !next.(pickerModel).canceled {
		t.Error("escape did not cancel the picker")
	}
}

func TestCharModel_ReadsOneKey(t *testing.T) {
	m := newCharModel("Shortcut key:")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	got := next.(charModel)
	if got.char != 'b' || !got.done {
		t.Errorf("char = %q done=%v, want 'b' true", got.char, got.done)
	}
}

func TestCharModel_EnterDeclines(t *testing.T) {
	m := newCharModel("Shortcut key:")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(charModel)
	if got.char != 0 || !got.done {
		t.Errorf("char = %q done=%v, want 0 true", got.char, got.done)
	}
}

func TestInputModel_KeepsDefault(t *testing.T) {
	m := newInputModel("Name:", "Build")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(inputModel)
	if got.input.Value() != "Build" {
		t.Errorf("value = %q, want the default", got.input.Value())
	}
}

func TestLinePrompter_AskString(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("Deploy\n"), &out)

	got, err := p.AskString("Name", "Build")
	if err != nil {
		t.Fatalf("AskString failed: %v", err)
	}
	if got != "Deploy" {
		t.Errorf("got %q, want Deploy", got)
	}
	if !strings.Contains(out.String(), "[Build]") {
		t.Errorf("default not offered in prompt %q", out.String())
	}
}

func TestLinePrompter_AskString_EmptyTakesDefault(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.AskString("Name", "Build")
	if err != nil {
		t.Fatalf("AskString failed: %v", err)
	}
	if got != "Build" {
		t.Errorf("got %q, want the default", got)
	}
}

func TestLinePrompter_AskChar(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("b\n"), &bytes.Buffer{})

	got, err := p.AskChar("Key?")
	if err != nil {
		t.Fatalf("AskChar failed: %v", err)
	}
	if got != 'b' {
		t.Errorf("got %q, want b", got)
	}
}

func TestLinePrompter_AskChar_EmptyDeclines(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.AskChar("Key?")
	if err != nil {
		t.Fatalf("AskChar failed: %v", err)
	}
	if got != 0 {
		t.Errorf("got %q, want none", got)
	}
}

func TestLinePrompter_AskFromChoices_ByNumber(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("2\n"), &bytes.Buffer{})

	got, err := p.AskFromChoices("Pick", []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("AskFromChoices failed: %v", err)
	}
	if got != "beta" {
		t.Errorf("got %q, want beta", got)
	}
}

func TestLinePrompter_AskFromChoices_ReasksUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("nope\n7\nalpha\n"), &out)

	got, err := p.AskFromChoices("Pick", []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("AskFromChoices failed: %v", err)
	}
	if got != "alpha" {
		t.Errorf("got %q, want alpha", got)
	}
	if !strings.Contains(out.String(), "pick 1-2") {
		t.Errorf("no re-ask hint in %q", out.String())
	}
}
