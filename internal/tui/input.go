package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a one-line text prompt with a prefilled default.
type inputModel struct {
	prompt   string
	input    textinput.Model
	done     bool
	canceled bool
}

func newInputModel(prompt, def string) inputModel {
	ti := textinput.New()
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	return inputModel{prompt: prompt, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", m.prompt, m.input.View())
}

// charModel reads exactly one printable key. Escape and enter decline.
type charModel struct {
	prompt string
	char   rune
	done   bool
}

func newCharModel(prompt string) charModel {
	return charModel{prompt: prompt}
}

func (m charModel) Init() tea.Cmd {
	return nil
}

func (m charModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyRunes:
		if len(key.Runes) > 0 {
			m.char = key.Runes[0]
			m.done = true
			return m, tea.Quit
		}
	case tea.KeyEsc, tea.KeyEnter, tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m charModel) View() string {
	if m.done {
		return ""
	}
	return m.prompt + " "
}
