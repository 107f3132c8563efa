// Package tui implements the interactive prompter on bubbletea. Every
// prompt is its own small program; the non-TTY fallback in prompter.go
// covers piped and scripted invocations.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type choiceItem string

func (c choiceItem) Title() string       { return string(c) }
func (c choiceItem) Description() string { return "" }
func (c choiceItem) FilterValue() string { return string(c) }

// pickerModel narrows a fixed choice list with fuzzy filtering. It can
// only ever resolve to one of the offered choices.
type pickerModel struct {
	list     list.Model
	chosen   string
	canceled bool
}

func newPickerModel(prompt string, choices []string) pickerModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem(c)
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("10")).
		PaddingLeft(1)

	l := list.New(items, d, 60, pickerHeight(len(choices)))
	l.Title = prompt
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)

	return pickerModel{list: l}
}

func pickerHeight(n int) int {
	const max = 14
	if h := n + 4; h < max {
		return h
	}
	return max
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys belong to the filter input while filtering is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(choiceItem); ok {
				m.chosen = string(it)
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.chosen != "" || m.canceled {
		return ""
	}
	return m.list.View()
}
