package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrCanceled is returned when the user backs out of a prompt.
var ErrCanceled = fmt.Errorf("canceled")

// Prompter implements secondary.Prompter with small bubbletea programs.
type Prompter struct{}

// NewPrompter creates the interactive prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

func (p *Prompter) AskString(prompt, def string) (string, error) {
	final, err := tea.NewProgram(newInputModel(prompt, def)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	m := final.(inputModel)
	if m.canceled {
		return "", ErrCanceled
	}
	return m.input.Value(), nil
}

func (p *Prompter) AskChar(prompt string) (rune, error) {
	final, err := tea.NewProgram(newCharModel(prompt)).Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return final.(charModel).char, nil
}

func (p *Prompter) AskFromChoices(prompt string, choices []string) (string, error) {
	final, err := tea.NewProgram(newPickerModel(prompt, choices)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	m := final.(pickerModel)
	if m.canceled || m.chosen == "" {
		return "", ErrCanceled
	}
	return m.chosen, nil
}

// LinePrompter is the non-TTY fallback: one line of input per question,
// suitable for pipes and scripts.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) AskString(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *LinePrompter) AskChar(prompt string) (rune, error) {
	fmt.Fprintf(p.out, "%s ", prompt)
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, nil
	}
	return []rune(line)[0], nil
}

// AskFromChoices prints a numbered menu and re-asks until the answer is
// a listed number or an exact choice.
func (p *LinePrompter) AskFromChoices(prompt string, choices []string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}
	for {
		fmt.Fprint(p.out, "> ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		for _, c := range choices {
			if line == c {
				return c, nil
			}
		}
		fmt.Fprintf(p.out, "pick 1-%d\n", len(choices))
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
