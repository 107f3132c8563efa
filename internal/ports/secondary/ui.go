package secondary

import "github.com/example/anvil/internal/models"

// Prompter asks the user for input. Implementations own input
// validation: AskFromChoices only ever returns one of the offered
// choices, so the core never sees free text where a choice is required.
type Prompter interface {
	// AskString prompts for a line of text, offering a default.
	AskString(prompt, def string) (string, error)

	// AskChar prompts for a single character. Returns 0 when the user
	// declines (escape / enter).
	AskChar(prompt string) (rune, error)

	// AskFromChoices prompts for exactly one of the offered choices.
	AskFromChoices(prompt string, choices []string) (string, error)
}

// MenuRenderer redraws the recipe menu. Called after every store
// mutation and restore so selection markers stay current. An entry is
// selected iff its key equals the build state; an unset state selects
// nothing.
type MenuRenderer interface {
	Render(entries []models.Recipe, state models.BuildState)
}
