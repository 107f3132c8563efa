package recipe

import (
	"fmt"
	"unicode"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AddRecipeContext provides context for recipe creation guards.
type AddRecipeContext struct {
	Dir      string
	Command  string
	Name     string
	Shortcut rune // 0 if no shortcut requested
}

// CanAddRecipe evaluates whether a recipe can be added.
// Rules:
// - Directory and command are both required (the key must be real)
// - Name must not be empty
// - Shortcut, when requested, must be a single printable non-space character
func CanAddRecipe(ctx AddRecipeContext) GuardResult {
	if ctx.Dir == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "recipe needs a working directory",
		}
	}
	if ctx.Command == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "recipe needs a build command",
		}
	}
	if ctx.Name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "recipe needs a display name",
		}
	}
	return canBindShortcut(ctx.Shortcut)
}

func canBindShortcut(c rune) GuardResult {
	if c == 0 {
		return GuardResult{Allowed: true}
	}
	if unicode.IsSpace(c) || !unicode.IsPrint(c) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("shortcut %q is not a printable character", c),
		}
	}
	return GuardResult{Allowed: true}
}
