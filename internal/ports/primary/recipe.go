// Package primary defines the primary ports (driving interfaces) for the
// application. CLI commands talk to services exclusively through these.
package primary

import (
	"context"

	"github.com/example/anvil/internal/models"
)

// AddRecipeRequest carries everything needed to bookmark a build.
type AddRecipeRequest struct {
	Dir      string
	Command  string
	Name     string
	Shortcut rune // 0 = no shortcut
}

// AddRecipeResponse reports the stored recipe and whether an existing
// entry with the same key was replaced.
type AddRecipeResponse struct {
	Recipe   models.Recipe
	Replaced bool
}

// RecipeService manages the recipe store.
type RecipeService interface {
	// Add inserts or, when the key is already bookmarked, replaces the
	// recipe's metadata. Replacing releases the entry's old shortcut
	// before the new one is bound.
	Add(ctx context.Context, req AddRecipeRequest) (*AddRecipeResponse, error)

	// Remove deletes the recipe with this key and releases its shortcut.
	// An absent key is a no-op.
	Remove(ctx context.Context, key models.RecipeKey) error

	// Lookup returns the recipe with exactly this key.
	Lookup(key models.RecipeKey) (models.Recipe, bool)

	// List returns the recipes sorted by name.
	List() []models.Recipe

	// SuggestName returns the default display name for the key: the
	// existing entry's name when the key is already bookmarked, the
	// derived "dir | command" label otherwise.
	SuggestName(key models.RecipeKey) string
}

// RestoreService moves recipes back into the live build state and runs them.
type RestoreService interface {
	// Restore unconditionally sets the current build state to the key's
	// pair. It does not trigger a build.
	Restore(key models.RecipeKey)

	// RestoreAndRun restores the recipe with this key and invokes the
	// build action. An absent key is a no-op.
	RestoreAndRun(ctx context.Context, key models.RecipeKey) error

	// RunShortcut dispatches through the shortcut table. When replayPrev
	// is set the previous build state is replayed before the bound
	// recipe is restored and run. An unbound character is a no-op.
	RunShortcut(ctx context.Context, c rune, replayPrev bool) error

	// RunCurrent re-invokes the current build state without restoring
	// anything. Fails when no build state is set.
	RunCurrent(ctx context.Context) error

	// InteractiveSelect offers the saved recipes for a constrained
	// choice, then restores and runs the chosen one.
	InteractiveSelect(ctx context.Context) error

	// State returns the current build state.
	State() models.BuildState
}

// Lifecycle sequences subsystem enable/disable.
type Lifecycle interface {
	// Enable loads the store from disk, installs the save-on-exit hook,
	// and renders the initial menu. Loading into a non-empty store
	// refuses and aborts activation.
	Enable(ctx context.Context) error

	// Disable saves the store and the build-state snapshot, clears the
	// store, and removes the exit hook. A failed save propagates and
	// leaves the store intact; unsaved recipes are never dropped
	// silently.
	Disable(ctx context.Context) error

	Enabled() bool
}

// HistoryService exposes the recorded build invocations.
type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]BuildEvent, error)
}

// BuildEvent is one recorded build invocation.
type BuildEvent struct {
	ID         int64
	RecipeName string
	Dir        string
	Command    string
	StartedAt  string
}
