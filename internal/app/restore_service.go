package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/anvil/internal/core/recipe"
	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

// ErrNoRecipes is returned by InteractiveSelect when the store is empty.
var ErrNoRecipes = errors.New("no recipes saved yet")

// ErrNoCurrentBuild is returned by RunCurrent when no build state is set.
var ErrNoCurrentBuild = errors.New("no current build; select or bookmark a recipe first")

// RestoreServiceImpl implements primary.RestoreService.
type RestoreServiceImpl struct {
	state    *SessionState
	binder   *ShortcutBinder
	runner   secondary.BuildRunner
	menu     secondary.MenuRenderer
	prompter secondary.Prompter
	history  secondary.HistoryRepository // nil when history is disabled
	warnOut  io.Writer
}

// NewRestoreService creates a RestoreService over the shared session state.
func NewRestoreService(
	state *SessionState,
	binder *ShortcutBinder,
	runner secondary.BuildRunner,
	menu secondary.MenuRenderer,
	prompter secondary.Prompter,
	history secondary.HistoryRepository,
	warnOut io.Writer,
) *RestoreServiceImpl {
	return &RestoreServiceImpl{
		state:    state,
		binder:   binder,
		runner:   runner,
		menu:     menu,
		prompter: prompter,
		history:  history,
		warnOut:  warnOut,
	}
}

// Restore unconditionally sets the build state to the key's pair and
// refreshes the menu so selection markers update. No build is triggered.
func (s *RestoreServiceImpl) Restore(key models.RecipeKey) {
	s.state.Build = models.BuildState{Dir: key.Dir, Command: key.Command}
	s.menu.Render(s.state.Store.Sorted(), s.state.Build)
}

// RestoreAndRun restores the recipe with this key and invokes the build
// action. An absent key is a no-op.
func (s *RestoreServiceImpl) RestoreAndRun(ctx context.Context, key models.RecipeKey) error {
	entry := s.state.Store.Lookup(key)
	if entry == nil {
		return nil
	}
	s.Restore(key)
	s.recordHistory(ctx, entry.Name)
	if err := s.runner.Run(ctx, s.state.Build); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// RunShortcut dispatches through the shortcut table. With replayPrev set
// the previous build state is replayed first, then the bound recipe is
// restored and run. An unbound character is a no-op.
func (s *RestoreServiceImpl) RunShortcut(ctx context.Context, c rune, replayPrev bool) error {
	key, ok := s.binder.Resolve(c)
	if !ok {
		return nil
	}
	if replayPrev && !s.state.Build.Unset() {
		s.recordHistory(ctx, "")
		if err := s.runner.Run(ctx, s.state.Build); err != nil {
			return fmt.Errorf("replay of previous build failed: %w", err)
		}
	}
	return s.RestoreAndRun(ctx, key)
}

// InteractiveSelect offers one label per recipe and restores-and-runs
// the chosen one. The prompter guarantees the answer is an offered
// label, so resolution below cannot miss.
func (s *RestoreServiceImpl) InteractiveSelect(ctx context.Context) error {
	entries := s.state.Store.Sorted()
	if len(entries) == 0 {
		return ErrNoRecipes
	}

	choices := make([]string, len(entries))
	for i, e := range entries {
		choices[i] = recipe.SuggestName(e.Key.Dir, e.Key.Command)
	}

	choice, err := s.prompter.AskFromChoices("Recompile", choices)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}
	for i, label := range choices {
		if label == choice {
			return s.RestoreAndRun(ctx, entries[i].Key)
		}
	}
	return nil
}

// RunCurrent re-invokes the current build state without touching the
// store. The recipe name is attached to the history row only when the
// pair happens to be bookmarked.
func (s *RestoreServiceImpl) RunCurrent(ctx context.Context) error {
	if s.state.Build.Unset() {
		return ErrNoCurrentBuild
	}
	name := ""
	if entry := s.state.Store.Lookup(s.state.Build.Key()); entry != nil {
		name = entry.Name
	}
	s.recordHistory(ctx, name)
	if err := s.runner.Run(ctx, s.state.Build); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// State returns the current build state.
func (s *RestoreServiceImpl) State() models.BuildState {
	return s.state.Build
}

// recordHistory appends a row to the build ledger. History is
// best-effort: a failed write warns but never blocks the build.
func (s *RestoreServiceImpl) recordHistory(ctx context.Context, recipeName string) {
	if s.history == nil {
		return
	}
	err := s.history.Record(ctx, &secondary.HistoryRecord{
		RecipeName: recipeName,
		Dir:        s.state.Build.Dir,
		Command:    s.state.Build.Command,
	})
	if err != nil && s.warnOut != nil {
		fmt.Fprintf(s.warnOut, "warning: could not record build history: %v\n", err)
	}
}
