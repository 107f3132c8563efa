package app

import (
	"context"
	"fmt"

	"github.com/example/anvil/internal/core/recipe"
	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/primary"
	"github.com/example/anvil/internal/ports/secondary"
)

// RecipeServiceImpl implements primary.RecipeService.
type RecipeServiceImpl struct {
	state  *SessionState
	binder *ShortcutBinder
	menu   secondary.MenuRenderer
}

// NewRecipeService creates a RecipeService over the shared session state.
func NewRecipeService(state *SessionState, binder *ShortcutBinder, menu secondary.MenuRenderer) *RecipeServiceImpl {
	return &RecipeServiceImpl{state: state, binder: binder, menu: menu}
}

// Add inserts or replaces a recipe.
//
// Ordering matters here: the old shortcut is released first, the
// metadata is committed to the store, and only then is the new shortcut
// bound, so a bound character never points at stale metadata.
func (s *RecipeServiceImpl) Add(ctx context.Context, req primary.AddRecipeRequest) (*primary.AddRecipeResponse, error) {
	guard := recipe.CanAddRecipe(recipe.AddRecipeContext{
		Dir:      req.Dir,
		Command:  req.Command,
		Name:     req.Name,
		Shortcut: req.Shortcut,
	})
	if err := guard.Error(); err != nil {
		return nil, fmt.Errorf("cannot add recipe: %w", err)
	}

	key := models.RecipeKey{Dir: req.Dir, Command: req.Command}
	replaced := false
	if existing := s.state.Store.Lookup(key); existing != nil {
		replaced = true
		if existing.Shortcut != 0 {
			s.binder.Unbind(existing.Shortcut)
		}
	}

	r := models.Recipe{Key: key, Name: req.Name, Shortcut: req.Shortcut}
	s.state.Store.Put(r)
	s.binder.Bind(req.Shortcut, key)
	s.menu.Render(s.state.Store.Sorted(), s.state.Build)

	return &primary.AddRecipeResponse{Recipe: r, Replaced: replaced}, nil
}

// Remove deletes the recipe with this key. Absent keys are a no-op, not
// an error.
func (s *RecipeServiceImpl) Remove(ctx context.Context, key models.RecipeKey) error {
	if existing := s.state.Store.Lookup(key); existing != nil {
		if existing.Shortcut != 0 {
			s.binder.Unbind(existing.Shortcut)
		}
		s.state.Store.Remove(key)
	}
	s.menu.Render(s.state.Store.Sorted(), s.state.Build)
	return nil
}

// Lookup returns the recipe with exactly this key.
func (s *RecipeServiceImpl) Lookup(key models.RecipeKey) (models.Recipe, bool) {
	if e := s.state.Store.Lookup(key); e != nil {
		return *e, true
	}
	return models.Recipe{}, false
}

// List returns the recipes sorted by name.
func (s *RecipeServiceImpl) List() []models.Recipe {
	return s.state.Store.Sorted()
}

// SuggestName returns the name to pre-fill when bookmarking this key.
func (s *RecipeServiceImpl) SuggestName(key models.RecipeKey) string {
	if e := s.state.Store.Lookup(key); e != nil {
		return e.Name
	}
	return recipe.SuggestName(key.Dir, key.Command)
}
