// Package recipe contains the pure business logic for recipe bookkeeping:
// the in-memory store, creation guards, and display-label derivation.
// Nothing in this package performs I/O.
package recipe

import (
	"sort"

	"github.com/example/anvil/internal/models"
)

// Store holds the in-memory recipe list. Keys are unique; after every
// mutation the list is sorted ascending by name. The ordering is a
// display and iteration convenience only; lookups always go by key.
type Store struct {
	entries []models.Recipe
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Lookup returns the recipe whose key exactly matches, or nil.
// There is no fuzzy matching.
func (s *Store) Lookup(key models.RecipeKey) *models.Recipe {
	for i := range s.entries {
		if s.entries[i].Key == key {
			return &s.entries[i]
		}
	}
	return nil
}

// Put inserts the recipe, or replaces the metadata of the existing entry
// with the same key. Replacing is not a conflict; re-adding a bookmarked
// key is how metadata gets edited. The list is re-sorted afterwards.
func (s *Store) Put(r models.Recipe) {
	if existing := s.Lookup(r.Key); existing != nil {
		existing.Name = r.Name
		existing.Shortcut = r.Shortcut
	} else {
		s.entries = append(s.entries, r)
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Name < s.entries[j].Name
	})
}

// Remove deletes the entry with this key. An absent key is a no-op.
func (s *Store) Remove(key models.RecipeKey) {
	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Sorted returns the entries in name order. The slice is a copy, so
// callers may iterate and re-iterate freely while the store mutates.
func (s *Store) Sorted() []models.Recipe {
	out := make([]models.Recipe, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear empties the store. The lifecycle controller calls this after the
// final save so a later enable can load without tripping the refusal guard.
func (s *Store) Clear() {
	s.entries = nil
}
