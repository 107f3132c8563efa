package app

import "github.com/example/anvil/internal/models"

// ShortcutBinder maintains the character → recipe-key table. It is a
// plain data table dispatched through one fixed restore-and-run handler;
// no per-binding behavior is constructed at runtime.
//
// Binding a character always fully replaces any existing binding for it
// (last writer wins). Callers release an entry's old shortcut explicitly
// before rebinding, so at most one recipe is ever bound per character.
type ShortcutBinder struct {
	table map[rune]models.RecipeKey
}

// NewShortcutBinder creates an empty binder.
func NewShortcutBinder() *ShortcutBinder {
	return &ShortcutBinder{table: make(map[rune]models.RecipeKey)}
}

// Bind points c at key. Binding the zero character is a no-op; clearing
// a stale slot is the caller's job via Unbind.
func (b *ShortcutBinder) Bind(c rune, key models.RecipeKey) {
	if c == 0 {
		return
	}
	b.table[c] = key
}

// Unbind clears the binding for c, if any.
func (b *ShortcutBinder) Unbind(c rune) {
	delete(b.table, c)
}

// Resolve returns the key bound to c.
func (b *ShortcutBinder) Resolve(c rune) (models.RecipeKey, bool) {
	key, ok := b.table[c]
	return key, ok
}

// Reset drops every binding. Used when the store is cleared on disable.
func (b *ShortcutBinder) Reset() {
	b.table = make(map[rune]models.RecipeKey)
}

// Len returns the number of live bindings.
func (b *ShortcutBinder) Len() int {
	return len(b.table)
}
