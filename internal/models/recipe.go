// Package models contains the value types shared across the application.
package models

// RecipeKey identifies a build recipe: the working directory paired with
// the command line that runs the build there. Equality is structural:
// exact string match on both fields, no path normalization.
type RecipeKey struct {
	Dir     string
	Command string
}

// Zero reports whether the key carries neither a directory nor a command.
func (k RecipeKey) Zero() bool {
	return k.Dir == "" && k.Command == ""
}

// Recipe is a saved build recipe: a key plus display metadata.
// Name is user-editable and not required to be unique across recipes.
// Shortcut is the single character bound to restore-and-run (0 = none).
type Recipe struct {
	Key      RecipeKey
	Name     string
	Shortcut rune
}

// BuildState is the live (directory, command) the next build will use.
// It is not owned by the store; the restorer writes it, runners read it,
// and the codec persists a separately-named snapshot of it.
type BuildState struct {
	Dir     string
	Command string
}

// Unset reports whether no build context has been established yet.
// An unset state never matches any recipe key, so no menu entry shows
// as selected before the first build.
func (s BuildState) Unset() bool {
	return s.Dir == ""
}

// Key returns the state as a recipe key for bookmark lookups.
func (s BuildState) Key() RecipeKey {
	return RecipeKey{Dir: s.Dir, Command: s.Command}
}
