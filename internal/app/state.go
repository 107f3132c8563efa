// Package app implements the primary ports. Services share one
// SessionState owned by the lifecycle controller; every operation
// works on injected state.
package app

import (
	"github.com/example/anvil/internal/core/recipe"
	"github.com/example/anvil/internal/models"
)

// SessionState is the mutable state of one enabled session: the recipe
// store and the current build state. All operations run on the single
// control goroutine, so access is unsynchronized by design.
type SessionState struct {
	Store *recipe.Store
	Build models.BuildState
}

// NewSessionState creates a state with an empty store and unset build state.
func NewSessionState() *SessionState {
	return &SessionState{Store: recipe.NewStore()}
}
