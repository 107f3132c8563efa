// Package secondary defines the secondary ports (driven adapters) for the
// application: persistence, build execution, prompting, and rendering.
package secondary

import (
	"context"

	"github.com/example/anvil/internal/models"
)

// LoadResult is what the recipe file yields: the entry list plus the
// last-active snapshot. The snapshot fields are named separately from
// the live build state on disk, so loading the store can never alias
// onto an already-active state by accident.
type LoadResult struct {
	Entries     []models.Recipe
	LastDir     string
	LastCommand string
}

// RecipeFile persists the recipe store as a text file.
type RecipeFile interface {
	// Save writes the full entry list plus the build-state snapshot
	// atomically. A failed save must surface to the caller.
	Save(entries []models.Recipe, state models.BuildState) error

	// Load reads and strictly parses the file. A missing or unreadable
	// file is not an error and yields an empty result; a file that does
	// not match the documented grammar is.
	Load() (*LoadResult, error)
}

// BuildRunner invokes the build action with the given state. The core
// never inspects the build's output, only whether starting it failed.
type BuildRunner interface {
	Run(ctx context.Context, state models.BuildState) error
}

// HistoryRecord is a row in the build history ledger.
type HistoryRecord struct {
	ID         int64
	RecipeName string
	Dir        string
	Command    string
	StartedAt  string
}

// HistoryRepository records build invocations.
type HistoryRepository interface {
	Record(ctx context.Context, rec *HistoryRecord) error
	ListRecent(ctx context.Context, limit int) ([]*HistoryRecord, error)
}
