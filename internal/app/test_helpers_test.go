package app

import (
	"context"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockRecipeFile implements secondary.RecipeFile for testing.
type mockRecipeFile struct {
	loadResult   *secondary.LoadResult
	loadErr      error
	saveErr      error
	saveCalls    int
	savedState   models.BuildState
	savedEntries []models.Recipe
}

func newMockRecipeFile() *mockRecipeFile {
	return &mockRecipeFile{loadResult: &secondary.LoadResult{}}
}

func (m *mockRecipeFile) Save(entries []models.Recipe, state models.BuildState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.savedEntries = append([]models.Recipe(nil), entries...)
	m.savedState = state
	return nil
}

func (m *mockRecipeFile) Load() (*secondary.LoadResult, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loadResult, nil
}

// mockRunner implements secondary.BuildRunner for testing.
type mockRunner struct {
	runs   []models.BuildState
	runErr error
}

func (m *mockRunner) Run(ctx context.Context, state models.BuildState) error {
	m.runs = append(m.runs, state)
	return m.runErr
}

// mockMenu implements secondary.MenuRenderer for testing.
type mockMenu struct {
	renders   int
	lastState models.BuildState
	lastList  []models.Recipe
}

func (m *mockMenu) Render(entries []models.Recipe, state models.BuildState) {
	m.renders++
	m.lastList = entries
	m.lastState = state
}

// mockPrompter implements secondary.Prompter with scripted answers.
type mockPrompter struct {
	stringAnswer string
	charAnswer   rune
	pickIndex    int // answer to AskFromChoices, by offered index
	pickErr      error
	choicesSeen  []string
}

func (m *mockPrompter) AskString(prompt, def string) (string, error) {
	if m.stringAnswer == "" {
		return def, nil
	}
	return m.stringAnswer, nil
}

func (m *mockPrompter) AskChar(prompt string) (rune, error) {
	return m.charAnswer, nil
}

func (m *mockPrompter) AskFromChoices(prompt string, choices []string) (string, error) {
	m.choicesSeen = append([]string(nil), choices...)
	if m.pickErr != nil {
		return "", m.pickErr
	}
	return choices[m.pickIndex], nil
}

// mockHistory implements secondary.HistoryRepository for testing.
type mockHistory struct {
	records   []*secondary.HistoryRecord
	recordErr error
}

func (m *mockHistory) Record(ctx context.Context, rec *secondary.HistoryRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockHistory) ListRecent(ctx context.Context, limit int) ([]*secondary.HistoryRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]*secondary.HistoryRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}
