package app

import (
	"context"
	"fmt"

	"github.com/example/anvil/internal/ports/primary"
	"github.com/example/anvil/internal/ports/secondary"
)

// HistoryServiceImpl implements primary.HistoryService.
type HistoryServiceImpl struct {
	repo secondary.HistoryRepository
}

// NewHistoryService creates a HistoryService over the given repository.
func NewHistoryService(repo secondary.HistoryRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{repo: repo}
}

// Recent returns the most recent build invocations, newest first.
func (s *HistoryServiceImpl) Recent(ctx context.Context, limit int) ([]primary.BuildEvent, error) {
	if s.repo == nil {
		return nil, nil
	}
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list build history: %w", err)
	}

	events := make([]primary.BuildEvent, len(records))
	for i, r := range records {
		events[i] = primary.BuildEvent{
			ID:         r.ID,
			RecipeName: r.RecipeName,
			Dir:        r.Dir,
			Command:    r.Command,
			StartedAt:  r.StartedAt,
		}
	}
	return events, nil
}
