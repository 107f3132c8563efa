package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/anvil/internal/adapters/sqlite"
	"github.com/example/anvil/internal/ports/secondary"
)

func TestHistoryRepository_RecordAndList(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()

	first := &secondary.HistoryRecord{RecipeName: "Build", Dir: "/proj", Command: "make"}
	if err := repo.Record(ctx, first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("Record did not backfill the row id")
	}
	if err := repo.Record(ctx, &secondary.HistoryRecord{RecipeName: "Test", Dir: "/proj", Command: "make test"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	records, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Command != "make test" || records[1].Command != "make" {
		t.Errorf("order = [%s, %s], want newest first", records[0].Command, records[1].Command)
	}
	if records[0].StartedAt == "" {
		t.Error("started_at not populated")
	}
}

func TestHistoryRepository_RecipeNameIsOptional(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Record(ctx, &secondary.HistoryRecord{Dir: "/scratch", Command: "go vet ./..."}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	records, err := repo.ListRecent(ctx, 1)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].RecipeName != "" {
		t.Errorf("recipe name = %q, want empty for ad-hoc builds", records[0].RecipeName)
	}
}

func TestHistoryRepository_ListRecentHonorsLimit(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Record(ctx, &secondary.HistoryRecord{Dir: "/proj", Command: "make"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	records, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}
