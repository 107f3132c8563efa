// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/anvil/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record appends one build invocation to the ledger.
func (r *HistoryRepository) Record(ctx context.Context, rec *secondary.HistoryRecord) error {
	var recipeName sql.NullString
	if rec.RecipeName != "" {
		recipeName = sql.NullString{String: rec.RecipeName, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO builds (recipe_name, dir, command) VALUES (?, ?, ?)",
		recipeName, rec.Dir, rec.Command,
	)
	if err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// ListRecent returns up to limit builds, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, recipe_name, dir, command, started_at FROM builds ORDER BY started_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer rows.Close()

	var records []*secondary.HistoryRecord
	for rows.Next() {
		var recipeName sql.NullString
		rec := &secondary.HistoryRecord{}
		if err := rows.Scan(&rec.ID, &recipeName, &rec.Dir, &rec.Command, &rec.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		if recipeName.Valid {
			rec.RecipeName = recipeName.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate builds: %w", err)
	}
	return records, nil
}
