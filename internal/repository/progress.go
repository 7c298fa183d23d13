package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/GrowthMindset/internal/db"
	"github.com/atinyakov/GrowthMindset/internal/models"
)

// ProgressRepository appends progress entries to the progress table.
type ProgressRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
	// Dialect controls placeholder syntax.
	Dialect db.Dialect
}

// NewProgressRepository creates a new ProgressRepository using the provided *sql.DB.
func NewProgressRepository(conn *sql.DB, dialect db.Dialect) *ProgressRepository {
	return &ProgressRepository{DB: conn, Dialect: dialect}
}

// AddProgress stores entry as a new row and returns the assigned id.
// The percentage is written exactly as given.
func (r *ProgressRepository) AddProgress(ctx context.Context, entry models.ProgressEntry) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		r.Dialect.Rebind(`INSERT INTO progress (user_id, progress, date) VALUES (?, ?, ?) RETURNING id`),
		entry.AccountID, entry.Progress, entry.Date,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert progress: %w", err)
	}
	return id, nil
}
