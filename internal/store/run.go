// Package store defines persistence interfaces for the application.
// Concrete implementations live under internal/platform.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/davenall/pageforge/internal/domain"
)

// DBTX is the common subset of *sql.DB and *sql.Tx the stores need, so
// implementations work inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// RunStore persists the audit history of generation batches.
type RunStore interface {
	// CreateRun saves a completed batch together with its per-pair
	// outcomes.
	CreateRun(ctx context.Context, run *domain.GenerationRun, report *domain.GenerationReport) error

	// GetRun retrieves one batch record by ID.
	// Returns ErrRunNotFound if no such run exists.
	GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error)

	// ListRuns returns the most recent batch records, newest first.
	ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error)
}
