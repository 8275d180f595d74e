// Package postgres implements the store interfaces using a PostgreSQL
// database as the storage backend.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davenall/pageforge/internal/domain"
	"github.com/davenall/pageforge/internal/store"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// RunStore implements the store.RunStore interface.
type RunStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRunStore creates a PostgreSQL implementation of store.RunStore.
// The database connection or transaction is managed by the caller.
// If logger is nil, the default logger is used.
func NewRunStore(db store.DBTX, logger *slog.Logger) *RunStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RunStore{
		db:     db,
		logger: logger.With(slog.String("component", "run_store")),
	}
}

// Ensure RunStore implements store.RunStore.
var _ store.RunStore = (*RunStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *RunStore) WithTx(tx *sql.Tx) *RunStore {
	return &RunStore{
		db:     tx,
		logger: s.logger,
	}
}

// CreateRun implements store.RunStore.CreateRun. The run row and its
// pair rows are written atomically: a store holding a connection pool
// wraps the inserts in a transaction, and a store already bound to a
// transaction writes through it directly.
func (s *RunStore) CreateRun(
	ctx context.Context,
	run *domain.GenerationRun,
	report *domain.GenerationReport,
) error {
	if run == nil {
		return fmt.Errorf("%w: run cannot be nil", store.ErrInvalidEntity)
	}
	if report == nil {
		return fmt.Errorf("%w: report cannot be nil", store.ErrInvalidEntity)
	}

	if db, ok := s.db.(*sql.DB); ok {
		return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return s.WithTx(tx).insertRun(ctx, run, report)
		})
	}
	return s.insertRun(ctx, run, report)
}

// insertRun writes the run row and one row per pair outcome through the
// store's current connection or transaction.
func (s *RunStore) insertRun(
	ctx context.Context,
	run *domain.GenerationRun,
	report *domain.GenerationReport,
) error {
	query := `
		INSERT INTO generation_runs (id, topic_count, category_count, generated_count, failed_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		run.ID,
		run.TopicCount,
		run.CategoryCount,
		run.GeneratedCount,
		run.FailedCount,
		run.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return fmt.Errorf("%w: run %s already recorded", store.ErrInvalidEntity, run.ID)
		}
		return fmt.Errorf("failed to insert generation run: %w", err)
	}

	pairQuery := `
		INSERT INTO generation_pairs (run_id, position, topic, category, output_path, error)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	position := 0
	for _, result := range report.Generated {
		_, err := s.db.ExecContext(ctx, pairQuery,
			run.ID, position, result.Topic, result.Category, result.OutputPath, nil)
		if err != nil {
			return fmt.Errorf("failed to insert generated pair: %w", err)
		}
		position++
	}
	for _, failure := range report.Failed {
		_, err := s.db.ExecContext(ctx, pairQuery,
			run.ID, position, failure.Topic, failure.Category, nil, failure.Error)
		if err != nil {
			return fmt.Errorf("failed to insert failed pair: %w", err)
		}
		position++
	}

	s.logger.DebugContext(ctx, "generation run recorded",
		slog.String("run_id", run.ID.String()),
		slog.Int("generated", run.GeneratedCount),
		slog.Int("failed", run.FailedCount))
	return nil
}

// GetRun implements store.RunStore.GetRun.
func (s *RunStore) GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error) {
	query := `
		SELECT id, topic_count, category_count, generated_count, failed_count, created_at
		FROM generation_runs
		WHERE id = $1
	`
	var run domain.GenerationRun
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.TopicCount,
		&run.CategoryCount,
		&run.GeneratedCount,
		&run.FailedCount,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to query generation run: %w", err)
	}

	return &run, nil
}

// ListRuns implements store.RunStore.ListRuns.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, topic_count, category_count, generated_count, failed_count, created_at
		FROM generation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation runs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var runs []*domain.GenerationRun
	for rows.Next() {
		var run domain.GenerationRun
		if err := rows.Scan(
			&run.ID,
			&run.TopicCount,
			&run.CategoryCount,
			&run.GeneratedCount,
			&run.FailedCount,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generation runs: %w", err)
	}

	return runs, nil
}
