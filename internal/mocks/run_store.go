package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/davenall/pageforge/internal/domain"
	"github.com/davenall/pageforge/internal/store"
)

// MockRunStore is an in-memory test double for store.RunStore.
type MockRunStore struct {
	// CreateRunFn overrides CreateRun when set.
	CreateRunFn func(ctx context.Context, run *domain.GenerationRun, report *domain.GenerationReport) error

	mu   sync.Mutex
	runs []*domain.GenerationRun
}

// Ensure MockRunStore implements the store.RunStore interface.
var _ store.RunStore = (*MockRunStore)(nil)

// CreateRun records the run, or delegates to CreateRunFn when set.
func (m *MockRunStore) CreateRun(
	ctx context.Context,
	run *domain.GenerationRun,
	report *domain.GenerationReport,
) error {
	if m.CreateRunFn != nil {
		return m.CreateRunFn(ctx, run, report)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

// GetRun retrieves a recorded run by ID.
func (m *MockRunStore) GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, run := range m.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, store.ErrRunNotFound
}

// ListRuns returns recorded runs, newest first.
func (m *MockRunStore) ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.GenerationRun, 0, len(m.runs))
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

// Runs returns a copy of all recorded runs.
func (m *MockRunStore) Runs() []*domain.GenerationRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.GenerationRun, len(m.runs))
	copy(out, m.runs)
	return out
}
