package mocks

import (
	"context"
	"sync"

	"github.com/davenall/pageforge/internal/storage"
)

// MockObjectStore is a configurable test double for storage.ObjectStore.
type MockObjectStore struct {
	// PutFn is invoked by Put when set. When nil, Put succeeds.
	PutFn func(ctx context.Context, obj storage.Object) error

	mu      sync.Mutex
	objects []storage.Object
}

// Ensure MockObjectStore implements the storage.ObjectStore interface.
var _ storage.ObjectStore = (*MockObjectStore)(nil)

// Put records the object and delegates to PutFn.
func (m *MockObjectStore) Put(ctx context.Context, obj storage.Object) error {
	m.mu.Lock()
	m.objects = append(m.objects, obj)
	m.mu.Unlock()

	if m.PutFn != nil {
		return m.PutFn(ctx, obj)
	}
	return nil
}

// Objects returns a copy of all objects passed to Put so far.
func (m *MockObjectStore) Objects() []storage.Object {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]storage.Object, len(m.objects))
	copy(out, m.objects)
	return out
}
