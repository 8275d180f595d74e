package mocks

import (
	"context"
	"sync"

	"github.com/davenall/pageforge/internal/generation"
)

// MockGenerator is a configurable test double for generation.Generator.
type MockGenerator struct {
	// GenerateTextFn is invoked by GenerateText when set. When nil, a
	// fixed placeholder string is returned.
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// Ensure MockGenerator implements the generation.Generator interface.
var _ generation.Generator = (*MockGenerator)(nil)

// GenerateText records the prompt and delegates to GenerateTextFn.
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}
	return "generated text", nil
}

// Prompts returns a copy of all prompts seen so far.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// CallCount returns how many times GenerateText was invoked.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
