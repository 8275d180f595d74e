// Package generation defines the boundary between the application core
// and external LLM inference services. The Generator interface keeps the
// orchestration logic independent of any concrete model API so tests can
// substitute deterministic fakes.
package generation

import "context"

// Generator defines the interface for text generation through an
// external language model.
type Generator interface {
	// GenerateText produces text for the given prompt.
	//
	// Implementations must honor context cancellation and map provider
	// failures onto the sentinel errors in errors.go so callers can
	// distinguish transient from permanent failures.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
