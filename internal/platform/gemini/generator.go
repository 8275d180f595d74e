// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/davenall/pageforge/internal/config"
	"github.com/davenall/pageforge/internal/generation"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second
)

// generateContentAPI is the slice of the genai client the generator
// calls, split out so tests can substitute a fake.
type generateContentAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator calls the Gemini API with exponential-backoff retries for
// transient failures. Permanent failures (safety blocks, empty or
// malformed output) are returned immediately.
type Generator struct {
	logger     *slog.Logger
	models     generateContentAPI
	model      string
	maxRetries int
	baseDelay  time.Duration
}

// Ensure Generator implements the generation.Generator interface.
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration.
// Returns generation.ErrInvalidConfig if the configuration is unusable.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newWithModels(logger, cfg, client.Models), nil
}

// newWithModels wires a Generator around any generateContentAPI,
// clamping out-of-range retry settings to defaults.
func newWithModels(logger *slog.Logger, cfg config.LLMConfig, models generateContentAPI) *Generator {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		logger.Warn("invalid max retries value, using default",
			"configured", cfg.MaxRetries,
			"max_retries", defaultMaxRetries)
		maxRetries = defaultMaxRetries
	}

	baseDelay := time.Duration(cfg.RetryDelaySeconds) * time.Second
	if cfg.RetryDelaySeconds < 1 {
		logger.Warn("invalid retry delay value, using default",
			"configured", cfg.RetryDelaySeconds,
			"base_delay", defaultRetryDelay)
		baseDelay = defaultRetryDelay
	}

	return &Generator{
		logger:     logger,
		models:     models,
		model:      cfg.ModelName,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// GenerateText implements generation.Generator.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"model", g.model,
			"attempt", attemptNum,
			"max_attempts", g.maxRetries+1,
			"prompt_length", len(prompt))

		text, err := g.callOnce(ctx, prompt)
		if err == nil {
			g.logger.DebugContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"output_length", len(text))
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		// Permanent errors are never retried.
		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrEmptyOutput) {
			return "", err
		}

		if attempt >= g.maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, g.maxRetries, err)
		}

		// Exponential backoff with jitter:
		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoff := float64(g.baseDelay) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoff * jitterFactor)

		g.logger.InfoContext(ctx, "retrying Gemini API call after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single GenerateContent request and maps the
// response onto the generation error taxonomy.
func (g *Generator) callOnce(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		// Transport and server errors are treated as transient.
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrEmptyOutput)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: candidate without content", generation.ErrEmptyOutput)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: candidate contains no text", generation.ErrEmptyOutput)
	}

	return text, nil
}
