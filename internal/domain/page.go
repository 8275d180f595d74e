package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationResult records one successfully generated and stored page.
// Immutable after creation.
type GenerationResult struct {
	Topic      string `json:"topic"`
	Category   string `json:"category"`
	OutputPath string `json:"output_path"`
	CreatedAt  string `json:"created_at"`
}

// NewGenerationResult creates a GenerationResult for the given pair,
// stamping the creation time in UTC RFC3339.
// Returns an error if validation fails.
func NewGenerationResult(topic, category, outputPath string) (GenerationResult, error) {
	result := GenerationResult{
		Topic:      topic,
		Category:   category,
		OutputPath: outputPath,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := result.Validate(); err != nil {
		return GenerationResult{}, err
	}
	return result, nil
}

// Validate checks that the result has valid data.
func (r GenerationResult) Validate() error {
	if r.Topic == "" {
		return ErrEmptyTopic
	}
	if !IsValidCategory(r.Category) {
		return ErrUnknownCategory
	}
	if r.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	return nil
}

// GenerationFailure records one (topic, category) pair that could not be
// generated or stored, together with the reason.
type GenerationFailure struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

// GenerationReport aggregates the outcome of one generation batch.
// Generated and Failed preserve topic-major, category-minor input order.
type GenerationReport struct {
	Generated []GenerationResult  `json:"generated"`
	Failed    []GenerationFailure `json:"failed"`
}

// TotalGenerated returns the number of successfully generated pages.
func (r *GenerationReport) TotalGenerated() int {
	return len(r.Generated)
}

// AllSucceeded reports whether every pair in the batch succeeded.
func (r *GenerationReport) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// GenerationRun is the persisted audit record of one generation batch.
type GenerationRun struct {
	ID             uuid.UUID `json:"id"`
	TopicCount     int       `json:"topic_count"`
	CategoryCount  int       `json:"category_count"`
	GeneratedCount int       `json:"generated_count"`
	FailedCount    int       `json:"failed_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewGenerationRun creates the audit record for a completed batch.
func NewGenerationRun(topicCount, categoryCount int, report *GenerationReport) *GenerationRun {
	return &GenerationRun{
		ID:             uuid.New(),
		TopicCount:     topicCount,
		CategoryCount:  categoryCount,
		GeneratedCount: len(report.Generated),
		FailedCount:    len(report.Failed),
		CreatedAt:      time.Now().UTC(),
	}
}
