package api

import (
	"time"

	"github.com/davenall/pageforge/internal/domain"
)

// GenerateRequest represents the request body for a page generation run.
type GenerateRequest struct {
	Topics     []string `json:"topics"     validate:"required,min=1,dive,min=1"`
	Categories []string `json:"categories" validate:"required,min=1,dive,min=1"`
}

// GeneratedPage represents one successfully generated page in the response.
type GeneratedPage struct {
	Topic      string `json:"topic"`
	Category   string `json:"category"`
	OutputPath string `json:"output_path"`
	CreatedAt  string `json:"created_at"`
}

// FailedPage represents one pair that failed to generate.
type FailedPage struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

// GenerateResponse represents the response body for a generation run.
type GenerateResponse struct {
	Success        bool            `json:"success"`
	Generated      []GeneratedPage `json:"generated"`
	Failed         []FailedPage    `json:"failed"`
	TotalGenerated int             `json:"total_generated"`
	Message        string          `json:"message"`
}

// reportToResponse converts a domain report into the wire response.
// Slices are always non-nil so the JSON arrays render as [] rather
// than null.
func reportToResponse(report *domain.GenerationReport) GenerateResponse {
	generated := make([]GeneratedPage, 0, len(report.Generated))
	for _, res := range report.Generated {
		generated = append(generated, GeneratedPage{
			Topic:      res.Topic,
			Category:   res.Category,
			OutputPath: res.OutputPath,
			CreatedAt:  res.CreatedAt,
		})
	}

	failed := make([]FailedPage, 0, len(report.Failed))
	for _, f := range report.Failed {
		failed = append(failed, FailedPage{
			Topic:    f.Topic,
			Category: f.Category,
			Error:    f.Error,
		})
	}

	return GenerateResponse{
		Success:        report.AllSucceeded(),
		Generated:      generated,
		Failed:         failed,
		TotalGenerated: report.TotalGenerated(),
		Message:        reportMessage(report),
	}
}

// RunResponse represents one audited generation run in the response.
type RunResponse struct {
	ID             string    `json:"id"`
	TopicCount     int       `json:"topic_count"`
	CategoryCount  int       `json:"category_count"`
	GeneratedCount int       `json:"generated_count"`
	FailedCount    int       `json:"failed_count"`
	CreatedAt      time.Time `json:"created_at"`
}

func runToResponse(run *domain.GenerationRun) RunResponse {
	return RunResponse{
		ID:             run.ID.String(),
		TopicCount:     run.TopicCount,
		CategoryCount:  run.CategoryCount,
		GeneratedCount: run.GeneratedCount,
		FailedCount:    run.FailedCount,
		CreatedAt:      run.CreatedAt,
	}
}

func runsToResponse(runs []*domain.GenerationRun) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, runToResponse(run))
	}
	return out
}
