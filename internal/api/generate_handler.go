package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/davenall/pageforge/internal/api/shared"
	"github.com/davenall/pageforge/internal/domain"
)

// PageGenerator is the service the generate endpoint delegates to.
type PageGenerator interface {
	GeneratePages(ctx context.Context, topics, categories []string) (*domain.GenerationReport, error)
}

// GenerateHandler handles page generation HTTP requests.
type GenerateHandler struct {
	contentService PageGenerator
	logger         *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(contentService PageGenerator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// GeneratePages handles POST /api/generate requests.
//
// The request is rejected up front when any category is unknown; a pair
// failure during generation never fails the request, so the response is
// 200 even when some pairs end up in the failed list.
func (h *GenerateHandler) GeneratePages(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if unknown := unknownCategories(req.Categories); len(unknown) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Unknown categories: "+strings.Join(unknown, ", "))
		return
	}

	caller, _ := shared.CallerSubject(r.Context())
	h.logger.InfoContext(r.Context(), "generation run requested",
		"caller", caller,
		"topic_count", len(req.Topics),
		"category_count", len(req.Categories))

	report, err := h.contentService.GeneratePages(r.Context(), req.Topics, req.Categories)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, h.logger,
			http.StatusInternalServerError, "Failed to run generation", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reportToResponse(report))
}

// unknownCategories returns the request categories that are not in the
// registry, preserving request order without duplicates.
func unknownCategories(categories []string) []string {
	var unknown []string
	seen := make(map[string]bool, len(categories))
	for _, id := range categories {
		if domain.IsValidCategory(id) || seen[id] {
			continue
		}
		seen[id] = true
		unknown = append(unknown, id)
	}
	return unknown
}

// reportMessage builds the human-readable summary line for a report.
func reportMessage(report *domain.GenerationReport) string {
	if report.AllSucceeded() {
		return fmt.Sprintf("Successfully generated %d pages.", report.TotalGenerated())
	}
	return fmt.Sprintf("Generated %d pages. %d failed.", report.TotalGenerated(), len(report.Failed))
}
