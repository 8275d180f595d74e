package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/davenall/pageforge/internal/api/shared"
	"github.com/davenall/pageforge/internal/store"
)

const (
	defaultRunListLimit = 20
	maxRunListLimit     = 100
)

// RunsHandler serves the generation run audit history.
type RunsHandler struct {
	runStore store.RunStore
	logger   *slog.Logger
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(runStore store.RunStore, logger *slog.Logger) *RunsHandler {
	return &RunsHandler{
		runStore: runStore,
		logger:   logger,
	}
}

// ListRuns handles GET /api/runs requests. The optional limit query
// parameter caps how many runs are returned, newest first.
func (h *RunsHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxRunListLimit {
		limit = maxRunListLimit
	}

	runs, err := h.runStore.ListRuns(r.Context(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, h.logger,
			http.StatusInternalServerError, "Failed to list runs", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, runsToResponse(runs))
}

// GetRun handles GET /api/runs/{id} requests.
func (h *RunsHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid run ID")
		return
	}

	run, err := h.runStore.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Run not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, h.logger,
			http.StatusInternalServerError, "Failed to get run", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, runToResponse(run))
}
