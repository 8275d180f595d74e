package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davenall/pageforge/internal/domain"
	"github.com/davenall/pageforge/internal/mocks"
)

func seedRuns(t *testing.T, runStore *mocks.MockRunStore, count int) []*domain.GenerationRun {
	t.Helper()

	runs := make([]*domain.GenerationRun, 0, count)
	for i := 0; i < count; i++ {
		run := &domain.GenerationRun{
			ID:             uuid.New(),
			TopicCount:     1,
			CategoryCount:  i + 1,
			GeneratedCount: i + 1,
			CreatedAt:      time.Now().UTC(),
		}
		require.NoError(t, runStore.CreateRun(context.Background(), run, &domain.GenerationReport{}))
		runs = append(runs, run)
	}
	return runs
}

// runsRouter mounts the handler under the same route shapes the server
// uses so chi URL params resolve.
func runsRouter(handler *RunsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/runs", handler.ListRuns)
	r.Get("/api/runs/{id}", handler.GetRun)
	return r
}

func TestListRuns(t *testing.T) {
	t.Parallel()

	runStore := &mocks.MockRunStore{}
	seedRuns(t, runStore, 3)
	router := runsRouter(NewRunsHandler(runStore, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []RunResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 3)
	// Newest first.
	assert.Equal(t, 3, resp[0].CategoryCount)
	assert.Equal(t, 1, resp[2].CategoryCount)
}

func TestListRuns_LimitParameter(t *testing.T) {
	t.Parallel()

	runStore := &mocks.MockRunStore{}
	seedRuns(t, runStore, 5)
	router := runsRouter(NewRunsHandler(runStore, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/runs?limit=2", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []RunResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestListRuns_InvalidLimit(t *testing.T) {
	t.Parallel()

	router := runsRouter(NewRunsHandler(&mocks.MockRunStore{}, testLogger()))

	for _, limit := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/runs?limit="+limit, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "limit=%s", limit)
	}
}

func TestGetRun(t *testing.T) {
	t.Parallel()

	runStore := &mocks.MockRunStore{}
	runs := seedRuns(t, runStore, 1)
	router := runsRouter(NewRunsHandler(runStore, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+runs[0].ID.String(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RunResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, runs[0].ID.String(), resp.ID)
	assert.Equal(t, 1, resp.GeneratedCount)
}

func TestGetRun_NotFound(t *testing.T) {
	t.Parallel()

	router := runsRouter(NewRunsHandler(&mocks.MockRunStore{}, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetRun_InvalidID(t *testing.T) {
	t.Parallel()

	router := runsRouter(NewRunsHandler(&mocks.MockRunStore{}, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/runs/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
