package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davenall/pageforge/internal/domain"
)

// fakePageGenerator is a controllable PageGenerator for handler tests.
type fakePageGenerator struct {
	report *domain.GenerationReport
	err    error

	gotTopics     []string
	gotCategories []string
	callCount     int
}

func (f *fakePageGenerator) GeneratePages(
	_ context.Context,
	topics, categories []string,
) (*domain.GenerationReport, error) {
	f.callCount++
	f.gotTopics = topics
	f.gotCategories = categories
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func postGenerate(t *testing.T, handler *GenerateHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.GeneratePages(rr, req)
	return rr
}

func TestGeneratePages_Success(t *testing.T) {
	t.Parallel()

	gen := &fakePageGenerator{
		report: &domain.GenerationReport{
			Generated: []domain.GenerationResult{
				{
					Topic:      "Quantum Computing",
					Category:   "facts",
					OutputPath: "output/quantum-computing-facts.html",
					CreatedAt:  "2026-08-29T12:00:00Z",
				},
			},
			Failed: []domain.GenerationFailure{},
		},
	}
	handler := NewGenerateHandler(gen, testLogger())

	rr := postGenerate(t, handler, `{"topics":["Quantum Computing"],"categories":["facts"]}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalGenerated)
	assert.Equal(t, "Successfully generated 1 pages.", resp.Message)
	require.Len(t, resp.Generated, 1)
	assert.Equal(t, "output/quantum-computing-facts.html", resp.Generated[0].OutputPath)
	assert.Empty(t, resp.Failed)

	assert.Equal(t, 1, gen.callCount)
	assert.Equal(t, []string{"Quantum Computing"}, gen.gotTopics)
	assert.Equal(t, []string{"facts"}, gen.gotCategories)
}

func TestGeneratePages_PartialFailureStillOK(t *testing.T) {
	t.Parallel()

	gen := &fakePageGenerator{
		report: &domain.GenerationReport{
			Generated: []domain.GenerationResult{
				{
					Topic:      "Go",
					Category:   "facts",
					OutputPath: "output/go-facts.html",
					CreatedAt:  "2026-08-29T12:00:00Z",
				},
			},
			Failed: []domain.GenerationFailure{
				{Topic: "Go", Category: "history", Error: "generation failed: model unavailable"},
			},
		},
	}
	handler := NewGenerateHandler(gen, testLogger())

	rr := postGenerate(t, handler, `{"topics":["Go"],"categories":["facts","history"]}`)

	// Pair failures are reported in the body, not via the status code.
	require.Equal(t, http.StatusOK, rr.Code)

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, 1, resp.TotalGenerated)
	assert.Equal(t, "Generated 1 pages. 1 failed.", resp.Message)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "history", resp.Failed[0].Category)
}

func TestGeneratePages_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"topics":`},
		{name: "missing topics", body: `{"categories":["facts"]}`},
		{name: "empty topics", body: `{"topics":[],"categories":["facts"]}`},
		{name: "missing categories", body: `{"topics":["Go"]}`},
		{name: "empty categories", body: `{"topics":["Go"],"categories":[]}`},
		{name: "empty topic string", body: `{"topics":[""],"categories":["facts"]}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakePageGenerator{}
			handler := NewGenerateHandler(gen, testLogger())

			rr := postGenerate(t, handler, tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, gen.callCount, "service must not be called for invalid requests")
		})
	}
}

func TestGeneratePages_UnknownCategoryRejectedUpFront(t *testing.T) {
	t.Parallel()

	gen := &fakePageGenerator{}
	handler := NewGenerateHandler(gen, testLogger())

	rr := postGenerate(t, handler,
		`{"topics":["Go"],"categories":["facts","astrology","numerology","astrology"]}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Unknown categories: astrology, numerology", resp.Error)
	assert.Zero(t, gen.callCount)
}

func TestGeneratePages_ServiceError(t *testing.T) {
	t.Parallel()

	gen := &fakePageGenerator{err: errors.New("boom")}
	handler := NewGenerateHandler(gen, testLogger())

	rr := postGenerate(t, handler, `{"topics":["Go"],"categories":["facts"]}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Failed to run generation", resp.Error)
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestGeneratePages_EmptySlicesRenderAsArrays(t *testing.T) {
	t.Parallel()

	gen := &fakePageGenerator{report: &domain.GenerationReport{}}
	handler := NewGenerateHandler(gen, testLogger())

	rr := postGenerate(t, handler, `{"topics":["Go"],"categories":["facts"]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"generated":[]`)
	assert.Contains(t, rr.Body.String(), `"failed":[]`)
}
