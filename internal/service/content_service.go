// Package service contains the application's orchestration logic,
// coordinating the domain model with the external inference and storage
// capabilities.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/davenall/pageforge/internal/domain"
	"github.com/davenall/pageforge/internal/generation"
	"github.com/davenall/pageforge/internal/render"
	"github.com/davenall/pageforge/internal/storage"
	"github.com/davenall/pageforge/internal/store"
)

// articlePromptSuffix is appended to every category prompt so the model
// returns blog-ready markup instead of a full document.
const articlePromptSuffix = `

Format the article in clean HTML suitable for a blog post. Include:
- A compelling <h1> title
- Use <h2> and <h3> for section headers
- Use <p> tags for paragraphs
- Use <ul>/<ol> and <li> for lists where appropriate
- Use <strong> and <em> for emphasis
- Do NOT include <html>, <head>, or <body> tags - just the article content
- Make the content engaging, well-researched, and approximately 800-1200 words`

// metaPromptFormat asks for a standalone meta description. The meta text
// is an independent generation, not a truncation of the article body.
const metaPromptFormat = `Write a compelling meta description (150-160 characters) for a blog article about %q focusing on %s.
The description should be engaging and include the main keyword. Return ONLY the meta description text, nothing else.`

// maxMetaDescriptionLength caps the meta description per SEO guidance.
const maxMetaDescriptionLength = 160

// pageContentType is the content type every stored page is served with.
const pageContentType = "text/html"

// ContentServiceConfig tunes batch processing.
type ContentServiceConfig struct {
	// WorkerCount bounds concurrent pair processing. Values below 1
	// fall back to 1.
	WorkerCount int

	// PairTimeout bounds the end-to-end processing of a single pair.
	// Zero disables the per-pair deadline.
	PairTimeout time.Duration

	// CacheMaxAge is the max-age, in seconds, in the Cache-Control
	// directive stored with each page.
	CacheMaxAge int
}

// ContentService generates pages for every (topic, category) pair of a
// batch and publishes them to object storage. Failures are isolated per
// pair: one failing pair never aborts the rest of the batch.
type ContentService struct {
	generator generation.Generator
	objects   storage.ObjectStore
	runs      store.RunStore
	logger    *slog.Logger

	workerCount  int
	pairTimeout  time.Duration
	cacheControl string
}

// NewContentService creates a ContentService with the given dependencies.
// Returns an error if any dependency is nil.
func NewContentService(
	generator generation.Generator,
	objects storage.ObjectStore,
	runs store.RunStore,
	logger *slog.Logger,
	cfg ContentServiceConfig,
) (*ContentService, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if objects == nil {
		return nil, fmt.Errorf("object store cannot be nil")
	}
	if runs == nil {
		return nil, fmt.Errorf("run store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	workerCount := cfg.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}

	return &ContentService{
		generator:    generator,
		objects:      objects,
		runs:         runs,
		logger:       logger.With(slog.String("component", "content_service")),
		workerCount:  workerCount,
		pairTimeout:  cfg.PairTimeout,
		cacheControl: fmt.Sprintf("public, max-age=%d", cfg.CacheMaxAge),
	}, nil
}

// pairJob is one (topic, category) combination queued for processing.
// index is the pair's position in topic-major, category-minor input
// order, used to reassemble deterministic output ordering.
type pairJob struct {
	index    int
	topic    string
	category string
}

// pairOutcome holds the result of one processed pair; exactly one of
// result/failure is set.
type pairOutcome struct {
	result  *domain.GenerationResult
	failure *domain.GenerationFailure
}

// GeneratePages processes the full topics × categories cross-product and
// returns the assembled report. Pair-level errors are captured in the
// report, never returned; the returned error covers only invalid input.
func (s *ContentService) GeneratePages(
	ctx context.Context,
	topics []string,
	categories []string,
) (*domain.GenerationReport, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	jobs := make([]pairJob, 0, len(topics)*len(categories))
	for _, topic := range topics {
		for _, category := range categories {
			jobs = append(jobs, pairJob{index: len(jobs), topic: topic, category: category})
		}
	}

	s.logger.InfoContext(ctx, "starting generation batch",
		slog.Int("topics", len(topics)),
		slog.Int("categories", len(categories)),
		slog.Int("pairs", len(jobs)),
		slog.Int("workers", s.workerCount))

	outcomes := make([]pairOutcome, len(jobs))

	jobCh := make(chan pairJob)
	var wg sync.WaitGroup

	workerCount := s.workerCount
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				outcomes[job.index] = s.processPair(ctx, job)
			}
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	report := &domain.GenerationReport{
		Generated: []domain.GenerationResult{},
		Failed:    []domain.GenerationFailure{},
	}
	for _, outcome := range outcomes {
		if outcome.result != nil {
			report.Generated = append(report.Generated, *outcome.result)
		} else if outcome.failure != nil {
			report.Failed = append(report.Failed, *outcome.failure)
		}
	}

	s.recordRun(ctx, len(topics), len(categories), report)

	s.logger.InfoContext(ctx, "generation batch finished",
		slog.Int("generated", len(report.Generated)),
		slog.Int("failed", len(report.Failed)))

	return report, nil
}

// processPair runs one pair end to end and never returns an error:
// every failure becomes a GenerationFailure.
func (s *ContentService) processPair(ctx context.Context, job pairJob) pairOutcome {
	if s.pairTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.pairTimeout)
		defer cancel()
	}

	result, err := s.generatePage(ctx, job.topic, job.category)
	if err != nil {
		s.logger.WarnContext(ctx, "pair generation failed",
			slog.String("topic", job.topic),
			slog.String("category", job.category),
			slog.String("error", err.Error()))
		return pairOutcome{failure: &domain.GenerationFailure{
			Topic:    job.topic,
			Category: job.category,
			Error:    err.Error(),
		}}
	}

	s.logger.DebugContext(ctx, "pair generated",
		slog.String("topic", job.topic),
		slog.String("category", job.category),
		slog.String("output_path", result.OutputPath))
	return pairOutcome{result: result}
}

// generatePage performs the generation pipeline for one pair: prompt,
// article body, meta description, render, store.
func (s *ContentService) generatePage(ctx context.Context, topic, categoryID string) (*domain.GenerationResult, error) {
	spec, err := domain.LookupCategory(categoryID)
	if err != nil {
		return nil, err
	}

	prompt, err := spec.Prompt(topic)
	if err != nil {
		return nil, err
	}

	body, err := s.generator.GenerateText(ctx, prompt+articlePromptSuffix)
	if err != nil {
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	metaPrompt := fmt.Sprintf(metaPromptFormat, topic, strings.ToLower(spec.Label))
	meta, err := s.generator.GenerateText(ctx, metaPrompt)
	if err != nil {
		return nil, fmt.Errorf("meta description generation failed: %w", err)
	}
	meta = truncateRunes(strings.TrimSpace(meta), maxMetaDescriptionLength)

	doc, err := render.Render(render.Page{
		Topic:           topic,
		CategoryLabel:   spec.Label,
		BodyHTML:        body,
		MetaDescription: meta,
	})
	if err != nil {
		return nil, err
	}

	outputPath := domain.OutputPath(topic, categoryID)
	err = s.objects.Put(ctx, storage.Object{
		Key:          outputPath,
		Body:         []byte(doc),
		ContentType:  pageContentType,
		CacheControl: s.cacheControl,
	})
	if err != nil {
		return nil, fmt.Errorf("storage write failed: %w", err)
	}

	result, err := domain.NewGenerationResult(topic, categoryID, outputPath)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// recordRun persists the batch audit record. Recording problems are
// logged and never surfaced to the caller.
func (s *ContentService) recordRun(ctx context.Context, topicCount, categoryCount int, report *domain.GenerationReport) {
	run := domain.NewGenerationRun(topicCount, categoryCount, report)
	if err := s.runs.CreateRun(ctx, run, report); err != nil {
		s.logger.ErrorContext(ctx, "failed to record generation run",
			slog.String("run_id", run.ID.String()),
			slog.String("error", err.Error()))
	}
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
