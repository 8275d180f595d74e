package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/davenall/pageforge/internal/config"
	"github.com/davenall/pageforge/internal/platform/gemini"
	"github.com/davenall/pageforge/internal/platform/postgres"
	"github.com/davenall/pageforge/internal/platform/s3"
	"github.com/davenall/pageforge/internal/service"
	"github.com/davenall/pageforge/internal/service/auth"
	"github.com/davenall/pageforge/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	runStore store.RunStore

	jwtService     auth.JWTService
	contentService *service.ContentService
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts core dependencies like
// configuration, logger, and database connection that must be
// established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized")

	app.runStore = postgres.NewRunStore(db, logger)

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	objectStore, err := s3.NewObjectStore(
		ctx,
		logger.With("component", "object_store"),
		cfg.Storage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}
	logger.Info("object store initialized", "bucket", cfg.Storage.Bucket)

	app.contentService, err = service.NewContentService(
		generator,
		objectStore,
		app.runStore,
		logger.With("component", "content_service"),
		service.ContentServiceConfig{
			WorkerCount: cfg.Generation.WorkerCount,
			PairTimeout: time.Duration(cfg.Generation.PairTimeoutSeconds) * time.Second,
			CacheMaxAge: cfg.Storage.CacheMaxAgeSeconds,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
	app.logger.Info("application shutdown completed")
}
