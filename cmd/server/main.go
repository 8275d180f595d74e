// Package main implements the entry point for the pageforge server,
// which generates styled HTML content pages from topic and category
// pairs via LLM inference and publishes them to object storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/davenall/pageforge/internal/config"
	"github.com/davenall/pageforge/internal/platform/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply database migrations and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateOnly); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// run loads configuration, wires the application, and starts the HTTP
// server. With migrateOnly set it applies pending migrations and exits.
func run(ctx context.Context, migrateOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("environment", cfg.Server.Environment),
		slog.String("model", cfg.LLM.ModelName),
		slog.String("bucket", cfg.Storage.Bucket))

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := applyMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if migrateOnly {
		appLogger.Info("migrations applied, exiting")
		closeDatabase(db, appLogger)
		return nil
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
