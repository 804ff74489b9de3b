package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mtb/aren-app/internal/catalog"
	"github.com/mtb/aren-app/internal/config"
	"github.com/mtb/aren-app/internal/platform/filestore"
	"github.com/mtb/aren-app/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// catalog is built once at startup and immutable afterwards, so it is
	// shared across handlers without locking.
	catalog *catalog.Catalog

	// Stores (using interfaces for proper abstraction)
	sessionStore store.SessionStore
	reviewLog    store.ReviewLog
}

// newApplication creates a new application instance with all dependencies
// initialized. The word catalog is loaded here; failure to produce a
// non-empty catalog is fatal because the service is useless without words.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.catalog, err = catalog.Load(cfg.Catalog.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load word catalog: %w", err)
	}

	app.sessionStore = filestore.NewSessionStore(cfg.Storage.PerformanceDir, logger)

	app.reviewLog, err = filestore.NewReviewLog(cfg.Storage.ReviewLogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize review log: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
