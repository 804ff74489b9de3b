// Package main implements the entry point for the syllable practice API
// server, which hands out Turkish words bucketed by syllable count and
// records per-session practice timing.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/mtb/aren-app/internal/config"
	"github.com/mtb/aren-app/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"data_dir", cfg.Catalog.DataDir)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		// No catalog means no service; refuse to come up.
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
