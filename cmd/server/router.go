package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mtb/aren-app/internal/api"
	apiMiddleware "github.com/mtb/aren-app/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The API is mounted twice, at /api and /aren/api, because
// the practice page has historically been reachable under both prefixes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Create API handlers using the application's services
	wordHandler := api.NewWordHandler(app.catalog, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessionStore, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewLog, app.logger)

	registerAPI := func(r chi.Router) {
		// Word selection endpoints
		r.Get("/word-counts", wordHandler.GetCounts)
		r.Get("/word", wordHandler.GetRandomWord)
		r.Get("/word-random", wordHandler.GetRandomWord)
		r.Get("/word/{count}", wordHandler.GetWordForCount)

		// Session record endpoints
		r.Post("/performance", sessionHandler.IngestSession)
		r.Get("/performance", sessionHandler.ListSessions)
		r.Get("/performance/{sessionId}", sessionHandler.GetSession)

		// Word review endpoints
		r.Post("/check-word", reviewHandler.FlagWord)
		r.Get("/check-list", reviewHandler.ListFlaggedWords)
		r.Delete("/check-list", reviewHandler.ClearFlaggedWords)

		r.Get("/health", wordHandler.GetHealth)
	}

	r.Route("/api", registerAPI)
	r.Route("/aren/api", registerAPI)

	// Static page/asset delivery is outside the core but must stay
	// reachable for the practice page to work end to end.
	if dir := app.config.Server.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			fs := http.FileServer(http.Dir(dir))
			r.Handle("/*", fs)
			r.Handle("/aren/*", http.StripPrefix("/aren", fs))
		} else {
			app.logger.Warn("static directory not found, skipping static serving",
				"dir", dir)
		}
	}

	return r
}
