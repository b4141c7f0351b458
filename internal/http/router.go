package http

import (
	"net/http"

	"logstats/internal/analyzers"
	"logstats/internal/shared/loggers"
	"logstats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router for serve mode.
func NewRouter(statsService analyzers.StatsService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	analyzeHandler := NewAnalyzeHandler(statsService)

	router.Post("/analyze", errorHandlingAdapter(analyzeHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
