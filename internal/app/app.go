package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"logstats/internal/analyzers"
	internalhttp "logstats/internal/http"
	"logstats/internal/models"
	"logstats/internal/reports"
	"logstats/internal/shared/configs"
	"logstats/internal/shared/filestorages"
	"logstats/internal/shared/loggers"
	"logstats/internal/shared/ulid"
)

// RunOptions describes one command-line analysis run.
type RunOptions struct {
	InputPaths  []string
	OutputPath  string
	Metrics     models.MetricSet
	Format      string
	Concurrency int
}

// RunAnalysis wires up the core for a one-shot run: scan the inputs, derive
// the requested metrics, write the summary to the output path. Any error
// aborts before output is written; there is no partial-output mode.
func RunAnalysis(ctx context.Context, logger loggers.Logger, opts RunOptions) error {
	runCtx := logger.With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger().WithContext(ctx)

	scanner := analyzers.NewLineScanner()
	statsService := analyzers.NewStatsService(scanner, opts.Concurrency)

	summary, err := statsService.Analyze(runCtx, opts.InputPaths, opts.Metrics)
	if err != nil {
		return err
	}

	fileStorage, err := filestorages.NewFileStorage(filepath.Dir(opts.OutputPath))
	if err != nil {
		return fmt.Errorf("failed to initialize output storage: %w", err)
	}
	writer := reports.NewSummaryWriter(fileStorage)

	return writer.Write(runCtx, filepath.Base(opts.OutputPath), summary, opts.Format)
}

// App holds the serve-mode dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a serve-mode App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "logstats").
		Logger()

	scanner := analyzers.NewLineScanner()
	statsService := analyzers.NewStatsService(scanner, config.Processing.Concurrency)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(statsService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting logstats service on port %d (log_level=%s, concurrency=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Processing.Concurrency)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
