package analyzers

import (
	"context"

	"logstats/internal/models"
	"logstats/internal/shared/loggers"
	"logstats/internal/shared/metrics"
	"logstats/internal/shared/svcerrors"
)

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// Analyze processes the input files and derives the requested metrics.
	// Each call is an independent run with its own accumulated state.
	Analyze(ctx context.Context, inputPaths []string, requested models.MetricSet) (*models.Summary, error)
}

type statsService struct {
	scanner     FileScanner
	concurrency int
}

func NewStatsService(scanner FileScanner, concurrency int) StatsService {
	return &statsService{scanner: scanner, concurrency: concurrency}
}

func (s *statsService) Analyze(ctx context.Context, inputPaths []string, requested models.MetricSet) (*models.Summary, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started analyzing %d input file(s)", len(inputPaths))

	aggregator := NewAggregator(s.scanner, requested, s.concurrency)
	if err := aggregator.ProcessAll(ctx, inputPaths); err != nil {
		metricRunsTotal.WithLabelValues(errorCode(err)).Inc()
		return nil, err
	}

	summary, err := aggregator.Results()
	if err != nil {
		metricRunsTotal.WithLabelValues(errorCode(err)).Inc()
		return nil, err
	}

	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return summary, nil
}

func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
