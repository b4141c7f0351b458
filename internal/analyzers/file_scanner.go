package analyzers

import (
	"bufio"
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"logstats/internal/models"
	"logstats/internal/parsers"
	"logstats/internal/shared/loggers"
	"logstats/internal/shared/metrics"
)

// Lines longer than this fail the scan; the fixed 10-token format never
// comes close.
const maxLineBytes = 1024 * 1024

//go:generate mockgen -source=file_scanner.go -destination=./mocks/file_scanner_mock.go -package=mocks
type FileScanner interface {
	// Scan reads one log file and accumulates its valid lines into a fresh
	// partial LogStats. Malformed lines are skipped with a debug diagnostic.
	Scan(ctx context.Context, path string, requested models.MetricSet) (*models.LogStats, error)
}

type lineScanner struct{}

func NewLineScanner() FileScanner {
	return &lineScanner{}
}

func (s *lineScanner) Scan(ctx context.Context, path string, requested models.MetricSet) (*models.LogStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			metricFilesScannedTotal.WithLabelValues(codeInputFileNotFound).Inc()
			return nil, errInputFileNotFound(path, err)
		}
		metricFilesScannedTotal.WithLabelValues(codeInternalFileReadFailed).Inc()
		return nil, errInternalFileReadFailed(path, err)
	}
	defer func() { _ = file.Close() }()

	logger := loggers.Ctx(ctx)
	stats := models.NewLogStats()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := decodeLine(scanner.Bytes())
		record, ok := parsers.ParseLine(line)
		if !ok {
			logger.Debug().Str(loggers.FieldFile, path).Msgf("invalid log entry: %q", line)
			metricLinesProcessedTotal.WithLabelValues(outcomeSkipped).Inc()
			continue
		}

		stats.AddRecord(record, requested)
		metricLinesProcessedTotal.WithLabelValues(outcomeParsed).Inc()
	}
	if err := scanner.Err(); err != nil {
		metricFilesScannedTotal.WithLabelValues(codeInternalFileReadFailed).Inc()
		return nil, errInternalFileReadFailed(path, err)
	}

	metricFilesScannedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return stats, nil
}

// decodeLine replaces invalid byte sequences with the Unicode replacement
// character, so a scan never fails due to encoding.
func decodeLine(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
