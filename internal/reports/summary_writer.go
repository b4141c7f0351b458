package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"logstats/internal/models"
	"logstats/internal/shared/filestorages"
	"logstats/internal/shared/loggers"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

const jsonIndent = "    "

//go:generate mockgen -source=summary_writer.go -destination=./mocks/summary_writer_mock.go -package=mocks
type SummaryWriter interface {
	// Write serializes the summary in the given format and stores it under key.
	// The underlying storage publishes atomically, so a failed run never
	// leaves partial output behind.
	Write(ctx context.Context, key string, summary *models.Summary, format string) error
}

type summaryWriter struct {
	fileStorage filestorages.FileStorage
}

func NewSummaryWriter(fileStorage filestorages.FileStorage) SummaryWriter {
	return &summaryWriter{fileStorage: fileStorage}
}

func (w *summaryWriter) Write(ctx context.Context, key string, summary *models.Summary, format string) error {
	var buf bytes.Buffer

	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.Marshal(summary)
		if err != nil {
			return errInternalSerializationFailed(err)
		}
		if err := json.Indent(&buf, data, "", jsonIndent); err != nil {
			return errInternalSerializationFailed(err)
		}
	case FormatText:
		writeText(&buf, summary)
	default:
		return errUnsupportedFormat(format)
	}

	if _, err := w.fileStorage.Put(ctx, key, &buf); err != nil {
		return errInternalReportStoreFailed(err)
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldFile, key).Msg("summary written")
	return nil
}

// writeText emits one "key: value" line per requested metric, in the same
// canonical order the JSON form uses.
func writeText(buf *bytes.Buffer, summary *models.Summary) {
	if summary.Requested.MostFrequentIP {
		fmt.Fprintf(buf, "%s: %s\n", models.MetricMostFrequentIP, formatIPCount(summary.MostFrequentIP))
	}
	if summary.Requested.LeastFrequentIP {
		fmt.Fprintf(buf, "%s: %s\n", models.MetricLeastFrequentIP, formatIPCount(summary.LeastFrequentIP))
	}
	if summary.Requested.EventsPerSecond {
		fmt.Fprintf(buf, "%s: %s\n", models.MetricEventsPerSecond, formatFloat(summary.EventsPerSecond))
	}
	if summary.Requested.TotalBytes {
		fmt.Fprintf(buf, "%s: %s\n", models.MetricTotalBytes, formatInt(summary.TotalBytes))
	}
}

func formatIPCount(pair *models.IPCount) string {
	if pair == nil {
		return "none"
	}
	return fmt.Sprintf("%s (%d)", pair.IP, pair.Count)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatInt(v *int64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}
