package analyzers

import (
	"logstats/internal/shared/metrics"
)

const (
	outcomeParsed  = "parsed"
	outcomeSkipped = "skipped"
)

var (
	// metricLinesProcessedTotal counts scanned log lines by outcome:
	// "parsed" for lines that produced a record, "skipped" for malformed
	// lines (wrong token count or unparseable numeric field).
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalyze,
			Name:      "lines_processed_total",
		},
		[]string{"outcome"},
	)

	// metricFilesScannedTotal counts completed file scans. The error_code
	// label is empty on success and carries the ServiceError code otherwise.
	metricFilesScannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalyze,
			Name:      "files_scanned_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRunsTotal counts analysis runs, labeled with the code of the
	// error that aborted the run (empty on success).
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalyze,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
