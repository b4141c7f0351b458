package models

import "fmt"

// Metric identifies one of the supported summary statistics.
type Metric string

const (
	MetricMostFrequentIP  Metric = "mostFrequentIp"
	MetricLeastFrequentIP Metric = "leastFrequentIp"
	MetricEventsPerSecond Metric = "eventsPerSecond"
	MetricTotalBytes      Metric = "totalBytes"
)

// ParseMetric converts a metric name into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricMostFrequentIP, MetricLeastFrequentIP, MetricEventsPerSecond, MetricTotalBytes:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown metric: %q", s)
	}
}

// MetricSet is the set of metrics requested for a run. The metric set is
// closed and known at compile time, so it is a fixed-shape struct rather than
// a dynamically-keyed collection.
type MetricSet struct {
	MostFrequentIP  bool
	LeastFrequentIP bool
	EventsPerSecond bool
	TotalBytes      bool
}

// NewMetricSet builds a MetricSet from individual metrics.
func NewMetricSet(metrics ...Metric) MetricSet {
	var set MetricSet
	for _, m := range metrics {
		switch m {
		case MetricMostFrequentIP:
			set.MostFrequentIP = true
		case MetricLeastFrequentIP:
			set.LeastFrequentIP = true
		case MetricEventsPerSecond:
			set.EventsPerSecond = true
		case MetricTotalBytes:
			set.TotalBytes = true
		}
	}
	return set
}

func (s MetricSet) IsEmpty() bool {
	return !s.MostFrequentIP && !s.LeastFrequentIP && !s.EventsPerSecond && !s.TotalBytes
}

// NeedsIPCounts reports whether IP frequencies must be accumulated.
func (s MetricSet) NeedsIPCounts() bool {
	return s.MostFrequentIP || s.LeastFrequentIP
}

// NeedsTimestamps reports whether the timestamp span must be tracked.
func (s MetricSet) NeedsTimestamps() bool {
	return s.EventsPerSecond
}

// NeedsBytes reports whether the byte total must be accumulated.
func (s MetricSet) NeedsBytes() bool {
	return s.TotalBytes
}
