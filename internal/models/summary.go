package models

import (
	"bytes"
	"encoding/json"
)

// IPCount is a client IP together with its occurrence count.
type IPCount struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

// Summary is the final result of a run: a fixed-shape record with one optional
// field per supported metric. A field is set only when its metric was
// requested; MostFrequentIP and LeastFrequentIP stay nil when requested but no
// IPs were observed (serialized as null, not an error).
//
// Example JSON for {mostFrequentIp, eventsPerSecond, totalBytes}:
//
//	{
//	  "mostFrequentIp": {"ip": "10.0.0.1", "count": 2},
//	  "eventsPerSecond": 1.5,
//	  "totalBytes": 1850
//	}
type Summary struct {
	Requested       MetricSet
	MostFrequentIP  *IPCount
	LeastFrequentIP *IPCount
	EventsPerSecond *float64
	TotalBytes      *int64
}

// MarshalJSON emits only the requested metrics, in the canonical order
// mostFrequentIp, leastFrequentIp, eventsPerSecond, totalBytes.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	writeField := func(name Metric, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(string(name))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	if s.Requested.MostFrequentIP {
		if err := writeField(MetricMostFrequentIP, s.MostFrequentIP); err != nil {
			return nil, err
		}
	}
	if s.Requested.LeastFrequentIP {
		if err := writeField(MetricLeastFrequentIP, s.LeastFrequentIP); err != nil {
			return nil, err
		}
	}
	if s.Requested.EventsPerSecond {
		if err := writeField(MetricEventsPerSecond, s.EventsPerSecond); err != nil {
			return nil, err
		}
	}
	if s.Requested.TotalBytes {
		if err := writeField(MetricTotalBytes, s.TotalBytes); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
