package models

// LogStats accumulates counters over parsed log records. It serves both as the
// per-file partial state and as the global accumulated state of a run: scans
// build one LogStats per file with no shared mutable access, then Merge folds
// them together. Merge is associative and commutative for all counters
// (key-wise sum, min/max, sum), so partials can be combined in any grouping;
// only the first-seen IP order depends on merge order, which callers keep
// deterministic by merging in input order.
type LogStats struct {
	ipCounts map[string]int64
	ipOrder  []string // first-seen order, drives deterministic tie-breaks
	earliest float64
	latest   float64
	hasSpan  bool
	entries  int64
	bytes    int64
}

func NewLogStats() *LogStats {
	return &LogStats{
		ipCounts: make(map[string]int64),
	}
}

// AddRecord folds one record into the accumulated state. Counters that no
// requested metric depends on are not maintained.
func (s *LogStats) AddRecord(rec *LogRecord, metrics MetricSet) {
	s.entries++

	if metrics.NeedsIPCounts() {
		s.addIP(rec.ClientIP, 1)
	}
	if metrics.NeedsTimestamps() {
		s.observeTimestamp(rec.Timestamp)
	}
	if metrics.NeedsBytes() {
		s.bytes += rec.ResponseHeaderSize + rec.ResponseSize
	}
}

// Merge folds another partial state into this one. IPs unseen so far keep the
// first-seen position of the merged-in partial.
func (s *LogStats) Merge(other *LogStats) {
	s.entries += other.entries
	s.bytes += other.bytes

	for _, ip := range other.ipOrder {
		s.addIP(ip, other.ipCounts[ip])
	}

	if other.hasSpan {
		if !s.hasSpan {
			s.earliest, s.latest, s.hasSpan = other.earliest, other.latest, true
		} else {
			if other.earliest < s.earliest {
				s.earliest = other.earliest
			}
			if other.latest > s.latest {
				s.latest = other.latest
			}
		}
	}
}

// Entries returns the number of valid records accumulated.
func (s *LogStats) Entries() int64 {
	return s.entries
}

// TotalBytes returns the accumulated responseHeaderSize + responseSize sum.
func (s *LogStats) TotalBytes() int64 {
	return s.bytes
}

// TimeSpan returns the earliest and latest observed timestamps.
// ok is false until at least one qualifying record has been seen.
func (s *LogStats) TimeSpan() (earliest, latest float64, ok bool) {
	return s.earliest, s.latest, s.hasSpan
}

// MostFrequentIP returns the IP with the highest count, or nil when no IPs
// were observed. Ties break toward the first-encountered IP: only a strictly
// higher count replaces the current candidate.
func (s *LogStats) MostFrequentIP() *IPCount {
	var best *IPCount
	for _, ip := range s.ipOrder {
		count := s.ipCounts[ip]
		if best == nil || count > best.Count {
			best = &IPCount{IP: ip, Count: count}
		}
	}
	return best
}

// LeastFrequentIP returns the IP with the lowest count, or nil when no IPs
// were observed. Same first-encountered tie-break, in the other direction.
func (s *LogStats) LeastFrequentIP() *IPCount {
	var best *IPCount
	for _, ip := range s.ipOrder {
		count := s.ipCounts[ip]
		if best == nil || count < best.Count {
			best = &IPCount{IP: ip, Count: count}
		}
	}
	return best
}

func (s *LogStats) addIP(ip string, count int64) {
	if _, seen := s.ipCounts[ip]; !seen {
		s.ipOrder = append(s.ipOrder, ip)
	}
	s.ipCounts[ip] += count
}

func (s *LogStats) observeTimestamp(ts float64) {
	if !s.hasSpan {
		s.earliest, s.latest, s.hasSpan = ts, ts, true
		return
	}
	if ts < s.earliest {
		s.earliest = ts
	}
	if ts > s.latest {
		s.latest = ts
	}
}
