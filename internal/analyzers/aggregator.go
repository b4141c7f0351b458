package analyzers

import (
	"context"
	"math"
	"sync"

	"logstats/internal/models"
)

// Aggregator folds per-file partial statistics into a single accumulated state
// and derives the requested metrics from it. It has exactly two states:
// accumulating (ProcessAll may be called) and finalized (after Results).
// An Aggregator belongs to a single run and is never reused.
type Aggregator struct {
	scanner     FileScanner
	requested   models.MetricSet
	concurrency int

	accumulated *models.LogStats
	finalized   bool
}

func NewAggregator(scanner FileScanner, requested models.MetricSet, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		scanner:     scanner,
		requested:   requested,
		concurrency: concurrency,
		accumulated: models.NewLogStats(),
	}
}

// ProcessAll scans every input file and merges the per-file partials into the
// accumulated state. Scans run on a bounded worker pool with no shared mutable
// state; partials are merged strictly in input order after all scans complete,
// so the first-encountered tie-break order does not depend on scheduling.
// First error wins: a failed scan cancels the remaining ones and aborts the
// run before anything is merged.
func (a *Aggregator) ProcessAll(ctx context.Context, paths []string) error {
	if a.finalized {
		return errAggregatorFinalized()
	}

	partials := make([]*models.LogStats, len(paths))

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	workerSlots := make(chan struct{}, a.concurrency)

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()

			workerSlots <- struct{}{}
			defer func() { <-workerSlots }()

			if scanCtx.Err() != nil {
				return
			}
			partial, err := a.scanner.Scan(scanCtx, path, a.requested)
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			partials[i] = partial
		}(i, path)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	// Workers skip their scan once the run context is cancelled, leaving nil
	// partials behind. A cancelled run fails, it never merges a partial view.
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, partial := range partials {
		a.accumulated.Merge(partial)
	}
	return nil
}

// Results derives the requested metrics from the accumulated state and
// finalizes the aggregator. Unrequested metrics are neither computed nor
// returned.
func (a *Aggregator) Results() (*models.Summary, error) {
	a.finalized = true

	summary := &models.Summary{Requested: a.requested}

	if a.requested.MostFrequentIP {
		summary.MostFrequentIP = a.accumulated.MostFrequentIP()
	}
	if a.requested.LeastFrequentIP {
		summary.LeastFrequentIP = a.accumulated.LeastFrequentIP()
	}
	if a.requested.EventsPerSecond {
		eps, err := a.eventsPerSecond()
		if err != nil {
			return nil, err
		}
		summary.EventsPerSecond = &eps
	}
	if a.requested.TotalBytes {
		total := a.accumulated.TotalBytes()
		summary.TotalBytes = &total
	}

	return summary, nil
}

func (a *Aggregator) eventsPerSecond() (float64, error) {
	if a.accumulated.Entries() == 0 {
		return 0, errNoEntriesFound()
	}
	earliest, latest, ok := a.accumulated.TimeSpan()
	if !ok || latest == earliest {
		return 0, errNoTimeElapsed()
	}
	eps := float64(a.accumulated.Entries()) / (latest - earliest)
	// Rounded to 2 decimal places, half away from zero.
	return math.Round(eps*100) / 100, nil
}
