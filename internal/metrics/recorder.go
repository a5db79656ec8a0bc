// Package metrics counts engine activity. A Recorder is owned by one engine
// instance, not process-global, so independent engines (parallel test runs
// included) do not interfere. No internal locking: single-writer use.
package metrics

import (
	"time"

	"schemadoc/internal/domain"
)

// Recorder accumulates parse counters and approximate savings.
type Recorder struct {
	totalParses     int64
	cacheHits       int64
	cacheMisses     int64
	lazyLoads       int64
	streamingParses int64

	memorySavedBytes int64
	timeSaved        time.Duration
}

// New creates a zeroed Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ParseStarted() { r.totalParses++ }

func (r *Recorder) CacheHit() { r.cacheHits++ }

func (r *Recorder) CacheMiss() { r.cacheMisses++ }

func (r *Recorder) LazyLoad() { r.lazyLoads++ }

func (r *Recorder) StreamingParse() { r.streamingParses++ }

// MemorySaved records bytes a non-full-parse path avoided materializing.
func (r *Recorder) MemorySaved(n int64) {
	if n > 0 {
		r.memorySavedBytes += n
	}
}

// TimeSaved records the duration a cache hit avoided re-spending.
func (r *Recorder) TimeSaved(d time.Duration) {
	if d > 0 {
		r.timeSaved += d
	}
}

// Snapshot copies the counters and computes derived rates.
func (r *Recorder) Snapshot() domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		TotalParses:      r.totalParses,
		CacheHits:        r.cacheHits,
		CacheMisses:      r.cacheMisses,
		LazyLoads:        r.lazyLoads,
		StreamingParses:  r.streamingParses,
		MemorySavedBytes: r.memorySavedBytes,
		TimeSaved:        r.timeSaved,
		HitRate:          rate(r.cacheHits, r.cacheHits+r.cacheMisses),
		LazyRate:         rate(r.lazyLoads, r.totalParses),
		StreamingRate:    rate(r.streamingParses, r.totalParses),
	}
}

// Reset zeroes every counter.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
