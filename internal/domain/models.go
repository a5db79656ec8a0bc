package domain

import "time"

// ParseOptions narrows what a parse call materializes. Sections only applies
// to the lazy strategy; an empty slice means the configured default.
type ParseOptions struct {
	Sections []string
}

// ParseResult maps top-level section names to their parsed value trees,
// annotated with the strategy that produced it and whether it was served
// from cache.
type ParseResult struct {
	Sections  map[string]any `json:"sections"`
	Strategy  Strategy       `json:"strategy"`
	FromCache bool           `json:"from_cache"`
	Elapsed   time.Duration  `json:"elapsed_ns"`
}

// ValidationReport carries the outcome of a structural sanity check.
// Errors make the document unusable; warnings are advisory.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the check produced no errors.
func (r *ValidationReport) Valid() bool {
	return len(r.Errors) == 0
}

// CacheStats is a point-in-time view of one cache tier.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// MetricsSnapshot is a point-in-time copy of one engine's counters and
// derived rates. Rates are 0 when their denominator is 0.
type MetricsSnapshot struct {
	TotalParses      int64         `json:"total_parses"`
	CacheHits        int64         `json:"cache_hits"`
	CacheMisses      int64         `json:"cache_misses"`
	LazyLoads        int64         `json:"lazy_loads"`
	StreamingParses  int64         `json:"streaming_parses"`
	MemorySavedBytes int64         `json:"memory_saved_bytes"`
	TimeSaved        time.Duration `json:"time_saved_ns"`

	HitRate       float64 `json:"hit_rate"`
	LazyRate      float64 `json:"lazy_rate"`
	StreamingRate float64 `json:"streaming_rate"`

	PersistentCacheEnabled bool       `json:"persistent_cache_enabled"`
	PersistentCache        CacheStats `json:"persistent_cache"`
}
