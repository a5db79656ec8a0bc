// Package engine is the public facade over the adaptive schema-document
// parser. It picks a strategy by content size, consults the result caches,
// and records metrics. One Engine serves one caller at a time: the cache and
// recorder carry no locks, and the memory negotiator mutates a process-wide
// ceiling, so concurrent use requires external synchronization.
package engine

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"schemadoc/internal/cache"
	"schemadoc/internal/config"
	"schemadoc/internal/document"
	"schemadoc/internal/domain"
	"schemadoc/internal/logging"
	"schemadoc/internal/memlimit"
	"schemadoc/internal/metrics"
	"schemadoc/internal/parser"
	"schemadoc/internal/port"
)

// Engine chooses a parse strategy by content size and exposes the public
// operations. Construct one per caller with New.
type Engine struct {
	cfg        config.EngineConfig
	results    *cache.ResultCache
	persistent port.PersistentCache
	recorder   *metrics.Recorder
	logger     port.EventLogger
	lazy       *parser.LazyParser
	streaming  *parser.StreamingParser
}

// New creates an Engine. A nil logger falls back to the stdlib logger; a nil
// persistent cache falls back to the configured in-process tier or a noop; a
// nil limiter falls back to the runtime memory limit.
func New(cfg config.EngineConfig, logger port.EventLogger, persistent port.PersistentCache, limiter port.MemoryLimiter) *Engine {
	if logger == nil {
		logger = logging.NewStdLogger()
	}
	if persistent == nil {
		if cfg.PersistentCache {
			persistent = cache.NewMemoryPersistentCache()
		} else {
			persistent = cache.NoopPersistentCache{}
		}
	}
	negotiator := memlimit.New(limiter, cfg.MemoryMultiplier, cfg.MemoryMarginBytes)
	return &Engine{
		cfg:        cfg,
		results:    cache.New(cfg.CacheCapacity),
		persistent: persistent,
		recorder:   metrics.New(),
		logger:     logger,
		lazy:       parser.NewLazyParser(negotiator),
		streaming:  parser.NewStreamingParser(),
	}
}

// ParseContent parses text with a strategy chosen by size: streaming above
// the streaming threshold, lazy (restricted to opts.Sections, defaulting to
// the configured sections) above the large threshold, otherwise a full
// single-buffer parse. Results are cached by content fingerprint.
func (e *Engine) ParseContent(text string, opts domain.ParseOptions) (*domain.ParseResult, error) {
	start := time.Now()
	ev := port.ParseEvent{OpID: uuid.New(), Operation: "parse_content", ContentBytes: len(text)}
	e.logger.ParseStarted(ev)
	e.recorder.ParseStarted()

	// Fingerprints are trusted without full-content verification; a 64-bit
	// collision returns the other document's result.
	key := xxhash.Sum64String(text)
	if cached, ok := e.results.Get(key); ok {
		return e.completeFromCache(ev, start, cached), nil
	}
	if cached, ok := e.persistent.Get(key); ok {
		e.results.Put(key, cached)
		return e.completeFromCache(ev, start, cached), nil
	}
	e.recorder.CacheMiss()

	sections, strategy, err := e.parseBySize(ev, text, opts)
	if err != nil {
		ev.Elapsed = time.Since(start)
		e.logger.ParseFailed(ev, err)
		return nil, err
	}

	result := &domain.ParseResult{
		Sections: sections,
		Strategy: strategy,
		Elapsed:  time.Since(start),
	}
	e.results.Put(key, result)
	e.persistent.Put(key, result)

	ev.Strategy = strategy
	ev.Elapsed = result.Elapsed
	e.logger.ParseCompleted(ev)
	return result, nil
}

func (e *Engine) parseBySize(ev port.ParseEvent, text string, opts domain.ParseOptions) (map[string]any, domain.Strategy, error) {
	size := int64(len(text))
	switch {
	case size > e.cfg.StreamingThresholdBytes:
		e.recorder.StreamingParse()
		e.recorder.MemorySaved(size)
		sections, skipped, err := e.streaming.Parse(text)
		if err != nil {
			return nil, domain.StrategyStreaming, err
		}
		for _, s := range skipped {
			e.logger.Warning(ev, "skipping malformed section: "+s.Error())
		}
		return sections, domain.StrategyStreaming, nil

	case size > e.cfg.LargeThresholdBytes:
		e.recorder.LazyLoad()
		e.recorder.MemorySaved(size)
		requested := opts.Sections
		if len(requested) == 0 {
			requested = e.cfg.DefaultSections
		}
		sections, err := e.lazy.Parse(text, requested)
		return sections, domain.StrategyLazy, err

	default:
		sections, err := parser.ParseBuffer(text)
		return sections, domain.StrategyStandard, err
	}
}

func (e *Engine) completeFromCache(ev port.ParseEvent, start time.Time, cached *domain.ParseResult) *domain.ParseResult {
	e.recorder.CacheHit()
	e.recorder.TimeSaved(cached.Elapsed)

	result := *cached
	result.FromCache = true

	ev.Strategy = cached.Strategy
	ev.FromCache = true
	ev.Elapsed = time.Since(start)
	e.logger.ParseCompleted(ev)
	return &result
}

// ParseSection indexes text, extracts the named top-level section, and parses
// only that slice. Returns domain.ErrSectionNotFound when the header is
// absent. This path does not consult or fill the result cache.
func (e *Engine) ParseSection(text, name string) (map[string]any, error) {
	start := time.Now()
	ev := port.ParseEvent{OpID: uuid.New(), Operation: "parse_section", ContentBytes: len(text)}
	e.logger.ParseStarted(ev)
	e.recorder.ParseStarted()

	lines := document.SplitLines(text)
	idx := document.IndexLines(lines)
	headerLine, ok := idx.Line(name)
	if !ok {
		err := fmt.Errorf("%q: %w", name, domain.ErrSectionNotFound)
		ev.Elapsed = time.Since(start)
		e.logger.ParseFailed(ev, err)
		return nil, err
	}

	section, err := parser.ParseSectionBuffer(name, document.Extract(lines, headerLine))
	ev.Elapsed = time.Since(start)
	if err != nil {
		e.logger.ParseFailed(ev, err)
		return nil, err
	}
	e.logger.ParseCompleted(ev)
	return section, nil
}

// PerformanceMetrics snapshots this engine's counters, derived rates, and
// the persistent tier's state.
func (e *Engine) PerformanceMetrics() domain.MetricsSnapshot {
	snap := e.recorder.Snapshot()
	snap.PersistentCacheEnabled = e.persistent.Enabled()
	snap.PersistentCache = e.persistent.Stats()
	return snap
}

// ResetMetrics zeroes every counter.
func (e *Engine) ResetMetrics() {
	e.recorder.Reset()
}

// ClearCache empties the in-memory result cache.
func (e *Engine) ClearCache() {
	e.results.Clear()
}
