package port

import "schemadoc/internal/domain"

// PersistentCache is an optional second-tier result store, longer-lived than
// the engine's bounded in-memory cache. Implementations that persist across
// processes live outside this module; the engine only reads, writes, and
// surfaces stats through its metrics snapshot.
type PersistentCache interface {
	Get(key uint64) (*domain.ParseResult, bool)
	Put(key uint64, result *domain.ParseResult)
	Stats() domain.CacheStats
	Enabled() bool
}
