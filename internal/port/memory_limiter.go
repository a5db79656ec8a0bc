package port

// MemoryLimiter controls the process-wide soft memory ceiling. The ceiling is
// global state: callers using the engine from multiple goroutines must
// serialize access externally.
type MemoryLimiter interface {
	// Limit returns the current ceiling in bytes (math.MaxInt64 when unset).
	Limit() int64
	// SetLimit replaces the ceiling and returns the previous one. Hosts with a
	// fixed heap budget return an error instead of widening.
	SetLimit(limit int64) (int64, error)
}
