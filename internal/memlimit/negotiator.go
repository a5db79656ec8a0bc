// Package memlimit temporarily widens the process soft memory ceiling around
// a memory-hungry operation and always restores it afterward. The ceiling is
// process-global: concurrent use requires external serialization.
package memlimit

import (
	"fmt"
	"math"
	"runtime"
	"runtime/debug"

	"schemadoc/internal/domain"
	"schemadoc/internal/port"
)

// RuntimeLimiter is the default port.MemoryLimiter, backed by
// debug.SetMemoryLimit.
type RuntimeLimiter struct{}

func (RuntimeLimiter) Limit() int64 {
	return debug.SetMemoryLimit(-1)
}

func (RuntimeLimiter) SetLimit(limit int64) (int64, error) {
	return debug.SetMemoryLimit(limit), nil
}

// Negotiator estimates the memory an operation needs and raises the ceiling
// for its duration when headroom is short.
type Negotiator struct {
	limiter    port.MemoryLimiter
	multiplier float64
	margin     int64
}

// New creates a Negotiator. A nil limiter falls back to RuntimeLimiter.
func New(limiter port.MemoryLimiter, multiplier float64, margin int64) *Negotiator {
	if limiter == nil {
		limiter = RuntimeLimiter{}
	}
	return &Negotiator{limiter: limiter, multiplier: multiplier, margin: margin}
}

// Required estimates bytes needed to hold the parse tree of contentBytes of
// input. The multiplier budgets for node overhead on top of the raw text.
func (n *Negotiator) Required(contentBytes int) int64 {
	return int64(float64(contentBytes) * n.multiplier)
}

// WithHeadroom runs fn with at least Required(contentBytes) of headroom under
// the ceiling, raising it first when necessary. The previous ceiling is
// restored on every exit path. When the limiter refuses to widen, fn does not
// run and the error wraps domain.ErrMemoryLimit.
func (n *Negotiator) WithHeadroom(contentBytes int, fn func() error) error {
	required := n.Required(contentBytes)
	current := n.limiter.Limit()
	if current == math.MaxInt64 || headroom(current) >= required {
		return fn()
	}

	prev, err := n.limiter.SetLimit(current + required + n.margin)
	if err != nil {
		return fmt.Errorf("%w: need %d more bytes: %v", domain.ErrMemoryLimit, required, err)
	}
	defer func() {
		_, _ = n.limiter.SetLimit(prev)
	}()
	return fn()
}

func headroom(limit int64) int64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	inUse := int64(ms.HeapAlloc)
	if inUse >= limit {
		return 0
	}
	return limit - inUse
}
