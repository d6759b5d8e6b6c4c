package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const memoryLimiterSweepInterval = 10 * time.Minute

// MemoryLimiter keeps one token bucket per key in process memory. Idle
// buckets are swept while serving requests.
type MemoryLimiter struct {
	rps   rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	now := m.now()
	if now.Sub(m.lastSweep) > memoryLimiterSweepInterval {
		m.sweep(now)
	}
	limiter, ok := m.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters[key] = limiter
	}
	m.mu.Unlock()

	return limiter.AllowN(now, 1), nil
}

// sweep drops buckets that have refilled completely. Callers hold mu.
func (m *MemoryLimiter) sweep(now time.Time) {
	for key, limiter := range m.limiters {
		if limiter.TokensAt(now) >= float64(m.burst) {
			delete(m.limiters, key)
		}
	}
	m.lastSweep = now
}

func (m *MemoryLimiter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.limiters)
}
