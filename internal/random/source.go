// Package random provides the injectable random source used by gameplay rolls.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source produces uniformly distributed values.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// lockedSource guards a math/rand generator, which is not safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a deterministic Source. A zero seed is replaced with the current time.
func NewSeeded(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// IntRange returns a random integer between min and max (inclusive)
func IntRange(src Source, min, max int) int {
	if min > max {
		return min
	}
	return src.Intn(max-min+1) + min
}

// FloatRange returns a random float in [min, max)
func FloatRange(src Source, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + src.Float64()*(max-min)
}

// Pick returns a uniformly chosen element of options. Panics on an empty slice.
func Pick[T any](src Source, options []T) T {
	return options[src.Intn(len(options))]
}
