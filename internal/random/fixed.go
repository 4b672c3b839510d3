package random

import "sync"

// Fixed replays a scripted sequence of values. Used by tests to force exact outcomes.
//
// Float64 values are returned in order and wrap around. Intn returns the next scripted
// int reduced modulo n.
type Fixed struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewFixed creates a Fixed source
func NewFixed(floats []float64, ints []int) *Fixed {
	return &Fixed{floats: floats, ints: ints}
}

func (f *Fixed) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *Fixed) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.ii%len(f.ints)]
	f.ii++
	return ((v % n) + n) % n
}
