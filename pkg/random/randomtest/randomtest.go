// Package randomtest provides deterministic random.Source stubs for tests.
package randomtest

import (
	"sync"

	"github.com/dmitrymomot/uagen/pkg/random"
)

// MinSource always returns the lower bound of Number and 0 from Float64,
// which selects the first option of any weighted table.
type MinSource struct{}

func (MinSource) Number(min, _ int) int { return min }
func (MinSource) Float64() float64      { return 0 }

// MaxSource always returns the upper bound of Number and a Float64 just
// below 1, which selects the last positive option of any weighted table.
type MaxSource struct{}

func (MaxSource) Number(_, max int) int { return max }
func (MaxSource) Float64() float64      { return 0.9999999999 }

// Script replays recorded draws. Number consumes the next int and clamps it
// into the requested range; Float64 consumes the next float. When a queue is
// exhausted the lower bound (or 0) is returned.
type Script struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	// Calls counts every draw made through the script.
	Calls int
}

// NewScript returns a Script replaying ints for Number and floats for Float64.
func NewScript(ints []int, floats []float64) *Script {
	return &Script{ints: ints, floats: floats}
}

func (s *Script) Number(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (s *Script) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// Counter wraps a source and counts draws.
type Counter struct {
	Src     random.Source
	Numbers int
	Floats  int
}

func (c *Counter) Number(min, max int) int {
	c.Numbers++
	return c.Src.Number(min, max)
}

func (c *Counter) Float64() float64 {
	c.Floats++
	return c.Src.Float64()
}

// Draws returns the total number of draws made.
func (c *Counter) Draws() int { return c.Numbers + c.Floats }
