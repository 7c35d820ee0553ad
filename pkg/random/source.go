package random

import (
	"io"
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the random capability injected into generators.
type Source interface {
	// Number returns a uniform integer in [min, max], both ends inclusive.
	Number(min, max int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Rand is a Source backed by a PCG generator from math/rand/v2.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Source seeded from the current time.
func NewRandom() *Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Number returns a uniform integer in [min, max].
// If max < min the bounds are swapped.
func (r *Rand) Number(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.IntN(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

// lockedSource serializes access to a Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so it can be shared between goroutines.
func Locked(src Source) Source {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) Number(min, max int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Number(min, max)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Pick returns a uniformly chosen element of items using a single draw.
// It panics with ErrEmptyList when items is empty.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic(ErrEmptyList)
	}
	return items[src.Number(0, len(items)-1)]
}

// Bool returns true with probability 1/2.
func Bool(src Source) bool {
	return src.Number(0, 1) == 1
}

// Reader returns an io.Reader whose bytes are drawn from src, one Number
// draw per byte. Reads never fail. Feeding it to uuid.NewRandomFromReader
// ties identifiers to a seeded source.
func Reader(src Source) io.Reader {
	return sourceReader{src: src}
}

type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Number(0, 255))
	}
	return len(p), nil
}
