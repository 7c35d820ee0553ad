package random_test

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/random/randomtest"
)

func TestRand_NumberInclusive(t *testing.T) {
	t.Parallel()

	src := random.New(1)
	seen := map[int]bool{}
	for range 10_000 {
		v := src.Number(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "both bounds must be reachable")

	assert.Equal(t, 5, src.Number(5, 5))
	v := src.Number(9, 2)
	assert.GreaterOrEqual(t, v, 2)
	assert.LessOrEqual(t, v, 9)
}

func TestRand_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := random.New(2024), random.New(2024)
	for range 100 {
		assert.Equal(t, a.Number(0, 1000), b.Number(0, 1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	src := random.New(3)
	for range 100 {
		assert.Contains(t, items, random.Pick(src, items))
	}

	assert.PanicsWithValue(t, random.ErrEmptyList, func() {
		random.Pick(src, []string{})
	})
}

func TestLocked_Concurrent(t *testing.T) {
	t.Parallel()

	src := random.Locked(random.New(11))
	assert.Same(t, src, random.Locked(src), "double wrapping should be a no-op")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				v := src.Number(0, 9)
				assert.True(t, v >= 0 && v <= 9)
				f := src.Float64()
				assert.True(t, f >= 0 && f < 1)
			}
		}()
	}
	wg.Wait()
}

func TestReader(t *testing.T) {
	t.Parallel()

	read := func(seed uint64) []byte {
		buf := make([]byte, 32)
		n, err := io.ReadFull(random.Reader(random.New(seed)), buf)
		assert.NoError(t, err)
		assert.Equal(t, 32, n)
		return buf
	}

	assert.Equal(t, read(11), read(11))
	assert.NotEqual(t, read(11), read(12))

	counter := &randomtest.Counter{Src: random.New(1)}
	_, _ = random.Reader(counter).Read(make([]byte, 16))
	assert.Equal(t, 16, counter.Numbers)
	assert.Zero(t, counter.Floats)
}
