package random_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/random/randomtest"
)

func TestTableValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   random.Table
		wantErr bool
	}{
		{name: "valid", table: random.Table{{Label: "a", Weight: 1}}},
		{name: "zero weight entry allowed", table: random.Table{{Label: "a", Weight: 0}, {Label: "b", Weight: 2}}},
		{name: "empty", table: random.Table{}, wantErr: true},
		{name: "nil", table: nil, wantErr: true},
		{name: "all zero", table: random.Table{{Label: "a", Weight: 0}, {Label: "b", Weight: 0}}, wantErr: true},
		{name: "negative", table: random.Table{{Label: "a", Weight: -1}, {Label: "b", Weight: 3}}, wantErr: true},
		{name: "nan", table: random.Table{{Label: "a", Weight: math.NaN()}}, wantErr: true},
		{name: "inf", table: random.Table{{Label: "a", Weight: math.Inf(1)}}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, random.ErrInvalidDistribution)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSample_InvalidTable(t *testing.T) {
	t.Parallel()

	_, err := random.Sample(randomtest.MinSource{}, random.Table{{Label: "a", Weight: 0}})
	assert.ErrorIs(t, err, random.ErrInvalidDistribution)

	assert.Panics(t, func() {
		random.MustSample(randomtest.MinSource{}, nil)
	})
}

func TestSample_CumulativeWalk(t *testing.T) {
	t.Parallel()

	table := random.Table{
		{Label: "a", Weight: 0.5},
		{Label: "b", Weight: 0.3},
		{Label: "c", Weight: 0.2},
	}

	tests := []struct {
		draw float64
		want string
	}{
		{draw: 0, want: "a"},
		{draw: 0.49, want: "a"},
		{draw: 0.5, want: "b"},
		{draw: 0.79, want: "b"},
		{draw: 0.8, want: "c"},
		{draw: 0.9999999, want: "c"},
	}

	for _, tc := range tests {
		src := randomtest.NewScript(nil, []float64{tc.draw})
		got, err := random.Sample(src, table)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "draw %v", tc.draw)
		assert.Equal(t, 1, src.Calls, "sample must consume exactly one draw")
	}
}

func TestSample_SkipsZeroWeights(t *testing.T) {
	t.Parallel()

	table := random.Table{
		{Label: "never", Weight: 0},
		{Label: "always", Weight: 1},
		{Label: "tail", Weight: 0},
	}

	for _, src := range []random.Source{randomtest.MinSource{}, randomtest.MaxSource{}} {
		got, err := random.Sample(src, table)
		require.NoError(t, err)
		assert.Equal(t, "always", got)
	}
}

func TestSample_TieBrokenByRegistrationOrder(t *testing.T) {
	t.Parallel()

	table := random.Table{{Label: "first", Weight: 1}, {Label: "second", Weight: 1}}
	got, err := random.Sample(randomtest.MinSource{}, table)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestSample_Convergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}
	t.Parallel()

	table := random.Table{
		{Label: "a", Weight: 0.5},
		{Label: "b", Weight: 0.3},
		{Label: "c", Weight: 0.2},
	}

	const n = 1_000_000
	src := random.New(7)
	counts := map[string]int{}
	for range n {
		counts[random.MustSample(src, table)]++
	}

	for _, o := range table {
		freq := float64(counts[o.Label]) / n
		assert.InDelta(t, o.Weight, freq, 0.01, "label %s", o.Label)
	}
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	table := random.Uniform("x", "y", "z")
	a, b := random.New(99), random.New(99)
	for range 1000 {
		assert.Equal(t, random.MustSample(a, table), random.MustSample(b, table))
	}
}

func TestTableHelpers(t *testing.T) {
	t.Parallel()

	table := random.Table{{Label: "a", Weight: 1}, {Label: "b", Weight: 3}}
	assert.Equal(t, []string{"a", "b"}, table.Labels())
	assert.InDelta(t, 4.0, table.Total(), 1e-9)
	clone := table.Clone()
	clone[0].Weight = 100
	assert.InDelta(t, 1.0, table[0].Weight, 1e-9, "clone must not alias")

	u := random.Uniform("p", "q")
	assert.Equal(t, random.Table{{Label: "p", Weight: 1}, {Label: "q", Weight: 1}}, u)
}
