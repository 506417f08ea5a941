package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algorithm-ninja/konig/rng"
	"github.com/algorithm-ninja/konig/sampler"
)

// drain pulls every value out of s via Next.
func drain(t *testing.T, s *sampler.RangeSampler) []int64 {
	t.Helper()
	var out []int64
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// checkSample asserts the core contract: exactly count values, pairwise
// distinct, ascending, all within [low, high).
func checkSample(t *testing.T, vals []int64, count int, low, high int64) {
	t.Helper()
	require.Len(t, vals, count)
	for i, v := range vals {
		assert.GreaterOrEqual(t, v, low, "value %d below range", v)
		assert.Less(t, v, high, "value %d above range", v)
		if i > 0 {
			assert.Greater(t, v, vals[i-1], "values must be strictly ascending")
		}
	}
}

func TestNew_Contract(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		low, high int64
	}{
		{"sparse small", 20, 0, 100},
		{"dense", 80, 0, 100},
		{"boundary half", 50, 0, 100},
		{"just past half", 51, 0, 100},
		{"single", 1, 5, 6},
		{"negative range", 10, -50, 50},
		{"empty", 0, 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := sampler.New(rng.New(1), tc.count, tc.low, tc.high)
			require.NoError(t, err)
			checkSample(t, drain(t, s), tc.count, tc.low, tc.high)
		})
	}
}

// TestNew_FullRange locks the saturation case: requesting every value in
// the range must return the whole range, whatever the rng does.
func TestNew_FullRange(t *testing.T) {
	s, err := sampler.New(rng.New(3), 10, 20, 30)
	require.NoError(t, err)
	want := []int64{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}
	assert.Equal(t, want, s.Collect())
}

func TestNew_Errors(t *testing.T) {
	r := rng.New(1)

	_, err := sampler.New(r, 5, 10, 3)
	assert.ErrorIs(t, err, sampler.ErrInvalidRange, "low > high")

	_, err = sampler.New(r, -1, 0, 10)
	assert.ErrorIs(t, err, sampler.ErrInvalidRange, "negative count")

	_, err = sampler.New(r, 11, 0, 10)
	assert.ErrorIs(t, err, sampler.ErrInvalidRange, "count exceeds range")

	_, err = sampler.New(nil, 1, 0, 10)
	assert.ErrorIs(t, err, sampler.ErrNeedRandSource, "nil rng with work to do")

	// The empty sample never touches the rng, so nil is fine.
	s, err := sampler.New(nil, 0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestNewExcluding_SkipsExcluded(t *testing.T) {
	excl := []int64{2, 3, 7, 7, -100, 999} // dups and out-of-range entries are ignored
	s, err := sampler.NewExcluding(rng.New(5), 4, 0, 10, excl)
	require.NoError(t, err)

	vals := drain(t, s)
	checkSample(t, vals, 4, 0, 10)
	for _, v := range vals {
		assert.NotContains(t, []int64{2, 3, 7}, v, "excluded value sampled")
	}
}

// TestNewExcluding_Saturated requests every remaining value: the result
// must be exactly the complement of the exclusion set.
func TestNewExcluding_Saturated(t *testing.T) {
	s, err := sampler.NewExcluding(rng.New(9), 7, 0, 10, []int64{2, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 4, 5, 6, 8, 9}, s.Collect())
}

func TestNewExcluding_CapacityError(t *testing.T) {
	// Range of 10 values minus 3 exclusions leaves room for 7, not 8.
	_, err := sampler.NewExcluding(rng.New(1), 8, 0, 10, []int64{2, 3, 7})
	assert.ErrorIs(t, err, sampler.ErrInvalidRange)
}

func TestRangeSampler_OneShot(t *testing.T) {
	s, err := sampler.New(rng.New(2), 5, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	v1, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 4, s.Len())

	rest := s.Collect()
	assert.Len(t, rest, 4)
	assert.Greater(t, rest[0], v1, "Collect continues where Next stopped")

	// Exhausted: no restart, no extra values.
	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Collect())
}

func TestNew_DeterministicPerSeed(t *testing.T) {
	s1, err := sampler.New(rng.New(77), 30, 0, 1000)
	require.NoError(t, err)
	s2, err := sampler.New(rng.New(77), 30, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, s1.Collect(), s2.Collect())

	s3, err := sampler.New(rng.New(78), 30, 0, 1000)
	require.NoError(t, err)
	assert.NotEqual(t, s2.Collect(), s3.Collect(), "different seeds should differ")
}

// TestNew_Uniformity checks the empirical inclusion frequency of every
// range element over many trials against count/(high-low). Tolerance is a
// handful of standard deviations, so the test is stable across seeds.
func TestNew_Uniformity(t *testing.T) {
	const (
		trials = 2000
		count  = 20
		high   = 100
	)
	r := rng.New(1)
	hits := make([]int, high)
	for trial := 0; trial < trials; trial++ {
		s, err := sampler.New(r, count, 0, high)
		require.NoError(t, err)
		for {
			v, ok := s.Next()
			if !ok {
				break
			}
			hits[v]++
		}
	}

	want := float64(count) / float64(high) // 0.2
	for v, n := range hits {
		got := float64(n) / float64(trials)
		assert.InDelta(t, want, got, 0.06, "element %d inclusion frequency %f", v, got)
	}
}

// TestNew_UniformityDense repeats the frequency check on the selection
// sampling branch (count above half the range).
func TestNew_UniformityDense(t *testing.T) {
	const (
		trials = 2000
		count  = 70
		high   = 100
	)
	r := rng.New(4)
	hits := make([]int, high)
	for trial := 0; trial < trials; trial++ {
		s, err := sampler.New(r, count, 0, high)
		require.NoError(t, err)
		for _, v := range s.Collect() {
			hits[v]++
		}
	}

	want := float64(count) / float64(high) // 0.7
	for v, n := range hits {
		got := float64(n) / float64(trials)
		assert.InDelta(t, want, got, 0.06, "element %d inclusion frequency %f", v, got)
	}
}
