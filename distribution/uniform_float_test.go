package distribution

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/opd-ai/go-rng"
)

func TestUnitFloat(t *testing.T) {
	assert.Equal(t, 0.0, unitFloat64(0))
	assert.Equal(t, maxRand64, unitFloat64(math.MaxUint64))
	assert.Less(t, maxRand64, 1.0)
	assert.Equal(t, 0.5, unitFloat64(1<<63))

	assert.Equal(t, float32(0), unitFloat32(0))
	assert.Equal(t, maxRand32, unitFloat32(math.MaxUint32))
	assert.Less(t, maxRand32, float32(1))
}

func TestUniformFloat64_Bounds(t *testing.T) {
	tests := []struct {
		low, high float64
	}{
		{0, 1},
		{-1, 1},
		{1.5, 2.5},
		{-1e300, 1e300},
		{1e-300, 2e-300},
		{100, 100.00000000001},
		{-3, -2.9999999},
	}

	for _, tt := range tests {
		for _, inclusive := range []bool{false, true} {
			var (
				d   UniformFloat64
				err error
			)
			if inclusive {
				d, err = NewUniformFloat64Inclusive(tt.low, tt.high)
			} else {
				d, err = NewUniformFloat64(tt.low, tt.high)
			}
			require.NoError(t, err)

			// The largest draw is the worst case for the upper bound.
			top := d.Sample(constant(math.MaxUint64))
			if inclusive {
				require.LessOrEqual(t, top, tt.high, "[%v, %v]", tt.low, tt.high)
			} else {
				require.Less(t, top, tt.high, "[%v, %v)", tt.low, tt.high)
			}
			require.Equal(t, tt.low, d.Sample(constant(0)))

			g := newTestGenerator("float64")
			for i := 0; i < 1000; i++ {
				v := d.Sample(g)
				require.GreaterOrEqual(t, v, tt.low)
				require.LessOrEqual(t, v, tt.high)
			}
		}
	}
}

func TestUniformFloat32_Bounds(t *testing.T) {
	tests := []struct {
		low, high float32
	}{
		{0, 1},
		{-1, 1},
		{1.5, 2.5},
		{-1e30, 1e30},
		{7, 7.001},
	}

	for _, tt := range tests {
		d, err := NewUniformFloat32(tt.low, tt.high)
		require.NoError(t, err)
		require.Less(t, d.Sample(constant(math.MaxUint32)), tt.high)
		require.Equal(t, tt.low, d.Sample(constant(0)))

		di, err := NewUniformFloat32Inclusive(tt.low, tt.high)
		require.NoError(t, err)
		require.LessOrEqual(t, di.Sample(constant(math.MaxUint32)), tt.high)

		g := newTestGenerator("float32")
		for i := 0; i < 1000; i++ {
			v := d.Sample(g)
			require.GreaterOrEqual(t, v, tt.low)
			require.Less(t, v, tt.high)
		}
	}
}

func TestUniformFloat_InclusiveSinglePoint(t *testing.T) {
	d, err := NewUniformFloat64Inclusive(2.5, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d.Sample(newTestGenerator("point")))
	assert.Equal(t, 2.5, d.Sample(constant(math.MaxUint64)))

	f, err := NewUniformFloat32Inclusive(-1, -1)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), f.Sample(constant(math.MaxUint32)))
}

func TestUniformFloat_Errors(t *testing.T) {
	tests := []struct {
		name      string
		low, high float64
		inclusive bool
		arg       string
	}{
		{"nan_low", math.NaN(), 1, false, "low"},
		{"inf_low", math.Inf(-1), 1, false, "low"},
		{"nan_high", 0, math.NaN(), true, "high"},
		{"inf_high", 0, math.Inf(1), false, "high"},
		{"empty", 1, 1, false, "high"},
		{"reversed", 2, 1, false, "high"},
		{"reversed_inclusive", 2, 1, true, "high"},
		{"overflow", -math.MaxFloat64, math.MaxFloat64, false, "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.inclusive {
				_, err = NewUniformFloat64Inclusive(tt.low, tt.high)
			} else {
				_, err = NewUniformFloat64(tt.low, tt.high)
			}

			var rerr *rng.RangeError
			require.True(t, errors.As(err, &rerr), "error = %v", err)
			assert.Equal(t, tt.arg, rerr.Arg)
		})
	}

	_, err := NewUniformFloat32(-math.MaxFloat32, math.MaxFloat32)
	assert.Error(t, err)
	_, err = NewUniformFloat32(float32(math.NaN()), 0)
	assert.Error(t, err)
}

func TestUniformFloat_TrySampleAlwaysAccepts(t *testing.T) {
	d, err := NewUniformFloat64(-1, 1)
	require.NoError(t, err)
	f, err := NewUniformFloat32(-1, 1)
	require.NoError(t, err)

	g := newTestGenerator("try")
	for i := 0; i < 100; i++ {
		_, ok := d.TrySample(g)
		require.True(t, ok)
		_, ok = f.TrySample(g)
		require.True(t, ok)
	}
}

// TestUniformFloat_NarrowRanges covers intervals a few ulps wide next to a
// large low bound, where the scale search has the most work to do.
func TestUniformFloat_NarrowRanges(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, r := range [][2]float64{
			{1, 1 + 2.220446049250313e-16},
			{100, 100.00000000001},
			{1e6, math.Nextafter(1e6, 2e6)},
		} {
			d, err := NewUniformFloat64(r[0], r[1])
			assert.NoError(t, err)
			assert.Less(t, d.Sample(constant(math.MaxUint64)), r[1], "[%v, %v)", r[0], r[1])
			assert.Equal(t, r[0], d.Sample(constant(0)))

			d, err = NewUniformFloat64Inclusive(r[0], r[1])
			assert.NoError(t, err)
			assert.LessOrEqual(t, d.Sample(constant(math.MaxUint64)), r[1])
		}

		f, err := NewUniformFloat32(1, math.Nextafter32(1, 2))
		assert.NoError(t, err)
		assert.Equal(t, float32(1), f.Sample(constant(math.MaxUint64)))
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("constructors did not return within 5s")
	}
}

// TestUniformFloat64_Statistics checks the sample mean and deviation of
// Uniform(0.0, 1000.0) against the exact values. The seed is fixed, so the
// outcome is deterministic.
func TestUniformFloat64_Statistics(t *testing.T) {
	const n = 100000
	d, err := NewUniformFloat64(0, 1000)
	require.NoError(t, err)

	g := newTestGenerator("stats-seed")
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Sample(g)
	}

	mean, std := stat.MeanStdDev(xs, nil)
	wantStd := 1000 / math.Sqrt(12)

	// 99% intervals. The standard error of the deviation of a uniform
	// sample is sigma * sqrt(0.8/n) / 2.
	assert.InDelta(t, 500.0, mean, 2.576*wantStd/math.Sqrt(n))
	assert.InDelta(t, wantStd, std, 2.576*wantStd*math.Sqrt(0.8/n)/2)
}
