package distribution

import (
	"math"

	"github.com/opd-ai/go-rng"
)

const (
	// float64One is the bit pattern of 1.0: zero mantissa, biased exponent.
	float64One = 0x3ff << 52

	// float32One is the bit pattern of 1.0 in single precision.
	float32One = 0x7f << 23
)

var (
	// maxRand64 is the largest value in [0, 1) a 52-bit draw produces.
	maxRand64 = math.Float64frombits(float64One|(1<<52-1)) - 1

	// maxRand32 is the largest value in [0, 1) a 23-bit draw produces.
	maxRand32 = math.Float32frombits(float32One|(1<<23-1)) - 1
)

// unitFloat64 maps the high 52 bits of x onto [0, 1) by installing them as
// the mantissa of a number in [1, 2).
func unitFloat64(x uint64) float64 {
	return math.Float64frombits(float64One|x>>12) - 1
}

// unitFloat32 maps the high 23 bits of x onto [0, 1).
func unitFloat32(x uint32) float32 {
	return math.Float32frombits(float32One|x>>9) - 1
}

// UniformFloat64 samples float64 values uniformly from an interval.
type UniformFloat64 struct {
	low   float64
	scale float64
}

// NewUniformFloat64 returns a distribution over [low, high).
func NewUniformFloat64(low, high float64) (UniformFloat64, error) {
	return newUniformFloat64(low, high, false)
}

// NewUniformFloat64Inclusive returns a distribution over [low, high].
func NewUniformFloat64Inclusive(low, high float64) (UniformFloat64, error) {
	return newUniformFloat64(low, high, true)
}

func newUniformFloat64(low, high float64, inclusive bool) (UniformFloat64, error) {
	if err := checkFloatBounds(low, high, inclusive); err != nil {
		return UniformFloat64{}, err
	}

	scale := (high - low) / maxRand64
	if math.IsInf(scale, 0) {
		return UniformFloat64{}, rangeOverflow(high, low)
	}

	// The largest sample is monotone in scale, so bisect on the bit
	// pattern for the largest scale that keeps it in range. The explicit
	// conversion keeps the product from being fused into an FMA, matching
	// Sample.
	fits := func(bits uint64) bool {
		top := float64(math.Float64frombits(bits)*maxRand64) + low
		return top < high || (inclusive && top == high)
	}
	if hi := math.Float64bits(scale); !fits(hi) {
		// fits(0) holds: the top sample is low itself.
		lo := uint64(0)
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			if fits(mid) {
				lo = mid
			} else {
				hi = mid
			}
		}
		scale = math.Float64frombits(lo)
	}

	return UniformFloat64{low: low, scale: scale}, nil
}

// Sample implements Distribution.
func (u UniformFloat64) Sample(g rng.Generator) float64 {
	return float64(unitFloat64(g.Uint64())*u.scale) + u.low
}

// TrySample implements Distribution. It always succeeds.
func (u UniformFloat64) TrySample(g rng.Generator) (float64, bool) {
	return u.Sample(g), true
}

// UniformFloat32 samples float32 values uniformly from an interval.
type UniformFloat32 struct {
	low   float32
	scale float32
}

// NewUniformFloat32 returns a distribution over [low, high).
func NewUniformFloat32(low, high float32) (UniformFloat32, error) {
	return newUniformFloat32(low, high, false)
}

// NewUniformFloat32Inclusive returns a distribution over [low, high].
func NewUniformFloat32Inclusive(low, high float32) (UniformFloat32, error) {
	return newUniformFloat32(low, high, true)
}

func newUniformFloat32(low, high float32, inclusive bool) (UniformFloat32, error) {
	if err := checkFloatBounds(float64(low), float64(high), inclusive); err != nil {
		return UniformFloat32{}, err
	}

	scale := (high - low) / maxRand32
	if math.IsInf(float64(scale), 0) {
		return UniformFloat32{}, rangeOverflow(high, low)
	}

	fits := func(bits uint32) bool {
		top := float32(math.Float32frombits(bits)*maxRand32) + low
		return top < high || (inclusive && top == high)
	}
	if hi := math.Float32bits(scale); !fits(hi) {
		lo := uint32(0)
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			if fits(mid) {
				lo = mid
			} else {
				hi = mid
			}
		}
		scale = math.Float32frombits(lo)
	}

	return UniformFloat32{low: low, scale: scale}, nil
}

// Sample implements Distribution.
func (u UniformFloat32) Sample(g rng.Generator) float32 {
	return float32(unitFloat32(g.Uint32())*u.scale) + u.low
}

// TrySample implements Distribution. It always succeeds.
func (u UniformFloat32) TrySample(g rng.Generator) (float32, bool) {
	return u.Sample(g), true
}

// checkFloatBounds rejects non-finite bounds and empty intervals.
func checkFloatBounds(low, high float64, inclusive bool) error {
	if math.IsNaN(low) || math.IsInf(low, 0) {
		return &rng.RangeError{Arg: "low", Value: low, Reason: "must be finite"}
	}
	if math.IsNaN(high) || math.IsInf(high, 0) {
		return &rng.RangeError{Arg: "high", Value: high, Reason: "must be finite"}
	}
	if inclusive {
		if low > high {
			return &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must not be less than"}
		}
	} else if low >= high {
		return &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must be greater than"}
	}
	return nil
}

func rangeOverflow(high, low interface{}) error {
	return &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "is too far from"}
}
