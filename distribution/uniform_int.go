package distribution

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/opd-ai/go-rng"
)

// UniformInt samples integers uniformly from a range without modulo bias.
//
// Types of at most 32 bits are sampled from 32-bit draws, wider types from
// 64-bit draws. A draw u is accepted when u <= zone, where zone is the
// largest value below which u mod width is exactly uniform; the result is
// low + u mod width.
type UniformInt[T constraints.Integer] struct {
	low   T
	width uint64 // high-low+1; 0 means the whole domain of T
	zone  uint64
	wide  bool
}

// NewUniformInt returns a distribution over [low, high).
func NewUniformInt[T constraints.Integer](low, high T) (UniformInt[T], error) {
	if !(low < high) {
		return UniformInt[T]{}, &rng.RangeError{
			Arg:    "high",
			Value:  high,
			Bound:  low,
			Reason: "must be greater than",
		}
	}
	return NewUniformIntInclusive(low, high-1)
}

// NewUniformIntInclusive returns a distribution over [low, high].
func NewUniformIntInclusive[T constraints.Integer](low, high T) (UniformInt[T], error) {
	if high < low {
		return UniformInt[T]{}, &rng.RangeError{
			Arg:    "high",
			Value:  high,
			Bound:  low,
			Reason: "must not be less than",
		}
	}

	size := bitSize[T]()
	mask := ^uint64(0) >> (64 - size)
	u := UniformInt[T]{
		low:   low,
		width: (uint64(high-low)&mask + 1) & mask,
		wide:  size > 32,
	}

	switch {
	case u.width == 0:
		// Full domain: every draw is accepted as is.
	case u.wide:
		u.zone = zone64(u.width)
	default:
		u.zone = uint64(zone32(uint32(u.width)))
	}
	return u, nil
}

// zone32 returns the largest acceptable 32-bit draw for width.
func zone32(width uint32) uint32 {
	const maxDraw = math.MaxUint32
	rejects := (maxDraw - width + 1) % width
	return maxDraw - rejects
}

// zone64 returns the largest acceptable 64-bit draw for width.
func zone64(width uint64) uint64 {
	const maxDraw = math.MaxUint64
	rejects := (maxDraw - width + 1) % width
	return maxDraw - rejects
}

// bitSize returns the width of T in bits.
func bitSize[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Low returns the smallest value the distribution produces.
func (u UniformInt[T]) Low() T {
	return u.low
}

// FullRange reports whether the distribution covers every value of T.
func (u UniformInt[T]) FullRange() bool {
	return u.width == 0
}

func (u UniformInt[T]) draw(g rng.Generator) uint64 {
	if u.wide {
		return g.Uint64()
	}
	return uint64(g.Uint32())
}

// TrySample implements Distribution.
func (u UniformInt[T]) TrySample(g rng.Generator) (T, bool) {
	v := u.draw(g)
	if u.width == 0 {
		return T(v), true
	}
	if v > u.zone {
		return 0, false
	}
	return u.low + T(v%u.width), true
}

// Sample implements Distribution.
func (u UniformInt[T]) Sample(g rng.Generator) T {
	for {
		if v, ok := u.TrySample(g); ok {
			return v
		}
	}
}
