package distribution

import (
	"math/big"

	"github.com/opd-ai/go-rng"
)

// UniformBigInt samples arbitrary-precision integers uniformly from a
// range. Each attempt draws just enough bytes to cover the span and masks
// the top byte to the span's bit length, so fewer than half of all attempts
// are rejected.
type UniformBigInt struct {
	low    *big.Int
	span   *big.Int // high - low, inclusive
	nbytes int
	mask   byte
}

// NewUniformBigInt returns a distribution over [low, high).
func NewUniformBigInt(low, high *big.Int) (UniformBigInt, error) {
	if low.Cmp(high) >= 0 {
		return UniformBigInt{}, &rng.RangeError{
			Arg:    "high",
			Value:  high.String(),
			Bound:  low.String(),
			Reason: "must be greater than",
		}
	}
	return NewUniformBigIntInclusive(low, new(big.Int).Sub(high, big.NewInt(1)))
}

// NewUniformBigIntInclusive returns a distribution over [low, high]. The
// bounds are copied.
func NewUniformBigIntInclusive(low, high *big.Int) (UniformBigInt, error) {
	if high.Cmp(low) < 0 {
		return UniformBigInt{}, &rng.RangeError{
			Arg:    "high",
			Value:  high.String(),
			Bound:  low.String(),
			Reason: "must not be less than",
		}
	}

	span := new(big.Int).Sub(high, low)
	bitLen := span.BitLen()
	u := UniformBigInt{
		low:    new(big.Int).Set(low),
		span:   span,
		nbytes: (bitLen + 7) / 8,
		mask:   0xff,
	}
	if top := bitLen % 8; top != 0 {
		u.mask = byte(1)<<uint(top) - 1
	}
	return u, nil
}

// TrySample implements Distribution. The returned value is newly allocated.
func (u UniformBigInt) TrySample(g rng.Generator) (*big.Int, bool) {
	if u.nbytes == 0 {
		return new(big.Int).Set(u.low), true
	}

	buf := make([]byte, u.nbytes)
	g.Fill(buf)
	buf[0] &= u.mask

	v := new(big.Int).SetBytes(buf)
	if v.Cmp(u.span) > 0 {
		return nil, false
	}
	return v.Add(v, u.low), true
}

// Sample implements Distribution.
func (u UniformBigInt) Sample(g rng.Generator) *big.Int {
	for {
		if v, ok := u.TrySample(g); ok {
			return v
		}
	}
}
