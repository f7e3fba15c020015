package distribution

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/opd-ai/go-rng"
)

// decimalUnitScale is the number of fractional digits in a unit sample.
const decimalUnitScale = 28

// decimalUnit is 10^28, the mantissa of 1.0 at decimalUnitScale digits.
var decimalUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(decimalUnitScale), nil)

// UniformDecimal samples decimal values uniformly from an interval.
//
// The bit trick used for binary floats does not apply to decimal scales, so
// each attempt draws a full 96-bit mantissa, reads it as a value with 28
// fractional digits and rejects it when it falls outside [0, 1) or [0, 1].
// Roughly seven in eight attempts are rejected.
type UniformDecimal struct {
	low       decimal.Decimal
	width     decimal.Decimal
	inclusive bool
}

// NewUniformDecimal returns a distribution over [low, high).
func NewUniformDecimal(low, high decimal.Decimal) (UniformDecimal, error) {
	if !low.LessThan(high) {
		return UniformDecimal{}, &rng.RangeError{
			Arg:    "high",
			Value:  high.String(),
			Bound:  low.String(),
			Reason: "must be greater than",
		}
	}
	return UniformDecimal{low: low, width: high.Sub(low)}, nil
}

// NewUniformDecimalInclusive returns a distribution over [low, high].
func NewUniformDecimalInclusive(low, high decimal.Decimal) (UniformDecimal, error) {
	if high.LessThan(low) {
		return UniformDecimal{}, &rng.RangeError{
			Arg:    "high",
			Value:  high.String(),
			Bound:  low.String(),
			Reason: "must not be less than",
		}
	}
	return UniformDecimal{low: low, width: high.Sub(low), inclusive: true}, nil
}

// TrySample implements Distribution.
func (u UniformDecimal) TrySample(g rng.Generator) (decimal.Decimal, bool) {
	lo := g.Uint64()
	hi := g.Uint32()

	m := new(big.Int).SetUint64(uint64(hi))
	m.Lsh(m, 64)
	m.Or(m, new(big.Int).SetUint64(lo))

	c := m.Cmp(decimalUnit)
	if c > 0 || (c == 0 && !u.inclusive) {
		return decimal.Decimal{}, false
	}

	unit := decimal.NewFromBigInt(m, -decimalUnitScale)
	return u.low.Add(u.width.Mul(unit)), true
}

// Sample implements Distribution.
func (u UniformDecimal) Sample(g rng.Generator) decimal.Decimal {
	for {
		if v, ok := u.TrySample(g); ok {
			return v
		}
	}
}
