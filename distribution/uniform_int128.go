package distribution

import (
	"fmt"
	"math/bits"

	"github.com/opd-ai/go-rng"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether a is zero.
func (a Uint128) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// Add returns a+b mod 2^128.
func (a Uint128) Add(b Uint128) Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns a-b mod 2^128.
func (a Uint128) Sub(b Uint128) Uint128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

func (a Uint128) shl1() Uint128 {
	return Uint128{Hi: a.Hi<<1 | a.Lo>>63, Lo: a.Lo << 1}
}

// Mod returns a mod b. b must not be zero.
func (a Uint128) Mod(b Uint128) Uint128 {
	if b.IsZero() {
		panic("distribution: Uint128 modulo by zero")
	}
	if b.Hi == 0 {
		_, r := bits.Div64(a.Hi%b.Lo, a.Lo, b.Lo)
		return Uint128{Lo: r}
	}

	// Shift-subtract long division. A bit shifted out of r means the true
	// remainder exceeds 2^128 > b, and the wrapping Sub still yields it.
	var r Uint128
	for i := 127; i >= 0; i-- {
		carry := r.Hi >> 63
		r = r.shl1()
		if i >= 64 {
			r.Lo |= (a.Hi >> uint(i-64)) & 1
		} else {
			r.Lo |= (a.Lo >> uint(i)) & 1
		}
		if carry == 1 || r.Cmp(b) >= 0 {
			r = r.Sub(b)
		}
	}
	return r
}

// String returns a in hexadecimal.
func (a Uint128) String() string {
	if a.Hi == 0 {
		return fmt.Sprintf("%#x", a.Lo)
	}
	return fmt.Sprintf("%#x%016x", a.Hi, a.Lo)
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Int128) Cmp(b Int128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

// String returns a in hexadecimal two's complement.
func (a Int128) String() string {
	return a.bits().String()
}

func (a Int128) bits() Uint128 {
	return Uint128{Hi: uint64(a.Hi), Lo: a.Lo}
}

func (a Uint128) signed() Int128 {
	return Int128{Hi: int64(a.Hi), Lo: a.Lo}
}

// mul128 returns the 256-bit product of a and b as (high, low) halves,
// assembled from four 64x64 partial products.
func mul128(a, b Uint128) (hi, lo Uint128) {
	h00, l00 := bits.Mul64(a.Lo, b.Lo)
	h01, l01 := bits.Mul64(a.Lo, b.Hi)
	h10, l10 := bits.Mul64(a.Hi, b.Lo)
	h11, l11 := bits.Mul64(a.Hi, b.Hi)

	r1, c1 := bits.Add64(h00, l01, 0)
	r1, c2 := bits.Add64(r1, l10, 0)

	r2, c3 := bits.Add64(h01, h10, 0)
	r2, c4 := bits.Add64(r2, l11, 0)
	r2, c5 := bits.Add64(r2, c1+c2, 0)

	r3 := h11 + c3 + c4 + c5

	return Uint128{Hi: r3, Lo: r2}, Uint128{Hi: r1, Lo: l00}
}

// uniform128 holds the bit-level parameters shared by the signed and
// unsigned 128-bit distributions.
type uniform128 struct {
	low   Uint128
	width Uint128 // 0 means the whole domain
	zone  Uint128
}

func newUniform128(low, high Uint128) uniform128 {
	u := uniform128{
		low:   low,
		width: high.Sub(low).Add(Uint128{Lo: 1}),
	}
	if !u.width.IsZero() {
		maxDraw := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
		rejects := maxDraw.Sub(u.width).Add(Uint128{Lo: 1}).Mod(u.width)
		u.zone = maxDraw.Sub(rejects)
	}
	return u
}

// draw reads 128 bits, the first 64-bit word as the low half.
func draw128(g rng.Generator) Uint128 {
	lo := g.Uint64()
	hi := g.Uint64()
	return Uint128{Hi: hi, Lo: lo}
}

// try maps one draw onto the range. The high half of draw*width is the
// candidate offset; it is accepted when the low half is at most zone.
func (u uniform128) try(g rng.Generator) (Uint128, bool) {
	v := draw128(g)
	if u.width.IsZero() {
		return v, true
	}
	hi, lo := mul128(v, u.width)
	if lo.Cmp(u.zone) > 0 {
		return Uint128{}, false
	}
	return u.low.Add(hi), true
}

// UniformUint128 samples unsigned 128-bit integers uniformly from a range.
type UniformUint128 struct {
	u uniform128
}

// NewUniformUint128 returns a distribution over [low, high).
func NewUniformUint128(low, high Uint128) (UniformUint128, error) {
	if low.Cmp(high) >= 0 {
		return UniformUint128{}, &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must be greater than"}
	}
	return NewUniformUint128Inclusive(low, high.Sub(Uint128{Lo: 1}))
}

// NewUniformUint128Inclusive returns a distribution over [low, high].
func NewUniformUint128Inclusive(low, high Uint128) (UniformUint128, error) {
	if high.Cmp(low) < 0 {
		return UniformUint128{}, &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must not be less than"}
	}
	return UniformUint128{u: newUniform128(low, high)}, nil
}

// TrySample implements Distribution.
func (d UniformUint128) TrySample(g rng.Generator) (Uint128, bool) {
	return d.u.try(g)
}

// Sample implements Distribution.
func (d UniformUint128) Sample(g rng.Generator) Uint128 {
	for {
		if v, ok := d.u.try(g); ok {
			return v
		}
	}
}

// UniformInt128 samples signed 128-bit integers uniformly from a range.
type UniformInt128 struct {
	u uniform128
}

// NewUniformInt128 returns a distribution over [low, high).
func NewUniformInt128(low, high Int128) (UniformInt128, error) {
	if low.Cmp(high) >= 0 {
		return UniformInt128{}, &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must be greater than"}
	}
	return NewUniformInt128Inclusive(low, high.bits().Sub(Uint128{Lo: 1}).signed())
}

// NewUniformInt128Inclusive returns a distribution over [low, high].
func NewUniformInt128Inclusive(low, high Int128) (UniformInt128, error) {
	if high.Cmp(low) < 0 {
		return UniformInt128{}, &rng.RangeError{Arg: "high", Value: high, Bound: low, Reason: "must not be less than"}
	}
	return UniformInt128{u: newUniform128(low.bits(), high.bits())}, nil
}

// TrySample implements Distribution.
func (d UniformInt128) TrySample(g rng.Generator) (Int128, bool) {
	v, ok := d.u.try(g)
	return v.signed(), ok
}

// Sample implements Distribution.
func (d UniformInt128) Sample(g rng.Generator) Int128 {
	for {
		if v, ok := d.u.try(g); ok {
			return v.signed()
		}
	}
}
