package distribution

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rng"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad integer %q", s)
	return v
}

func TestUniformBigInt_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		low, high string
	}{
		{"small", "0", "10"},
		{"byte_boundary", "0", "256"},
		{"one_bit_over", "-1", "256"},
		{"negative", "-1000000000000000000000000", "-999999999999999999999000"},
		{"huge", "1", "340282366920938463463374607431768211457"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high := mustBig(t, tt.low), mustBig(t, tt.high)
			d, err := NewUniformBigInt(low, high)
			require.NoError(t, err)

			g := newTestGenerator(tt.name)
			for i := 0; i < 2000; i++ {
				v := d.Sample(g)
				require.GreaterOrEqual(t, v.Cmp(low), 0, "%v below %v", v, low)
				require.Less(t, v.Cmp(high), 0, "%v not below %v", v, high)
			}
		})
	}
}

func TestUniformBigInt_CopiesBounds(t *testing.T) {
	low, high := big.NewInt(5), big.NewInt(6)
	d, err := NewUniformBigIntInclusive(low, high)
	require.NoError(t, err)

	low.SetInt64(1000)
	high.SetInt64(2000)

	v := d.Sample(newTestGenerator("copy"))
	assert.True(t, v.Cmp(big.NewInt(5)) >= 0 && v.Cmp(big.NewInt(6)) <= 0, "sample %v", v)
}

func TestUniformBigInt_SinglePoint(t *testing.T) {
	x := mustBig(t, "123456789012345678901234567890")
	d, err := NewUniformBigIntInclusive(x, x)
	require.NoError(t, err)

	v, ok := d.TrySample(constant(0xff))
	require.True(t, ok)
	assert.Zero(t, v.Cmp(x))

	// The sample is a fresh value.
	v.SetInt64(0)
	assert.Zero(t, d.Sample(constant(0)).Cmp(x))
}

// TestUniformBigInt_Rejection uses a span of 256 (nine bits): the top byte
// is masked to one bit and draws above the span are refused.
func TestUniformBigInt_Rejection(t *testing.T) {
	d, err := NewUniformBigIntInclusive(big.NewInt(0), big.NewInt(256))
	require.NoError(t, err)

	// 0x01ff = 511 > 256.
	_, ok := d.TrySample(constant(0xff))
	assert.False(t, ok)

	// 0x0100 = 256, the upper bound itself.
	v, ok := d.TrySample(&scripted{words: []uint32{0x0001}})
	require.True(t, ok)
	assert.Equal(t, int64(256), v.Int64())
}

func TestUniformBigInt_Errors(t *testing.T) {
	var rerr *rng.RangeError

	_, err := NewUniformBigInt(big.NewInt(3), big.NewInt(3))
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "high", rerr.Arg)

	_, err = NewUniformBigIntInclusive(big.NewInt(3), big.NewInt(2))
	require.True(t, errors.As(err, &rerr))
}

func TestUniformDecimal_Bounds(t *testing.T) {
	low := decimal.RequireFromString("-12.5")
	high := decimal.RequireFromString("99.125")

	d, err := NewUniformDecimal(low, high)
	require.NoError(t, err)

	g := newTestGenerator("decimal")
	for i := 0; i < 1000; i++ {
		v := d.Sample(g)
		require.True(t, v.GreaterThanOrEqual(low), "%v below %v", v, low)
		require.True(t, v.LessThan(high), "%v not below %v", v, high)
	}
}

// TestUniformDecimal_Unit drives the 96-bit draw at and around 10^28, the
// mantissa of 1.0 at 28 fractional digits.
func TestUniformDecimal_Unit(t *testing.T) {
	const (
		unitHi = 0x204fce5e
		unitLo = 0x3e25026110000000
	)
	low := decimal.NewFromInt(1)
	high := decimal.NewFromInt(3)

	d, err := NewUniformDecimal(low, high)
	require.NoError(t, err)
	di, err := NewUniformDecimalInclusive(low, high)
	require.NoError(t, err)

	unit := func() *scripted {
		return &scripted{dwords: []uint64{unitLo}, words: []uint32{unitHi}}
	}

	_, ok := d.TrySample(unit())
	assert.False(t, ok, "exclusive range accepted 1.0")

	v, ok := di.TrySample(unit())
	require.True(t, ok)
	assert.True(t, v.Equal(high), "inclusive 1.0 mapped to %v", v)

	_, ok = di.TrySample(&scripted{dwords: []uint64{unitLo + 1}, words: []uint32{unitHi}})
	assert.False(t, ok)

	v, ok = d.TrySample(&scripted{dwords: []uint64{unitLo - 1}, words: []uint32{unitHi}})
	require.True(t, ok)
	assert.True(t, v.LessThan(high))
	assert.True(t, v.GreaterThan(decimal.RequireFromString("2.999999999")))

	v, ok = d.TrySample(&scripted{dwords: []uint64{0}, words: []uint32{0}})
	require.True(t, ok)
	assert.True(t, v.Equal(low))
}

func TestUniformDecimal_Errors(t *testing.T) {
	x := decimal.NewFromFloat(1.25)

	_, err := NewUniformDecimal(x, x)
	var rerr *rng.RangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "high", rerr.Arg)

	_, err = NewUniformDecimalInclusive(x, decimal.Zero)
	assert.Error(t, err)

	d, err := NewUniformDecimalInclusive(x, x)
	require.NoError(t, err)
	assert.True(t, d.Sample(newTestGenerator("point")).Equal(x))
}
