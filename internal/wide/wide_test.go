package wide

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
	"modernc.org/mathutil"
)

func TestReinterpret(t *testing.T) {
	assert.Equal(t, mathutil.Int128{Lo: -1, Hi: -1}, I128FromU128(uint128.Max))
	assert.Equal(t, mathutil.Int128{Hi: math.MinInt64}, I128FromU128(uint128.New(0, 1<<63)))
	assert.Equal(t, uint128.Max, U128FromI128(mathutil.NewInt128FromInt64(-1)))
	assert.Equal(t, uint128.New(9, 3), U128FromI128(I128FromU128(uint128.New(9, 3))))
}

func TestComparisons(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		assert.False(t, U128Exceeds(uint128.From64(255), math.MaxUint8))
		assert.True(t, U128Exceeds(uint128.From64(256), math.MaxUint8))
		assert.True(t, U128Exceeds(uint128.New(0, 1), math.MaxUint64))

		assert.False(t, U128ExceedsI128(uint128.New(math.MaxUint64, math.MaxInt64)))
		assert.True(t, U128ExceedsI128(uint128.New(0, 1<<63)))
	})

	t.Run("signed", func(t *testing.T) {
		assert.True(t, I128Negative(mathutil.NewInt128FromInt64(-1)))
		assert.False(t, I128Negative(mathutil.Int128{}))

		assert.False(t, I128Exceeds(mathutil.NewInt128FromInt64(-5), 0))
		assert.False(t, I128Exceeds(mathutil.NewInt128FromInt64(127), math.MaxInt8))
		assert.True(t, I128Exceeds(mathutil.NewInt128FromInt64(128), math.MaxInt8))
		assert.False(t, I128Exceeds(mathutil.NewInt128FromUint64(math.MaxUint64), math.MaxUint64))
		assert.True(t, I128Exceeds(mathutil.Int128{Hi: 1}, math.MaxUint64))

		assert.False(t, I128Below(mathutil.NewInt128FromInt64(5), math.MinInt8))
		assert.False(t, I128Below(mathutil.NewInt128FromInt64(-128), math.MinInt8))
		assert.True(t, I128Below(mathutil.NewInt128FromInt64(-129), math.MinInt8))
		assert.False(t, I128Below(mathutil.NewInt128FromInt64(math.MinInt64), math.MinInt64))
		assert.True(t, I128Below(mathutil.Int128{Lo: math.MaxInt64, Hi: -1}, math.MinInt64))
		assert.True(t, I128Below(mathutil.Int128{Hi: math.MinInt64}, math.MinInt64))
		assert.False(t, I128Below(mathutil.Int128{}, 0))
	})
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in   float64
		want uint128.Uint128
	}{
		{0, uint128.Zero},
		{1, uint128.From64(1)},
		{0x1p63, uint128.From64(1 << 63)},
		{0x1p64, uint128.New(0, 1)},
		{0x1p64 + 0x1p12, uint128.New(1<<12, 1)},
		{0x1p127, uint128.New(0, 1<<63)},
		{0x1.fffffffffffffp127, uint128.New(0, 0xfffffffffffff800)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, U128FromFloat64(tt.in), "%g", tt.in)
	}

	assert.Equal(t, mathutil.NewInt128FromInt64(-3), I128FromFloat64(-3))
	assert.Equal(t, mathutil.NewInt128FromUint64(1<<63), I128FromFloat64(0x1p63))
	assert.Equal(t, mathutil.NewInt128FromInt64(math.MinInt64), I128FromFloat64(-0x1p63))
	assert.Equal(t, mathutil.Int128{Hi: math.MinInt64}, I128FromFloat64(-0x1p127))
	assert.Equal(t, mathutil.Int128{Hi: -1}, I128FromFloat64(-0x1p64))
	assert.Equal(t, mathutil.Int128{Hi: 1 << 62}, I128FromFloat64(0x1p126))
}

func TestNeg(t *testing.T) {
	assert.Equal(t, mathutil.NewInt128FromInt64(-7), Neg(mathutil.NewInt128FromInt64(7)))
	assert.Equal(t, mathutil.Int128{}, Neg(mathutil.Int128{}))
	assert.Equal(t, mathutil.NewInt128FromUint64(1<<63), Neg(mathutil.NewInt128FromInt64(math.MinInt64)))
	assert.Equal(t, mathutil.Int128{Hi: math.MinInt64}, Neg(mathutil.Int128{Hi: math.MinInt64}))
}
