package truncating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
	"modernc.org/mathutil"

	"github.com/hupe1980/numconv/testutil"
)

func TestKeepsLowBits(t *testing.T) {
	assert.Equal(t, uint8(0x34), Uint16ToUint8(0x1234))
	assert.Equal(t, uint8(44), Uint16ToUint8(300))
	assert.Equal(t, int8(-1), Int16ToInt8(-1))
	assert.Equal(t, int8(-128), Int16ToInt8(128))
	assert.Equal(t, int8(127), Int32ToInt8(-129))
	assert.Equal(t, uint32(math.MaxUint32), Uint64ToUint32(math.MaxUint64))
	assert.Equal(t, int32(0), Int64ToInt32(1<<32))
	assert.Equal(t, uint8(0xff), UintToUint8(math.MaxUint))
	assert.Equal(t, int8(-1), IntToInt8(-1))

	assert.Equal(t, uint64(7), Uint128ToUint64(uint128.New(7, 9)))
	assert.Equal(t, uint8(0xff), Uint128ToUint8(uint128.New(math.MaxUint64, 1)))
	assert.Equal(t, int64(-1), Int128ToInt64(mathutil.Int128{Lo: -1, Hi: 0x7f}))
	assert.Equal(t, int8(-2), Int128ToInt8(mathutil.NewInt128FromInt64(-2)))
	assert.Equal(t, -1, Int128ToInt(mathutil.NewInt128FromInt64(-1)))
	assert.Equal(t, uint(3), Uint128ToUint(uint128.New(3, 5)))
}

func TestModularReduction(t *testing.T) {
	for _, v := range testutil.Exhaustive[uint16]() {
		if uint16(Uint16ToUint8(v)) != v%256 {
			t.Fatalf("uint16 %d does not reduce modulo 256", v)
		}
	}
	for _, v := range testutil.Exhaustive[int16]() {
		if int16(Int16ToInt8(v))&0xff != v&0xff {
			t.Fatalf("int16 %d does not keep its low byte", v)
		}
	}
	rng := testutil.NewRNG(3)
	for range 1000 {
		v := rng.Int64Spread()
		assert.Equal(t, uint16(v), uint16(Int64ToInt16(v)))
		assert.Equal(t, uint32(v), uint32(Int64ToInt32(v)))
	}
}
