// Package wide holds the 128-bit integer helpers the generated conversion
// functions use. Values are uint128.Uint128 and mathutil.Int128; both store
// their two's complement halves in exported Lo and Hi fields.
package wide

import (
	"math"

	"lukechampine.com/uint128"
	"modernc.org/mathutil"
)

const two64 = 0x1p64

// U128Exceeds reports whether v > limit.
func U128Exceeds(v uint128.Uint128, limit uint64) bool {
	return v.Cmp64(limit) > 0
}

// U128ExceedsI128 reports whether v is above the largest int128.
func U128ExceedsI128(v uint128.Uint128) bool {
	return v.Hi > math.MaxInt64
}

// I128Negative reports whether v < 0.
func I128Negative(v mathutil.Int128) bool {
	return v.Sign() < 0
}

// I128Exceeds reports whether v > limit.
func I128Exceeds(v mathutil.Int128, limit uint64) bool {
	return v.Cmp(mathutil.NewInt128FromUint64(limit)) > 0
}

// I128Below reports whether v < limit.
func I128Below(v mathutil.Int128, limit int64) bool {
	return v.Cmp(mathutil.NewInt128FromInt64(limit)) < 0
}

// I128FromU128 reinterprets the bits of v as a signed value.
func I128FromU128(v uint128.Uint128) mathutil.Int128 {
	return mathutil.Int128{Lo: int64(v.Lo), Hi: int64(v.Hi)}
}

// U128FromI128 reinterprets the bits of v as an unsigned value.
func U128FromI128(v mathutil.Int128) uint128.Uint128 {
	return uint128.New(uint64(v.Lo), uint64(v.Hi))
}

// U128FromFloat64 converts an integral f in [0, 2^128) exactly.
// Out-of-range or fractional input is not validated.
func U128FromFloat64(f float64) uint128.Uint128 {
	if f < two64 {
		return uint128.From64(uint64(f))
	}
	// f is an integer >= 2^64, so f/2^64 only shifts the exponent and
	// hi*2^64 is exact; the remainder fits in 53 significant bits.
	hi := math.Floor(f / two64)
	lo := f - hi*two64
	return uint128.New(uint64(lo), uint64(hi))
}

// I128FromFloat64 converts an integral f in [-2^127, 2^127) exactly.
// Out-of-range or fractional input is not validated.
//
// mathutil.NewInt128FromFloat64 is not used: it converts through int64 for
// values up to 2^63 inclusive, which misconverts 2^63 itself.
func I128FromFloat64(f float64) mathutil.Int128 {
	if f >= 0 {
		return I128FromU128(U128FromFloat64(f))
	}
	return Neg(I128FromU128(U128FromFloat64(-f)))
}

// Neg returns the two's complement negation of v. The minimum int128
// negates to itself.
func Neg(v mathutil.Int128) mathutil.Int128 {
	r, _ := v.Neg()
	return r
}
