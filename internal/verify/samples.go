package verify

import (
	"math"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
	"modernc.org/mathutil"

	"github.com/hupe1980/numconv/internal/wide"
	"github.com/hupe1980/numconv/matrix"
	"github.com/hupe1980/numconv/testutil"
)

// buildSamples draws the inputs for every source kind. It runs before the
// fan-out so that a seed always yields the same samples.
func buildSamples(rng *testutil.RNG, n int) [matrix.NumKinds][]any {
	var out [matrix.NumKinds][]any

	out[matrix.Uint8] = box(testutil.Exhaustive[uint8]())
	out[matrix.Uint16] = box(testutil.Exhaustive[uint16]())
	out[matrix.Int8] = box(testutil.Exhaustive[int8]())
	out[matrix.Int16] = box(testutil.Exhaustive[int16]())

	out[matrix.Uint32] = box(unsigned[uint32](rng, n))
	out[matrix.Uint64] = box(unsigned[uint64](rng, n))
	out[matrix.Uint] = box(unsigned[uint](rng, n))
	out[matrix.Int32] = box(signed[int32](rng, n))
	out[matrix.Int64] = box(signed[int64](rng, n))
	out[matrix.Int] = box(signed[int](rng, n))

	out[matrix.Uint128] = box(u128s(rng, n))
	out[matrix.Int128] = box(i128s(rng, n))

	f64 := floats(rng, n)
	out[matrix.Float64] = box(f64)
	f32 := make([]float32, len(f64))
	for i, f := range f64 {
		f32[i] = float32(f)
	}
	out[matrix.Float32] = box(f32)

	return out
}

func box[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func unsigned[T constraints.Unsigned](rng *testutil.RNG, n int) []T {
	out := testutil.Edges[T]()
	for range n {
		out = append(out, T(rng.Uint64Spread()))
	}
	return out
}

func signed[T constraints.Signed](rng *testutil.RNG, n int) []T {
	out := testutil.Edges[T]()
	for range n {
		out = append(out, T(rng.Int64Spread()))
	}
	return out
}

func u128s(rng *testutil.RNG, n int) []uint128.Uint128 {
	out := []uint128.Uint128{
		uint128.Zero,
		uint128.From64(1),
		uint128.From64(math.MaxUint64),
		uint128.New(0, 1),
		uint128.New(math.MaxUint64, math.MaxInt64),
		uint128.New(0, 1<<63),
		uint128.Max,
	}
	for _, x := range testutil.Edges[uint64]() {
		out = append(out, uint128.From64(x))
	}
	for range n {
		out = append(out, rng.U128Spread())
	}
	return out
}

func i128s(rng *testutil.RNG, n int) []mathutil.Int128 {
	out := []mathutil.Int128{
		{Hi: math.MinInt64},
		{Lo: -1, Hi: math.MaxInt64},
		mathutil.NewInt128FromUint64(math.MaxUint64),
		{Hi: -1},
		{Hi: 1},
	}
	for _, x := range testutil.Edges[int64]() {
		out = append(out, mathutil.NewInt128FromInt64(x))
	}
	for range n {
		x := wide.I128FromU128(rng.U128Spread())
		if rng.Intn(2) == 0 {
			x = wide.Neg(x)
		}
		out = append(out, x)
	}
	return out
}

func floats(rng *testutil.RNG, n int) []float64 {
	out := testutil.SpecialFloats()
	for range n {
		out = append(out, rng.Float64Spread())
	}
	return out
}
