// Package testutil provides sample generators for testing numeric
// conversions.
//
// This package is intended for use in tests and in the verification tooling.
// It provides a seeded random source and helpers for the values most likely to
// expose a wrong bound check: type limits, powers of two around every width,
// and special float values.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	x := rng.Uint64Spread()   // magnitudes spread over all 65 bit lengths
//	f := rng.Float64Spread()  // mix of integral and fractional floats
//
// # Boundary Values
//
//	lo, hi := testutil.Bounds[int16]()
//	xs := testutil.Edges[uint32]()
//	all := testutil.Exhaustive[int8]()
package testutil
