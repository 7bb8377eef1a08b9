// Package matrix describes the numeric kinds numconv converts between and the
// sparse capability matrix that says which conversion policies exist for each
// ordered (source, destination) pair.
//
// The matrix is the single source of truth for the policy packages: the
// generated functions in checked, wrapping, extending and truncating are
// produced from it, and the verification tooling walks it.
//
// # Kinds
//
// Fourteen kinds are modelled: unsigned and signed integers of 8, 16, 32, 64
// and 128 bits, the platform-width integers uint and int, and the two IEEE-754
// float widths.
//
// # Rules
//
// For checked conversions every pair carries a Rule per word width:
//
//	Infallible   destination range covers the source range
//	Upper        only an overflow is possible
//	Lower        only an underflow is possible
//	Both         overflow and underflow are possible
//	Float        float to integer: NaN, infinity, fraction, then both bounds
//	FloatNarrow  float64 to float32: NaN and infinities pass through
//
// Rules for pairs involving uint or int depend on the word width. The width of
// the compiled target is a build-time constant (WordBits); only 32 and 64-bit
// words are accepted by the Go toolchain, 16-bit words are tabulated for
// completeness.
//
// # Capabilities
//
//	matrix.Supports(matrix.Wrapping, matrix.Uint8, matrix.Int8) // true
//	matrix.Supports(matrix.Extending, matrix.Uint16, matrix.Int32) // false
//	for _, p := range matrix.Pairs(matrix.Truncating) { ... }
package matrix
