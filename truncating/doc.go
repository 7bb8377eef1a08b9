// Package truncating narrows an integer into a strictly smaller kind of the
// same signedness, keeping the low-order bits. The result equals the input
// modulo 2^n for an n-bit destination, interpreted in the destination's
// signedness.
//
//	truncating.Uint16ToUint8(0x1234) // 0x34
//	truncating.Int16ToInt8(-129)     // 127
//
// Truncating a value and extending it back is the identity whenever the value
// fits the narrower kind.
package truncating

//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy truncating -o truncating_gen.go
