// Package wrapping reinterprets the bits of an integer as the integer of the
// same width and opposite signedness. The conversions cannot fail:
//
//	wrapping.Uint8ToInt8(255)   // -1
//	wrapping.Int32ToUint32(-1)  // 4294967295
//
// Applying a pair and then its reverse returns the original value. uint and
// int wrap into each other on every word width; they do not wrap into the
// fixed-width kinds because their width is not fixed.
package wrapping

//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy wrapping -o wrapping_gen.go
