// Package numconv provides explicit numeric conversions between Go's integer
// and floating-point types, with the conversion policy named at every call
// site.
//
// Four policies are available, each as its own package with one function per
// supported (source, destination) pair:
//
//	checked     value-preserving, returns an error instead of losing data
//	wrapping    same-width signed/unsigned bit reinterpretation
//	extending   lossless widening
//	truncating  narrowing that keeps the low-order bits
//
// The function names follow <Src>To<Dst>:
//
//	b, err := checked.Uint16ToUint8(300)   // 0, checked.ErrOverflow
//	i := wrapping.Uint8ToInt8(255)         // -1
//	w := extending.Int8ToInt64(-3)         // -3
//	t := truncating.Uint32ToUint8(0x1ff)   // 0xff
//
// # Generic API
//
// This package offers the same conversions through type parameters, which is
// convenient in generic code:
//
//	b, err := numconv.Checked[uint8](uint16(300))
//	i := numconv.Wrap[int8](uint8(255))
//	w := numconv.Extend[int64](int8(-3))
//	t := numconv.Truncate[uint8](uint32(0x1ff))
//
// Checked returns an *UnsupportedError for pairs outside the checked
// catalogue. Wrap, Extend and Truncate panic for pairs their policy does not
// define, the way reflect panics on invalid conversions.
//
// Convert dispatches on a policy and a destination kind at run time.
//
// # 128-bit kinds
//
// uint128 values are uint128.Uint128 from lukechampine.com/uint128 and int128
// values are mathutil.Int128 from modernc.org/mathutil.
//
// # Platform width
//
// Conversions involving uint and int use the bound checks of the compiled
// target's word width. The choice is made at build time.
//
// Package matrix describes which pairs exist for each policy and which bound
// checks a checked pair performs.
package numconv

//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy dispatch -o dispatch_gen.go
