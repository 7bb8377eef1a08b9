// Package checked provides value-preserving numeric conversions that report
// why a value cannot be represented instead of truncating or wrapping it.
//
// Every supported (source, destination) pair has one function named
// <Src>To<Dst>:
//
//	b, err := checked.Uint16ToUint8(300) // 0, ErrOverflow
//	u, err := checked.Int32ToUint16(-5)  // 0, ErrUnderflow
//	i, err := checked.Float64ToInt32(2)  // 2, nil
//
// The error is one of five constants (ErrOverflow, ErrUnderflow,
// ErrInfinite, ErrNaN, ErrFractional), so returning it never allocates and
// callers can compare with == or errors.Is. Pairs whose destination covers
// the whole source range always return a nil error.
//
// Pairs involving uint or int are compiled with the bound checks of the
// target's word width; the 32 and 64-bit variants live in build-constrained
// files.
//
// Float sources are checked in a fixed order: NaN, infinity, fractional part,
// then range. Float64ToFloat32 is the exception: NaN and infinities convert
// unchanged because float32 can hold them.
package checked

//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy checked --word all -o checked_gen.go
//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy checked --word 32 -o checked_word32_gen.go
//go:generate go run github.com/hupe1980/numconv/cmd/numconv gen --policy checked --word 64 -o checked_word64_gen.go
