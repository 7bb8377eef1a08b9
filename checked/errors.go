package checked

import "fmt"

// Error classifies why a checked conversion was rejected.
type Error uint8

const (
	// ErrOverflow means the value exceeds the destination maximum.
	ErrOverflow Error = iota + 1
	// ErrUnderflow means the value is below the destination minimum.
	ErrUnderflow
	// ErrInfinite means the float source is infinite and the destination is
	// an integer.
	ErrInfinite
	// ErrNaN means the float source is not a number and the destination is
	// an integer.
	ErrNaN
	// ErrFractional means the float source has a non-zero fractional part
	// and the destination is an integer.
	ErrFractional
)

var errorMessages = [...]string{
	ErrOverflow:   "overflow during numeric conversion",
	ErrUnderflow:  "underflow during numeric conversion",
	ErrInfinite:   "cannot store infinite value in finite type",
	ErrNaN:        "cannot store NaN in type which does not support it",
	ErrFractional: "cannot store fractional value without loss",
}

func (e Error) Error() string {
	if e == 0 || int(e) >= len(errorMessages) {
		return fmt.Sprintf("numeric conversion error %d", uint8(e))
	}
	return errorMessages[e]
}

// Errors returns the five classifications in declaration order.
func Errors() []Error {
	return []Error{ErrOverflow, ErrUnderflow, ErrInfinite, ErrNaN, ErrFractional}
}
