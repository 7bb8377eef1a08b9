package numconv

import (
	"errors"
	"fmt"

	"github.com/hupe1980/numconv/checked"
	"github.com/hupe1980/numconv/matrix"
)

// Error classifies why a checked conversion was rejected.
type Error = checked.Error

// Conversion error classifications, re-exported from package checked.
const (
	ErrOverflow   = checked.ErrOverflow
	ErrUnderflow  = checked.ErrUnderflow
	ErrInfinite   = checked.ErrInfinite
	ErrNaN        = checked.ErrNaN
	ErrFractional = checked.ErrFractional
)

var (
	// ErrUnsupported is matched by every UnsupportedError.
	ErrUnsupported = errors.New("unsupported conversion")
)

// UnsupportedError reports a request for a (policy, source, destination)
// combination the matrix does not define.
//
// errors.Is(err, ErrUnsupported) holds for every UnsupportedError.
type UnsupportedError struct {
	Policy matrix.Policy
	Src    matrix.Kind
	Dst    matrix.Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s conversion from %s to %s is not supported", e.Policy, e.Src, e.Dst)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ValueTypeError reports a dynamic value whose Go type is not one of the
// fourteen numeric kinds.
type ValueTypeError struct {
	Value any
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("value of type %T is not a supported numeric kind", e.Value)
}

func (e *ValueTypeError) Unwrap() error { return ErrUnsupported }
