package checked

import "math"

// checkFloat validates a float source bound for an integer destination whose
// range is [lo, hi). Both bounds are exact powers of two (or zero), so the
// comparisons are exact in float64.
func checkFloat(v, lo, hi float64) error {
	switch {
	case math.IsNaN(v):
		return ErrNaN
	case math.IsInf(v, 0):
		return ErrInfinite
	case math.Trunc(v) != v:
		return ErrFractional
	case v >= hi:
		return ErrOverflow
	case v < lo:
		return ErrUnderflow
	}
	return nil
}

// checkFloatNarrow validates a float64 bound for float32. NaN and
// infinities are representable and pass.
func checkFloatNarrow(v float64) error {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return nil
	case v > math.MaxFloat32:
		return ErrOverflow
	case v < -math.MaxFloat32:
		return ErrUnderflow
	}
	return nil
}
