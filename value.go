package numconv

import (
	"lukechampine.com/uint128"
	"modernc.org/mathutil"

	"github.com/hupe1980/numconv/matrix"
)

// Value is the set of Go types numconv converts between.
type Value interface {
	uint8 | uint16 | uint32 | uint64 | uint128.Uint128 |
		int8 | int16 | int32 | int64 | mathutil.Int128 |
		uint | int | float32 | float64
}

// KindOf returns the matrix kind of T.
func KindOf[T Value]() matrix.Kind {
	var zero T
	k, _ := KindOfValue(zero)
	return k
}

// KindOfValue returns the matrix kind of the dynamic type of v. ok is false if
// v is not one of the fourteen numeric kinds.
func KindOfValue(v any) (matrix.Kind, bool) {
	switch v.(type) {
	case uint8:
		return matrix.Uint8, true
	case uint16:
		return matrix.Uint16, true
	case uint32:
		return matrix.Uint32, true
	case uint64:
		return matrix.Uint64, true
	case uint128.Uint128:
		return matrix.Uint128, true
	case int8:
		return matrix.Int8, true
	case int16:
		return matrix.Int16, true
	case int32:
		return matrix.Int32, true
	case int64:
		return matrix.Int64, true
	case mathutil.Int128:
		return matrix.Int128, true
	case uint:
		return matrix.Uint, true
	case int:
		return matrix.Int, true
	case float32:
		return matrix.Float32, true
	case float64:
		return matrix.Float64, true
	}
	return 0, false
}
