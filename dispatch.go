package numconv

import (
	"github.com/hupe1980/numconv/matrix"
)

// entry is one registered conversion. typed holds the generated function
// with its static signature; dynamic adapts it to any.
type entry struct {
	typed   any
	dynamic func(any) (any, error)
}

var tables [matrix.NumPolicies][matrix.NumKinds * matrix.NumKinds]entry

func pairOf[S, D Value]() matrix.Pair {
	return matrix.Pair{Src: KindOf[S](), Dst: KindOf[D]()}
}

func registerChecked[S, D Value](fn func(S) (D, error)) {
	tables[matrix.Checked][pairOf[S, D]().Index()] = entry{
		typed: fn,
		dynamic: func(v any) (any, error) {
			return fn(v.(S))
		},
	}
}

func registerInfallible[S, D Value](p matrix.Policy, fn func(S) D) {
	tables[p][pairOf[S, D]().Index()] = entry{
		typed: fn,
		dynamic: func(v any) (any, error) {
			return fn(v.(S)), nil
		},
	}
}

// Checked converts v to D, preserving its value, or returns one of the
// conversion errors (ErrOverflow, ErrUnderflow, ...). A pair outside the
// checked catalogue returns an *UnsupportedError.
//
//	b, err := numconv.Checked[uint8](uint16(300)) // 0, ErrOverflow
func Checked[D, S Value](v S) (D, error) {
	p := pairOf[S, D]()
	fn, ok := tables[matrix.Checked][p.Index()].typed.(func(S) (D, error))
	if !ok {
		var zero D
		return zero, &UnsupportedError{Policy: matrix.Checked, Src: p.Src, Dst: p.Dst}
	}
	return fn(v)
}

// Wrap reinterprets the bits of v as the same-width integer D.
// It panics with an *UnsupportedError if the pair cannot wrap.
func Wrap[D, S Value](v S) D {
	return infallible[D](matrix.Wrapping, v)
}

// Extend widens v to D without loss.
// It panics with an *UnsupportedError if D is not strictly wider than S.
func Extend[D, S Value](v S) D {
	return infallible[D](matrix.Extending, v)
}

// Truncate keeps the low-order bits of v that fit in D.
// It panics with an *UnsupportedError if D is not strictly narrower than S.
func Truncate[D, S Value](v S) D {
	return infallible[D](matrix.Truncating, v)
}

func infallible[D, S Value](policy matrix.Policy, v S) D {
	p := pairOf[S, D]()
	fn, ok := tables[policy][p.Index()].typed.(func(S) D)
	if !ok {
		panic(&UnsupportedError{Policy: policy, Src: p.Src, Dst: p.Dst})
	}
	return fn(v)
}

// Convert applies policy to the dynamic value v, producing a value of kind
// dst. The result's dynamic type is the Go type of dst.
//
// Unknown value types and pairs the policy does not define return an error
// matching ErrUnsupported. Checked conversions additionally return the
// conversion errors of package checked.
func Convert(policy matrix.Policy, dst matrix.Kind, v any) (any, error) {
	src, ok := KindOfValue(v)
	if !ok {
		return nil, &ValueTypeError{Value: v}
	}
	if !policy.Valid() || !dst.Valid() {
		return nil, &UnsupportedError{Policy: policy, Src: src, Dst: dst}
	}
	e := tables[policy][matrix.Pair{Src: src, Dst: dst}.Index()]
	if e.dynamic == nil {
		return nil, &UnsupportedError{Policy: policy, Src: src, Dst: dst}
	}
	return e.dynamic(v)
}

// Registered reports whether a conversion is registered for (policy, src,
// dst) on the compiled target. It agrees with matrix.Supports.
func Registered(policy matrix.Policy, src, dst matrix.Kind) bool {
	if !policy.Valid() || !src.Valid() || !dst.Valid() {
		return false
	}
	return tables[policy][matrix.Pair{Src: src, Dst: dst}.Index()].dynamic != nil
}
