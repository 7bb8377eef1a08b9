package matrix

import "fmt"

// Rule is the bound-check strategy of a checked conversion.
type Rule uint8

const (
	// Unsupported marks a pair without a checked conversion.
	Unsupported Rule = iota
	// Infallible pairs need no check.
	Infallible
	// Upper pairs can only overflow.
	Upper
	// Lower pairs can only underflow.
	Lower
	// Both pairs can overflow and underflow; the upper bound is tested first.
	Both
	// Float pairs convert a float to an integer: NaN, infinity and fractional
	// values are rejected before both bounds are tested.
	Float
	// FloatNarrow is float64 to float32: NaN and infinities pass through,
	// finite values outside the float32 range are rejected.
	FloatNarrow
)

var ruleNames = [...]string{"unsupported", "infallible", "upper", "lower", "both", "float", "float-narrow"}

func (r Rule) String() string {
	if int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
	return ruleNames[r]
}

// Fallible reports whether a conversion under r can return an error.
func (r Rule) Fallible() bool {
	return r != Unsupported && r != Infallible
}

// ChecksUpper reports whether r tests the destination maximum.
func (r Rule) ChecksUpper() bool {
	return r == Upper || r == Both || r == Float || r == FloatNarrow
}

// ChecksLower reports whether r tests the destination minimum.
func (r Rule) ChecksLower() bool {
	return r == Lower || r == Both || r == Float || r == FloatNarrow
}

// maxExp is the exponent e of the smallest power of two above the largest
// value of k: the maximum is 2^e - 1.
func maxExp(k Kind, w Word) int {
	b := k.BitsAt(w)
	if k.Signed() {
		return b - 1
	}
	return b
}

// exactInFloat reports whether every value of the integer kind src is exactly
// representable in the float kind dst. Word-sized kinds never qualify because
// the answer would differ between word widths.
func exactInFloat(src, dst Kind) bool {
	if !src.Integer() || !dst.Float() || src.WordSized() {
		return false
	}
	return maxExp(src, Word64) <= dst.Digits()
}

// deriveChecked computes the checked rule of (src, dst) on a w-bit word by
// comparing representable ranges.
func deriveChecked(src, dst Kind, w Word) Rule {
	switch {
	case src.Float() && dst.Float():
		if src == Float64 && dst == Float32 {
			return FloatNarrow
		}
		return Infallible
	case src.Float():
		return Float
	case dst.Float():
		if exactInFloat(src, dst) {
			return Infallible
		}
		return Unsupported
	}

	// Integers: max is 2^e - 1, min is 0 or -2^(bits-1).
	upper := maxExp(src, w) > maxExp(dst, w)
	lower := src.Signed() && (!dst.Signed() || src.BitsAt(w) > dst.BitsAt(w))
	switch {
	case upper && lower:
		return Both
	case upper:
		return Upper
	case lower:
		return Lower
	default:
		return Infallible
	}
}

// forEveryWord reports whether cond holds for the widths of src and dst at
// every tabulated word width.
func forEveryWord(src, dst Kind, cond func(sb, db int) bool) bool {
	for _, w := range Words() {
		if !cond(src.BitsAt(w), dst.BitsAt(w)) {
			return false
		}
	}
	return true
}

func sameIntegerSign(src, dst Kind) bool {
	return src.Integer() && dst.Integer() && src.Signed() == dst.Signed()
}

func deriveWrapping(src, dst Kind) bool {
	if !src.Integer() || !dst.Integer() || src.Signed() == dst.Signed() {
		return false
	}
	return forEveryWord(src, dst, func(sb, db int) bool { return sb == db })
}

func deriveExtending(src, dst Kind) bool {
	switch {
	case src == Float32 && dst == Float64:
		return true
	case dst.Float():
		return exactInFloat(src, dst)
	case !sameIntegerSign(src, dst):
		return false
	}
	return forEveryWord(src, dst, func(sb, db int) bool { return db > sb })
}

func deriveTruncating(src, dst Kind) bool {
	if !sameIntegerSign(src, dst) {
		return false
	}
	return forEveryWord(src, dst, func(sb, db int) bool { return db < sb })
}
