package codegen

import (
	"fmt"

	"github.com/hupe1980/numconv/matrix"
)

var maxConsts = map[matrix.Kind]string{
	matrix.Uint8:  "math.MaxUint8",
	matrix.Uint16: "math.MaxUint16",
	matrix.Uint32: "math.MaxUint32",
	matrix.Uint64: "math.MaxUint64",
	matrix.Uint:   "math.MaxUint",
	matrix.Int8:   "math.MaxInt8",
	matrix.Int16:  "math.MaxInt16",
	matrix.Int32:  "math.MaxInt32",
	matrix.Int64:  "math.MaxInt64",
	matrix.Int:    "math.MaxInt",
}

var minConsts = map[matrix.Kind]string{
	matrix.Int8:  "math.MinInt8",
	matrix.Int16: "math.MinInt16",
	matrix.Int32: "math.MinInt32",
	matrix.Int64: "math.MinInt64",
	matrix.Int:   "math.MinInt",
}

func maxConst(k matrix.Kind) string { return maxConsts[k] }

func minConst(k matrix.Kind) string {
	if !k.Signed() {
		return "0"
	}
	return minConsts[k]
}

func zeroValue(k matrix.Kind) string {
	switch k {
	case matrix.Uint128:
		return "uint128.Uint128{}"
	case matrix.Int128:
		return "mathutil.Int128{}"
	}
	return "0"
}

// asUint64 and asInt64 widen a native integer operand for comparisons that
// must compile on every word width.
func asUint64(k matrix.Kind) string {
	if k == matrix.Uint64 {
		return "v"
	}
	return "uint64(v)"
}

func asInt64(k matrix.Kind) string {
	if k == matrix.Int64 {
		return "v"
	}
	return "int64(v)"
}

func operand(k matrix.Kind) string {
	if k.Signed() {
		return asInt64(k)
	}
	return asUint64(k)
}

func castTo(k matrix.Kind, expr string) string {
	return k.GoType() + "(" + expr + ")"
}

func checkedFunction(p matrix.Pair, r matrix.Rule) Function {
	fn := Function{Pair: p, Rule: r, Doc: checkedDoc(p, r)}
	src, dst := p.Src, p.Dst
	switch {
	case src == dst:
		fn.Result = "v"
	case r == matrix.FloatNarrow:
		fn.Guard = "checkFloatNarrow(v)"
		fn.Result = "float32(v)"
	case src.Float() && dst.Float():
		fn.Result = castTo(dst, "v")
	case src.Float():
		f := "v"
		if src != matrix.Float64 {
			f = "float64(v)"
		}
		lo, hi := floatBounds(dst)
		fn.Guard = fmt.Sprintf("checkFloat(%s, %s, %s)", f, lo, hi)
		switch dst {
		case matrix.Uint128:
			fn.Result = "wide.U128FromFloat64(" + f + ")"
		case matrix.Int128:
			fn.Result = "wide.I128FromFloat64(" + f + ")"
		default:
			fn.Result = castTo(dst, "v")
		}
	case dst.Float():
		fn.Result = castTo(dst, "v")
	case src.Wide():
		fn.Checks = wideChecks(src, dst, r)
		fn.Result = fromWide(src, dst)
	default:
		x := operand(src)
		if r.ChecksUpper() {
			fn.Checks = append(fn.Checks, Check{Cond: x + " > " + maxConst(dst), Err: "ErrOverflow"})
		}
		if r.ChecksLower() {
			fn.Checks = append(fn.Checks, Check{Cond: x + " < " + minConst(dst), Err: "ErrUnderflow"})
		}
		fn.Result = fromNative(src, dst)
	}
	return fn
}

// floatBounds returns the half-open range [lo, hi) of an integer kind as
// exact float64 constant expressions.
func floatBounds(k matrix.Kind) (lo, hi string) {
	switch k {
	case matrix.Uint128:
		return "0", "0x1p128"
	case matrix.Int128:
		return "-0x1p127", "0x1p127"
	}
	return minConst(k), maxConst(k) + "+1"
}

func wideChecks(src, dst matrix.Kind, r matrix.Rule) []Check {
	if src == matrix.Uint128 {
		cond := fmt.Sprintf("wide.U128Exceeds(v, %s)", maxConst(dst))
		if dst == matrix.Int128 {
			cond = "wide.U128ExceedsI128(v)"
		}
		return []Check{{Cond: cond, Err: "ErrOverflow"}}
	}

	var cs []Check
	if r.ChecksUpper() {
		cs = append(cs, Check{Cond: fmt.Sprintf("wide.I128Exceeds(v, %s)", maxConst(dst)), Err: "ErrOverflow"})
	}
	if r.ChecksLower() {
		cond := fmt.Sprintf("wide.I128Below(v, %s)", minConst(dst))
		if !dst.Signed() {
			cond = "wide.I128Negative(v)"
		}
		cs = append(cs, Check{Cond: cond, Err: "ErrUnderflow"})
	}
	return cs
}

func fromWide(src, dst matrix.Kind) string {
	switch {
	case src == matrix.Uint128 && dst == matrix.Int128:
		return "wide.I128FromU128(v)"
	case src == matrix.Int128 && dst == matrix.Uint128:
		return "wide.U128FromI128(v)"
	case src == matrix.Uint128 && dst == matrix.Uint64, src == matrix.Int128 && dst == matrix.Int64:
		return "v.Lo"
	}
	return castTo(dst, "v.Lo")
}

func fromNative(src, dst matrix.Kind) string {
	switch {
	case dst == matrix.Uint128:
		return "uint128.From64(" + asUint64(src) + ")"
	case dst == matrix.Int128 && src.Signed():
		return "mathutil.NewInt128FromInt64(" + asInt64(src) + ")"
	case dst == matrix.Int128:
		return "mathutil.NewInt128FromUint64(" + asUint64(src) + ")"
	}
	return castTo(dst, "v")
}

func infallibleFunction(policy matrix.Policy, p matrix.Pair) Function {
	src, dst := p.Src, p.Dst
	fn := Function{Pair: p, Rule: matrix.Infallible}
	switch policy {
	case matrix.Wrapping:
		fn.Doc = fmt.Sprintf("%s reinterprets the bits of v as %s.", p.FuncName(), dst)
		fn.Result = castTo(dst, "v")
		if src.Wide() {
			fn.Result = fromWide(src, dst)
		}
	case matrix.Extending:
		fn.Doc = fmt.Sprintf("%s widens v to %s without loss.", p.FuncName(), dst)
		fn.Result = castTo(dst, "v")
		if dst.Wide() {
			fn.Result = fromNative(src, dst)
		}
	case matrix.Truncating:
		fn.Doc = fmt.Sprintf("%s keeps the low-order bits of v that fit in %s.", p.FuncName(), dst)
		fn.Result = castTo(dst, "v")
		if src.Wide() {
			fn.Result = fromWide(src, dst)
		}
	}
	return fn
}

func checkedDoc(p matrix.Pair, r matrix.Rule) string {
	name, dst := p.FuncName(), p.Dst
	switch r {
	case matrix.Infallible:
		if p.Src == p.Dst {
			return fmt.Sprintf("%s returns v unchanged with a nil error.", name)
		}
		return fmt.Sprintf("%s converts v to %s. Every %s is representable, so the error is always nil.", name, dst, p.Src)
	case matrix.Upper:
		return fmt.Sprintf("%s converts v to %s, or returns ErrOverflow if v is above the %s maximum.", name, dst, dst)
	case matrix.Lower:
		return fmt.Sprintf("%s converts v to %s, or returns ErrUnderflow if v is negative.", name, dst)
	case matrix.Both:
		return fmt.Sprintf("%s converts v to %s, or returns ErrOverflow or ErrUnderflow if v is outside the %s range.", name, dst, dst)
	case matrix.Float:
		return fmt.Sprintf("%s converts v to %s, rejecting NaN, infinities, fractional values and values outside the %s range.", name, dst, dst)
	case matrix.FloatNarrow:
		return fmt.Sprintf("%s converts v to float32, keeping NaN and infinities and rejecting finite values outside the float32 range.", name)
	}
	return name + " is not supported."
}
