package verify

import (
	"errors"
	"math"
	"math/big"

	"lukechampine.com/uint128"
	"modernc.org/mathutil"

	"github.com/hupe1980/numconv"
	"github.com/hupe1980/numconv/checked"
	"github.com/hupe1980/numconv/matrix"
)

// number is the exact value of a sample or a conversion result.
type number struct {
	nan bool
	inf int
	rat *big.Rat // nil unless finite
}

var (
	maxFloat32   = new(big.Rat).SetFloat64(math.MaxFloat32)
	minusFloat32 = new(big.Rat).Neg(maxFloat32)
)

func exact(v any) (number, bool) {
	switch x := v.(type) {
	case uint8:
		return ofUint64(uint64(x)), true
	case uint16:
		return ofUint64(uint64(x)), true
	case uint32:
		return ofUint64(uint64(x)), true
	case uint64:
		return ofUint64(x), true
	case uint:
		return ofUint64(uint64(x)), true
	case int8:
		return ofInt64(int64(x)), true
	case int16:
		return ofInt64(int64(x)), true
	case int32:
		return ofInt64(int64(x)), true
	case int64:
		return ofInt64(x), true
	case int:
		return ofInt64(int64(x)), true
	case uint128.Uint128:
		return ofInt(x.Big()), true
	case mathutil.Int128:
		return ofInt(x.BigInt()), true
	case float32:
		return ofFloat(float64(x)), true
	case float64:
		return ofFloat(x), true
	}
	return number{}, false
}

func ofUint64(x uint64) number {
	return ofInt(new(big.Int).SetUint64(x))
}

func ofInt64(x int64) number {
	return ofInt(big.NewInt(x))
}

func ofInt(x *big.Int) number {
	return number{rat: new(big.Rat).SetInt(x)}
}

func ofFloat(f float64) number {
	switch {
	case math.IsNaN(f):
		return number{nan: true}
	case math.IsInf(f, 1):
		return number{inf: 1}
	case math.IsInf(f, -1):
		return number{inf: -1}
	}
	return number{rat: new(big.Rat).SetFloat64(f)}
}

func (n number) finite() bool { return n.rat != nil }

func (n number) equal(o number) bool {
	if n.nan || o.nan {
		return n.nan == o.nan
	}
	if n.inf != 0 || o.inf != 0 {
		return n.inf == o.inf
	}
	return n.rat.Cmp(o.rat) == 0
}

func (n number) String() string {
	switch {
	case n.nan:
		return "NaN"
	case n.inf > 0:
		return "+Inf"
	case n.inf < 0:
		return "-Inf"
	case n.rat.IsInt():
		return n.rat.Num().String()
	}
	return n.rat.FloatString(8)
}

// bounds returns the range of an integer kind on the compiled target.
func bounds(k matrix.Kind) (lo, hi *big.Int) {
	bits := uint(k.Bits())
	if k.Signed() {
		hi = new(big.Int).Lsh(big.NewInt(1), bits-1)
		lo = new(big.Int).Neg(hi)
		return lo, hi.Sub(hi, big.NewInt(1))
	}
	hi = new(big.Int).Lsh(big.NewInt(1), bits)
	return big.NewInt(0), hi.Sub(hi, big.NewInt(1))
}

// outcome is what a conversion should produce: a value or an error.
type outcome struct {
	value number
	err   error
}

func (o outcome) String() string {
	if o.err != nil {
		return "error " + o.err.Error()
	}
	return o.value.String()
}

// expect computes the outcome of converting in (a value of kind src) to dst
// under policy.
func expect(policy matrix.Policy, src, dst matrix.Kind, v any, in number) outcome {
	switch policy {
	case matrix.Checked:
		return expectChecked(src, dst, v, in)
	case matrix.Wrapping, matrix.Truncating:
		return outcome{value: ofInt(reduce(in.rat.Num(), dst))}
	}
	return outcome{value: in}
}

func expectChecked(src, dst matrix.Kind, v any, in number) outcome {
	if dst.Float() {
		if src == matrix.Float64 && dst == matrix.Float32 {
			return expectNarrow(v.(float64), in)
		}
		return outcome{value: in}
	}

	switch {
	case in.nan:
		return outcome{err: checked.ErrNaN}
	case in.inf != 0:
		return outcome{err: checked.ErrInfinite}
	case !in.rat.IsInt():
		return outcome{err: checked.ErrFractional}
	}
	lo, hi := bounds(dst)
	x := in.rat.Num()
	switch {
	case x.Cmp(hi) > 0:
		return outcome{err: checked.ErrOverflow}
	case x.Cmp(lo) < 0:
		return outcome{err: checked.ErrUnderflow}
	}
	return outcome{value: in}
}

func expectNarrow(f float64, in number) outcome {
	if !in.finite() {
		return outcome{value: in}
	}
	switch {
	case in.rat.Cmp(maxFloat32) > 0:
		return outcome{err: checked.ErrOverflow}
	case in.rat.Cmp(minusFloat32) < 0:
		return outcome{err: checked.ErrUnderflow}
	}
	return outcome{value: ofFloat(float64(float32(f)))}
}

// reduce returns x modulo 2^bits(k), interpreted in k's signedness.
func reduce(x *big.Int, k matrix.Kind) *big.Int {
	bits := uint(k.Bits())
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	r := new(big.Int).Mod(x, m)
	if k.Signed() && r.Bit(int(bits)-1) == 1 {
		r.Sub(r, m)
	}
	return r
}

// matches reports whether a conversion result agrees with the expected
// outcome. The result must have the Go type of dst.
func matches(want outcome, dst matrix.Kind, got any, err error) (number, bool) {
	if want.err != nil {
		return number{}, errors.Is(err, want.err)
	}
	if err != nil {
		return number{}, false
	}
	if k, ok := numconv.KindOfValue(got); !ok || k != dst {
		return number{}, false
	}
	n, _ := exact(got)
	return n, n.equal(want.value)
}
