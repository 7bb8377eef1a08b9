package matrix

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Pair is an ordered (source, destination) kind pair.
type Pair struct {
	Src Kind
	Dst Kind
}

// Index returns the dense position of p in the NumKinds×NumKinds matrix.
func (p Pair) Index() uint32 {
	return uint32(p.Src)*NumKinds + uint32(p.Dst)
}

// PairAt is the inverse of Pair.Index.
func PairAt(index uint32) Pair {
	return Pair{Src: Kind(index / NumKinds), Dst: Kind(index % NumKinds)}
}

// FuncName returns the name of the generated conversion function for p,
// e.g. "Uint16ToUint8".
func (p Pair) FuncName() string {
	return p.Src.Name() + "To" + p.Dst.Name()
}

func (p Pair) String() string {
	return fmt.Sprintf("%s->%s", p.Src, p.Dst)
}

var (
	// checkedRules[word][src][dst]
	checkedRules [3][NumKinds][NumKinds]Rule
	capabilities [NumPolicies]*roaring.Bitmap
)

func init() {
	for _, w := range Words() {
		for src := range Kind(NumKinds) {
			for dst := range Kind(NumKinds) {
				checkedRules[w.index()][src][dst] = deriveChecked(src, dst, w)
			}
		}
	}

	for i := range capabilities {
		capabilities[i] = roaring.New()
	}
	for src := range Kind(NumKinds) {
		for dst := range Kind(NumKinds) {
			idx := Pair{Src: src, Dst: dst}.Index()
			if checkedRules[Current().index()][src][dst] != Unsupported {
				capabilities[Checked].Add(idx)
			}
			if deriveWrapping(src, dst) {
				capabilities[Wrapping].Add(idx)
			}
			if deriveExtending(src, dst) {
				capabilities[Extending].Add(idx)
			}
			if deriveTruncating(src, dst) {
				capabilities[Truncating].Add(idx)
			}
		}
	}
	for _, bm := range capabilities {
		bm.RunOptimize()
	}
}

// CheckedRule returns the checked rule of (src, dst) on the compiled target.
func CheckedRule(src, dst Kind) Rule {
	return CheckedRuleAt(Current(), src, dst)
}

// CheckedRuleAt returns the checked rule of (src, dst) on a w-bit word.
// Invalid kinds or widths yield Unsupported.
func CheckedRuleAt(w Word, src, dst Kind) Rule {
	if !w.Valid() || !src.Valid() || !dst.Valid() {
		return Unsupported
	}
	return checkedRules[w.index()][src][dst]
}

// WordDependent reports whether the checked rule of (src, dst) differs
// between the word widths Go can target (32 and 64 bits).
func WordDependent(src, dst Kind) bool {
	return CheckedRuleAt(Word32, src, dst) != CheckedRuleAt(Word64, src, dst)
}

// Supports reports whether policy p defines a conversion from src to dst.
func Supports(p Policy, src, dst Kind) bool {
	if !p.Valid() || !src.Valid() || !dst.Valid() {
		return false
	}
	return capabilities[p].Contains(Pair{Src: src, Dst: dst}.Index())
}

// PoliciesFor returns the policies defined for (src, dst).
func PoliciesFor(src, dst Kind) []Policy {
	var out []Policy
	for _, p := range Policies() {
		if Supports(p, src, dst) {
			out = append(out, p)
		}
	}
	return out
}

// Pairs returns the pairs supported by p in matrix order.
func Pairs(p Policy) []Pair {
	if !p.Valid() {
		return nil
	}
	bm := capabilities[p]
	out := make([]Pair, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, PairAt(it.Next()))
	}
	return out
}

// Capabilities returns a copy of the bitmap of pair indexes supported by p.
func Capabilities(p Policy) *roaring.Bitmap {
	if !p.Valid() {
		return roaring.New()
	}
	return capabilities[p].Clone()
}

// Count returns the number of pairs supported by p.
func Count(p Policy) int {
	if !p.Valid() {
		return 0
	}
	return int(capabilities[p].GetCardinality())
}
