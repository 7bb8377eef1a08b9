package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	assert.Equal(t, 182, Count(Checked))
	assert.Equal(t, 12, Count(Wrapping))
	assert.Equal(t, 35, Count(Extending))
	assert.Equal(t, 24, Count(Truncating))
	assert.Zero(t, Count(Policy(7)))
}

// Rules of the pairs involving uint and int at 16, 32 and 64-bit words.
var wordRules = []struct {
	src, dst Kind
	rules    [3]Rule
}{
	{Uint8, Uint, [3]Rule{Infallible, Infallible, Infallible}},
	{Uint16, Int, [3]Rule{Upper, Infallible, Infallible}},
	{Uint32, Uint, [3]Rule{Upper, Infallible, Infallible}},
	{Uint32, Int, [3]Rule{Upper, Upper, Infallible}},
	{Uint64, Uint, [3]Rule{Upper, Upper, Infallible}},
	{Uint64, Int, [3]Rule{Upper, Upper, Upper}},
	{Uint128, Uint, [3]Rule{Upper, Upper, Upper}},
	{Int8, Uint, [3]Rule{Lower, Lower, Lower}},
	{Int32, Uint, [3]Rule{Both, Lower, Lower}},
	{Int32, Int, [3]Rule{Both, Infallible, Infallible}},
	{Int64, Uint, [3]Rule{Both, Both, Lower}},
	{Int64, Int, [3]Rule{Both, Both, Infallible}},
	{Int128, Int, [3]Rule{Both, Both, Both}},
	{Uint, Uint16, [3]Rule{Infallible, Upper, Upper}},
	{Uint, Uint32, [3]Rule{Infallible, Infallible, Upper}},
	{Uint, Int32, [3]Rule{Infallible, Upper, Upper}},
	{Uint, Int64, [3]Rule{Infallible, Infallible, Upper}},
	{Uint, Int, [3]Rule{Upper, Upper, Upper}},
	{Int, Uint8, [3]Rule{Both, Both, Both}},
	{Int, Uint16, [3]Rule{Lower, Both, Both}},
	{Int, Uint32, [3]Rule{Lower, Lower, Both}},
	{Int, Uint64, [3]Rule{Lower, Lower, Lower}},
	{Int, Int16, [3]Rule{Infallible, Both, Both}},
	{Int, Int32, [3]Rule{Infallible, Infallible, Both}},
	{Int, Uint, [3]Rule{Lower, Lower, Lower}},
	{Int, Int, [3]Rule{Infallible, Infallible, Infallible}},
}

func TestCheckedRuleAt(t *testing.T) {
	t.Run("word-sized pairs", func(t *testing.T) {
		for _, tt := range wordRules {
			var got [3]Rule
			for i, w := range Words() {
				got[i] = CheckedRuleAt(w, tt.src, tt.dst)
			}
			assert.Equal(t, tt.rules, got, Pair{Src: tt.src, Dst: tt.dst}.String())
		}
	})

	t.Run("fixed width", func(t *testing.T) {
		tests := []struct {
			src, dst Kind
			want     Rule
		}{
			{Uint8, Uint8, Infallible},
			{Uint16, Uint8, Upper},
			{Uint8, Int8, Upper},
			{Int8, Uint8, Lower},
			{Int32, Uint16, Both},
			{Int8, Uint128, Lower},
			{Int128, Uint128, Lower},
			{Uint128, Int128, Upper},
			{Int16, Int64, Infallible},
			{Uint8, Float32, Infallible},
			{Int16, Float32, Infallible},
			{Uint32, Float32, Unsupported},
			{Int32, Float64, Infallible},
			{Uint64, Float64, Unsupported},
			{Uint128, Float64, Unsupported},
			{Float32, Uint128, Float},
			{Float64, Int8, Float},
			{Float64, Float32, FloatNarrow},
			{Float32, Float64, Infallible},
			{Float64, Float64, Infallible},
		}
		for _, tt := range tests {
			for _, w := range Words() {
				assert.Equal(t, tt.want, CheckedRuleAt(w, tt.src, tt.dst), "%s->%s at %s", tt.src, tt.dst, w)
			}
		}
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.Equal(t, Unsupported, CheckedRuleAt(Word(8), Uint8, Uint8))
		assert.Equal(t, Unsupported, CheckedRuleAt(Word64, Kind(20), Uint8))
	})

	t.Run("compiled target", func(t *testing.T) {
		assert.Equal(t, CheckedRuleAt(Current(), Int, Int16), CheckedRule(Int, Int16))
		if WordBits == 32 {
			assert.Equal(t, Upper, CheckedRule(Uint64, Uint))
		} else {
			assert.Equal(t, Infallible, CheckedRule(Uint64, Uint))
		}
	})
}

func TestWordDependent(t *testing.T) {
	var got []string
	for _, p := range Pairs(Checked) {
		if WordDependent(p.Src, p.Dst) {
			got = append(got, p.FuncName())
		}
	}
	want := []string{
		"Uint32ToInt", "Uint64ToUint", "Int64ToUint", "Int64ToInt",
		"UintToUint32", "UintToInt64", "IntToUint32", "IntToInt32",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("word-dependent pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestPolicyWidths(t *testing.T) {
	for _, w := range Words() {
		for _, p := range Pairs(Wrapping) {
			assert.Equal(t, p.Src.BitsAt(w), p.Dst.BitsAt(w), "wrapping %s at %s", p, w)
			assert.NotEqual(t, p.Src.Signed(), p.Dst.Signed())
		}
		for _, p := range Pairs(Extending) {
			if p.Dst.Float() {
				continue
			}
			assert.Less(t, p.Src.BitsAt(w), p.Dst.BitsAt(w), "extending %s at %s", p, w)
			assert.Equal(t, p.Src.Signed(), p.Dst.Signed())
		}
		for _, p := range Pairs(Truncating) {
			assert.Greater(t, p.Src.BitsAt(w), p.Dst.BitsAt(w), "truncating %s at %s", p, w)
			assert.Equal(t, p.Src.Signed(), p.Dst.Signed())
		}
	}
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports(Wrapping, Uint8, Int8))
	assert.True(t, Supports(Wrapping, Int, Uint))
	assert.False(t, Supports(Wrapping, Uint64, Int))
	assert.False(t, Supports(Extending, Uint16, Int32))
	assert.True(t, Supports(Extending, Uint8, Uint))
	assert.False(t, Supports(Extending, Uint16, Uint))
	assert.True(t, Supports(Extending, Uint, Uint128))
	assert.True(t, Supports(Extending, Int32, Float64))
	assert.False(t, Supports(Extending, Int32, Float32))
	assert.True(t, Supports(Truncating, Int128, Int))
	assert.False(t, Supports(Truncating, Int64, Int))
	assert.False(t, Supports(Checked, Uint, Float64))
	assert.False(t, Supports(Policy(9), Uint8, Uint8))

	assert.Equal(t, []Policy{Checked, Wrapping}, PoliciesFor(Uint8, Int8))
	assert.Equal(t, []Policy{Checked, Extending}, PoliciesFor(Int8, Int16))
	assert.Equal(t, []Policy{Checked, Truncating}, PoliciesFor(Uint, Uint8))
	assert.Empty(t, PoliciesFor(Uint64, Float32))
}

func TestPairs(t *testing.T) {
	pairs := Pairs(Truncating)
	require.NotEmpty(t, pairs)
	for i := 1; i < len(pairs); i++ {
		assert.Less(t, pairs[i-1].Index(), pairs[i].Index())
	}
	assert.Equal(t, Pair{Src: Uint16, Dst: Uint8}, pairs[0])

	for _, p := range Pairs(Checked) {
		assert.Equal(t, p, PairAt(p.Index()))
	}
	assert.Nil(t, Pairs(Policy(4)))
}

func TestCapabilitiesIsACopy(t *testing.T) {
	bm := Capabilities(Wrapping)
	bm.Add(Pair{Src: Uint8, Dst: Uint16}.Index())

	assert.False(t, Supports(Wrapping, Uint8, Uint16))
	assert.Equal(t, 12, Count(Wrapping))
	assert.True(t, Capabilities(Policy(5)).IsEmpty())
}

func TestPair(t *testing.T) {
	p := Pair{Src: Uint128, Dst: Int}
	assert.Equal(t, "Uint128ToInt", p.FuncName())
	assert.Equal(t, "uint128->int", p.String())
}
