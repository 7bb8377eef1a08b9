package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	assert.Len(t, Kinds(), NumKinds)
	assert.Equal(t, "uint128", Uint128.String())
	assert.Equal(t, "mathutil.Int128", Int128.GoType())
	assert.Equal(t, "Float32", Float32.Name())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.False(t, Kind(99).Signed())

	assert.True(t, Float64.Signed())
	assert.True(t, Float64.Float())
	assert.False(t, Float64.Integer())
	assert.Equal(t, 53, Float64.Digits())
	assert.Zero(t, Int64.Digits())
	assert.True(t, Int128.Wide())
	assert.True(t, Uint.WordSized())

	assert.Equal(t, 16, Int.BitsAt(Word16))
	assert.Equal(t, 64, Uint.BitsAt(Word64))
	assert.Equal(t, 128, Uint128.BitsAt(Word32))
	assert.Equal(t, WordBits, Uint.Bits())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"u8":      Uint8,
		"uint16":  Uint16,
		"Uint32":  Uint32,
		"i128":    Int128,
		"int128":  Int128,
		"usize":   Uint,
		" isize ": Int,
		"int":     Int,
		"F32":     Float32,
		"float64": Float64,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "u7", "uint128.Uint128", "byte"} {
		_, err := ParseKind(in)
		assert.Error(t, err, in)
	}

	for _, k := range Kinds() {
		got, err := ParseKind(k.Short())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestPolicyAndRule(t *testing.T) {
	p, err := ParsePolicy("Truncating")
	require.NoError(t, err)
	assert.Equal(t, Truncating, p)
	_, err = ParsePolicy("saturating")
	assert.Error(t, err)

	assert.True(t, Checked.Fallible())
	assert.False(t, Wrapping.Fallible())
	assert.Equal(t, "Policy(9)", Policy(9).String())

	assert.Equal(t, "float-narrow", FloatNarrow.String())
	assert.True(t, Both.ChecksUpper())
	assert.True(t, Both.ChecksLower())
	assert.False(t, Upper.ChecksLower())
	assert.False(t, Infallible.Fallible())
	assert.False(t, Unsupported.Fallible())
	assert.True(t, Float.Fallible())
}

func TestWord(t *testing.T) {
	assert.True(t, Current().Valid())
	assert.NotEqual(t, Word16, Current())
	assert.Equal(t, "32-bit", Word32.String())
	assert.False(t, Word(48).Valid())
}
