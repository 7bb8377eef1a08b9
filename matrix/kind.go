package matrix

import (
	"fmt"
	"strings"
)

// Kind identifies one of the numeric types numconv converts between.
type Kind uint8

// Kinds in matrix order. The order is part of the generated code layout.
const (
	Uint8 Kind = iota
	Uint16
	Uint32
	Uint64
	Uint128
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint
	Int
	Float32
	Float64
)

// NumKinds is the number of kinds.
const NumKinds = 14

type kindInfo struct {
	name   string // exported name fragment, e.g. "Uint16"
	goType string // Go spelling, e.g. "uint16" or "uint128.Uint128"
	bits   int    // 0 for the word-sized kinds
	signed bool
	float  bool
	digits int // significand precision of float kinds
}

var kinds = [NumKinds]kindInfo{
	Uint8:   {name: "Uint8", goType: "uint8", bits: 8},
	Uint16:  {name: "Uint16", goType: "uint16", bits: 16},
	Uint32:  {name: "Uint32", goType: "uint32", bits: 32},
	Uint64:  {name: "Uint64", goType: "uint64", bits: 64},
	Uint128: {name: "Uint128", goType: "uint128.Uint128", bits: 128},
	Int8:    {name: "Int8", goType: "int8", bits: 8, signed: true},
	Int16:   {name: "Int16", goType: "int16", bits: 16, signed: true},
	Int32:   {name: "Int32", goType: "int32", bits: 32, signed: true},
	Int64:   {name: "Int64", goType: "int64", bits: 64, signed: true},
	Int128:  {name: "Int128", goType: "mathutil.Int128", bits: 128, signed: true},
	Uint:    {name: "Uint", goType: "uint"},
	Int:     {name: "Int", goType: "int", signed: true},
	Float32: {name: "Float32", goType: "float32", bits: 32, signed: true, float: true, digits: 24},
	Float64: {name: "Float64", goType: "float64", bits: 64, signed: true, float: true, digits: 53},
}

// Kinds returns all kinds in matrix order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// String returns the lower-case Go-like name of the kind ("uint16", "int128").
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	switch k {
	case Uint128:
		return "uint128"
	case Int128:
		return "int128"
	}
	return kinds[k].goType
}

// Name returns the exported identifier fragment used in generated function
// names, e.g. "Uint16" in Uint16ToUint8.
func (k Kind) Name() string {
	if !k.Valid() {
		return k.String()
	}
	return kinds[k].name
}

// GoType returns the Go spelling of the kind as used in generated code.
func (k Kind) GoType() string {
	if !k.Valid() {
		return k.String()
	}
	return kinds[k].goType
}

// Signed reports whether the kind can hold negative values.
func (k Kind) Signed() bool { return k.Valid() && kinds[k].signed }

// Float reports whether the kind is a floating-point kind.
func (k Kind) Float() bool { return k.Valid() && kinds[k].float }

// Integer reports whether the kind is an integer kind.
func (k Kind) Integer() bool { return k.Valid() && !kinds[k].float }

// Wide reports whether the kind is one of the 128-bit integers.
func (k Kind) Wide() bool { return k == Uint128 || k == Int128 }

// WordSized reports whether the kind's width is the platform word width.
func (k Kind) WordSized() bool { return k == Uint || k == Int }

// Digits returns the significand precision in bits of a float kind, 0 otherwise.
func (k Kind) Digits() int {
	if !k.Float() {
		return 0
	}
	return kinds[k].digits
}

// Bits returns the width of k on the compiled target.
func (k Kind) Bits() int { return k.BitsAt(Current()) }

// BitsAt returns the width of k on a target with word width w.
func (k Kind) BitsAt(w Word) int {
	if !k.Valid() {
		return 0
	}
	if k.WordSized() {
		return int(w)
	}
	return kinds[k].bits
}

// ParseKind parses a kind name. It accepts the String form ("uint16",
// "int128"), the Name form ("Uint16") and the short forms "u16", "i128",
// "usize", "isize", "f32" and "f64".
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return 0, fmt.Errorf("empty numeric kind")
	}
	for i := range kinds {
		k := Kind(i)
		if key == strings.ToLower(kinds[i].name) || key == k.String() || key == k.Short() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown numeric kind %q", s)
}

// Short returns the compact name of the kind: "u16", "i128", "f32", and
// "usize" or "isize" for the word-sized kinds.
func (k Kind) Short() string {
	if !k.Valid() {
		return k.String()
	}
	info := kinds[k]
	switch {
	case k == Uint:
		return "usize"
	case k == Int:
		return "isize"
	case info.float:
		return fmt.Sprintf("f%d", info.bits)
	case info.signed:
		return fmt.Sprintf("i%d", info.bits)
	default:
		return fmt.Sprintf("u%d", info.bits)
	}
}
