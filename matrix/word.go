package matrix

import (
	"fmt"
	"math/bits"
)

// Word is a platform word width in bits.
type Word int

// Supported word widths.
const (
	Word16 Word = 16
	Word32 Word = 32
	Word64 Word = 64
)

// WordBits is the word width of the compiled target.
const WordBits = bits.UintSize

// Compilation fails unless the target word is 32 or 64 bits wide.
var _ = [1]struct{}{}[(WordBits-32)*(WordBits-64)]

// Words returns every tabulated word width, narrowest first.
func Words() []Word {
	return []Word{Word16, Word32, Word64}
}

// Current returns the word width of the compiled target.
func Current() Word { return Word(WordBits) }

// Valid reports whether w is a tabulated word width.
func (w Word) Valid() bool {
	return w == Word16 || w == Word32 || w == Word64
}

func (w Word) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

func (w Word) index() int {
	switch w {
	case Word16:
		return 0
	case Word32:
		return 1
	default:
		return 2
	}
}
