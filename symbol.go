package huffpack

import (
	"strconv"
)

// Symbol represents one element of the 257-value alphabet: the 256 literal
// byte values plus the EndOfStream sentinel.  Negative symbols are not valid.
type Symbol int32

const (
	// EndOfStream is the reserved sentinel that terminates an encoded
	// payload.  It never appears in real input.
	EndOfStream = Symbol(256)

	// NumSymbols is the size of the alphabet.
	NumSymbols = int(EndOfStream) + 1

	// InvalidSymbol is carried by internal tree nodes, and is returned by
	// some functions to clearly indicate that no symbol is being returned.
	InvalidSymbol = Symbol(-1)
)

// symbolBits is the width of a leaf's symbol field in the tree header.  One
// more bit than a literal byte, so that EndOfStream fits.
const symbolBits = 9

// IsLiteral returns true iff this Symbol stands for a byte value.
func (sym Symbol) IsLiteral() bool {
	return sym >= 0 && sym < EndOfStream
}

// IsValid returns true iff this Symbol belongs to the alphabet.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= EndOfStream
}

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	switch {
	case sym == EndOfStream:
		return "EOS"
	case sym == InvalidSymbol:
		return "-"
	default:
		return strconv.FormatInt(int64(sym), 10)
	}
}
