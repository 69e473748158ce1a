package huffpack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves, where 0 means "go left" and 1 means "go right".
//
// A tree built from 257 symbols can be up to 256 levels deep, so the bits are
// packed MSB-first into as many 64-bit words as needed.  The zero value is the
// empty Code.
type Code struct {
	size  int
	words []uint64
}

// MakeCode is a convenience function that constructs a Code from a list of
// bits, each of which must be 0 or 1.
func MakeCode(bits ...uint8) Code {
	var hc Code
	for _, bit := range bits {
		hc.Append(bit)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return hc.size
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) uint8 {
	assert.Assertf(i >= 0 && i < hc.size, "bit index %d out of range [0, %d)", i, hc.size)
	return uint8(hc.words[i/64]>>(63-uint(i%64))) & 1
}

// Append adds one bit to the end of this Code.
func (hc *Code) Append(bit uint8) {
	assert.Assertf(bit <= 1, "bit value %d is not 0 or 1", bit)
	index, mask := hc.size/64, uint64(1)<<(63-uint(hc.size%64))
	if index == len(hc.words) {
		hc.words = append(hc.words, 0)
	}
	if bit != 0 {
		hc.words[index] |= mask
	} else {
		hc.words[index] &^= mask
	}
	hc.size++
}

// Pop removes the last bit of this Code and returns it.
func (hc *Code) Pop() uint8 {
	assert.Assertf(hc.size > 0, "Pop called on an empty Code")
	bit := hc.Bit(hc.size - 1)
	hc.size--
	hc.words[hc.size/64] &^= uint64(1) << (63 - uint(hc.size%64))
	return bit
}

// Clone returns a copy of this Code that shares no storage with it.
func (hc Code) Clone() Code {
	numWords := (hc.size + 63) / 64
	out := Code{size: hc.size}
	if numWords != 0 {
		out.words = make([]uint64, numWords)
		copy(out.words, hc.words[:numWords])
	}
	return out
}

// Equal returns true iff both Codes hold the same sequence of bits.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// HasPrefix returns true iff the first prefix.Len() bits of this Code are
// the bits of prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := 0; i < prefix.size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Emit writes the bits of this Code, first bit first, to the given sink.
func (hc Code) Emit(w BitWriter) error {
	remaining := hc.size
	for _, word := range hc.words {
		if remaining <= 0 {
			break
		}
		n := 64
		if remaining < n {
			n = remaining
		}
		if err := w.WriteBits(word>>(64-uint(n)), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(hc.size)
	for i := 0; i < hc.size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
