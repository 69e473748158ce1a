package huffpack

import (
	"github.com/icza/bitio"
)

// BitReader is the bit source consumed by ReadHeader and the decompressor.
// ReadBits returns the next n bits, first bit most significant, or io.EOF /
// io.ErrUnexpectedEOF once the source is exhausted.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the bit sink consumed by WriteHeader and the compressor.
// WriteBits writes the n lowest bits of r, most significant first.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// countingReader tallies the bits successfully read through it.
type countingReader struct {
	r    BitReader
	bits int64
}

func (cr *countingReader) ReadBits(n uint8) (uint64, error) {
	u, err := cr.r.ReadBits(n)
	if err == nil {
		cr.bits += int64(n)
	}
	return u, err
}

// countingWriter tallies the bits successfully written through it.
type countingWriter struct {
	w    BitWriter
	bits int64
}

func (cw *countingWriter) WriteBits(r uint64, n uint8) error {
	err := cw.w.WriteBits(r, n)
	if err == nil {
		cw.bits += int64(n)
	}
	return err
}

var (
	_ BitReader = (*countingReader)(nil)
	_ BitWriter = (*countingWriter)(nil)
)
