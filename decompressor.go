package huffpack

import (
	"bufio"
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/icza/bitio"
	"go.uber.org/zap"
)

// Decompressor reconstructs the original bytes from a stream produced by
// Compressor.  The zero value is ready to use; Init applies Options.
type Decompressor struct {
	opts options
}

// Init initializes this Decompressor.
func (d *Decompressor) Init(opts ...Option) {
	*d = Decompressor{opts: buildOptions(opts)}
}

// Decompress reads a magic number, a tree header, and a Huffman-coded
// payload from src, writing the decoded bytes to dst.  Decoding stops at
// the first EndOfStream code; any bits after it are ignored.
//
// Malformed input yields an error matching ErrFormat, ErrTruncatedHeader,
// or ErrMissingTerminator.  Bytes decoded before the failure have already
// been written to dst, and are a prefix of the original input.
//
// The output is flushed on every return path.
//
func (d *Decompressor) Decompress(dst io.Writer, src io.Reader) (stats Stats, err error) {
	o := d.opts.resolved()
	defer func() {
		o.metrics.observe(opDecompress, stats, err)
		if err != nil {
			o.logger.Debug("decompress failed", append(stats.fields(), zap.Error(err))...)
			return
		}
		o.logger.Debug("decompress finished", stats.fields()...)
	}()

	cr := &countingReader{r: bitio.NewReader(src)}
	out := bufio.NewWriter(dst)
	defer func() {
		err = errors.CombineErrors(err, out.Flush())
		stats.BitsRead = cr.bits
		stats.BytesIn = bitsToBytes(cr.bits)
	}()

	magic, err := cr.ReadBits(magicBits)
	if err != nil {
		if isEndOfData(err) {
			err = errors.Wrap(ErrTruncatedHeader, "end of input while reading magic number")
		}
		return stats, err
	}
	if magic != magicNumber {
		return stats, errors.Wrapf(ErrFormat, "illegal header starts with 0x%08x", magic)
	}

	root, err := ReadHeader(cr)
	if err != nil {
		return stats, err
	}
	o.logger.Debug("read tree header",
		zap.Int64("bits", cr.bits-magicBits),
		zap.Int("leaves", root.Leaves()),
		zap.Int("depth", root.Depth()))

	stats.BytesOut, err = decodePayload(out, root, cr)
	return stats, err
}

// decodePayload walks the tree one bit at a time, emitting the Symbol of
// each literal leaf reached, until it reaches the EndOfStream leaf.
func decodePayload(w io.ByteWriter, root *Node, r BitReader) (int64, error) {
	if root.IsLeaf() {
		if root.Symbol == EndOfStream {
			return 0, nil
		}
		return 0, errors.Wrapf(ErrMissingTerminator, "tree holds only symbol %s", root.Symbol)
	}

	var n int64
	current := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			if isEndOfData(err) {
				return n, errors.Wrapf(ErrMissingTerminator, "end of input after %d decoded bytes", n)
			}
			return n, err
		}

		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}
		if !current.IsLeaf() {
			continue
		}

		if current.Symbol == EndOfStream {
			return n, nil
		}
		if err := w.WriteByte(byte(current.Symbol)); err != nil {
			return n, err
		}
		n++
		current = root
	}
}

// Decompress is a convenience wrapper around Decompressor.Decompress.
func Decompress(dst io.Writer, src io.Reader, opts ...Option) (Stats, error) {
	var d Decompressor
	d.Init(opts...)
	return d.Decompress(dst, src)
}

// DecompressBytes decompresses p into a new byte slice.  On error, no bytes
// are returned.
func DecompressBytes(p []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(p), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
