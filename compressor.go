package huffpack

import (
	"bufio"
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/icza/bitio"
	"go.uber.org/zap"
)

const (
	// magicNumber identifies a stream whose payload is preceded by a
	// preorder tree header.
	magicNumber = uint64(0xface8201)

	// magicBits is the width of magicNumber on the wire.
	magicBits = 32
)

// Compressor produces self-describing Huffman-coded streams.  The zero value
// is ready to use; Init applies Options.
type Compressor struct {
	opts options
}

// Init initializes this Compressor.
func (c *Compressor) Init(opts ...Option) {
	*c = Compressor{opts: buildOptions(opts)}
}

// Compress reads all of src, builds a Huffman tree from its byte counts, and
// writes to dst the magic number, the tree header, the code of every input
// byte, and finally the EndOfStream code.  The output is padded with zero
// bits to a byte boundary.
//
// src is read twice.  If it implements io.Seeker, it is rewound to its
// starting offset for the second pass; otherwise its contents are buffered
// in memory during the first pass.
//
// The bit sink is flushed on every return path.  Errors from src and dst are
// returned unchanged, combined with any flush error.
//
func (c *Compressor) Compress(dst io.Writer, src io.Reader) (stats Stats, err error) {
	o := c.opts.resolved()
	defer func() {
		o.metrics.observe(opCompress, stats, err)
		if err != nil {
			o.logger.Debug("compress failed", append(stats.fields(), zap.Error(err))...)
			return
		}
		o.logger.Debug("compress finished", append(stats.fields(), zap.Float64("ratio", stats.Ratio()))...)
	}()

	first, rewind := rewindable(src)
	freqs, err := CountFrequencies(first)
	if err != nil {
		return stats, err
	}
	root := BuildTree(freqs)
	table := MakeCodeTable(root)
	o.logger.Debug("built Huffman tree",
		zap.Uint64("literals", freqs.Literals()),
		zap.Int("leaves", root.Leaves()),
		zap.Int("depth", root.Depth()))

	bw := bitio.NewWriter(dst)
	cw := &countingWriter{w: bw}
	defer func() {
		err = errors.CombineErrors(err, bw.Close())
		stats.BitsWritten = cw.bits
		stats.BytesOut = bitsToBytes(cw.bits)
	}()

	if err = cw.WriteBits(magicNumber, magicBits); err != nil {
		return stats, err
	}
	if err = WriteHeader(cw, root); err != nil {
		return stats, err
	}
	o.logger.Debug("wrote tree header", zap.Int64("bits", cw.bits-magicBits))

	second, err := rewind()
	if err != nil {
		return stats, err
	}
	stats.BytesIn, err = encodePayload(cw, &table, second)
	if err != nil {
		return stats, err
	}
	return stats, table.Encode(EndOfStream).Emit(cw)
}

// rewindable returns a reader for the counting pass, plus a function that
// returns a reader positioned at the start of the same input for the
// encoding pass.
func rewindable(src io.Reader) (io.Reader, func() (io.Reader, error)) {
	if seeker, ok := src.(io.ReadSeeker); ok {
		// Pipes and terminals implement Seek but fail it.
		if start, err := seeker.Seek(0, io.SeekCurrent); err == nil {
			return src, func() (io.Reader, error) {
				if _, err := seeker.Seek(start, io.SeekStart); err != nil {
					return nil, err
				}
				return src, nil
			}
		}
	}

	var buf bytes.Buffer
	return io.TeeReader(src, &buf), func() (io.Reader, error) {
		return &buf, nil
	}
}

func encodePayload(w BitWriter, table *CodeTable, r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		hc, found := table.Lookup(Symbol(b))
		if !found {
			return n, errors.Newf("huffpack: byte %d at offset %d was not counted; input changed between passes", b, n)
		}
		if err := hc.Emit(w); err != nil {
			return n, err
		}
		n++
	}
}

// Compress is a convenience wrapper around Compressor.Compress.
func Compress(dst io.Writer, src io.Reader, opts ...Option) (Stats, error) {
	var c Compressor
	c.Init(opts...)
	return c.Compress(dst, src)
}

// CompressBytes compresses p into a new byte slice.
func CompressBytes(p []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(p), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
