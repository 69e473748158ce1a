package huffpack

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Errors returned by Decompress and ReadHeader.  Callers should compare with
// errors.Is, since the returned errors carry additional detail.
var (
	// ErrFormat indicates that the input is not a huffpack stream: the
	// magic number is wrong, or the tree header describes an impossible
	// tree.
	ErrFormat = errors.New("huffpack: not a Huffman tree-header stream")

	// ErrTruncatedHeader indicates that the input ended inside the magic
	// number or the tree header.
	ErrTruncatedHeader = errors.New("huffpack: truncated tree header")

	// ErrMissingTerminator indicates that the input ended before the
	// EndOfStream code was decoded.
	ErrMissingTerminator = errors.New("huffpack: bad input, no end-of-stream code")
)

// isEndOfData reports whether err is the bit source's end-of-data signal.
func isEndOfData(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// failureReason maps an error to the label used by the failures metric.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrTruncatedHeader):
		return "truncated_header"
	case errors.Is(err, ErrMissingTerminator):
		return "missing_terminator"
	default:
		return "io"
	}
}
