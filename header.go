package huffpack

import (
	"github.com/cockroachdb/errors"
)

// maxHeaderDepth bounds the nesting of a decoded tree.  A tree whose leaves
// hold distinct symbols from the alphabet has at most NumSymbols-1 levels
// of internal nodes.
const maxHeaderDepth = NumSymbols - 1

// WriteHeader serializes the tree rooted at root in preorder.  An internal
// node is written as a 0 bit followed by its left and right subtrees; a leaf
// is written as a 1 bit followed by its Symbol in a 9-bit field.
func WriteHeader(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		return w.WriteBits(uint64(root.Symbol), symbolBits)
	}
	if err := w.WriteBits(0, 1); err != nil {
		return err
	}
	if err := WriteHeader(w, root.Left); err != nil {
		return err
	}
	return WriteHeader(w, root.Right)
}

// ReadHeader deserializes a tree written by WriteHeader.  The returned
// tree has zero weights.
//
// If r runs out of bits before the tree is complete, the error matches
// ErrTruncatedHeader.  A leaf symbol outside the alphabet, or nesting deeper
// than any valid tree, yields an error matching ErrFormat.
//
func ReadHeader(r BitReader) (*Node, error) {
	return readHeader(r, 0)
}

func readHeader(r BitReader, depth int) (*Node, error) {
	tag, err := r.ReadBits(1)
	if err != nil {
		return nil, headerError(err, "node tag", depth)
	}

	if tag == 1 {
		value, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, headerError(err, "leaf symbol", depth)
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrFormat, "leaf symbol %d at depth %d is outside the alphabet", value, depth)
		}
		return NewLeaf(symbol, 0), nil
	}

	if depth >= maxHeaderDepth {
		return nil, errors.Wrapf(ErrFormat, "tree header nests deeper than %d levels", maxHeaderDepth)
	}
	left, err := readHeader(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readHeader(r, depth+1)
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}

func headerError(err error, what string, depth int) error {
	if isEndOfData(err) {
		return errors.Wrapf(ErrTruncatedHeader, "end of input while reading %s at depth %d", what, depth)
	}
	return err
}
