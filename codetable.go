package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/samber/lo"
)

// CodeTable maps each Symbol in a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
}

// MakeCodeTable walks the tree rooted at root and records the path to every
// leaf.  If root is itself a leaf, its Symbol gets the empty Code.
func MakeCodeTable(root *Node) CodeTable {
	var table CodeTable
	var path Code
	table.walk(root, &path)
	return table
}

func (table *CodeTable) walk(n *Node, path *Code) {
	if n.IsLeaf() {
		assert.Assertf(n.Symbol.IsValid(), "leaf symbol %d outside the alphabet", int32(n.Symbol))
		assert.Assertf(!table.present[n.Symbol], "symbol %s appears in more than one leaf", n.Symbol)
		table.codes[n.Symbol] = path.Clone()
		table.present[n.Symbol] = true
		return
	}
	path.Append(0)
	table.walk(n.Left, path)
	path.Pop()
	path.Append(1)
	table.walk(n.Right, path)
	path.Pop()
}

// Lookup returns the Code for the given Symbol, and false if the Symbol has
// no leaf in the tree.
func (table *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !table.present[symbol] {
		return Code{}, false
	}
	return table.codes[symbol], true
}

// Encode returns the Code for a Symbol that is known to be in the table.
func (table *CodeTable) Encode(symbol Symbol) Code {
	hc, found := table.Lookup(symbol)
	assert.Assertf(found, "symbol %s has no code", symbol)
	return hc
}

// Symbols returns, in ascending order, every Symbol that has a Code.
func (table *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for index, found := range table.present {
		if found {
			out = append(out, Symbol(index))
		}
	}
	return out
}

// Len returns the number of Symbols that have a Code.
func (table *CodeTable) Len() int {
	return lo.Count(table.present[:], true)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a Code are omitted.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, table.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
