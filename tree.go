package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf holds a Symbol; an internal node
// holds InvalidSymbol and exactly two children, which it owns exclusively.
//
// Weight is the construction-time priority key: a leaf's symbol count, or
// the (saturating) sum of the children's weights.  Trees decoded from a
// header have zero weights throughout.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d outside the alphabet", int32(symbol))
	return &Node{Symbol: symbol, Weight: weight}
}

// NewInternal constructs an internal Node that takes ownership of both
// children.
func NewInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children")
	return &Node{
		Symbol: InvalidSymbol,
		Weight: saturatingAdd(left.Weight, right.Weight),
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	assert.Assertf((n.Left == nil) == (n.Right == nil), "node has exactly one child")
	return n.Left == nil
}

// Leaves returns the number of leaves in the tree rooted at this Node.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Depth returns the length of the longest path from this Node to a leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	left, right := n.Left.Depth(), n.Right.Depth()
	if left < right {
		left = right
	}
	return left + 1
}

// Dump writes a programmer-readable debugging dump of the tree rooted at
// this Node to the given writer.  Nodes are listed in preorder, each with the
// path that leads to it.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	var path Code
	buf.WriteString("Tree{\n")
	n.dump(&buf, &path)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, path *Code) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\t%s = %s (%d)\n", path, n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "\t%s = * (%d)\n", path, n.Weight)
	path.Append(0)
	n.Left.dump(buf, path)
	path.Pop()
	path.Append(1)
	n.Right.dump(buf, path)
	path.Pop()
}

// BuildTree constructs a Huffman tree with one leaf for every Symbol that
// has a nonzero count in freqs.  The EndOfStream count must be nonzero.
//
// The two lightest nodes are merged repeatedly, the first one removed
// becoming the left child.  Nodes of equal weight are ordered by insertion:
// leaves in ascending Symbol order, then merged nodes in order of creation.
// The result is therefore deterministic for a given table.
//
// If only one Symbol qualifies, its leaf is returned as the root.
//
func BuildTree(freqs FrequencyTable) *Node {
	assert.Assertf(freqs[EndOfStream] != 0, "EndOfStream must have a nonzero count")

	symbols := freqs.Symbols()
	h := nodeHeap{list: make([]weightedNode, 0, len(symbols))}
	var seq uint32
	for _, symbol := range symbols {
		h.list = append(h.list, weightedNode{NewLeaf(symbol, freqs[symbol]), seq})
		seq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		heap.Push(&h, weightedNode{NewInternal(a.node, b.node), seq})
		seq++
	}

	root := heap.Pop(&h).(weightedNode).node
	assert.Assertf(root.Leaves() == len(symbols), "tree has %d leaves, expected %d", root.Leaves(), len(symbols))
	return root
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
