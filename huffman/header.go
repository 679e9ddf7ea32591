package huffman

import (
	"errors"

	"github.com/icza/bitio"
)

// Tree header layout, preorder: an internal node is a single 0 bit followed
// by its left then right subtree; a leaf is a single 1 bit followed by a
// SymbolBits-wide value.

// ErrSymbolRange reports a serialized leaf value outside the valid symbol
// range.
var ErrSymbolRange = errors.New("huffman: leaf symbol out of range")

// ErrTreeTooDeep reports a header that nests internal nodes deeper than any
// valid tree can.
var ErrTreeTooDeep = errors.New("huffman: tree header nests too deep")

// maxTreeDepth bounds header recursion. A tree over NumSymbols leaves never
// has a root-to-leaf path longer than NumSymbols-1 edges, so anything deeper
// is hostile input, not a tree.
const maxTreeDepth = NumSymbols - 1

// WriteTree serializes the tree rooted at n.
func WriteTree(w *bitio.Writer, n *Node) error {
	if n.Leaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.Symbol), SymbolBits)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := WriteTree(w, n.Left); err != nil {
		return err
	}
	return WriteTree(w, n.Right)
}

// ReadTree reconstructs a tree serialized by WriteTree. Weights never appear
// on the wire and decoding does not need them, so nodes come back with weight
// zero. Running out of bits mid-tree surfaces as the reader's end-of-input
// error; a header nesting past maxTreeDepth fails with ErrTreeTooDeep rather
// than recursing without bound on attacker-supplied zero bits.
func ReadTree(r *bitio.Reader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r *bitio.Reader, depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, ErrTreeTooDeep
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if leaf {
		value, err := r.ReadBits(SymbolBits)
		if err != nil {
			return nil, err
		}
		if value >= NumSymbols {
			return nil, ErrSymbolRange
		}
		return &Node{Symbol: Symbol(value)}, nil
	}
	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
