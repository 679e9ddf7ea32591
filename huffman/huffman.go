// Package huffman implements the symbol model, tree construction, code
// assignment and tree header codec behind the huffpack archive format.
//
// The alphabet is the 256 literal byte values plus one synthetic
// end-of-stream symbol. The end-of-stream symbol lets the bit-packed body
// mark its own end even when it does not finish on a byte boundary.
package huffman

import "io"

const (
	// SymbolBits is the width of a serialized leaf value: one bit wider than
	// a byte so the end-of-stream value (256) fits.
	SymbolBits = 9

	// NumSymbols counts the 256 literal byte values plus the end-of-stream
	// symbol.
	NumSymbols = 257
)

// EOS is the synthetic end-of-stream symbol terminating every encoded body.
const EOS Symbol = 256

// Symbol identifies a literal byte value (0-255) or the end-of-stream
// sentinel (256).
type Symbol uint16

// Histogram maps each symbol to its occurrence count.
type Histogram [NumSymbols]uint64

// Scan consumes r to exhaustion, counting every byte. Before returning it
// guarantees the end-of-stream symbol has a count of at least 1, so a tree
// built from the histogram always contains a reachable end-of-stream leaf.
func (h *Histogram) Scan(r io.ByteReader) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		h[b]++
	}
	if h[EOS] == 0 {
		h[EOS] = 1
	}
	return nil
}

// Total returns the sum of all counts.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, count := range h {
		total += count
	}
	return total
}

// Node is a node of a Huffman tree. A leaf carries a symbol and its weight;
// an internal node carries exactly two children and the sum of their
// weights. Trees are never mutated after construction.
type Node struct {
	Symbol Symbol // meaningful only when Leaf reports true
	Weight uint64
	Left   *Node
	Right  *Node
}

// Leaf reports whether n carries a symbol. Internal nodes always have two
// children, so checking one side is enough.
func (n *Node) Leaf() bool { return n.Left == nil }
