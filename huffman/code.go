package huffman

// Code is one symbol's bit string: the low Len bits of Bits, most significant
// decision first (left = 0, right = 1).
type Code struct {
	Bits uint64
	Len  uint8
}

// Table maps each symbol to its code. Symbols absent from the tree keep a
// zero-length code. Codes are prefix-free by construction: they correspond to
// distinct leaves of a binary tree.
type Table [NumSymbols]Code

// NewTable assigns codes by a depth-first walk of the tree: descending left
// appends a 0 bit, descending right a 1 bit. Build never returns a bare leaf,
// so every assigned code has length >= 1.
func NewTable(root *Node) *Table {
	t := new(Table)
	t.assign(root, 0, 0)
	return t
}

func (t *Table) assign(n *Node, bits uint64, depth uint8) {
	if n.Leaf() {
		t[n.Symbol] = Code{Bits: bits, Len: depth}
		return
	}
	t.assign(n.Left, bits<<1, depth+1)
	t.assign(n.Right, bits<<1|1, depth+1)
}
