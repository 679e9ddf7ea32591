package huffman

import "container/heap"

// Build constructs a Huffman tree whose leaves are the symbols with a
// positive count in h, by repeatedly merging the two lowest-weight nodes.
//
// Equal weights resolve by creation order: leaves are created in ascending
// symbol order, merged nodes in merge order, and the earliest-created node is
// removed first. Two runs over the same histogram therefore produce
// bit-identical trees, and so do two independent implementations of the same
// rule.
func Build(h *Histogram) *Node {
	pq := make(nodeQueue, 0, NumSymbols)
	for sym, count := range h {
		if count > 0 {
			pq = append(pq, queued{
				node: &Node{Symbol: Symbol(sym), Weight: count},
				seq:  len(pq),
			})
		}
	}

	// An empty input leaves only the seeded end-of-stream symbol, and a bare
	// leaf cannot carry a code. Pad with a zero-weight literal so the tree
	// always has at least two leaves and at least one merge happens.
	for len(pq) < 2 {
		pq = append(pq, queued{node: &Node{Symbol: 0}, seq: len(pq)})
	}

	heap.Init(&pq)
	seq := len(pq)
	for len(pq) > 1 {
		left := heap.Pop(&pq).(queued).node
		right := heap.Pop(&pq).(queued).node
		merged := &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
		heap.Push(&pq, queued{node: merged, seq: seq})
		seq++
	}
	return pq[0].node
}

type queued struct {
	node *Node
	seq  int
}

type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.Weight != q[j].node.Weight {
		return q[i].node.Weight < q[j].node.Weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queued)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
