package astar

import "sort"

// openList is an array-backed binary min-heap of search nodes ordered by
// f. It is deliberately hand-rolled rather than layered on
// container/heap: the bounded-size policy needs direct access to the
// backing array (sort + truncate survivors), and the explicit sift
// routines keep the engine's comparison policy in one place.
//
// Invariant: for every element i > 0, nodes[i].f ≥ nodes[(i-1)/2].f.
// Order among equal-f elements is unspecified (no stable tie-break).
// The backing array doubles when full and never shrinks.
type openList struct {
	nodes []*node

	// maxSize, when > 0, bounds len(nodes); on overflow the worst nodes
	// are discarded down to keep survivors (prune-worst policy).
	maxSize int
	keep    int
}

// newOpenList builds an empty heap with the given starting capacity and
// an optional size cap (maxSize == 0 disables the cap). keepFrac is the
// survivor fraction applied when pruning a capped heap.
func newOpenList(capacity, maxSize int, keepFrac float64) *openList {
	q := &openList{
		nodes:   make([]*node, 0, capacity),
		maxSize: maxSize,
	}
	if maxSize > 0 {
		q.keep = int(float64(maxSize) * keepFrac)
		if q.keep < 1 {
			q.keep = 1
		}
	}

	return q
}

// len reports the number of queued nodes.
func (q *openList) len() int { return len(q.nodes) }

// push inserts nd in O(log n) amortized, doubling the backing capacity
// first when full. When a size cap is configured and exceeded, the worst
// nodes are pruned immediately after insertion.
func (q *openList) push(nd *node) {
	if len(q.nodes) == cap(q.nodes) {
		// Explicit doubling keeps growth observable and amortized O(1).
		grown := make([]*node, len(q.nodes), 2*cap(q.nodes)+1)
		copy(grown, q.nodes)
		q.nodes = grown
	}
	q.nodes = append(q.nodes, nd)
	q.siftUp(len(q.nodes) - 1)

	if q.maxSize > 0 && len(q.nodes) > q.maxSize {
		q.prune()
	}
}

// popMin removes and returns the node with the smallest f in O(log n).
// The second return is false when the heap is empty — the normal
// terminating condition of the search loop, not an error.
func (q *openList) popMin() (*node, bool) {
	if len(q.nodes) == 0 {
		return nil, false
	}
	top := q.nodes[0]
	last := len(q.nodes) - 1
	q.nodes[0] = q.nodes[last]
	q.nodes[last] = nil // release the reference for GC
	q.nodes = q.nodes[:last]
	if last > 0 {
		q.siftDown(0)
	}

	return top, true
}

// siftUp moves nodes[i] toward the root while it is strictly smaller
// than its parent.
func (q *openList) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if q.nodes[i].f >= q.nodes[parent].f {
			break
		}
		q.nodes[i], q.nodes[parent] = q.nodes[parent], q.nodes[i]
		i = parent
	}
}

// siftDown moves nodes[i] toward the leaves, swapping with the smaller
// of its children; on equal keys the first child checked wins.
func (q *openList) siftDown(i int) {
	var smallest, left, right int
	for {
		smallest = i
		left = 2*i + 1
		right = 2*i + 2
		if left < len(q.nodes) && q.nodes[left].f < q.nodes[smallest].f {
			smallest = left
		}
		if right < len(q.nodes) && q.nodes[right].f < q.nodes[smallest].f {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.nodes[i], q.nodes[smallest] = q.nodes[smallest], q.nodes[i]
		i = smallest
	}
}

// prune discards the worst nodes, keeping the q.keep best by f.
// A fully sorted ascending array is itself a valid min-heap, so sorting
// and truncating restores both the cap and the heap invariant in one
// O(m log m) pass. Rare by construction (once per overflow).
func (q *openList) prune() {
	sort.Slice(q.nodes, func(i, j int) bool { return q.nodes[i].f < q.nodes[j].f })
	var i int
	for i = q.keep; i < len(q.nodes); i++ {
		q.nodes[i] = nil
	}
	q.nodes = q.nodes[:q.keep]
}
