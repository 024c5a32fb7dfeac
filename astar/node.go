package astar

// node is one entry of the open list: a simple path from the start
// vertex plus its cost bookkeeping. Nodes are immutable once built —
// expansion produces fresh children, never mutates a parent — so the heap
// needs no decrease-key and pruning decisions stay stable.
type node struct {
	// path is the vertex sequence taken so far; path[0] is the start
	// vertex and no vertex repeats (enforced by construction in expand).
	path []int

	// g is the accumulated edge cost along path.
	g float64

	// h is the heuristic estimate of the remaining cost to the end
	// vertex, computed once at creation.
	h float64

	// f = g + h is the priority key in the open list.
	f float64
}

// newNode assembles a node from an owned path slice. The caller must not
// retain or mutate path afterwards.
func newNode(path []int, g, h float64) *node {
	return &node{path: path, g: g, h: h, f: g + h}
}

// last returns the node's current vertex (the tail of its path).
func (nd *node) last() int { return nd.path[len(nd.path)-1] }

// extend builds the child path: a copy of nd.path with v appended.
// One allocation per child; the parent's buffer is never shared, so a
// popped parent can be dropped immediately after expansion.
func (nd *node) extend(v int) []int {
	out := make([]int, len(nd.path)+1)
	copy(out, nd.path)
	out[len(nd.path)] = v

	return out
}
