// Package dijkstra implements Dijkstra's algorithm over dense cost
// matrices with a lazy-decrease-key binary heap.
//
// Implementation notes:
//
//   - Validation is strict and happens before any search work: shape,
//     vertex ranges, and cost-matrix value policy (no NaN, no negatives).
//   - The heap stores (vertex, distance) pairs; improving a distance
//     pushes a duplicate entry and stale entries are skipped when popped.
//   - Exploration stops early once the cheapest queued distance exceeds
//     MaxDistance.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlpath/matrix"
)

// Dijkstra computes shortest distances from source to every vertex of
// the square cost matrix dist. math.Inf(1) entries mark missing edges.
//
// Returns:
//
//   - d:    d[v] is the minimum cost source→v, +Inf when unreachable.
//   - prev: predecessor array when WithReturnPath() is set (nil otherwise);
//     prev[v] == NoPredecessor for unreached vertices and the source.
//   - err:  sentinel errors for malformed input (see types.go).
//
// Complexity: O(n² log n) time on dense input, O(n) space beyond the heap.
func Dijkstra(dist matrix.Matrix, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Shape and range validation, then value policy.
	if dist == nil {
		return nil, nil, ErrNilMatrix
	}
	if dist.Rows() != dist.Cols() || dist.Rows() <= 0 {
		return nil, nil, ErrNonSquare
	}
	n := dist.Rows()
	if source < 0 || source >= n {
		return nil, nil, ErrSourceOutOfRange
	}
	if err := matrix.ValidateCosts(dist); err != nil {
		return nil, nil, err
	}

	// 3) Prefetch into a flat buffer for allocation-free relaxation.
	var (
		w    = make([]float64, n*n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j], _ = dist.At(i, j)
		}
	}

	// 4) State: distances, predecessors, finalized flags, heap.
	var (
		d       = make([]float64, n)
		visited = make([]bool, n)
		prev    []int
	)
	for i = 0; i < n; i++ {
		d[i] = math.Inf(1)
	}
	d[source] = 0
	if cfg.ReturnPath {
		prev = make([]int, n)
		for i = 0; i < n; i++ {
			prev[i] = NoPredecessor
		}
	}

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{v: source, dist: 0})

	// 5) Main loop: pop the cheapest vertex, skip stale entries, relax.
	var (
		item    *nodeItem
		u, v    int
		c, cand float64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u = item.v
		if visited[u] {
			continue // stale duplicate from lazy decrease-key
		}
		if item.dist > cfg.MaxDistance {
			break // everything left is at least this far
		}
		visited[u] = true

		for v = 0; v < n; v++ {
			c = w[u*n+v]
			if v == u || math.IsInf(c, 1) {
				continue
			}
			cand = d[u] + c
			if cand > cfg.MaxDistance {
				continue
			}
			// Strict improvement only: avoids duplicate pushes on ties.
			if cand >= d[v] {
				continue
			}
			d[v] = cand
			if prev != nil {
				prev[v] = u
			}
			heap.Push(&pq, &nodeItem{v: v, dist: cand})
		}
	}

	if !cfg.ReturnPath {
		return d, nil, nil
	}

	return d, prev, nil
}

// ShortestPath returns the cheapest vertex sequence source→target and
// its cost. When target is unreachable the path is empty and the cost is
// math.Inf(1) — a normal outcome, not an error.
//
// Complexity: one Dijkstra run plus O(n) reconstruction.
func ShortestPath(dist matrix.Matrix, source, target int, opts ...Option) ([]int, float64, error) {
	// Target range needs the order; probe cheaply before delegating.
	if dist != nil && dist.Rows() == dist.Cols() && dist.Rows() > 0 {
		if target < 0 || target >= dist.Rows() {
			return nil, 0, ErrTargetOutOfRange
		}
	}

	forced := append(append([]Option(nil), opts...), WithReturnPath())
	d, prev, err := Dijkstra(dist, source, forced...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(d[target], 1) {
		return []int{}, math.Inf(1), nil
	}

	// Walk predecessors back from target, then reverse in place.
	var (
		path = make([]int, 0, 8)
		at   = target
	)
	for at != NoPredecessor {
		path = append(path, at)
		if at == source {
			break
		}
		at = prev[at]
	}
	var lo, hi int
	for lo, hi = 0, len(path)-1; lo < hi; lo, hi = lo+1, hi-1 {
		path[lo], path[hi] = path[hi], path[lo]
	}

	return path, d[target], nil
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: improvements push duplicates, stale
// entries are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller tentative distance.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two heap slots.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by container/heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last slot; called by container/heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
