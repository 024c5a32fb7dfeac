// Package astar — the search engine.
//
// The engine mirrors a classic branch-and-bound layout: a dedicated
// struct holds the dense cost buffer, the open list, and the incumbent
// best solution, so every pruning decision sees the tightest bound.
//
// Pipeline of one Search call:
//  1. Validate options and input (before any allocation for the search).
//  2. Prefetch the matrix into a flat buffer; build the heuristic.
//  3. Seed the open list with the single-vertex path [start].
//  4. Pop/expand until the open list empties or the budget fires.
//  5. Extract the result (path+cost, expansion count, termination kind).
package astar

import (
	"math"

	"github.com/katalvlaran/lvlpath/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drift across platforms without affecting optimality.
const roundScale = 1e9

// engine holds all state of one search invocation. It lives on a single
// call stack: no goroutines, no shared mutable state.
type engine struct {
	// Static configuration.
	n     int
	start int
	end   int
	maxIt int

	// Dense cost buffer: w[u*n+v], +Inf for "no edge".
	w []float64

	// Heuristic estimator bound to w (or the precomputed closure).
	estimate heuristicFunc

	// Open list (min-heap by f).
	open *openList

	// Incumbent: best complete path and its cost (+Inf until found).
	// bestCost is monotonically non-increasing over the whole run.
	bestCost float64
	bestPath []int

	// Counters.
	iterations int // open-list pops
	expanded   int // nodes that generated children
	budgetHit  bool
}

// Search finds a minimum-cost path from start to end over the square
// cost matrix dist. math.Inf(1) entries mark missing edges.
//
// Returns:
//
//   - Result with the cheapest path found and its cost; when no path was
//     found within the explored space, Path is empty and Cost is +Inf —
//     a normal outcome, not an error.
//   - An error only for malformed input or configuration: ErrNilMatrix,
//     ErrNonSquare, ErrVertexOutOfRange, the matrix package's value
//     sentinels (NaN, negative entries, bad diagonal), ErrBadIterationLimit,
//     ErrBadQueueCapacity, ErrUnknownHeuristic. All are detected before
//     the main loop starts.
//
// Result.Termination distinguishes a fully exhausted search from one cut
// off by the iteration budget; only the former certifies "no path" or
// (under an admissible heuristic) optimality.
//
// Complexity: worst case exponential in n; validation and prefetch are
// O(n²), plus O(n³) setup when the AllPairs heuristic is selected.
func Search(dist matrix.Matrix, start, end int, opts ...Option) (Result, error) {
	// Stage 1 — options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}

	// Stage 2 — input shape and values, strictly before any search work.
	if dist == nil {
		return Result{}, ErrNilMatrix
	}
	if dist.Rows() != dist.Cols() || dist.Rows() <= 0 {
		return Result{}, ErrNonSquare
	}
	n := dist.Rows()
	if start < 0 || start >= n || end < 0 || end >= n {
		return Result{}, ErrVertexOutOfRange
	}
	if err := matrix.ValidateCosts(dist); err != nil {
		// Forward matrix-level sentinels unchanged (NaN, negatives, diagonal).
		return Result{}, err
	}

	// Stage 3 — engine assembly.
	e := &engine{
		n:        n,
		start:    start,
		end:      end,
		maxIt:    cfg.MaxIterations,
		bestCost: math.Inf(1),
		open:     newOpenList(cfg.InitialQueueCapacity, cfg.MaxQueueSize, cfg.PruneTarget),
	}
	if err := e.prefetch(dist); err != nil {
		return Result{}, err
	}
	switch cfg.Heuristic {
	case AllPairs:
		est, err := allPairs(dist, n, end)
		if err != nil {
			return Result{}, err
		}
		e.estimate = est
	default:
		e.estimate = singleHop(e.w, n, end)
	}

	// Stage 4 — seed and run.
	seed := newNode([]int{start}, 0, e.estimate(start))
	e.open.push(seed)
	e.run()

	// Stage 5 — result extraction.
	return e.result(), nil
}

// prefetch loads the matrix into the flat buffer. Values were already
// validated by matrix.ValidateCosts; reads can only fail on a misbehaving
// Matrix implementation, which maps to the matrix shape sentinel.
//
// Complexity: O(n²).
func (e *engine) prefetch(dist matrix.Matrix) error {
	e.w = make([]float64, e.n*e.n)
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return matrix.ErrDimensionMismatch
			}
			e.w[i*e.n+j] = x
		}
	}

	return nil
}

// at is the fast accessor into the dense weight buffer.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// run drives the main loop: pop the cheapest node, expand it, repeat
// until the open list empties or the iteration budget fires. The budget
// check happens while nodes are still queued, so the two terminal
// conditions stay distinguishable.
func (e *engine) run() {
	var (
		nd *node
		ok bool
	)
	for e.open.len() > 0 {
		if e.iterations >= e.maxIt {
			e.budgetHit = true

			return
		}
		nd, ok = e.open.popMin()
		if !ok {
			return
		}
		e.iterations++
		e.expand(nd)
	}
}

// expand applies the goal test and, for non-goal nodes, generates one
// child per unvisited vertex reachable from the node's current vertex.
// Children that cannot beat the incumbent (f ≥ bestCost) are discarded
// at push time — the branch-and-bound cut.
func (e *engine) expand(nd *node) {
	current := nd.last()

	// Goal test: last visited vertex equals the end vertex. A goal node
	// has no children; it can only tighten the incumbent.
	if current == e.end {
		if nd.g < e.bestCost {
			e.bestCost = nd.g
			e.bestPath = nd.path
		}

		return
	}

	e.expanded++

	// Visited set for the duplicate-vertex guard. A bool slice keeps this
	// O(n) per expansion.
	visited := make([]bool, e.n)
	var i int
	for i = 0; i < len(nd.path); i++ {
		visited[nd.path[i]] = true
	}

	var (
		next int
		c, g float64
		h, f float64
	)
	for next = 0; next < e.n; next++ {
		if visited[next] {
			continue
		}
		c = e.at(current, next)
		if math.IsInf(c, 1) {
			continue
		}
		g = nd.g + c
		h = e.estimate(next)
		f = g + h
		if f >= e.bestCost {
			continue // cannot improve on the incumbent
		}
		e.open.push(newNode(nd.extend(next), g, h))
	}
}

// result assembles the public Result from the engine state.
func (e *engine) result() Result {
	out := Result{
		Cost:     math.Inf(1),
		Expanded: e.expanded,
	}
	if e.budgetHit {
		out.Termination = TerminatedBudget
	} else {
		out.Termination = TerminatedExhausted
	}
	if !math.IsInf(e.bestCost, 1) {
		out.Cost = round1e9(e.bestCost)
		out.Path = append([]int(nil), e.bestPath...)
	} else {
		out.Path = []int{}
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
