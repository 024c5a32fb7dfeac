package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search. Match with errors.Is.
// Value-level matrix violations (NaN, negative entries, bad diagonal)
// surface as the matrix package's own sentinels, forwarded unchanged.
var (
	// ErrNilMatrix indicates that a nil cost matrix was supplied.
	ErrNilMatrix = errors.New("astar: cost matrix is nil")

	// ErrNonSquare indicates that the cost matrix is not square.
	ErrNonSquare = errors.New("astar: cost matrix is not square")

	// ErrVertexOutOfRange indicates that start or end lies outside [0, n).
	ErrVertexOutOfRange = errors.New("astar: start/end vertex out of range")

	// ErrBadIterationLimit indicates a non-positive MaxIterations.
	ErrBadIterationLimit = errors.New("astar: MaxIterations must be positive")

	// ErrBadQueueCapacity indicates an invalid queue sizing option
	// (non-positive initial capacity, negative cap, or a prune target
	// outside (0, 1]).
	ErrBadQueueCapacity = errors.New("astar: invalid open-list capacity options")

	// ErrUnknownHeuristic indicates an unrecognized HeuristicAlgo value.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// HeuristicAlgo selects the estimator for the remaining cost h.
type HeuristicAlgo int

const (
	// SingleHop estimates h as the direct edge to the end vertex when one
	// exists, otherwise the cheapest outgoing edge of the current vertex.
	// Cheap (O(n) worst case per node) but not guaranteed admissible.
	SingleHop HeuristicAlgo = iota

	// AllPairs estimates h as the true shortest remaining distance,
	// precomputed once via matrix.FloydWarshall. Admissible; O(n³) setup.
	AllPairs
)

// Termination tells how the main loop ended.
type Termination int

const (
	// TerminatedExhausted means the open list emptied: the search space
	// was fully explored under the pruning bound.
	TerminatedExhausted Termination = iota

	// TerminatedBudget means the iteration cap fired while nodes were
	// still queued: the result is a best-effort bound, not a certified
	// optimum.
	TerminatedBudget
)

// String implements fmt.Stringer for diagnostics and test output.
func (t Termination) String() string {
	switch t {
	case TerminatedExhausted:
		return "exhausted"
	case TerminatedBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one Search call.
type Result struct {
	// Path is the vertex sequence from start to end, start first.
	// Empty when no path was found.
	Path []int

	// Cost is the total cost along Path, or math.Inf(1) when no path
	// was found.
	Cost float64

	// Expanded counts non-goal nodes whose children were generated.
	// Goal hits (including an immediate start==end seed) do not count.
	Expanded int

	// Termination records whether the loop ended by exhaustion or by
	// the iteration budget.
	Termination Termination
}

// Found reports whether a finite-cost path was found.
func (r Result) Found() bool {
	return !math.IsInf(r.Cost, 1) && len(r.Path) > 0
}
