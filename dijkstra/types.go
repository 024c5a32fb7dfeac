// Package dijkstra defines the types and configuration options for the
// matrix-based Dijkstra shortest-path solver.
//
// Dijkstra computes minimum-cost paths from a single source vertex to
// all other reachable vertices of a dense cost matrix with non-negative
// entries; math.Inf(1) marks "no edge". Vertices are addressed by index.
//
// Complexity:
//
//	– Time:  O(n² log n) on a dense matrix (up to n relaxations per pop,
//	  lazy decrease-key pushes duplicates instead of reordering).
//	– Space: O(n) for distances/predecessors plus the heap.
//
// Options:
//
//	– WithReturnPath():   also return the predecessor array.
//	– WithMaxDistance(x): vertices farther than x are not explored (x ≥ 0).
//
// Errors (sentinel):
//
//	– ErrNilMatrix        if the cost matrix is nil.
//	– ErrNonSquare        if the matrix is not square.
//	– ErrSourceOutOfRange if source ∉ [0, n).
//	– ErrTargetOutOfRange if a requested target ∉ [0, n).
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– matrix sentinels    for NaN/negative/diagonal violations, forwarded.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil cost matrix was supplied.
	ErrNilMatrix = errors.New("dijkstra: cost matrix is nil")

	// ErrNonSquare indicates that the cost matrix is not square.
	ErrNonSquare = errors.New("dijkstra: cost matrix is not square")

	// ErrSourceOutOfRange indicates that the source index is outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrTargetOutOfRange indicates that the target index is outside [0, n).
	ErrTargetOutOfRange = errors.New("dijkstra: target vertex out of range")

	// ErrBadMaxDistance indicates a negative MaxDistance option.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor fills prev entries of unreached vertices (and the source).
const NoPredecessor = -1

// Options configures the behavior of one Dijkstra run.
//
// ReturnPath  – if true, return the predecessor array; nil otherwise.
// MaxDistance – cap on distances to explore; +Inf (default) means no cap.
type Options struct {
	ReturnPath  bool
	MaxDistance float64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor tracking in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: vertices whose shortest distance
// exceeds max are not finalized. Negative values panic when the option
// is applied — invalid configuration is a programmer error.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the baseline configuration: no predecessor
// array, no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
