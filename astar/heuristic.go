package astar

import (
	"math"

	"github.com/katalvlaran/lvlpath/matrix"
)

// heuristicFunc estimates the remaining cost from vertex last to the
// engine's end vertex. +Inf is a legal return: it marks a dead end and
// makes the child prune immediately.
type heuristicFunc func(last int) float64

// singleHop returns a cheap estimator over the dense buffer w:
// the direct edge last→end when finite, otherwise the cheapest outgoing
// edge of last to any other vertex.
//
// Not guaranteed admissible: when the direct edge is missing, the
// cheapest single hop can exceed the true multi-hop remainder on
// instances violating the triangle inequality. Documented, not "fixed" —
// callers needing certified optimality select AllPairs.
//
// Complexity: O(1) with a direct edge, O(n) otherwise.
func singleHop(w []float64, n, end int) heuristicFunc {
	return func(last int) float64 {
		h := w[last*n+end]
		if !math.IsInf(h, 1) {
			return h
		}
		// Fallback: minimum outgoing edge as a lower-bound proxy.
		var (
			row = w[last*n : last*n+n]
			v   int
		)
		h = math.Inf(1)
		for v = 0; v < n; v++ {
			if v == last {
				continue
			}
			if row[v] < h {
				h = row[v]
			}
		}

		return h
	}
}

// allPairs precomputes the metric closure of dist and returns the true
// shortest remaining distance as the estimate. Admissible by
// construction (h equals the optimum of the relaxed problem).
//
// Complexity: O(n³) setup via matrix.FloydWarshall, O(1) per estimate.
func allPairs(dist matrix.Matrix, n, end int) (heuristicFunc, error) {
	closure, err := matrix.MetricClosure(dist)
	if err != nil {
		return nil, err
	}

	// Snapshot the end column once; the closure matrix itself can be
	// released after this loop.
	var (
		toEnd = make([]float64, n)
		v     int
	)
	for v = 0; v < n; v++ {
		toEnd[v], _ = closure.At(v, end)
	}

	return func(last int) float64 { return toEnd[last] }, nil
}
