// Package matrix — all-pairs shortest paths (Floyd–Warshall).
//
// Purpose:
//   - Canonical dense APSP with deterministic loop order, shared by the
//     admissible heuristic in astar and by metric-closure callers.
//   - In place: O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no edge"; diagonal must be 0 before calling.
package matrix

import "math"

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// Contract:
//   - m must satisfy ValidateCosts (square, 0 diagonal, no NaN/negatives).
//
// Determinism:
//   - Loop order is fixed (k → i → j); strict-improvement relaxation only,
//     so equal-length alternatives never flap.
//
// Complexity: time O(n³), extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateCosts(m); err != nil {
		return err
	}
	if d, ok := m.(*Dense); ok {
		floydWarshallDense(d)

		return nil
	}

	return floydWarshallGeneric(m)
}

// MetricClosure returns a new matrix holding the shortest-path distance
// for every ordered pair, leaving m untouched. Pairs that remain +Inf
// after closure are genuinely unreachable.
//
// Complexity: time O(n³), space O(n²) for the clone.
func MetricClosure(m Matrix) (Matrix, error) {
	if err := ValidateCosts(m); err != nil {
		return nil, err
	}
	out := m.Clone()
	if err := FloydWarshall(out); err != nil {
		return nil, err
	}

	return out, nil
}

// floydWarshallDense is the flat-buffer fast path.
// Counters and temporaries are hoisted out of the loops; no allocations
// inside the hot triple loop.
func floydWarshallDense(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// floydWarshallGeneric relaxes through the Matrix interface.
// Same loop order and policy as the dense fast path, higher call overhead.
func floydWarshallGeneric(m Matrix) error {
	var (
		n            = m.Rows()
		k, i, j      int
		ik, kj, ij   float64
		cand         float64
		err1, err2   error
		err3, errSet error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik, err1 = m.At(i, k)
			if err1 != nil {
				return ErrDimensionMismatch
			}
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj, err2 = m.At(k, j)
				if err2 != nil {
					return ErrDimensionMismatch
				}
				if math.IsInf(kj, 1) {
					continue
				}
				ij, err3 = m.At(i, j)
				if err3 != nil {
					return ErrDimensionMismatch
				}
				cand = ik + kj
				if cand < ij {
					if errSet = m.Set(i, j, cand); errSet != nil {
						return ErrDimensionMismatch
					}
				}
			}
		}
	}

	return nil
}
