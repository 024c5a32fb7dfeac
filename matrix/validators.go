// Package matrix — validation helpers shared by the search packages.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n²) worst case where n is the matrix order; no hidden allocations.
package matrix

import "math"

// diagTol is the structural tolerance for diagonal checks.
// Independent from any solver epsilon; it guards matrix shape only.
const diagTol = 1e-12

// ValidateSquare verifies that m is non-nil and square with order ≥ 1.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrDimensionMismatch
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return ErrNonSquare
	}

	return nil
}

// ValidateCosts performs full cost-matrix validation:
//   - non-nil, square;
//   - diagonal ≈ 0 (|a_ii| ≤ diagTol) and finite;
//   - no NaN anywhere;
//   - no negative off-diagonal entries;
//   - +Inf off-diagonal is allowed (the "no edge" sentinel).
//
// Complexity: O(n²).
func ValidateCosts(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)

	// Diagonal: exact-ish zero, finite.
	for i = 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return ErrDimensionMismatch
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonZeroDiagonal
		}
		if v > diagTol || v < -diagTol {
			return ErrNonZeroDiagonal
		}
	}

	// Off-diagonal: no NaN, no negatives; +Inf passes through.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err = m.At(i, j)
			if err != nil {
				return ErrDimensionMismatch
			}
			if math.IsNaN(v) {
				return ErrNaNValue
			}
			if v < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// IsSymmetric reports whether |a_ij − a_ji| ≤ tol for every off-diagonal
// pair. Pairs where both entries are +Inf count as symmetric.
//
// Contract: m must be square (call ValidateSquare first).
// Complexity: O(n²).
func IsSymmetric(m Matrix, tol float64) bool {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		diff     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.IsInf(aij, 1) && math.IsInf(aji, 1) {
				continue
			}
			diff = aij - aji
			if diff < 0 {
				diff = -diff
			}
			if diff > tol || math.IsNaN(diff) {
				return false
			}
		}
	}

	return true
}
