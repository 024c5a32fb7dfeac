package matrix

import "errors"

// Sentinel errors shared across the matrix package.
// Callers should match with errors.Is; wrapped variants carry context.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare indicates that an operation requiring a square matrix
	// received a rows≠cols shape.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows indicates that [][]float64 input rows differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrDimensionMismatch indicates a shape conflict between two operands
	// or a nil matrix where a concrete one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNValue indicates that a NaN entry was found where finite or +Inf
	// values are required.
	ErrNaNValue = errors.New("matrix: NaN entry")

	// ErrNegativeWeight indicates a negative off-diagonal cost entry.
	ErrNegativeWeight = errors.New("matrix: negative cost entry")

	// ErrNonZeroDiagonal indicates that a cost matrix carries a non-zero
	// (or non-finite) diagonal entry.
	ErrNonZeroDiagonal = errors.New("matrix: non-zero diagonal entry")
)
