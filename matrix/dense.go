package matrix

import (
	"fmt"
	"math"
)

// Matrix is the minimal read/write contract used by the search packages.
// Implementations must be bounds-checked; At/Set never panic.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (row, col) or ErrIndexOutOfBounds.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrIndexOutOfBounds.
	Set(row, col int, v float64) error
	// Clone returns a deep copy.
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values backed by a single flat
// slice (length r*c) for cache friendliness and allocation-free hot loops.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// compile-time interface conformance check.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Contract: rows > 0 and cols > 0, otherwise ErrInvalidDimensions.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense matrix from a [][]float64 with a deep copy.
//
// Contract:
//   - rows must be non-empty and rectangular (ErrRaggedRows otherwise);
//   - values are copied verbatim (no NaN/Inf policy applied here — use
//     ValidateCosts for cost-matrix semantics).
//
// Complexity: O(r·c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// NewCostMatrix returns an n×n instance with a zero diagonal and +Inf
// everywhere else — the canonical "no edges yet" cost matrix.
//
// Complexity: O(n²).
func NewCostMatrix(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		inf  = math.Inf(1)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = inf
			}
		}
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r·c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
// Useful for callers that want a snapshot without aliasing internals.
// Complexity: O(c).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r·c).
func (m *Dense) String() string {
	var (
		s    string
		i, j int
	)
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
