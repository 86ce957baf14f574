// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SetRow return errors instead of panicking.
//   - Offer AtUnsafe/SetUnsafe for loops whose indices are already known to be valid.
//   - Keep ownership strict: every constructor and transform allocates its own buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SetRow: O(c); Clone: O(r*c);
//     RemoveRowAndColumn: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"                 // method tag used in error wrappers
	ctxSet      = "Set"                // method tag used in error wrappers
	ctxRow      = "Row"                // method tag used in error wrappers
	ctxSetRow   = "SetRow"             // method tag used in error wrappers
	ctxRemove   = "RemoveRowAndColumn" // method tag used in error wrappers
	ctxSwapRows = "SwapRows"
	ctxAddRow   = "AddScaledRow"
	ctxScaleRow = "ScaleRow"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (both ≥ 1 for every value built through this package).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data; no two Dense values share a buffer.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Size-only constructor. A matrix is never empty: when rows ≤ 0 or cols ≤ 0
//     the request collapses to a 1×1 zero matrix instead of failing.
//
// Implementation:
//   - Stage 1: normalize degenerate shapes to 1×1.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		rows, cols = 1, 1
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewSquare creates an n×n zero matrix (n ≤ 0 collapses to 1×1).
func NewSquare(n int) *Dense { return NewDense(n, n) }

// NewFromRows builds a Dense from a literal grid, copying every entry.
// MAIN DESCRIPTION:
//   - Literal constructor. The caller's slices are never retained.
//
// Behavior highlights:
//   - No rows, or rows that are all empty, collapse to a 1×1 zero matrix.
//   - Every row must have the length of the first one; otherwise ErrRowLength
//     (wrapped with the offending row index) is returned.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if allEmpty(rows) {
		return NewDense(1, 1), nil
	}
	r, c := len(rows), len(rows[0])
	m := NewDense(r, c)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRowLength)
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // row i → flat block [i*c, (i+1)*c)
	}

	return m, nil
}

// allEmpty reports whether rows holds no entries at all.
func allEmpty(rows [][]float64) bool {
	for _, row := range rows {
		if len(row) > 0 {
			return false
		}
	}

	return true
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AtUnsafe reads (row, col) without bounds checking.
//
// It exists only to avoid redundant checks inside loops whose bounds already
// come from Rows()/Cols(). Indexing follows the same zero-based convention as
// At. Out-of-range input is undefined: it either panics or silently reads a
// neighbouring cell (a column index ≥ Cols() wraps into the next row).
func (m *Dense) AtUnsafe(row, col int) float64 { return m.data[row*m.c+col] }

// SetUnsafe writes (row, col) without bounds checking.
// Same contract as AtUnsafe: callers must have established validity already.
func (m *Dense) SetUnsafe(row, col int, v float64) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if err := validateRowIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.row(i))

	return out, nil
}

// row returns the live slice backing row i. Internal: no bounds check.
func (m *Dense) row(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// SetRow replaces row i with a copy of row.
// MAIN DESCRIPTION:
//   - Whole-row replacement; the all-or-nothing counterpart of c calls to Set.
//
// Implementation:
//   - Stage 1: validate i ∈ [0, Rows()).
//   - Stage 2: validate len(row) == Cols().
//   - Stage 3: copy into the backing buffer.
//
// Errors:
//   - ErrOutOfRange, ErrRowLength. A rejected call leaves the matrix untouched.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, row []float64) error {
	if err := validateRowIndex(i, m.r); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.%s(%d): got %d entries, want %d: %w", ctxSetRow, i, len(row), m.c, ErrRowLength)
	}
	copy(m.row(i), row)

	return nil
}

// RemoveRowAndColumn returns a new (r-1)×(c-1) matrix without row i and column j.
// MAIN DESCRIPTION:
//   - Minor extraction used by the Laplace determinant.
//
// Implementation:
//   - Stage 1: validate indices and that both dimensions can shrink.
//   - Stage 2: copy the surviving cells in row-major order, skipping row i and column j.
//
// Behavior highlights:
//   - Relative order of the remaining rows and columns is preserved.
//   - The receiver is not modified; the result owns a fresh buffer.
//
// Errors:
//   - ErrOutOfRange for invalid indices; ErrEmptyMinor when Rows()==1 or Cols()==1.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) RemoveRowAndColumn(i, j int) (*Dense, error) {
	if _, err := m.indexOf(i, j); err != nil {
		return nil, denseErrorf(ctxRemove, i, j, err)
	}
	if m.r == 1 || m.c == 1 {
		return nil, denseErrorf(ctxRemove, i, j, ErrEmptyMinor)
	}

	return m.minor(i, j), nil
}

// minor is RemoveRowAndColumn without validation; callers guarantee r,c ≥ 2.
func (m *Dense) minor(skipRow, skipCol int) *Dense {
	out := &Dense{r: m.r - 1, c: m.c - 1, data: make([]float64, (m.r-1)*(m.c-1))}
	var i, j, k int
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		src := m.row(i)
		for j = 0; j < m.c; j++ {
			if j == skipCol {
				continue
			}
			out.data[k] = src[j]
			k++ // destination advances only on kept cells
		}
	}

	return out
}

// Clone returns a deep copy as a Matrix.
func (m *Dense) Clone() Matrix { return m.copyDense() }

// copyDense is Clone with the concrete return type.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows returns the entries as a freshly allocated [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// String renders the matrix with default Description options.
func (m *Dense) String() string { return m.Description() }

// denseOf returns m itself when it is a *Dense, otherwise a *Dense copy built through At.
// Kernels that mutate the result must copy again when m was already *Dense.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out := NewDense(m.Rows(), m.Cols())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
