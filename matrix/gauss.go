// SPDX-License-Identifier: MIT

// Package matrix - Gauss form (canonical reduced row form).
//
// Purpose:
//   - Gauss: reduce a copy of the input to its canonical form and return it.
//   - Expose the elementary building blocks (pivot selection, row operations,
//     in-place transpose, canonical row sort) with checked public wrappers and
//     unchecked internal kernels.
//
// Algorithm (Gauss):
//  1. Work on a private copy; the input is never mutated.
//  2. Columns left to right. An all-zero column is skipped. Otherwise the pivot
//     is the first row, in index order, with a non-zero entry in the column that
//     has not been claimed by an earlier column. No eligible row → no pivot.
//  3. Every other row with a non-zero entry in the pivot column receives
//     λ·pivotRow with λ = −(row[col] / pivot[col]); the column entry is then
//     stored as an exact zero.
//  4. Each pivot row is scaled by 1/pivot so its pivot becomes exactly 1.
//  5. Rows are stable-sorted: all-zero rows last, other rows by lexicographic
//     descending order (first difference wins).
//
// The claimed-row set is an explicit accumulator threaded through step 2; no
// state survives a Gauss call.
//
// Zero tests are exact (== 0). There is no tolerance-based pivoting.

package matrix

import (
	"fmt"
	"sort"
)

const opGauss = "Gauss"

// RowSet is a set of row indices already claimed as pivot rows.
// The zero value (nil) is an empty set.
type RowSet map[int]struct{}

// Has reports whether row i is in the set.
func (s RowSet) Has(i int) bool {
	_, ok := s[i]

	return ok
}

// Len returns the number of claimed rows.
func (s RowSet) Len() int { return len(s) }

// with returns a new set holding s ∪ {i}; s itself is not modified.
func (s RowSet) with(i int) RowSet {
	out := make(RowSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[i] = struct{}{}

	return out
}

// Gauss returns the canonical reduced form of m as a new matrix.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination with first-eligible-row pivoting, pivot
//     normalization and a deterministic row order (see the file header).
//
// Behavior highlights:
//   - m is never mutated; the result owns a fresh buffer.
//   - Works for rectangular input.
//   - For exact arithmetic the result is the reduced row echelon form, so
//     Gauss(Gauss(m)) == Gauss(m) up to floating-point tolerance.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c) elimination + O(r log r · c) sort, Space O(r*c).
func Gauss(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	w := src.copyDense() // private working copy

	var (
		col, p  int
		claimed RowSet
		pivots  = make([][2]int, 0, w.r) // (row, col) of every pivot, in column order
	)
	for col = 0; col < w.c; col++ {
		if w.isZeroColumn(col) {
			continue
		}
		p, claimed = w.pivotRow(col, claimed)
		if p < 0 {
			continue // every non-zero entry sits in an already claimed row
		}
		w.eliminate(p, col)
		pivots = append(pivots, [2]int{p, col})
	}
	w.normalizePivots(pivots)
	w.SortRows()

	return w, nil
}

// eliminate zeroes column col in every row except the pivot row p.
func (m *Dense) eliminate(p, col int) {
	pv := m.data[p*m.c+col]
	var (
		i int
		a float64
	)
	for i = 0; i < m.r; i++ {
		if i == p {
			continue
		}
		a = m.data[i*m.c+col]
		if a == 0 {
			continue
		}
		m.addScaledRow(p, -(a / pv), i)
		m.data[i*m.c+col] = 0 // exact zero; a + λ·pv may leave rounding residue
	}
}

// normalizePivots scales each pivot row so its pivot entry becomes exactly 1.
func (m *Dense) normalizePivots(pivots [][2]int) {
	var r, c int
	for _, pc := range pivots {
		r, c = pc[0], pc[1]
		if pv := m.data[r*m.c+c]; pv != 0 && pv != 1 {
			m.scaleRow(r, 1/pv)
			m.data[r*m.c+c] = 1
		}
	}
}

// ---------- pivot selection ----------

// PivotRow returns the first row, in index order, whose entry in column col is
// non-zero and which is not in claimed, together with claimed ∪ {row}.
// When no row qualifies it returns -1 and claimed unchanged.
//
// claimed is never mutated; the returned set is a new value whenever a row is chosen.
//
// Errors: ErrOutOfRange when col ∉ [0, Cols()).
func (m *Dense) PivotRow(col int, claimed RowSet) (int, RowSet, error) {
	if col < 0 || col >= m.c {
		return -1, claimed, fmt.Errorf("Dense.PivotRow(%d): %w", col, ErrOutOfRange)
	}
	p, next := m.pivotRow(col, claimed)

	return p, next, nil
}

// pivotRow is PivotRow without the bounds check.
func (m *Dense) pivotRow(col int, claimed RowSet) (int, RowSet) {
	var i int
	for i = 0; i < m.r; i++ {
		if m.data[i*m.c+col] == 0 || claimed.Has(i) {
			continue
		}

		return i, claimed.with(i)
	}

	return -1, claimed
}

// ---------- zero tests ----------

// IsZeroColumn reports whether every entry of column col is exactly zero.
func (m *Dense) IsZeroColumn(col int) (bool, error) {
	if col < 0 || col >= m.c {
		return false, fmt.Errorf("Dense.IsZeroColumn(%d): %w", col, ErrOutOfRange)
	}

	return m.isZeroColumn(col), nil
}

func (m *Dense) isZeroColumn(col int) bool {
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+col] != 0 {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether every entry of row i is exactly zero.
func (m *Dense) IsZeroRow(i int) (bool, error) {
	if err := validateRowIndex(i, m.r); err != nil {
		return false, fmt.Errorf("Dense.IsZeroRow(%d): %w", i, err)
	}

	return isZeroSlice(m.row(i)), nil
}

func isZeroSlice(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}

	return true
}

// ---------- elementary row operations ----------

// SwapRows exchanges rows a and b in place.
func (m *Dense) SwapRows(a, b int) error {
	if validateRowIndex(a, m.r) != nil || validateRowIndex(b, m.r) != nil {
		return denseErrorf(ctxSwapRows, a, b, ErrOutOfRange)
	}
	m.swapRows(a, b)

	return nil
}

func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := m.row(a), m.row(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// AddScaledRow performs row[dst] += lambda · row[src] in place over the full width.
func (m *Dense) AddScaledRow(src int, lambda float64, dst int) error {
	if validateRowIndex(src, m.r) != nil || validateRowIndex(dst, m.r) != nil {
		return denseErrorf(ctxAddRow, src, dst, ErrOutOfRange)
	}
	m.addScaledRow(src, lambda, dst)

	return nil
}

func (m *Dense) addScaledRow(src int, lambda float64, dst int) {
	rs, rd := m.row(src), m.row(dst)
	for j := range rd {
		rd[j] += lambda * rs[j]
	}
}

// ScaleRow multiplies every entry of row i by lambda in place.
func (m *Dense) ScaleRow(i int, lambda float64) error {
	if err := validateRowIndex(i, m.r); err != nil {
		return denseErrorf(ctxScaleRow, i, 0, err)
	}
	m.scaleRow(i, lambda)

	return nil
}

func (m *Dense) scaleRow(i int, lambda float64) {
	r := m.row(i)
	for j := range r {
		r[j] *= lambda
	}
}

// ---------- reshaping & ordering ----------

// TransposeInPlace swaps rows and columns of the receiver.
// For rectangular matrices the shape changes from r×c to c×r; a new backing
// buffer is allocated but the receiver keeps ownership of it.
//
// Complexity: Time O(r*c), Space O(r*c) for rectangular input, O(1) for square.
func (m *Dense) TransposeInPlace() {
	if m.r == m.c {
		n := m.r
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}

		return
	}
	m.data = transposeData(m.data, m.r, m.c)
	m.r, m.c = m.c, m.r
}

// transposeData returns the c×r row-major transpose of an r×c buffer.
func transposeData(src []float64, r, c int) []float64 {
	out := make([]float64, len(src))
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out[j*r+i] = src[base+j]
		}
	}

	return out
}

// SortRows stable-sorts the rows in place into canonical order:
// non-zero rows first, ordered lexicographically descending; all-zero rows last.
func (m *Dense) SortRows() {
	rows := m.ToRows()
	sort.SliceStable(rows, func(a, b int) bool {
		return compareRows(rows[a], rows[b]) < 0
	})
	for i, r := range rows {
		copy(m.row(i), r)
	}
}

// compareRows orders two equal-length rows for SortRows.
// Returns -1 when a ranks first, 1 when b ranks first, 0 when tied.
func compareRows(a, b []float64) int {
	za, zb := isZeroSlice(a), isZeroSlice(b)
	switch {
	case za && zb:
		return 0
	case za:
		return 1
	case zb:
		return -1
	}
	for k := range a {
		if a[k] > b[k] {
			return -1
		}
		if a[k] < b[k] {
			return 1
		}
	}

	return 0
}
