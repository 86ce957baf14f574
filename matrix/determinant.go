// SPDX-License-Identifier: MIT

// Package matrix - determinant family.
//
// Purpose:
//   - Det: the defining recursive Laplace (cofactor) expansion along the last column.
//   - DetAlongColumn: the same expansion along any chosen column.
//   - DetLU: an O(n³) elimination determinant (gonum LU) for sizes where the
//     factorial cost of Laplace is not acceptable.
//
// Determinism:
//   - Fixed i=0..n-1 accumulation order; identical inputs give identical bits.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for the determinant facades.
const (
	opDet           = "Det"
	opDetAlongCol   = "DetAlongColumn"
	opDetLU         = "DetLU"
	laplaceBaseSize = 2 // sizes ≤ this use closed forms
)

// Det computes the determinant of a square matrix by Laplace expansion.
// MAIN DESCRIPTION:
//   - det = Σ_{i=0}^{n-1} (-1)^{i+j} · m[i][j] · det(minor(i, j)), with j = n-1.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: 1×1 → m[0][0]; 2×2 → a·d − b·c; otherwise recurse on minors
//     along the last column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Zero entries in the
//     expansion column skip their minor entirely.
//
// Notes:
//   - Intended for small, interactively entered matrices. Use DetLU for large n.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d.laplace(d.c - 1), nil
}

// DetAlongColumn computes the determinant expanding the top level along column col.
// Nested minors expand along their own last column. For every valid col the
// result equals Det(m) up to floating-point rounding.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange (col ∉ [0, n)).
func DetAlongColumn(m Matrix, col int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetAlongCol, err)
	}
	if col < 0 || col >= m.Cols() {
		return 0, matrixErrorf(opDetAlongCol, fmt.Errorf("column %d: %w", col, ErrOutOfRange))
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDetAlongCol, err)
	}

	return d.laplace(col), nil
}

// laplace expands along column col. The receiver is square and never mutated.
func (m *Dense) laplace(col int) float64 {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case laplaceBaseSize:
		// [[a, b], [c, d]] → a·d − b·c
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var (
		i    int
		a    float64
		sum  float64
		sign float64
	)
	for i = 0; i < n; i++ {
		a = m.data[i*n+col]
		if a == 0 {
			continue // the whole term vanishes; skip the minor
		}
		sign = 1
		if (i+col)%2 != 0 {
			sign = -1
		}
		minor := m.minor(i, col)
		sum += sign * a * minor.laplace(minor.c-1)
	}

	return sum
}

// DetLU computes the determinant through an LU factorization (gonum/mat).
// MAIN DESCRIPTION:
//   - Elimination-based O(n³) alternative to Det. Agrees with the Laplace
//     definition to floating-point tolerance.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: copy the entries into a gonum Dense (gonum keeps the slice, so
//     the copy protects the caller's buffer) and call mat.Det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DetLU(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.Det(mat.NewDense(d.r, d.c, buf)), nil
}
