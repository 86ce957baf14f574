// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels in this package accept any Matrix and return *Dense. A *Dense operand
// unlocks flat-slice fast paths; other implementations go through At/Set.

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Indices are zero-based and half-open: 0 ≤ i < Rows(), 0 ≤ j < Cols().
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// GeneratorFunc maps a zero-based (row, col) position to the entry stored there.
type GeneratorFunc func(row, col int) float64
