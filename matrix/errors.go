// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure the package reports is an illegal-argument condition: an index,
// a row length or an operand shape that does not fit the receiver. The specific
// sentinels below all wrap ErrIllegalArgument, so callers may match either the
// precise cause or the whole family with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Return the
// sentinels directly or wrap them with denseErrorf/matrixErrorf; never
// construct ad hoc errors for shape violations.

// ErrIllegalArgument is the root of the taxonomy.
var ErrIllegalArgument = errors.New("matrix: illegal argument")

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, Rows()) or [0, Cols()).
	// Checked accessors (At/Set/SetRow/Row) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrIllegalArgument)

	// ErrRowLength indicates a replacement or literal row whose length differs
	// from the matrix column count.
	ErrRowLength = fmt.Errorf("%w: row length mismatch", ErrIllegalArgument)

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add of different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrIllegalArgument)

	// ErrNonSquare signals that a square matrix was required (determinant).
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrIllegalArgument)

	// ErrEmptyMinor is returned when removing a row and a column would leave no entries.
	ErrEmptyMinor = fmt.Errorf("%w: minor would be empty", ErrIllegalArgument)

	// ErrNilMatrix indicates that a nil Matrix was passed as an operand.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrIllegalArgument)
)
