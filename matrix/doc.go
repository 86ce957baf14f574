// Package matrix is the calculator core: a dense float64 matrix and its algorithms.
//
// What:
//
//   - Dense: a rectangular, row-major grid that is never empty (degenerate
//     sizes collapse to 1×1). Checked access (At, Set, SetRow, Row) returns
//     errors; AtUnsafe/SetUnsafe skip the checks for validated loops.
//   - Determinant: recursive Laplace expansion (Det, DetAlongColumn) and an
//     elimination-based LU determinant (DetLU).
//   - Gauss form: a canonical reduced row form computed on a copy (Gauss),
//     plus its building blocks (PivotRow, SwapRows, AddScaledRow, ScaleRow,
//     TransposeInPlace, SortRows).
//   - Operators: Add, Sub, Scale, Mul, Transpose; queries IsSymmetric, Equal, AllClose.
//   - Construction: NewDense, NewSquare, NewFromRows, Generate, GenerateRect, Identity.
//   - Rendering: Description, a column-aligned sign-aware text form.
//
// Indexing:
//
//	Zero-based and half-open everywhere: 0 ≤ i < Rows(), 0 ≤ j < Cols().
//
// Errors:
//
//	Every failure wraps ErrIllegalArgument. Specific causes: ErrOutOfRange,
//	ErrRowLength, ErrDimensionMismatch, ErrNonSquare, ErrEmptyMinor, ErrNilMatrix.
//
// Complexity:
//
//   - Det: O(n!), meant for small, hand-entered matrices. DetLU: O(n³).
//   - Gauss: O(r²·c). Mul: O(r·n·c). Add/Sub/Scale/Transpose: O(r·c).
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. Operations never share
//	buffers between matrices, so distinct values may be used from distinct
//	goroutines freely.
package matrix
