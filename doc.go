// Package matcalc is a dense matrix calculator: a small, deterministic
// matrix core plus a console for working with named matrices.
//
// What is inside:
//
//	matrix/            Dense matrices, checked and unchecked access, row
//	                   replacement, minors, Laplace and LU determinants,
//	                   canonical Gauss form, transpose, arithmetic, symmetry
//	formula/           per-cell expressions (Lua) for generating matrices
//	internal/config/   MATCALC_* environment settings
//	internal/console/  line-oriented command loop over a workspace
//	cmd/matcalc/       the binary
//	examples/          runnable demos
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a)    // -2
//	g, _ := matrix.Gauss(a)  // identity: a is non-singular
//	fmt.Println(d, g)
//
// Indexing in the library is zero-based and half-open. The console and the
// formula variables use 1-based indices, as a person writes them.
//
// The library never logs and never starts goroutines. Errors are sentinel
// values rooted at matrix.ErrIllegalArgument, wrapped with operation context.
package matcalc
