// SPDX-License-Identifier: MIT

// Package formula evaluates per-cell expressions used to generate matrices.
//
// An expression is a Lua arithmetic expression over three numeric globals:
//
//	i, j   1-based row and column of the cell being filled
//	n      size of the square matrix
//
// The expression is compiled once as the chunk "return <expr>" and then
// evaluated for every cell. The base, math and string libraries are open,
// so math.sin(i), math.max(i, j), i^2 and i % 2 are all valid; io and os
// are not loaded.
//
// A *Formula owns its interpreter state and is not safe for concurrent use;
// compile one per goroutine.
package formula
