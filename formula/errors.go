// SPDX-License-Identifier: MIT

package formula

import "errors"

var (
	// ErrEmptyExpression is returned when the expression is blank.
	ErrEmptyExpression = errors.New("formula: empty expression")

	// ErrCompile indicates the expression is not valid Lua.
	ErrCompile = errors.New("formula: compile error")

	// ErrEval indicates a runtime error while evaluating a cell.
	ErrEval = errors.New("formula: evaluation error")

	// ErrNotNumber indicates the expression produced a non-numeric value.
	ErrNotNumber = errors.New("formula: result is not a number")
)
