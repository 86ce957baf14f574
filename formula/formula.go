// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/katalvlaran/matcalc/matrix"
)

// Global names bound before every evaluation.
const (
	varRow  = "i"
	varCol  = "j"
	varSize = "n"

	chunkPrefix = "return "
	fnIndex     = 1 // stack slot holding the compiled chunk
)

// sandboxLibs are the only libraries visible to expressions; io and os stay closed.
var sandboxLibs = []lua.RegistryFunction{
	{Name: "_G", Function: lua.BaseOpen},
	{Name: "math", Function: lua.MathOpen},
	{Name: "string", Function: lua.StringOpen},
}

// closedGlobals are base functions that reach the file system or load code.
var closedGlobals = []string{"dofile", "loadfile", "load"}

func openSandbox(l *lua.State) {
	for _, lib := range sandboxLibs {
		lua.Require(l, lib.Name, lib.Function, true)
		l.Pop(1)
	}
	for _, name := range closedGlobals {
		l.PushNil()
		l.SetGlobal(name)
	}
}

// Formula is a compiled cell expression.
type Formula struct {
	expr  string
	state *lua.State
}

// Compile parses expr once and keeps the resulting function on the stack
// of a private Lua state.
func Compile(expr string) (*Formula, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	state := lua.NewState()
	openSandbox(state)
	if err := lua.LoadString(state, chunkPrefix+expr); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, err)
	}

	return &Formula{expr: expr, state: state}, nil
}

// String returns the source expression.
func (f *Formula) String() string { return f.expr }

// Eval evaluates the expression for cell (i, j) of an n×n matrix.
// i and j are 1-based.
func (f *Formula) Eval(i, j, n int) (float64, error) {
	l := f.state
	l.PushInteger(i)
	l.SetGlobal(varRow)
	l.PushInteger(j)
	l.SetGlobal(varCol)
	l.PushInteger(n)
	l.SetGlobal(varSize)

	l.PushValue(fnIndex)
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		l.Pop(1) // error object
		return 0, fmt.Errorf("%w at (%d,%d): %v", ErrEval, i, j, err)
	}
	defer l.Pop(1)

	if l.TypeOf(-1) != lua.TypeNumber {
		return 0, fmt.Errorf("%w at (%d,%d): got %s", ErrNotNumber, i, j, lua.TypeNameOf(l, -1))
	}
	v, _ := l.ToNumber(-1)

	return v, nil
}

// Build compiles expr and fills an n×n matrix with it.
// n ≤ 0 collapses to a 1×1 matrix, matching matrix.Generate.
// The first failing cell aborts the build and its error is returned.
func Build(n int, expr string) (*matrix.Dense, error) {
	f, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	return f.Matrix(n)
}

// Matrix fills an n×n matrix by evaluating f at every cell in row-major order.
func (f *Formula) Matrix(n int) (*matrix.Dense, error) {
	size := n
	if size <= 0 {
		size = 1
	}

	var firstErr error
	m := matrix.Generate(size, func(row, col int) float64 {
		if firstErr != nil {
			return 0
		}
		v, err := f.Eval(row+1, col+1, size)
		if err != nil {
			firstErr = err
		}

		return v
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return m, nil
}
