// SPDX-License-Identifier: MIT

// Package console implements the matcalc read-eval loop: a line-oriented
// command language over a workspace of named matrices.
//
// Indices typed at the console are 1-based and translated to the
// zero-based matrix API.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/matcalc/formula"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/matrix"
)

// Console evaluates commands against its workspace and writes results to out.
// It is not safe for concurrent use.
type Console struct {
	cfg config.Config
	ws  *Workspace
	out io.Writer
	log logr.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithLogger traces evaluated lines and command failures at debug verbosity.
func WithLogger(l logr.Logger) Option {
	return func(c *Console) { c.log = l }
}

// New returns a Console with an empty workspace.
func New(cfg config.Config, out io.Writer, opts ...Option) *Console {
	c := &Console{cfg: cfg, ws: NewWorkspace(), out: out, log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Workspace exposes the console's named matrices.
func (c *Console) Workspace() *Workspace { return c.ws }

// Run reads commands from r until EOF, quit, or ctx cancellation.
// Command errors are printed as "error: ..." and do not stop the loop;
// only read failures and cancellation are returned.
//
// Lines are read on a separate goroutine so that cancellation interrupts a
// blocked read; a line that arrives after cancellation is never executed.
// The reader goroutine exits at the next line or EOF once Run has returned.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, r, lines, readErr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.cfg.Prompt != "" {
			fmt.Fprint(c.out, c.cfg.Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			return <-readErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := c.Exec(line)
		if err != nil {
			c.log.V(logging.DEBUG).Info("Command failed", "line", line, "error", err.Error())
			fmt.Fprintf(c.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// readLines scans r line by line into lines until EOF or ctx is done.
// On EOF or a read error it stores the scanner error in errc and closes lines.
func readLines(ctx context.Context, r io.Reader, lines chan<- string, errc chan<- error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
	errc <- sc.Err()
	close(lines)
}

// Exec evaluates a single line. quit reports a quit/exit command.
func (c *Console) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	c.log.V(logging.DEBUG).Info("Evaluating command", "line", line)

	if name, rhs, ok := splitAssignment(line); ok {
		return false, c.assign(name, rhs)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(c.out, helpText)
		return false, nil
	case "list":
		c.list()
		return false, nil
	case "show":
		return false, c.withArgs(fields, 1, func(args []string) error { return c.show(args[0]) })
	case "det":
		return false, c.withArgs(fields, 1, func(args []string) error { return c.det(args[0]) })
	case "sym":
		return false, c.withArgs(fields, 1, func(args []string) error { return c.sym(args[0]) })
	case "eq":
		return false, c.withArgs(fields, 2, func(args []string) error { return c.eq(args[0], args[1]) })
	case "get":
		return false, c.withArgs(fields, 3, func(args []string) error { return c.get(args) })
	case "set":
		return false, c.withArgs(fields, 4, func(args []string) error { return c.set(args) })
	case "setrow":
		if len(fields) < 3 {
			return false, fmt.Errorf("%w: usage: setrow A I [v1 v2 ...]", ErrSyntax)
		}
		return false, c.setRow(fields[1], fields[2], restAfter(line, 3))
	case "del":
		return false, c.withArgs(fields, 1, func(args []string) error { return c.ws.Delete(args[0]) })
	}

	if len(fields) == 1 && isIdent(fields[0]) {
		return false, c.show(fields[0])
	}

	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

// withArgs checks the argument count of a fixed-arity command.
func (c *Console) withArgs(fields []string, n int, fn func(args []string) error) error {
	if len(fields)-1 != n {
		return fmt.Errorf("%w: %s takes %d argument(s)", ErrSyntax, fields[0], n)
	}
	return fn(fields[1:])
}

// assign evaluates rhs and binds the result to name.
func (c *Console) assign(name, rhs string) error {
	if !isIdent(name) || isKeyword(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	m, err := c.eval(rhs)
	if err != nil {
		return err
	}
	return c.ws.Put(name, m)
}

// eval evaluates a right-hand side to a fresh matrix.
func (c *Console) eval(rhs string) (*matrix.Dense, error) {
	if strings.HasPrefix(rhs, "[") {
		rows, err := parseLiteral(rhs)
		if err != nil {
			return nil, err
		}
		return matrix.NewFromRows(rows)
	}

	fields := strings.Fields(rhs)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	switch fields[0] {
	case "zeros", "identity":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: usage: %s N", ErrSyntax, fields[0])
		}
		n, err := parseSize(fields[1])
		if err != nil {
			return nil, err
		}
		if fields[0] == "zeros" {
			return matrix.NewSquare(n), nil
		}
		return matrix.Identity(n), nil

	case "formula":
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: usage: formula N EXPR", ErrSyntax)
		}
		n, err := parseSize(fields[1])
		if err != nil {
			return nil, err
		}
		return formula.Build(n, restAfter(rhs, 2))

	case "gauss", "transpose":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: usage: %s A", ErrSyntax, fields[0])
		}
		m, err := c.ws.Get(fields[1])
		if err != nil {
			return nil, err
		}
		if fields[0] == "gauss" {
			return matrix.Gauss(m)
		}
		return matrix.Transpose(m)

	case "minor":
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: usage: minor A I J", ErrSyntax)
		}
		m, err := c.ws.Get(fields[1])
		if err != nil {
			return nil, err
		}
		i, j, err := parsePair(fields[2], fields[3])
		if err != nil {
			return nil, err
		}
		return m.RemoveRowAndColumn(i, j)
	}

	switch len(fields) {
	case 1:
		m, err := c.ws.Get(fields[0])
		if err != nil {
			return nil, err
		}
		return m.Clone().(*matrix.Dense), nil
	case 3:
		return c.binary(fields[0], fields[1], fields[2])
	}

	return nil, fmt.Errorf("%w: cannot evaluate %q", ErrSyntax, rhs)
}

// binary evaluates "X op Y" where op is +, - or *. A numeric operand on
// either side of * selects scalar multiplication.
func (c *Console) binary(left, op, right string) (*matrix.Dense, error) {
	if op == "*" {
		// Bound names win over numeric literals, so NaN or Inf may name a matrix.
		if alpha, ok := c.scalar(left); ok {
			m, err := c.ws.Get(right)
			if err != nil {
				return nil, err
			}
			return matrix.Scale(alpha, m)
		}
		if alpha, ok := c.scalar(right); ok {
			m, err := c.ws.Get(left)
			if err != nil {
				return nil, err
			}
			return matrix.Scale(alpha, m)
		}
	}

	a, err := c.ws.Get(left)
	if err != nil {
		return nil, err
	}
	b, err := c.ws.Get(right)
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return matrix.Add(a, b)
	case "-":
		return matrix.Sub(a, b)
	case "*":
		return matrix.Mul(a, b)
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
}

// scalar parses tok as a number unless it names a matrix in the workspace.
func (c *Console) scalar(tok string) (float64, bool) {
	if _, err := c.ws.Get(tok); err == nil {
		return 0, false
	}
	alpha, err := strconv.ParseFloat(tok, 64)

	return alpha, err == nil
}

func (c *Console) show(name string) error {
	m, err := c.ws.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, m.Description(matrix.WithPrecision(c.cfg.Precision)))
	return nil
}

func (c *Console) list() {
	for _, name := range c.ws.Names() {
		m, _ := c.ws.Get(name)
		fmt.Fprintf(c.out, "%s %dx%d\n", name, m.Rows(), m.Cols())
	}
}

// det uses cofactor expansion up to the configured limit and LU beyond it.
func (c *Console) det(name string) error {
	m, err := c.ws.Get(name)
	if err != nil {
		return err
	}
	var d float64
	if m.Rows() <= c.cfg.LaplaceLimit {
		d, err = matrix.Det(m)
	} else {
		d, err = matrix.DetLU(m)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, c.formatScalar(d))
	return nil
}

func (c *Console) sym(name string) error {
	m, err := c.ws.Get(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, matrix.IsSymmetric(m))
	return nil
}

func (c *Console) eq(left, right string) error {
	a, err := c.ws.Get(left)
	if err != nil {
		return err
	}
	b, err := c.ws.Get(right)
	if err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		fmt.Fprintln(c.out, false)
		return nil
	}
	ok, err := matrix.AllClose(a, b, 0, c.cfg.Tolerance)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, ok)
	return nil
}

func (c *Console) get(args []string) error {
	m, err := c.ws.Get(args[0])
	if err != nil {
		return err
	}
	i, j, err := parsePair(args[1], args[2])
	if err != nil {
		return err
	}
	v, err := m.At(i, j)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, c.formatScalar(v))
	return nil
}

func (c *Console) set(args []string) error {
	m, err := c.ws.Get(args[0])
	if err != nil {
		return err
	}
	i, j, err := parsePair(args[1], args[2])
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("%w: bad number %q", ErrSyntax, args[3])
	}
	return m.Set(i, j, v)
}

// setRow accepts the row either bracketed or bare: "setrow A 2 [1 2]" or "setrow A 2 1 2".
func (c *Console) setRow(name, index, values string) error {
	m, err := c.ws.Get(name)
	if err != nil {
		return err
	}
	i, err := parseIndex(index)
	if err != nil {
		return err
	}
	values = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(values), "["), "]")
	row, err := parseNumbers(values)
	if err != nil {
		return err
	}
	return m.SetRow(i, row)
}

func (c *Console) formatScalar(v float64) string {
	if v == 0 {
		v = 0
	}
	if c.cfg.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', c.cfg.Precision, 64)
}

func parsePair(si, sj string) (int, int, error) {
	i, err := parseIndex(si)
	if err != nil {
		return 0, 0, err
	}
	j, err := parseIndex(sj)
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

const helpText = `commands (indices are 1-based):
  A = [1 2; 3 4]        literal, rows split by ';'
  A = zeros N           N×N zero matrix
  A = identity N        N×N identity
  A = formula N EXPR    N×N matrix with cell (i,j) = EXPR over i, j, n
  A = B + C | B - C     elementwise sum or difference
  A = B * C | 2.5 * B   matrix product or scalar multiple
  A = gauss B           canonical Gauss form
  A = transpose B       transpose
  A = minor B I J       B without row I and column J
  A = B                 copy
  det A                 determinant
  sym A                 symmetry test
  eq A B                equality within tolerance
  get A I J             read one entry
  set A I J V           write one entry
  setrow A I [v ...]    replace row I
  show A | A            print A
  del A                 remove A
  list                  list matrices
  help                  this text
  quit | exit           leave
`
