// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/matcalc/matrix"
)

// Workspace maps names to matrices. Bindings never share a backing buffer:
// the console clones on plain copies and every kernel returns a fresh result.
type Workspace struct {
	vars map[string]*matrix.Dense
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{vars: make(map[string]*matrix.Dense)}
}

// Get returns the matrix bound to name.
func (w *Workspace) Get(name string) (*matrix.Dense, error) {
	m, ok := w.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	return m, nil
}

// Put binds name to m, replacing any previous binding.
func (w *Workspace) Put(name string, m *matrix.Dense) error {
	if !isIdent(name) || isKeyword(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	w.vars[name] = m
	return nil
}

// Delete removes name; deleting an unbound name is an error.
func (w *Workspace) Delete(name string) error {
	if _, ok := w.vars[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	delete(w.vars, name)
	return nil
}

// Names returns the bound names in lexical order.
func (w *Workspace) Names() []string {
	names := make([]string, 0, len(w.vars))
	for name := range w.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of bindings.
func (w *Workspace) Len() int { return len(w.vars) }
