// SPDX-License-Identifier: MIT

package console

import "errors"

var (
	// ErrSyntax is returned for lines that do not match any command form.
	ErrSyntax = errors.New("console: syntax error")

	// ErrUnknownCommand is returned for an unrecognised leading keyword.
	ErrUnknownCommand = errors.New("console: unknown command")

	// ErrUndefined is returned when a referenced matrix name is not bound.
	ErrUndefined = errors.New("console: undefined matrix")

	// ErrBadName is returned for assignment targets that are not identifiers
	// or collide with a command keyword.
	ErrBadName = errors.New("console: invalid matrix name")
)
