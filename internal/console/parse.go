// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"strconv"
	"strings"
)

// keywords cannot be used as matrix names.
var keywords = map[string]struct{}{
	"zeros": {}, "identity": {}, "formula": {}, "gauss": {}, "transpose": {},
	"minor": {}, "det": {}, "sym": {}, "eq": {}, "show": {}, "get": {},
	"set": {}, "setrow": {}, "del": {}, "list": {}, "help": {}, "quit": {},
	"exit": {},
}

func isKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// isIdent reports whether s is a letter or underscore followed by letters,
// digits or underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for k, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case k > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// splitAssignment splits "NAME = rhs" at the first '='.
// ok is false when the line has no assignment.
func splitAssignment(line string) (name, rhs string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// parseLiteral parses "[a b; c d]" into rows. Entries may be separated by
// spaces or commas; rows by semicolons.
func parseLiteral(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w: literal must be enclosed in [ ]", ErrSyntax)
	}
	body := s[1 : len(s)-1]

	var rows [][]float64
	for _, line := range strings.Split(body, ";") {
		row, err := parseNumbers(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseNumbers parses a space- or comma-separated list of floats.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseIndex parses a 1-based console index into a 0-based one.
func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrSyntax, s)
	}
	return v - 1, nil
}

// parseSize parses a positive matrix size.
func parseSize(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: bad size %q", ErrSyntax, s)
	}
	return v, nil
}

// restAfter returns the text of line following the first k fields,
// preserving the spacing of what remains.
func restAfter(line string, k int) string {
	rest := strings.TrimSpace(line)
	for ; k > 0; k-- {
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			return ""
		}
		rest = strings.TrimSpace(rest[idx:])
	}
	return rest
}
