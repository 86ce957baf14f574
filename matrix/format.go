// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = " "
	_fmtRowSep  = "\n"
	_fmtPadRune = " "
	_fmtSignPos = " " // occupies the sign slot of non-negative entries
)

// Description renders the matrix as column-aligned text.
// MAIN DESCRIPTION:
//   - Every cell reserves a sign slot, so 1 and -1, or 12 and -12, occupy the
//     same width. Cells are right-padded to a common width and separated by a
//     single space; rows are separated by newlines (no trailing newline).
//
// Implementation:
//   - Stage 1: format every entry once (negative zero prints as 0).
//   - Stage 2: the common width is the longest formatted cell (≥ minWidth).
//   - Stage 3: write rows, padding all but the last cell of each row.
//
// Example (default options):
//
//	[[1, -2], [-30, 4]] →
//	" 1  -2\n-30  4"
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Description(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)

	cells := make([]string, len(m.data))
	width := o.minWidth
	for idx, v := range m.data {
		cells[idx] = formatCell(v, o.precision)
		if len(cells[idx]) > width {
			width = len(cells[idx])
		}
	}

	var b strings.Builder
	var i, j int
	var s string
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		for j = 0; j < m.c; j++ {
			s = cells[i*m.c+j]
			b.WriteString(s)
			if j+1 < m.c {
				b.WriteString(strings.Repeat(_fmtPadRune, width-len(s)))
				b.WriteString(_fmtCellSep)
			}
		}
	}

	return b.String()
}

// formatCell renders one entry with its sign slot.
func formatCell(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	var s string
	if precision < 0 {
		s = strconv.FormatFloat(v, 'g', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', precision, 64)
	}
	if !strings.HasPrefix(s, "-") {
		s = _fmtSignPos + s
	}

	return s
}
