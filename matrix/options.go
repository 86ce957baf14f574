// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual rendering.
// This file defines:
//   - FormatOption (functional options over an internal struct),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision renders entries with the shortest representation that
	// round-trips (strconv 'g', -1).
	DefaultPrecision = -1

	// DefaultMinWidth is the minimum cell width, sign slot included.
	DefaultMinWidth = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicMinWidthInvalid  = "matrix: WithMinWidth: width must be >= 0"
)

// FormatOption adjusts Description output. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

type formatOptions struct {
	precision int // -1 → shortest; ≥0 → fixed digits after the point
	minWidth  int // lower bound on the common cell width
}

// WithPrecision renders entries with exactly p digits after the decimal point.
// p = -1 restores the shortest round-trip form. Panics when p < -1.
func WithPrecision(p int) FormatOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}

// WithMinWidth forces every cell to be at least w characters wide. Panics when w < 0.
func WithMinWidth(w int) FormatOption {
	if w < 0 {
		panic(panicMinWidthInvalid)
	}

	return func(o *formatOptions) { o.minWidth = w }
}

// gatherFormatOptions applies setters on top of defaults (last-writer-wins).
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{
		precision: DefaultPrecision,
		minWidth:  DefaultMinWidth,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
