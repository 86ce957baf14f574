package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// TestDescription checks sign-aware alignment and the formatting options.
func TestDescription(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		opts []matrix.FormatOption
		want string
	}{
		{"SingleDigits", [][]float64{{1, -2}, {-3, 4}}, nil, " 1 -2\n-3  4"},
		{"MixedWidths", [][]float64{{1, -2}, {-30, 4}}, nil, " 1  -2\n-30  4"},
		{"DoubleDigits", [][]float64{{10, 2}, {3, -4}}, nil, " 10  2\n 3  -4"},
		{"Single", [][]float64{{7}}, nil, " 7"},
		{"NegativeZero", [][]float64{{math.Copysign(0, -1), 1}}, nil, " 0  1"},
		{"Fraction", [][]float64{{0.5, -1.25}}, nil, " 0.5  -1.25"},
		{"Precision", [][]float64{{1, -2.5}}, []matrix.FormatOption{matrix.WithPrecision(2)}, " 1.00 -2.50"},
		{"MinWidth", [][]float64{{1, 2}, {3, 4}}, []matrix.FormatOption{matrix.WithMinWidth(4)}, " 1    2\n 3    4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, tc.rows)
			require.Equal(t, tc.want, m.Description(tc.opts...))
		})
	}
}

// TestStringMatchesDescription ensures fmt.Stringer uses the default rendering.
func TestStringMatchesDescription(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, m.Description(), m.String())
}

// TestFormatOptions_PanicOnInvalid checks programmer-error guards.
func TestFormatOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithPrecision(-2) })
	require.Panics(t, func() { matrix.WithMinWidth(-1) })
	require.NotPanics(t, func() { matrix.WithPrecision(-1) })
}
