// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for construction and kernels.
//   • Keep all data finite and integer-valued where exact results are asserted.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// gridTol is the absolute margin used when comparing computed grids.
const gridTol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from a literal grid or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// requireGrid compares got against want within gridTol and prints a cmp diff on mismatch.
func requireGrid(t *testing.T, want [][]float64, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToRows(), cmpopts.EquateApprox(0, gridTol)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// requireClose asserts AllClose(a, b) with gridTol.
func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, 0, gridTol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// randomInts returns an r×c matrix with integer entries in [-5, 5].
func randomInts(rng *rand.Rand, r, c int) *matrix.Dense {
	return matrix.GenerateRect(r, c, func(int, int) float64 {
		return float64(rng.Intn(11) - 5)
	})
}
