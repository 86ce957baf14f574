package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// TestAdd checks the elementwise sum on both the fast and fallback paths.
func TestAdd(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6}, {7, 8}})
	want := [][]float64{{6, 8}, {10, 12}}

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireGrid(t, want, got)

	got, err = matrix.Add(hide{a}, b)
	require.NoError(t, err)
	requireGrid(t, want, got)

	// operands untouched
	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAdd_CommutativeAndShapePreserving is a property check over random operands.
func TestAdd_CommutativeAndShapePreserving(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		r, c := 1+rng.Intn(4), 1+rng.Intn(4)
		a, b := randomInts(rng, r, c), randomInts(rng, r, c)

		ab, err := matrix.Add(a, b)
		require.NoError(t, err)
		ba, err := matrix.Add(b, a)
		require.NoError(t, err)

		require.True(t, matrix.Equal(ab, ba))
		require.Equal(t, r, ab.Rows())
		require.Equal(t, c, ab.Cols())
	}
}

// TestSub checks the elementwise difference.
func TestSub(t *testing.T) {
	a := mustRows(t, [][]float64{{5, 6}, {7, 8}})
	b := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{4, 4}, {4, 4}}, got)
}

// TestAddSub_Errors checks dimension mismatch and nil operands.
func TestAddSub_Errors(t *testing.T) {
	a := matrix.NewDense(2, 2)
	b := matrix.NewDense(2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrIllegalArgument)

	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale checks scalar multiplication and distribution over addition.
func TestScale(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2}, {0, 3}})
	got, err := matrix.Scale(2, m)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{2, -4}, {0, 6}}, got)

	got, err = matrix.Scale(0, hide{m})
	require.NoError(t, err)
	requireGrid(t, [][]float64{{0, 0}, {0, 0}}, got)

	_, err = matrix.Scale(1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale_DistributesOverAdd verifies λ(A+B) == λA + λB.
func TestScale_DistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, b := randomInts(rng, 3, 4), randomInts(rng, 3, 4)
	const lambda = 1.5

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	left, err := matrix.Scale(lambda, sum)
	require.NoError(t, err)

	la, err := matrix.Scale(lambda, a)
	require.NoError(t, err)
	lb, err := matrix.Scale(lambda, b)
	require.NoError(t, err)
	right, err := matrix.Add(la, lb)
	require.NoError(t, err)

	requireClose(t, left, right)
}

// TestMul checks the row-by-column product on square and rectangular operands.
func TestMul(t *testing.T) {
	cases := []struct {
		name string
		a, b [][]float64
		want [][]float64
	}{
		{"Square", [][]float64{{1, 2}, {3, 4}}, [][]float64{{2, 0}, {1, 2}}, [][]float64{{4, 4}, {10, 8}}},
		{"Rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, [][]float64{{7, 8}, {9, 10}, {11, 12}}, [][]float64{{58, 64}, {139, 154}}},
		{"RowTimesColumn", [][]float64{{1, 2, 3}}, [][]float64{{4}, {5}, {6}}, [][]float64{{32}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustRows(t, tc.a), mustRows(t, tc.b)

			got, err := matrix.Mul(a, b)
			require.NoError(t, err)
			requireGrid(t, tc.want, got)

			got, err = matrix.Mul(hide{a}, hide{b})
			require.NoError(t, err)
			requireGrid(t, tc.want, got)
		})
	}
}

// TestMul_Errors checks the inner-dimension contract.
func TestMul_Errors(t *testing.T) {
	_, err := matrix.Mul(matrix.NewDense(2, 3), matrix.NewDense(2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrIllegalArgument)

	_, err = matrix.Mul(matrix.NewSquare(2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Associative verifies (A·B)·C == A·(B·C) for compatible random shapes.
func TestMul_Associative(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	a, b, c := randomInts(rng, 3, 4), randomInts(rng, 4, 2), randomInts(rng, 2, 5)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	require.Equal(t, 3, left.Rows())
	require.Equal(t, 5, left.Cols())
	requireClose(t, left, right)
}

// TestMul_IdentityNeutral checks I·A == A == A·I.
func TestMul_IdentityNeutral(t *testing.T) {
	a := randomInts(rand.New(rand.NewSource(12)), 3, 3)
	left, err := matrix.Mul(matrix.Identity(3), a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, matrix.Identity(3))
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, left))
	assert.True(t, matrix.Equal(a, right))
}

// TestTranspose checks shape, content, round trip and the fallback path.
func TestTranspose(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))

	viaIface, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.True(t, matrix.Equal(tr, viaIface))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose_RoundTripRandom checks transpose(transpose(A)) == A on random shapes.
func TestTranspose_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 10; trial++ {
		a := randomInts(rng, 1+rng.Intn(5), 1+rng.Intn(5))
		tr, err := matrix.Transpose(a)
		require.NoError(t, err)
		back, err := matrix.Transpose(tr)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, back))
	}
}

// TestIsSymmetric covers fixed cases and the A + Aᵀ construction.
func TestIsSymmetric(t *testing.T) {
	assert.True(t, matrix.IsSymmetric(matrix.Identity(3)))
	assert.True(t, matrix.IsSymmetric(mustRows(t, [][]float64{{7}})))
	assert.False(t, matrix.IsSymmetric(mustRows(t, [][]float64{{1, 2}, {3, 4}})))
	assert.False(t, matrix.IsSymmetric(matrix.NewDense(2, 3)))
	assert.False(t, matrix.IsSymmetric(nil))

	rng := rand.New(rand.NewSource(4))
	for n := 1; n <= 5; n++ {
		a := randomInts(rng, n, n)
		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		s, err := matrix.Add(a, at)
		require.NoError(t, err)
		assert.True(t, matrix.IsSymmetric(s), "n=%d", n)
		assert.True(t, matrix.IsSymmetric(hide{s}), "n=%d via interface", n)
	}
}

// TestEqualAndAllClose checks exact and tolerant comparison.
func TestEqualAndAllClose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})

	assert.True(t, matrix.Equal(a, a.Clone()))
	assert.False(t, matrix.Equal(a, b))
	assert.False(t, matrix.Equal(a, matrix.NewDense(2, 3)))
	assert.False(t, matrix.Equal(a, nil))

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-15)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, matrix.NewDense(3, 3), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
