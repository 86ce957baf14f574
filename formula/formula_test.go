package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/formula"
	"github.com/katalvlaran/matcalc/matrix"
)

// TestBuild checks common generator expressions against literal grids.
func TestBuild(t *testing.T) {
	cases := []struct {
		name string
		n    int
		expr string
		want [][]float64
	}{
		{"Constant", 2, "7", [][]float64{{7, 7}, {7, 7}}},
		{"RowMajorCounter", 2, "(i-1)*n + j", [][]float64{{1, 2}, {3, 4}}},
		{"Identity", 3, "i == j and 1 or 0", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"Hilbert", 2, "1/(i+j-1)", [][]float64{{1, 0.5}, {0.5, 1.0 / 3}}},
		{"MathLib", 2, "math.max(i, j)", [][]float64{{1, 2}, {2, 2}}},
		{"Power", 2, "i^2 + j % 2", [][]float64{{2, 1}, {5, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formula.Build(tc.n, tc.expr)
			require.NoError(t, err)
			want, err := matrix.NewFromRows(tc.want)
			require.NoError(t, err)
			ok, err := matrix.AllClose(want, got, 0, 1e-12)
			require.NoError(t, err)
			assert.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
		})
	}
}

// TestBuild_DegenerateSize collapses to a 1×1 matrix evaluated at (1,1).
func TestBuild_DegenerateSize(t *testing.T) {
	got, err := formula.Build(0, "i + j + n")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}}, got.ToRows())
}

// TestBuild_Symmetric ties the evaluator to the symmetry query.
func TestBuild_Symmetric(t *testing.T) {
	m, err := formula.Build(4, "i*j + i + j")
	require.NoError(t, err)
	assert.True(t, matrix.IsSymmetric(m))

	m, err = formula.Build(4, "i - j")
	require.NoError(t, err)
	assert.False(t, matrix.IsSymmetric(m))
}

// TestCompile_Errors covers blank input and syntax errors.
func TestCompile_Errors(t *testing.T) {
	_, err := formula.Compile("   ")
	require.ErrorIs(t, err, formula.ErrEmptyExpression)

	_, err = formula.Compile("i +")
	require.ErrorIs(t, err, formula.ErrCompile)

	_, err = formula.Build(2, "(")
	require.ErrorIs(t, err, formula.ErrCompile)
}

// TestEval_Errors covers runtime failures and non-numeric results.
func TestEval_Errors(t *testing.T) {
	_, err := formula.Build(2, `"text"`)
	require.ErrorIs(t, err, formula.ErrNotNumber)

	_, err = formula.Build(2, "i == j")
	require.ErrorIs(t, err, formula.ErrNotNumber)

	_, err = formula.Build(2, "undefinedfn(i)")
	require.ErrorIs(t, err, formula.ErrEval)

	_, err = formula.Build(2, "os.exit(1)")
	require.ErrorIs(t, err, formula.ErrEval, "os must not be loaded")
}

// TestEval_FileAccessClosed checks that expressions cannot read files or load code.
func TestEval_FileAccessClosed(t *testing.T) {
	for _, expr := range []string{
		"dofile('/etc/hostname')",
		"loadfile('/etc/hostname')()",
		"load('return 1')()",
	} {
		_, err := formula.Build(2, expr)
		require.ErrorIs(t, err, formula.ErrEval, expr)
	}

	m, err := formula.Build(1, "(dofile == nil and loadfile == nil and load == nil) and 1 or 0")
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestEval_ReusableAfterError checks the state stays balanced after a failing cell.
func TestEval_ReusableAfterError(t *testing.T) {
	f, err := formula.Compile("i == 1 and error('boom') or i * j")
	require.NoError(t, err)

	_, err = f.Eval(1, 1, 2)
	require.ErrorIs(t, err, formula.ErrEval)

	for k := 0; k < 50; k++ {
		v, err := f.Eval(2, 3, 3)
		require.NoError(t, err)
		require.Equal(t, 6.0, v)
	}
	require.Equal(t, "i == 1 and error('boom') or i * j", f.String())
}
