// SPDX-License-Identifier: MIT

package matrix

// Generate builds an n×n matrix with entry (i, j) = f(i, j), indices zero-based.
// The function is evaluated exactly once per cell in row-major order.
// n ≤ 0 collapses to a 1×1 zero matrix without calling f; a nil f yields zeros.
//
// Complexity: Time O(n²) calls of f, Space O(n²).
func Generate(n int, f GeneratorFunc) *Dense {
	return GenerateRect(n, n, f)
}

// GenerateRect is Generate for an r×c grid.
func GenerateRect(rows, cols int, f GeneratorFunc) *Dense {
	if rows <= 0 || cols <= 0 || f == nil {
		return NewDense(rows, cols)
	}
	m := NewDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = f(i, j)
		}
	}

	return m
}

// Identity returns the n×n identity matrix (n ≤ 0 collapses to [[1]]).
func Identity(n int) *Dense {
	if n <= 0 {
		n = 1
	}

	return Generate(n, func(i, j int) float64 {
		if i == j {
			return 1
		}

		return 0
	})
}
