package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestLUReconstructs checks L×U = A and the triangular structure.
func TestLUReconstructs(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagDominant(t, int64(40+n), n)
			L, U, err := matrix.LU(a)
			require.NoError(t, err)
			RequireClose(t, a, L.Mul(U))

			var i, j int
			for i = 0; i < n; i++ {
				require.Equal(t, 1.0, L.At(i, i))
				for j = i + 1; j < n; j++ {
					require.Zero(t, L.At(i, j))
					require.Zero(t, U.At(j, i))
				}
			}
		})
	}
}

// TestLUByHand pins a small decomposition.
func TestLUByHand(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{4, 3}, {6, 3}})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 0}, {1.5, 1}}, L)
	RequireRows(t, [][]float64{{4, 3}, {0, -1.5}}, U)
}

// TestLUZeroPivot reports ErrSingular because Doolittle does not pivot.
func TestLUZeroPivot(t *testing.T) {
	_, _, err := matrix.LU(matrix.MustFromRows([][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Contains(t, err.Error(), "LU")
}

func TestLUErrors(t *testing.T) {
	_, _, err := matrix.LU(matrix.New[float64](2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Equal(t, "LU 2x3: matrix: matrix is not square", err.Error())

	var nilM *matrix.Dense[float32]
	_, _, err = matrix.LU(nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
