// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestAddScenario covers [[1,2],[3,4]] + [[5,6],[7,8]].
func TestAddScenario(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})

	RequireRows(t, [][]int{{6, 8}, {10, 12}}, a.Add(b))

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	RequireRows(t, [][]int{{6, 8}, {10, 12}}, sum)

	// operands untouched
	RequireRows(t, [][]int{{1, 2}, {3, 4}}, a)
	RequireRows(t, [][]int{{5, 6}, {7, 8}}, b)
}

// TestAddShapeMismatch ensures the method panics and the function returns a ShapeError.
func TestAddShapeMismatch(t *testing.T) {
	a := matrix.New[int](2, 2)
	b := matrix.New[int](2, 3)
	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { a.Add(b) })

	_, err := matrix.Sum(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Add", se.Op)
	require.Equal(t, [2]int{2, 2}, se.Left)
	require.Equal(t, [2]int{2, 3}, se.Right)
	require.Equal(t, "Add 2x2 by 2x3: matrix: dimension mismatch", err.Error())
}

// TestSub checks element-wise difference and unsigned wrap-around.
func TestSub(t *testing.T) {
	a := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})
	b := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	RequireRows(t, [][]int{{4, 4}, {4, 4}}, a.Sub(b))

	u := matrix.MustFromRows([][]uint8{{0}})
	one := matrix.MustFromRows([][]uint8{{1}})
	RequireRows(t, [][]uint8{{255}}, u.Sub(one))

	_, err := matrix.Diff(a, matrix.New[int](1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { a.Sub(matrix.New[int](3, 3)) })
}

// TestMulBasic checks a rectangular product by hand.
func TestMulBasic(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})    // 2×3
	b := matrix.MustFromRows([][]int{{7, 8}, {9, 10}, {11, 12}}) // 3×2
	c := a.Mul(b)
	rows, cols := c.Size()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	RequireRows(t, [][]int{{58, 64}, {139, 154}}, c)

	p, err := matrix.Product(b, a) // 3×3
	require.NoError(t, err)
	RequireRows(t, [][]int{{39, 54, 69}, {49, 68, 87}, {59, 82, 105}}, p)
}

// TestMulShapeMismatchPanics covers the 2×3 by 2×2 mismatch scenario.
func TestMulShapeMismatchPanics(t *testing.T) {
	a := matrix.New[float64](2, 3)
	b := matrix.New[float64](2, 2)
	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { a.Mul(b) })

	_, err := matrix.Product(a, b)
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Mul", se.Op)
	require.Equal(t, [2]int{2, 3}, se.Left)
	require.Equal(t, [2]int{2, 2}, se.Right)
}

// TestMulEmptyInner checks that an empty inner dimension yields zeros.
func TestMulEmptyInner(t *testing.T) {
	a := matrix.New[int](2, 0)
	b := matrix.New[int](0, 3)
	RequireRows(t, [][]int{{0, 0, 0}, {0, 0, 0}}, a.Mul(b))
}

// TestRotationScenario rotates [[4],[2]] by π and transposes the result.
func TestRotationScenario(t *testing.T) {
	rot := matrix.MustFromRows([][]float64{
		{math.Cos(math.Pi), -math.Sin(math.Pi)},
		{math.Sin(math.Pi), math.Cos(math.Pi)},
	})
	vec := matrix.MustFromRows([][]float64{{4.0}, {2.0}})

	out := rot.Mul(vec)
	rows, cols := out.Size()
	require.Equal(t, 2, rows)
	require.Equal(t, 1, cols)
	RequireClose(t, matrix.MustFromRows([][]float64{{-4.0}, {-2.0}}), out)

	tr := out.Transpose()
	rows, cols = tr.Size()
	require.Equal(t, 1, rows)
	require.Equal(t, 2, cols)
	RequireClose(t, matrix.MustFromRows([][]float64{{-4.0, -2.0}}), tr)
}

// TestMulAccumulationOrder pins the i→j→k summation order on a rounding-sensitive sum.
func TestMulAccumulationOrder(t *testing.T) {
	// Row · column = 1e16 + 1 - 1e16 evaluated left to right is 0 in float64.
	a := matrix.MustFromRows([][]float64{{1e16, 1, -1e16}})
	b := matrix.MustFromRows([][]float64{{1}, {1}, {1}})
	require.Equal(t, 0.0, a.Mul(b).At(0, 0))
}

// TestTranspose checks shape swap and element mapping.
func TestTranspose(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	RequireRows(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, a.Transpose())
	RequireRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a) // source untouched

	empty := matrix.New[int](0, 3).Transpose()
	rows, cols := empty.Size()
	require.Equal(t, 3, rows)
	require.Zero(t, cols)
}

// TestScaleAndHadamard checks the supplementary element-wise kernels.
func TestScaleAndHadamard(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	RequireRows(t, [][]int{{3, 6}, {9, 12}}, a.Scale(3))
	RequireRows(t, [][]int{{0, 0}, {0, 0}}, a.Scale(0))
	RequireRows(t, [][]int{{1, 4}, {9, 16}}, a.Hadamard(a))

	_, err := matrix.HadamardProd(a, matrix.New[int](2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCheckedKernelsRejectNil ensures nil operands surface ErrNilMatrix.
func TestCheckedKernelsRejectNil(t *testing.T) {
	a := matrix.New[int](1, 1)
	var nilM *matrix.Dense[int]

	_, err := matrix.Sum(a, nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Diff(nilM, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Product(nilM, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transposed(nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scaled(nilM, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ZerosLike(nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResultsDoNotAlias ensures mutating a result is never observable through an input.
func TestResultsDoNotAlias(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	zero := matrix.New[int](2, 2)
	id := matrix.Identity[int](2)

	for _, res := range []*matrix.Dense[int]{a.Add(zero), a.Mul(id), id.Mul(a), a.Transpose().Transpose(), a.Scale(1)} {
		res.Set(0, 0, 42)
		require.Equal(t, 1, a.At(0, 0))
	}
}

// TestLikeHelpers covers ZerosLike and IdentityLike.
func TestLikeHelpers(t *testing.T) {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	RequireRows(t, [][]int{{0, 0}, {0, 0}}, z)

	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	require.True(t, id.Equal(matrix.Identity[int](2)))

	_, err = matrix.IdentityLike(matrix.New[int](2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
