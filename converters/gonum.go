// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// ErrEmpty is returned by ToGonum for matrices with a zero dimension;
// gonum's mat.Dense cannot represent them.
var ErrEmpty = errors.New("converters: gonum does not support empty matrices")

// ErrNilMatrix is returned when a nil operand is passed to an adapter.
var ErrNilMatrix = errors.New("converters: nil matrix")

// ToGonum copies m into a new *mat.Dense.
// Row-major layouts match, so the backing slice is handed over as-is after one copy.
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: O(r*c).
func ToGonum(m *matrix.Dense[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilMatrix)
	}
	r, c := m.Size()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum %dx%d: %w", r, c, ErrEmpty)
	}

	return mat.NewDense(r, c, m.Data()), nil
}

// FromGonum copies any gonum matrix (dense, transposed view, triangular, ...)
// into a new matrix.Dense[float64] by walking Dims and At in row-major order.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*matrix.Dense[float64], error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	out := matrix.New[float64](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		row := out.RowView(i)
		for j = 0; j < c; j++ {
			row[j] = g.At(i, j)
		}
	}

	return out, nil
}
