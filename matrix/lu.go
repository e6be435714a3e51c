// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// LU performs Doolittle LU decomposition on a square Float matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with L×U = m.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare.
//   - Stage 2: for each pivot row i, fill U's row i (columns j ≥ i) and then
//     L's column i (rows j > i) from the partial dot products of earlier rows.
//
// No pivoting is performed: a zero U[i,i] before the last row reports
// ErrSingular even when m itself is invertible (e.g. [[0,1],[1,0]]).
// Use Inverse for a pivoted elimination.
//
// Complexity: Time O(n^3), Space O(n^2).
func LU[T Float](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, opError(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, opError(opLU, err)
	}
	n := m.r
	L := Identity[T](n)
	U := New[T](n, n)

	var (
		i, j, k int
		sum     T
		uDiag   T
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = Zero[T]()
			for k = 0; k < i; k++ {
				sum += T(L.data[i*n+k] * U.data[k*n+j])
			}
			U.data[i*n+j] = m.data[i*n+j] - sum
		}
		uDiag = U.data[i*n+i]
		if i < n-1 && uDiag == 0 {
			return nil, nil, opError(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = Zero[T]()
			for k = 0; k < i; k++ {
				sum += T(L.data[j*n+k] * U.data[k*n+i])
			}
			L.data[j*n+i] = (m.data[j*n+i] - sum) / uDiag
		}
	}

	return L, U, nil
}
