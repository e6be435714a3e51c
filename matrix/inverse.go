// SPDX-License-Identifier: MIT

// Package matrix - matrix inversion for floating scalars.
//
// Purpose:
//   - Provide A⁻¹ via Gauss-Jordan elimination with partial pivoting.
//   - Restrict to Float scalars: integer matrices are not closed under inversion,
//     so Inverse[int] does not compile rather than silently truncating.
//
// Determinism:
//   - Pivot search scans rows top-down and keeps the first maximum (strict >),
//     so ties resolve identically on every run.

package matrix

import "fmt"

// Inverse returns A⁻¹ for a square Float matrix.
// MAIN DESCRIPTION:
//   - Reduce [A | I] to [I | A⁻¹] on private copies; the input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare; resolve options.
//   - Stage 2: for each column: pick the row with the largest |a[r,col]| (r ≥ col),
//     swap it up, scale the pivot row to a unit pivot, eliminate the column
//     from every other row.
//
// Behavior highlights:
//   - A pivot with |p| <= WithPivotTolerance (default 0) reports ErrSingular.
//     NaN pivots are singular as well.
//   - 0×0 input returns a 0×0 result.
//
// Errors:
//   - ErrNilMatrix, *ShapeError{Op: "Inverse"} wrapping ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, opError(opInverse, err)
	}
	o := gatherOptions(opts...)
	eps := T(o.pivotTol)

	n := m.r
	a := m.Clone()        // working copy reduced towards I
	inv := Identity[T](n) // accumulates A⁻¹

	var (
		col, r, j, p   int
		best, v        T
		piv, f         T
		rowCol, rowAny int
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: first row holding the largest magnitude.
		p = col
		best = abs(a.data[col*n+col])
		for r = col + 1; r < n; r++ {
			if v = abs(a.data[r*n+col]); v > best {
				best, p = v, r
			}
		}
		if !(best > eps) { // also true for NaN
			return nil, opError(opInverse, fmt.Errorf("pivot column %d: %w", col, ErrSingular))
		}
		if p != col {
			a.swapRows(p, col)
			inv.swapRows(p, col)
		}

		// Unit pivot.
		rowCol = col * n
		piv = a.data[rowCol+col]
		for j = 0; j < n; j++ {
			a.data[rowCol+j] /= piv
			inv.data[rowCol+j] /= piv
		}

		// Eliminate column col from every other row.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			rowAny = r * n
			f = a.data[rowAny+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a.data[rowAny+j] -= T(f * a.data[rowCol+j])
				inv.data[rowAny+j] -= T(f * inv.data[rowCol+j])
			}
		}
	}

	return inv, nil
}

// MustInverse is like Inverse but panics on error.
func MustInverse[T Float](m *Dense[T], opts ...Option) *Dense[T] {
	return must(Inverse(m, opts...))
}

// swapRows exchanges rows i and k in place. Callers guarantee valid indices.
func (m *Dense[T]) swapRows(i, k int) {
	ri, rk := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[ri+j], m.data[rk+j] = m.data[rk+j], m.data[ri+j]
	}
}
