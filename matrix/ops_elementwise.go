// SPDX-License-Identifier: MIT
// Package matrix - tolerance-based comparison for floating matrices.

package matrix

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol*|b[i,j]| for every element.
// Implementation:
//   - Stage 1: ValidateBinary, ValidateSameShape; resolve atol/rtol from options.
//   - Stage 2: flat scan; exact equality short-circuits (so +Inf matches +Inf),
//     any remaining non-finite value fails the comparison.
//
// Errors:
//   - ErrNilMatrix, *ShapeError wrapping ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Float](a, b *Dense[T], opts ...Option) (bool, error) {
	if err := ValidateBinary(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, opError("AllClose", err)
	}
	o := gatherOptions(opts...)

	var x, y T
	for idx := range a.data {
		x, y = a.data[idx], b.data[idx]
		if x == y {
			continue
		}
		if !isFinite(x) || !isFinite(y) {
			return false, nil
		}
		if float64(abs(x-y)) > o.absTol+o.relTol*float64(abs(y)) {
			return false, nil
		}
	}

	return true, nil
}
