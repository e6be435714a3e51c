// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewIdentity returns I_n with a checked error instead of Identity's panic on n < 0.
// Complexity: O(n^2) zero-init + O(n) diagonal writes.
func NewIdentity[T Numeric](n int) (*Dense[T], error) {
	if n < 0 {
		return nil, matrixErrorf("NewIdentity", ErrInvalidDimensions)
	}

	return Identity[T](n), nil
}

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrNilMatrix.
func ZerosLike[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return like(m), nil
}

// IdentityLike returns the identity with the order of the square matrix m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, opError("IdentityLike", err)
	}

	return Identity[T](m.r), nil
}
