// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return plain sentinels or *ShapeError (no op context) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate only on the failure path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf packs Size() into the array form carried by ShapeError.
func shapeOf[T Numeric](m *Dense[T]) [2]int { return [2]int{m.r, m.c} }

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinary – Composite: NotNil(a) → NotNil(b).
func ValidateBinary[T Numeric](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateSameShape – Ensures a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Return: nil or *ShapeError wrapping ErrDimensionMismatch (Op left empty for the caller).
// Complexity: O(1).
func ValidateSameShape[T Numeric](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return &ShapeError{Left: shapeOf(a), Right: shapeOf(b), Err: ErrDimensionMismatch}
	}

	return nil
}

// ValidateMulCompatible – Ensures inner dimensions agree: a.Cols == b.Rows.
//
// Return: nil or *ShapeError wrapping ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b *Dense[T]) error {
	if a.c != b.r {
		return &ShapeError{Left: shapeOf(a), Right: shapeOf(b), Err: ErrDimensionMismatch}
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Return: nil or *ShapeError wrapping ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T Numeric](m *Dense[T]) error {
	if m.r != m.c {
		return &ShapeError{Left: shapeOf(m), Err: ErrNonSquare}
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows and 0 ≤ col < Cols.
// Returns the bare ErrOutOfRange sentinel; accessors add coordinates.
// Complexity: O(1).
func ValidateIndex[T Numeric](m *Dense[T], row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// ValidateRectangular checks that every row has the length of the first.
// Empty input is rectangular (0×0).
// Return: nil or ErrShapeMismatch wrapped with the first ragged row.
// Complexity: O(r).
func ValidateRectangular[T Numeric](rows [][]T) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf("ValidateRectangular",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), want, ErrShapeMismatch))
		}
	}

	return nil
}
