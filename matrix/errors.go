// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the ShapeError carrier.
// Checked entry points (NewDense, FromRows, Sum, Product, Inverse, Get, Put)
// return these values; panicking entry points (New, Add, Mul, At, Set, ...)
// panic with the very same values, so a recovered panic still matches
// errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is needed; callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates literal data that does not describe a
	// rectangle: ragged rows, or a flat slice whose length is not rows*cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense operand was passed to a checked kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when no usable pivot remains (Inverse, LU).
	ErrSingular = errors.New("matrix: singular matrix")
)

// ShapeError reports the operand shapes of a failed kernel.
// Right is unused (zero) for the unary square checks of Inverse and LU.
type ShapeError struct {
	Op    string // operation tag (opAdd, opMul, ...)
	Left  [2]int // (rows, cols) of the receiver / left operand
	Right [2]int // (rows, cols) of the right operand
	Err   error  // underlying sentinel
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.Err == ErrNonSquare { // unary check, Right is unused
		return fmt.Sprintf("%s %dx%d: %v", e.Op, e.Left[0], e.Left[1], e.Err)
	}

	return fmt.Sprintf("%s %dx%d by %dx%d: %v", e.Op, e.Left[0], e.Left[1], e.Right[0], e.Right[1], e.Err)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *ShapeError) Unwrap() error { return e.Err }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
