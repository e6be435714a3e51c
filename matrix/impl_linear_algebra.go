// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense: element-wise
// addition and subtraction, the standard matrix product, transpose, scalar
// scaling and the Hadamard product.
//
// Purpose:
//   - Each kernel exists twice: a checked package-level function returning
//     (result, error) and a method that panics on a violated precondition.
//     Shape mismatches are caller logic errors, so the method form fails loudly.
//   - Every kernel allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed loop orders; Mul accumulates i→j→k from zero and rounds every
//     product to T before adding, which keeps float results reproducible.

package matrix

import "errors"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opInverse   = "Inverse"
	opLU        = "LU"
)

// opError tags err with op. A *ShapeError gets its Op field filled in place;
// anything else is wrapped as "<op>: <err>".
func opError(op string, err error) error {
	var se *ShapeError
	if errors.As(err, &se) {
		se.Op = op

		return se
	}

	return matrixErrorf(op, err)
}

// must unwraps a checked kernel result for the panicking method forms.
func must[T Numeric](m *Dense[T], err error) *Dense[T] {
	if err != nil {
		panic(err)
	}

	return m
}

// like allocates a zero matrix with the shape of m.
func like[T Numeric](m *Dense[T]) *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
}

// Sum computes the element-wise sum C = A + B into a fresh matrix.
// Implementation:
//   - Stage 1: ValidateBinary, then ValidateSameShape.
//   - Stage 2: single flat loop 0..n-1 (row-major order equals i→j order).
//
// Errors:
//   - ErrNilMatrix, *ShapeError{Op: "Add"} wrapping ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sum[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, opError(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opError(opAdd, err)
	}
	res := like(a)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Diff computes the element-wise difference C = A - B into a fresh matrix.
// Unsigned scalars wrap around exactly like the built-in operator.
// Errors and complexity as Sum.
func Diff[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, opError(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opError(opSub, err)
	}
	res := like(a)
	for idx := range res.data {
		res.data[idx] = a.data[idx] - b.data[idx]
	}

	return res, nil
}

// Product performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateBinary, then ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: naive triple loop, i over A rows, j over B cols, k over the inner
//     dimension; acc starts at Zero and gains T(a[i,k]*b[k,j]) per step.
//
// Behavior highlights:
//   - The explicit T(...) conversion rounds each product, which forbids the
//     compiler from fusing multiply-add; results match across platforms.
//   - No zero-skipping: integer overflow and float NaN propagate exactly.
//
// Errors:
//   - ErrNilMatrix, *ShapeError{Op: "Mul"} wrapping ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Product[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, opError(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opError(opMul, err)
	}
	aRows, inner, bCols := a.r, a.c, b.c
	res := &Dense[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}

	var (
		i, j, k    int // loop iterators
		rowA, rowR int // row offsets in a and res
		acc        T
	)
	for i = 0; i < aRows; i++ {
		rowA = i * inner
		rowR = i * bCols
		for j = 0; j < bCols; j++ {
			acc = Zero[T]()
			for k = 0; k < inner; k++ {
				acc += T(a.data[rowA+k] * b.data[k*bCols+j])
			}
			res.data[rowR+j] = acc
		}
	}

	return res, nil
}

// HadamardProd computes the element-wise product (a ⊙ b) into a fresh matrix.
// Hadamard ≠ matrix multiplication; use Product for A×B.
func HadamardProd[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, opError(opHadamard, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opError(opHadamard, err)
	}
	res := like(a)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Transposed returns mᵀ, a fresh Cols()×Rows() matrix.
// Errors: ErrNilMatrix only; transpose has no shape precondition.
// Complexity: O(r*c).
func Transposed[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense[T]{r: cols, c: rows, data: make([]T, len(m.data))}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j] // (i,j) → (j,i)
		}
	}

	return res, nil
}

// Scaled returns alpha*m element-wise in a fresh matrix.
// alpha = Zero yields an explicit zero matrix with the same shape.
func Scaled[T Numeric](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opScale, err)
	}
	res := like(m)
	for idx := range res.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Add returns m + b. It panics with a *ShapeError wrapping ErrDimensionMismatch
// when the shapes differ. See Sum for the checked form.
func (m *Dense[T]) Add(b *Dense[T]) *Dense[T] { return must(Sum(m, b)) }

// Sub returns m - b. It panics on shape mismatch; see Diff.
func (m *Dense[T]) Sub(b *Dense[T]) *Dense[T] { return must(Diff(m, b)) }

// Mul returns the matrix product m × b. It panics with a *ShapeError wrapping
// ErrDimensionMismatch when m.Cols() != b.Rows(). See Product for the checked form.
func (m *Dense[T]) Mul(b *Dense[T]) *Dense[T] { return must(Product(m, b)) }

// Hadamard returns m ⊙ b. It panics on shape mismatch; see HadamardProd.
func (m *Dense[T]) Hadamard(b *Dense[T]) *Dense[T] { return must(HadamardProd(m, b)) }

// Transpose returns mᵀ. The receiver is not modified.
func (m *Dense[T]) Transpose() *Dense[T] { return must(Transposed(m)) }

// Scale returns alpha*m. The receiver is not modified.
func (m *Dense[T]) Scale(alpha T) *Dense[T] { return must(Scaled(m, alpha)) }
