// Package matrix provides a generic dense matrix, Dense[T], over any Numeric
// scalar: every fixed-width signed and unsigned integer, float32, float64, and
// named types built on them.
//
// The matrix package provides:
//
//   - Construction: New (zero-filled), Identity, FromRows / MustFromRows (literal
//     rows, ragged input rejected with ErrShapeMismatch) and FromData.
//   - Access: At/Set and RowView (fatal on bad indices, like slice indexing)
//     plus the checked Get/Put; Size, Rows, Cols.
//   - Arithmetic: Add, Sub, Mul, Hadamard, Scale, Transpose as methods that panic
//     on a violated shape precondition, and Sum, Diff, Product, HadamardProd,
//     Scaled, Transposed as checked functions returning *ShapeError.
//   - Inverse (Gauss-Jordan with partial pivoting), LU (Doolittle) and AllClose
//     for Float scalars.
//
// Storage is row-major: element (i,j) lives at offset i*cols+j of a flat slice
// of length rows*cols. Every arithmetic result is freshly allocated, so
// mutating a result is never observable through an operand.
//
// Quick example:
//
//	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})
//	fmt.Println(a.Add(b)) // [[6, 8], [10, 12]]
package matrix
