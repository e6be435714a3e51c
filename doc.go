// Package lvmat is a small, dependency-light toolkit for dense matrix
// arithmetic over any Go numeric type.
//
// What is inside?
//
//	matrix/      - generic Dense[T] container: construction, element access,
//	               Add/Sub/Mul/Transpose/Scale/Hadamard, Inverse and LU for floats
//	converters/  - copy adapters to and from gonum's mat.Dense
//	cmd/lvmat    - command-line replay of the classic demonstrations
//
// Quick start:
//
//	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})
//	fmt.Println(a.Add(b)) // [[6, 8], [10, 12]]
//
// Shape mismatches in the operator-style methods panic with a *matrix.ShapeError;
// every kernel also has a checked function (Sum, Product, ...) returning an error.
package lvmat
