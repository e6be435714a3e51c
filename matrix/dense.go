// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep the invariant len(data) == rows*cols in every constructor; shape never changes afterwards.
//   - Offer two access surfaces: fatal (At/Set/RowView panic on bad indices, like slice indexing)
//     and checked (Get/Put return ErrOutOfRange).
//
// Complexity quicksheet:
//   - New/Identity: O(r*c) zero-init; At/Set/Get/Put: O(1); RowView: O(1); Row/Clone: O(c)/O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxGet     = "Get"     // method tag used in error wrappers
	ctxPut     = "Put"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Dense is a concrete row-major matrix over a Numeric scalar.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data. Arithmetic never aliases operands with results.
// The zero value is a valid 0×0 matrix.
type Dense[T Numeric] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates an r×c matrix with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Fatal constructor: zero-sized shapes are legal and yield an empty buffer;
//     negative dimensions are a programmer error and panic, the same way make does.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 via NewDense.
//   - Stage 2: panic with the wrapped ErrInvalidDimensions on failure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Numeric](rows, cols int) *Dense[T] {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// NewDense is the checked twin of New.
// MAIN DESCRIPTION:
//   - Allocate a zero-filled r×c matrix or report ErrInvalidDimensions.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0.
//   - Stage 2: allocate zero-filled buffer; make() zero-fills it deterministically.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with the requested shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the order×order matrix with One on the diagonal and Zero elsewhere.
// order == 0 yields a 0×0 matrix; a negative order panics like New.
// Complexity: O(n^2) time and space.
func Identity[T Numeric](order int) *Dense[T] {
	m := New[T](order, order)
	one := One[T]()
	for i := 0; i < order; i++ {
		m.data[i*order+i] = one // diagonal offset i*n + i
	}

	return m
}

// FromRows builds a matrix from literal row data.
// MAIN DESCRIPTION:
//   - rows = len(data), cols = len(data[0]); every row must have exactly cols entries.
//
// Implementation:
//   - Stage 1: validate the rows form a rectangle (ValidateRectangular).
//   - Stage 2: allocate and copy rows in order into the flat buffer.
//
// Behavior highlights:
//   - Input slices are copied; later writes to them are not observed.
//   - Empty input yields a 0×0 matrix; rows of length zero yield an n×0 matrix.
//
// Errors:
//   - ErrShapeMismatch (wrapped with the first ragged row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Numeric](rows [][]T) (*Dense[T], error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	r := len(rows)
	var c int
	if r > 0 {
		c = len(rows[0])
	}
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on ragged input.
// It simplifies literals in tests and examples.
func MustFromRows[T Numeric](rows [][]T) *Dense[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromData builds a rows×cols matrix from a row-major slice (copied).
// Errors: ErrInvalidDimensions on negative sizes, ErrShapeMismatch when len(data) != rows*cols.
// Complexity: O(r*c).
func FromData[T Numeric](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromData(%d,%d): len %d: %w", rows, cols, len(data), ErrShapeMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Size returns the shape as (rows, cols). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Size() (rows, cols int) { return m.r, m.c }

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Len returns the number of stored elements, always Rows()*Cols().
func (m *Dense[T]) Len() int { return len(m.data) }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// offset computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context and coordinates.
func (m *Dense[T]) offset(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Out-of-range indices panic with an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	off, err := m.offset(row, col)
	if err != nil {
		panic(denseErrorf(ctxAt, row, col, err))
	}

	return m.data[off]
}

// Set stores v at (row, col).
// Out-of-range indices panic with an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) {
	off, err := m.offset(row, col)
	if err != nil {
		panic(denseErrorf(ctxSet, row, col, err))
	}
	m.data[off] = v
}

// Get is the checked twin of At.
// Returns (value, nil) on success; (Zero, wrapped ErrOutOfRange) on invalid indices.
func (m *Dense[T]) Get(row, col int) (T, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return Zero[T](), denseErrorf(ctxGet, row, col, err)
	}

	return m.data[off], nil
}

// Put is the checked twin of Set.
func (m *Dense[T]) Put(row, col int, v T) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxPut, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a slice that shares storage with m.
// MAIN DESCRIPTION:
//   - Mutable row access: m.RowView(i)[j] = v writes element (i,j).
//
// Behavior highlights:
//   - Capacity is clipped to Cols(), so append on the view reallocates
//     instead of overwriting row i+1.
//   - Out-of-range i panics with an error wrapping ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) RowView(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRowView, i, 0, ErrOutOfRange))
	}
	start := i * m.c
	end := start + m.c

	return m.data[start:end:end]
}

// Row returns a copy of row i; mutating it never affects m.
// Out-of-range i panics with an error wrapping ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:])

	return out
}

// ToRows copies the matrix out as one slice per row (inverse of FromRows).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy; mutations do not affect the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// Equal reports whether m and b have the same shape and elementwise-equal values.
// Floating NaN never compares equal, so a matrix holding NaN is not Equal to itself;
// use AllClose for tolerance-based checks. A nil matrix equals only nil.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// String renders the matrix as nested bracketed rows, e.g. "[[1, 2], [3, 4]]".
// Scalars use their default %v formatting. Diagnostic only; not meant to be parsed.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", m.data[base+j])
		}
		b.WriteString(_fmtClose) // close row
	}
	b.WriteString(_fmtClose)

	return b.String()
}
