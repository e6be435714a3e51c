// SPDX-License-Identifier: MIT

// Package matrix - scalar contract.
//
// Purpose:
//   - Define the single generic bound shared by every kernel in the package.
//   - Provide the additive (Zero) and multiplicative (One) identities without
//     per-type tables: the built-in operators + - * / are closed over any type
//     in the set, and T(1) is a constant conversion valid for all of them.
//
// Notes:
//   - User types are admitted through the tilde forms, e.g. `type Celsius float32`.
//   - Complex numbers are not in the set: inversion and tolerance checks need
//     an ordering on magnitudes.

package matrix

import "golang.org/x/exp/constraints"

// Numeric is the set of scalars a Dense may hold: every fixed-width signed and
// unsigned integer, both floating-point precisions, and named types built on them.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Float restricts kernels that need division with a meaningful remainder-free
// result and a magnitude ordering (Inverse, LU, AllClose).
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Numeric]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Numeric]() T { return T(1) }

// abs returns |v| for floating scalars without a round trip through float64.
func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// isFinite reports whether v is neither NaN nor ±Inf.
// NaN fails v == v; ±Inf fails the subtraction test (Inf - Inf is NaN).
func isFinite[T Float](v T) bool {
	return v == v && v-v == 0
}
