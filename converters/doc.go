// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between matrix.Dense[float64]
// and gonum.org/v1/gonum/mat, so data built with lvmat can be handed to
// gonum's decompositions and solvers and brought back.
//
// Both directions copy; neither side ever aliases the other's storage.
package converters
