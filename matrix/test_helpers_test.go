// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep float data in U(-1,1) so tolerance checks stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// floatTol is the comparison tolerance for float64 property checks.
const floatTol = 1e-9

// RandomInts BUILDS an r×c int64 matrix with deterministic values in [-50, 50].
// Integer arithmetic wraps, so exact algebraic identities hold even on overflow.
func RandomInts(t testing.TB, seed int64, r, c int) *matrix.Dense[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[int64](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.Set(i, j, rng.Int63n(101)-50)
		}
	}

	return m
}

// RandomFloats BUILDS an r×c float64 matrix with deterministic U(-1,1) values.
func RandomFloats(t testing.TB, seed int64, r, c int) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.Set(i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant BUILDS a random n×n matrix with n added on the diagonal.
// Strict diagonal dominance guarantees invertibility.
func DiagDominant(t testing.TB, seed int64, n int) *matrix.Dense[float64] {
	t.Helper()

	return RandomFloats(t, seed, n, n).Add(matrix.Identity[float64](n).Scale(float64(n)))
}

// RequireClose FAILS the test unless a and b agree within floatTol.
func RequireClose(t testing.TB, want, got *matrix.Dense[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithAbsTolerance(floatTol), matrix.WithRelTolerance(floatTol))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\n%s", floatTol,
		cmp.Diff(want.ToRows(), got.ToRows(), cmpopts.EquateApprox(0, floatTol)))
}

// RequireRows FAILS the test unless m holds exactly want, row by row.
func RequireRows[T matrix.Numeric](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	if diff := cmp.Diff(want, m.ToRows(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// RequirePanicsIs RUNS fn and asserts it panics with an error matching target.
func RequirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
