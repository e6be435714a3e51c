// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Tolerances are float64 regardless of the scalar type; kernels convert once.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest pivot magnitude Inverse still treats
	// as zero. 0 means only an exact zero pivot is singular.
	DefaultPivotTolerance = 0.0

	// DefaultAbsTolerance is the absolute term atol of AllClose.
	DefaultAbsTolerance = 1e-9

	// DefaultRelTolerance is the relative term rtol of AllClose.
	DefaultRelTolerance = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"
	panicAbsToleranceInvalid   = "matrix: WithAbsTolerance: atol must be finite, non-negative"
	panicRelToleranceInvalid   = "matrix: WithRelTolerance: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
	absTol   float64 // >= 0; DefaultAbsTolerance
	relTol   float64 // >= 0; DefaultRelTolerance
}

// validTolerance reports whether x is finite and non-negative.
func validTolerance(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// WithPivotTolerance sets the singularity threshold used by Inverse.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - A pivot p with |p| <= eps stops elimination with ErrSingular.
//     Raise eps (e.g. 1e-12) to reject numerically near-singular inputs.
func WithPivotTolerance(eps float64) Option {
	if !validTolerance(eps) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// WithAbsTolerance sets atol for AllClose. Panics on NaN, ±Inf or negatives.
func WithAbsTolerance(atol float64) Option {
	if !validTolerance(atol) {
		panic(panicAbsToleranceInvalid)
	}

	return func(o *Options) { o.absTol = atol }
}

// WithRelTolerance sets rtol for AllClose. Panics on NaN, ±Inf or negatives.
func WithRelTolerance(rtol float64) Option {
	if !validTolerance(rtol) {
		panic(panicRelToleranceInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// NewOptions resolves opts over the defaults. Exposed for callers that want
// to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// PivotTolerance returns the effective Inverse singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// AbsTolerance returns the effective AllClose atol.
func (o Options) AbsTolerance() float64 { return o.absTol }

// RelTolerance returns the effective AllClose rtol.
func (o Options) RelTolerance() float64 { return o.relTol }

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		pivotTol: DefaultPivotTolerance,
		absTol:   DefaultAbsTolerance,
		relTol:   DefaultRelTolerance,
	}
}

// gatherOptions applies user options in order; later options win. nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
