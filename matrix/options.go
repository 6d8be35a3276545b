// SPDX-License-Identifier: MIT

// Package matrix: numeric policy shared by every computing package.
// This file defines:
//   - DefaultTolerance, the single source of truth for "numerically zero",
//   - Option / Options (functional options with internal state),
//   - WithTolerance with strict validation (panic on nonsensical values),
//   - Resolve, which applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// DefaultTolerance is the magnitude at or below which a coefficient, matrix
// entry or bracket contribution is treated as zero.
const DefaultTolerance = 1e-8

const panicToleranceInvalid = "matrix: WithTolerance: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// Tolerance reports the configured tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// WithTolerance sets the tolerance eps used by every "is this zero" decision.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or infinite.
//
// Notes:
//   - Larger eps drops more small coefficients from coefficient tables; the
//     test suite uses this to probe boundary precision.
func WithTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// Resolve applies opts over the defaults and returns the effective Options.
// Nil options are skipped.
func Resolve(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
