// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse construction and
// numeric comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute and relative tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultKeepZeros controls whether explicit zero entries survive CSR
	// construction. false ⇒ entries whose (summed) value is exactly 0 are dropped.
	DefaultKeepZeros = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	keepZeros bool    // DefaultKeepZeros
}

// WithEpsilon sets the tolerance used by AllClose.
// Panics when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Prefer small positive eps (1e-9 … 1e-12) for double-precision data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithKeepZeros keeps explicitly stored zeros in CSR structures.
// Useful when a fixed sparsity pattern must be preserved across assemblies.
func WithKeepZeros() Option {
	return func(o *Options) { o.keepZeros = true }
}

// defaultOptions returns Options filled with the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:       DefaultEpsilon,
		keepZeros: DefaultKeepZeros,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
