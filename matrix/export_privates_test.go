// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private option state.
//
// Purpose:
//   - Expose a read-only snapshot of the internal Options to matrix_test.
//   - Lives in a _test.go file of package matrix, so it never widens the
//     production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

// PanicEpsilonInvalid_TestOnly avoids a magic string in panic assertions.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a stable, exported view of Options.
type OptionsSnapshot struct {
	Eps       float64
	KeepZeros bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, KeepZeros: o.keepZeros}
}
