// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every builder sentinel wraps matrix.ErrValidation, so the whole
//     validation class can be matched at once.
//   • Implementations attach context with builderErrorf (method prefix + %w).

package builder

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// ErrBadSize indicates a grid size below the allowed minimum (n < MinCells)
// or a negative matrix extent.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = fmt.Errorf("builder: invalid size: %w", matrix.ErrValidation)

// builderErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	if inner == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
