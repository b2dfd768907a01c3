// SPDX-License-Identifier: MIT
// Package: grid
//
// Sentinel errors for grid and index utilities. Every error returned by the
// package wraps one of these or a matrix sentinel, so both
// errors.Is(err, ErrAxisCount) and errors.Is(err, matrix.ErrValidation) hold.

package grid

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// ErrAxisCount indicates NDGrid received zero or more than MaxAxes axes.
var ErrAxisCount = fmt.Errorf("grid: axis count must be 1..%d: %w", MaxAxes, matrix.ErrValidation)

// gridErrorf attaches the operation name to err.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("grid.%s: %w", op, err)
}
