// Package builder provides validation helpers to enforce
// parameter contracts in the operator constructors.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns an error "<Method>: parameter must be ≥ <min>, got <got>: <ErrBadSize>" otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodDDx.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}
