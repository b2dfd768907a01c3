// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// Vectorizer is implemented by mesh quantities that know their own canonical
// vector form (e.g. a field stored per axis).
type Vectorizer interface {
	ToVec() *matrix.Array
}

// Mkvc is the operand-level vectorizer.
//
//   - A Vectorizer is replaced by its ToVec result first.
//   - Zero passes through unchanged (numDims is not checked).
//   - Dense operands are flattened with matrix.Mkvc.
//   - Anything else is matrix.ErrNotDense.
func Mkvc(x any, numDims int) (Value, error) {
	if v, ok := x.(Vectorizer); ok {
		x = v.ToVec()
	}
	val, err := Of(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMkvc, err)
	}
	switch t := val.(type) {
	case Zero:
		return t, nil
	case Dense:
		out, err := matrix.Mkvc(t.A, numDims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opMkvc, err)
		}
		return Dense{A: out}, nil
	default:
		return nil, fmt.Errorf("%s(%s): %w", opMkvc, val.Kind(), matrix.ErrNotDense)
	}
}
