// SPDX-License-Identifier: MIT

// Package grid: functional configuration for linear-index conversions.
//
// The only knob is the memory order used to map a subscript tuple to a linear
// index. ColumnMajor (first axis fastest) is the default and matches the
// vectorization produced by matrix.Mkvc.
package grid

// Order selects how subscripts map to linear indices.
type Order int

const (
	// ColumnMajor varies the first axis fastest (Fortran order).
	ColumnMajor Order = iota
	// RowMajor varies the last axis fastest (C order).
	RowMajor
)

const (
	// DefaultOrder is used when no WithOrder option is supplied.
	DefaultOrder = ColumnMajor

	// MaxAxes is the largest number of axes NDGrid accepts.
	MaxAxes = 3
)

const panicOrderInvalid = "grid: WithOrder: unknown order"

// String returns "F" for ColumnMajor and "C" for RowMajor.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "F"
	case RowMajor:
		return "C"
	default:
		return "Order(?)"
	}
}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order Order
}

// WithOrder selects the index order. Panics on values other than
// ColumnMajor and RowMajor.
func WithOrder(order Order) Option {
	if order != ColumnMajor && order != RowMajor {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
