package gridmap

import "errors"

var (
	// ErrDimensionMismatch is returned by Apply when the source and
	// destination grids differ in width or height. It is detected before any
	// work is dispatched, so the destination is untouched.
	ErrDimensionMismatch = errors.New("source and destination dimensions differ")

	// ErrNilGrid is returned by Apply when either grid is nil.
	ErrNilGrid = errors.New("grid must not be nil")
)
