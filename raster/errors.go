package raster

import "errors"

// Sentinel errors for the raster package. Algorithms return these; they
// never panic on caller-triggered conditions (panics are reserved for
// functional-option constructors fed literal nonsensical values elsewhere
// in this module).
var (
	// ErrInvalidDimensions indicates requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("raster: index out of bounds")

	// ErrDimensionMismatch indicates an elementwise op received operands of
	// differing shape.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")

	// ErrNilGrid indicates a nil *BoolGrid or *FloatGrid receiver or argument.
	ErrNilGrid = errors.New("raster: nil grid")
)
