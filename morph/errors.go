package morph

import (
	"errors"
	"fmt"
)

// morphErrorf wraps an underlying error with package/function context.
func morphErrorf(op string, err error) error {
	return fmt.Errorf("morph.%s: %w", op, err)
}

var (
	// ErrNilInput indicates a nil *raster.BoolGrid or *raster.FloatGrid argument.
	ErrNilInput = errors.New("morph: nil input")

	// ErrEmptyStack indicates BatchDilate was called with zero masks.
	ErrEmptyStack = errors.New("morph: empty mask stack")

	// ErrShapeMismatch indicates a stack of masks passed to BatchDilate does
	// not share a single common shape.
	ErrShapeMismatch = errors.New("morph: mask stack shape mismatch")

	// ErrNoCandidates indicates ArgMin2D/ArgMax2D was called with a mask
	// containing no true cell.
	ErrNoCandidates = errors.New("morph: no candidate cells in mask")
)
