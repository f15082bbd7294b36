package brush

import (
	"errors"
	"fmt"
)

// brushErrorf wraps an underlying error with function context.
func brushErrorf(op string, err error) error {
	return fmt.Errorf("brush.%s: %w", op, err)
}

var (
	// ErrEvenDimension indicates a brush with an even row or column count was
	// supplied; a brush must have odd dimensions so its geometric center is
	// an integer cell.
	ErrEvenDimension = errors.New("brush: dimensions must be odd")

	// ErrEmptyBrush indicates a brush mask with no true cell was supplied;
	// such a brush could never place a touch.
	ErrEmptyBrush = errors.New("brush: mask has no true cell")

	// ErrNilMask indicates a nil mask argument.
	ErrNilMask = errors.New("brush: nil mask")
)
