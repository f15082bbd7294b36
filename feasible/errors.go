package feasible

import (
	"errors"
	"fmt"
)

// feasibleErrorf wraps an underlying error with function context.
func feasibleErrorf(op string, err error) error {
	return fmt.Errorf("feasible.%s: %w", op, err)
}

var (
	// ErrInfeasibleBrush indicates a required pixel exists but no valid
	// touch can cover it.
	ErrInfeasibleBrush = errors.New("feasible: required pixel exists with no valid covering touch")

	// ErrDimensionMismatch indicates the brush is larger than the grid, or
	// the latent/Design shapes disagree.
	ErrDimensionMismatch = errors.New("feasible: dimension mismatch")

	// ErrInternalInvariantViolation indicates the selector found no
	// candidate action while UNASSIGNED pixels remain — a logic bug, not a
	// data problem.
	ErrInternalInvariantViolation = errors.New("feasible: no candidate action with unassigned pixels remaining")

	// ErrStepLimitExceeded indicates the driver exceeded its configured
	// safety-net step count; a hard upper bound of m·n+1 steps is an
	// implementation-level safety net, not part of the algorithm itself.
	ErrStepLimitExceeded = errors.New("feasible: step limit exceeded")

	// ErrNilDesign indicates a nil *Design argument.
	ErrNilDesign = errors.New("feasible: nil design")

	// ErrNilLatent indicates a nil *raster.FloatGrid latent argument.
	ErrNilLatent = errors.New("feasible: nil latent")

	// ErrNilBrush indicates a nil *brush.Brush argument.
	ErrNilBrush = errors.New("feasible: nil brush")
)
