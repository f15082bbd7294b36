package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// StepResult is one value sent on Stream's channel: either a successfully
// applied step (Design/Action/Step populated, Err nil) or a terminal
// failure (Err non-nil, after which the channel is closed).
type StepResult struct {
	Design *Design
	Action Action
	Step   int
	Err    error
}

// applyAction dispatches one selector Action to the corresponding AddTouch
// call.
func applyAction(d *Design, action Action, br *brush.Brush) (*Design, error) {
	switch action.Kind {
	case TakeFreeVoid:
		return AddTouchMask(d, Void, d.planes(Void).TouchFree, br)
	case TakeFreeSolid:
		return AddTouchMask(d, Solid, d.planes(Solid).TouchFree, br)
	case ResolveVoid, TouchVoidAt:
		return AddTouchAt(d, Void, action.I, action.J, br)
	case ResolveSolid, TouchSolidAt:
		return AddTouchAt(d, Solid, action.I, action.J, br)
	default:
		return nil, feasibleErrorf("applyAction", ErrInternalInvariantViolation)
	}
}

// Stream runs the driver loop as a Go generator: it yields the empty
// Design first, then one StepResult per applied
// action, until no pixel is UNASSIGNED. The channel is closed after the
// final successful yield, or after a single StepResult carrying a non-nil
// Err on failure (InfeasibleBrush, InternalInvariantViolation, context
// cancellation, or the m·n+1 step safety net).
func Stream(L *raster.FloatGrid, br *brush.Brush, opts ...Option) <-chan StepResult {
	o := gatherOptions(opts...)
	ch := make(chan StepResult)
	go func() {
		defer close(ch)
		if L == nil {
			ch <- StepResult{Err: feasibleErrorf("Stream", ErrNilLatent)}
			return
		}
		if br == nil {
			ch <- StepResult{Err: feasibleErrorf("Stream", ErrNilBrush)}
			return
		}
		rows, cols := L.Dims()
		d, err := NewDesign(rows, cols, br)
		if err != nil {
			ch <- StepResult{Err: err}
			return
		}
		maxSteps := o.MaxSteps
		if maxSteps <= 0 {
			maxSteps = rows*cols + 1
		}

		step := 0
		ch <- StepResult{Design: d, Step: step}

		for d.HasUnassigned() {
			select {
			case <-o.Ctx.Done():
				ch <- StepResult{Err: o.Ctx.Err()}
				return
			default:
			}
			if step >= maxSteps {
				ch <- StepResult{Err: feasibleErrorf("Stream", ErrStepLimitExceeded)}
				return
			}

			action, err := SelectStep(d, L)
			if err != nil {
				ch <- StepResult{Err: err}
				return
			}
			next, err := applyAction(d, action, br)
			if err != nil {
				ch <- StepResult{Err: err}
				return
			}
			d = next
			step++

			if o.OnStep != nil {
				o.OnStep(StepTrace{Step: step, Action: action, Design: d})
			}
			ch <- StepResult{Design: d, Action: action, Step: step}
		}
	}()
	return ch
}

// Run drains Stream to completion and returns the terminal Design, or the
// first error encountered.
func Run(L *raster.FloatGrid, br *brush.Brush, opts ...Option) (*Design, error) {
	var last *Design
	for res := range Stream(L, br, opts...) {
		if res.Err != nil {
			return nil, res.Err
		}
		last = res.Design
	}
	return last, nil
}
