package feasible

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Option configures optional behavior of the driver (Run/Stream).
// Use with Run(L, B, opts...) or Stream(L, B, opts...).
type Option func(*GeneratorOptions)

// GeneratorOptions holds configurable parameters for the driver loop.
type GeneratorOptions struct {
	// Ctx allows cancellation of a streaming run; defaults to
	// context.Background(). Checked between steps so a host can drop the
	// stream mid-run.
	Ctx context.Context

	// Verbose, if true, installs a default OnStep that writes the
	// human-readable trace line for each action to Out. Ignored if OnStep
	// is already set via WithOnStep.
	Verbose bool

	// Out is where the default verbose trace is written; defaults to
	// os.Stderr. Unused unless Verbose is true and OnStep is nil.
	Out io.Writer

	// OnStep, if non-nil, is invoked after each applied action with the
	// resulting StepTrace. This is diagnostics only: a plain hook function
	// in the OnVisit/OnEnqueue style rather than a logging-library
	// dependency.
	OnStep func(StepTrace)

	// MaxSteps is the hard safety-net step bound, m·n + 1 by default.
	// A value <= 0 means "use rows*cols + 1 for the grid being run".
	MaxSteps int
}

// DefaultOptions returns a GeneratorOptions with:
//   - Background context
//   - Verbose disabled
//   - Out = os.Stderr
//   - No OnStep hook
//   - MaxSteps = 0 (resolved to rows*cols+1 at Run/Stream time)
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Ctx:      context.Background(),
		Verbose:  false,
		Out:      os.Stderr,
		OnStep:   nil,
		MaxSteps: 0,
	}
}

// WithContext returns an Option that sets the Context used to cancel a
// streaming run. Passing a nil context has no effect (Background is
// retained).
func WithContext(ctx context.Context) Option {
	return func(o *GeneratorOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVerbose returns an Option that enables the default trace output.
func WithVerbose() Option {
	return func(o *GeneratorOptions) {
		o.Verbose = true
	}
}

// WithOut returns an Option that redirects the default verbose trace to w.
// Passing a nil writer has no effect (os.Stderr is retained).
func WithOut(w io.Writer) Option {
	return func(o *GeneratorOptions) {
		if w != nil {
			o.Out = w
		}
	}
}

// WithOnStep returns an Option that installs fn as the per-step hook,
// overriding the default verbose trace.
func WithOnStep(fn func(StepTrace)) Option {
	return func(o *GeneratorOptions) {
		o.OnStep = fn
	}
}

// WithMaxSteps returns an Option that overrides the default rows*cols+1
// step bound. limit <= 0 restores the default.
func WithMaxSteps(limit int) Option {
	return func(o *GeneratorOptions) {
		o.MaxSteps = limit
	}
}

// gatherOptions applies opts over DefaultOptions(), then — if Verbose is
// set and no explicit OnStep was installed — wires in the default
// human-readable trace writer.
func gatherOptions(opts ...Option) GeneratorOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Verbose && o.OnStep == nil {
		out := o.Out
		o.OnStep = func(st StepTrace) {
			switch st.Action.Kind {
			case TakeFreeVoid, TakeFreeSolid:
				fmt.Fprintf(out, "%s.\n", st.Action.Kind)
			default:
				fmt.Fprintf(out, "%s (%d, %d).\n", st.Action.Kind, st.Action.I, st.Action.J)
			}
		}
	}
	return o
}
