// Package feasible implements the conditional feasibility generator: given a
// latent array and a brush, it drives a Design from fully UNASSIGNED to a
// terminal state where every pixel is committed to VOID or SOLID, with every
// committed region expressible as a union of brush footprints.
package feasible

import "github.com/feasibrush/feasibrush/raster"

// Material identifies one of the two mutually-exclusive regions a Design
// partitions its pixels into.
type Material int

const (
	// Void is the VOID material.
	Void Material = iota
	// Solid is the SOLID material.
	Solid
)

// String implements fmt.Stringer.
func (m Material) String() string {
	if m == Void {
		return "void"
	}
	return "solid"
}

// Opposite returns the other material.
func (m Material) Opposite() Material {
	if m == Void {
		return Solid
	}
	return Void
}

// PixelLabel is the per-cell label derived from the two materials' existing
// masks.
type PixelLabel int

const (
	// Unassigned means no material has been committed at this cell yet.
	Unassigned PixelLabel = iota
	// VoidLabel means the cell is committed to void.
	VoidLabel
	// SolidLabel means the cell is committed to solid.
	SolidLabel
)

// TouchState is the per-cell, per-material touch-center classification.
type TouchState int

const (
	// TouchNone means this cell is none of the classified touch states for
	// this material (neither existing, valid, free, resolving, nor invalid).
	// Border centers where the brush does not fit start in this state, since
	// they are never valid.
	TouchNone TouchState = iota
	TouchExisting
	TouchFree
	TouchResolving
	TouchValidOnly
	TouchInvalid
)

// MaterialPlanes holds the eight boolean masks a single material maintains,
// plus TouchInvalid — which logically "lives on the opposite plane" (it is
// *written* by the opposite material's AddTouch call) but is stored here as
// an ordinary field, mirroring the reference implementation's
// `design.void_touch_invalid` / `design.solid_touch_invalid` attributes.
type MaterialPlanes struct {
	PixelExisting   *raster.BoolGrid
	PixelRequired   *raster.BoolGrid
	PixelPossible   *raster.BoolGrid
	PixelImpossible *raster.BoolGrid
	TouchExisting   *raster.BoolGrid
	TouchValid      *raster.BoolGrid
	TouchFree       *raster.BoolGrid
	TouchResolving  *raster.BoolGrid
	TouchInvalid    *raster.BoolGrid
}

func (p *MaterialPlanes) clone() *MaterialPlanes {
	return &MaterialPlanes{
		PixelExisting:   p.PixelExisting.Clone(),
		PixelRequired:   p.PixelRequired.Clone(),
		PixelPossible:   p.PixelPossible.Clone(),
		PixelImpossible: p.PixelImpossible.Clone(),
		TouchExisting:   p.TouchExisting.Clone(),
		TouchValid:      p.TouchValid.Clone(),
		TouchFree:       p.TouchFree.Clone(),
		TouchResolving:  p.TouchResolving.Clone(),
		TouchInvalid:    p.TouchInvalid.Clone(),
	}
}

// Design is the full feasibility-generator state: two MaterialPlanes (void,
// solid) over a shared m×n grid. AddTouchAt/AddTouchMask never mutate the
// receiver: a touch that adds anything returns a new *Design, and one that
// adds nothing returns the receiver itself — each step either fully applies
// or leaves Design unchanged — mirroring both the reference implementation's
// `design.copy(...)` convention and the copy-on-write style of raster's
// elementwise ops.
type Design struct {
	rows, cols int
	void       *MaterialPlanes
	solid      *MaterialPlanes
}

// ActionKind enumerates the six actions the step selector can emit.
type ActionKind int

const (
	TakeFreeVoid ActionKind = iota
	TakeFreeSolid
	ResolveVoid
	ResolveSolid
	TouchVoidAt
	TouchSolidAt
)

// String implements fmt.Stringer, producing the action name used in the
// human-readable trace (e.g. "take free void", "resolve solid"); the default
// verbose trace appends the coordinates and the final period.
func (k ActionKind) String() string {
	switch k {
	case TakeFreeVoid:
		return "take free void"
	case TakeFreeSolid:
		return "take free solid"
	case ResolveVoid:
		return "resolve void"
	case ResolveSolid:
		return "resolve solid"
	case TouchVoidAt:
		return "touch void"
	case TouchSolidAt:
		return "touch solid"
	default:
		return "unknown"
	}
}

// Action is one emission of the step selector: a Kind plus, for the four
// single-coordinate kinds, the chosen (I, J).
type Action struct {
	Kind ActionKind
	I, J int
}

// StepTrace is the value passed to GeneratorOptions.OnStep after each
// applied action. Stream's channel carries StepResult values instead.
type StepTrace struct {
	Step   int
	Action Action
	Design *Design
}
