package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// NewDesign builds the empty Design for a rows×cols grid under br: all
// touch_valid starts true except borders where the brush wouldn't fit,
// and all existing/required/resolving/free masks start false. Pixel
// possibility starts all-true, impossibility all-false, and touch_invalid
// starts all-false — nothing has been committed yet by either material.
func NewDesign(rows, cols int, br *brush.Brush) (*Design, error) {
	if br == nil {
		return nil, feasibleErrorf("NewDesign", ErrNilBrush)
	}
	bm, bn := br.Dims()
	if bm > rows || bn > cols {
		return nil, feasibleErrorf("NewDesign", ErrDimensionMismatch)
	}
	empty, err := raster.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, feasibleErrorf("NewDesign", err)
	}
	full, err := raster.FullBoolGrid(rows, cols)
	if err != nil {
		return nil, feasibleErrorf("NewDesign", err)
	}
	fit, err := br.FitMask(rows, cols)
	if err != nil {
		return nil, feasibleErrorf("NewDesign", err)
	}
	newPlanes := func() *MaterialPlanes {
		return &MaterialPlanes{
			PixelExisting:   empty.Clone(),
			PixelRequired:   empty.Clone(),
			PixelPossible:   full.Clone(),
			PixelImpossible: empty.Clone(),
			TouchExisting:   empty.Clone(),
			TouchValid:      fit.Clone(),
			TouchFree:       empty.Clone(),
			TouchResolving:  empty.Clone(),
			TouchInvalid:    empty.Clone(),
		}
	}
	return &Design{rows: rows, cols: cols, void: newPlanes(), solid: newPlanes()}, nil
}

// Dims returns the Design's (rows, cols).
func (d *Design) Dims() (int, int) { return d.rows, d.cols }

// planes returns the internal (unshared, non-cloned) MaterialPlanes for m.
// Unexported: callers within the package may read or copy-on-write from it,
// but it must never be handed to an external caller directly.
func (d *Design) planes(m Material) *MaterialPlanes {
	if m == Void {
		return d.void
	}
	return d.solid
}

// Planes returns a defensive copy of m's eight-plus-one boolean masks.
func (d *Design) Planes(m Material) *MaterialPlanes {
	return d.planes(m).clone()
}

// VoidPixelExisting returns a copy of the void pixel-existing mask.
func (d *Design) VoidPixelExisting() *raster.BoolGrid { return d.void.PixelExisting.Clone() }

// SolidPixelExisting returns a copy of the solid pixel-existing mask.
func (d *Design) SolidPixelExisting() *raster.BoolGrid { return d.solid.PixelExisting.Clone() }

// VoidTouchExisting returns a copy of the void touch-existing mask.
func (d *Design) VoidTouchExisting() *raster.BoolGrid { return d.void.TouchExisting.Clone() }

// SolidTouchExisting returns a copy of the solid touch-existing mask.
func (d *Design) SolidTouchExisting() *raster.BoolGrid { return d.solid.TouchExisting.Clone() }

// PixelLabel returns the committed label at (i, j).
func (d *Design) PixelLabel(i, j int) (PixelLabel, error) {
	v, err := d.void.PixelExisting.At(i, j)
	if err != nil {
		return Unassigned, feasibleErrorf("PixelLabel", err)
	}
	if v {
		return VoidLabel, nil
	}
	s, err := d.solid.PixelExisting.At(i, j)
	if err != nil {
		return Unassigned, feasibleErrorf("PixelLabel", err)
	}
	if s {
		return SolidLabel, nil
	}
	return Unassigned, nil
}

// TouchLabel returns the touch-center classification of (i, j) for material
// m, in the priority order the invariants impose: Existing, then Invalid,
// then Free, then Resolving, then plain Valid, else None; the touch
// invariants make these mutually exclusive by construction.
func (d *Design) TouchLabel(m Material, i, j int) (TouchState, error) {
	p := d.planes(m)
	if v, err := p.TouchExisting.At(i, j); err != nil {
		return TouchNone, feasibleErrorf("TouchLabel", err)
	} else if v {
		return TouchExisting, nil
	}
	if v, err := p.TouchInvalid.At(i, j); err != nil {
		return TouchNone, feasibleErrorf("TouchLabel", err)
	} else if v {
		return TouchInvalid, nil
	}
	if v, err := p.TouchFree.At(i, j); err != nil {
		return TouchNone, feasibleErrorf("TouchLabel", err)
	} else if v {
		return TouchFree, nil
	}
	if v, err := p.TouchResolving.At(i, j); err != nil {
		return TouchNone, feasibleErrorf("TouchLabel", err)
	} else if v {
		return TouchResolving, nil
	}
	if v, err := p.TouchValid.At(i, j); err != nil {
		return TouchNone, feasibleErrorf("TouchLabel", err)
	} else if v {
		return TouchValidOnly, nil
	}
	return TouchNone, nil
}

// HasUnassigned reports whether any pixel remains UNASSIGNED; the driver
// loop terminates exactly when this becomes false.
func (d *Design) HasUnassigned() bool {
	union, err := d.void.PixelExisting.Or(d.solid.PixelExisting)
	if err != nil {
		// void/solid always share shape by construction; unreachable.
		return true
	}
	return !union.All()
}

// Clone returns a deep, independent copy of the Design.
func (d *Design) Clone() *Design {
	return &Design{rows: d.rows, cols: d.cols, void: d.void.clone(), solid: d.solid.clone()}
}
