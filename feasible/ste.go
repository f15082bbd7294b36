package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// DesignMask extracts the single m×n boolean output plane an upstream
// caller packs a Design into for visualization or loss computation: true
// where SOLID, false where VOID. Only meaningful on a
// terminal Design (HasUnassigned() == false); on a partial Design, cells
// still UNASSIGNED read as false.
func DesignMask(d *Design) (*raster.BoolGrid, error) {
	if d == nil {
		return nil, feasibleErrorf("DesignMask", ErrNilDesign)
	}
	return d.solid.PixelExisting.Clone(), nil
}

// GenerateFeasibleDesignMask runs the driver to completion and returns its
// DesignMask — the forward pass of the straight-through-estimator hook.
func GenerateFeasibleDesignMask(L *raster.FloatGrid, br *brush.Brush, opts ...Option) (*raster.BoolGrid, error) {
	d, err := Run(L, br, opts...)
	if err != nil {
		return nil, feasibleErrorf("GenerateFeasibleDesignMask", err)
	}
	return DesignMask(d)
}

// STEJacobianVectorProduct implements the straight-through-estimator JVP
// for GenerateFeasibleDesignMask's L argument: the identity. This is a
// modeling choice, not a derivation. A caller
// upstream supplies a tangent for L and receives it back unchanged,
// modeling the mapping L → design_mask(feasible(L, B)) as if it were the
// identity for reverse-mode autodiff purposes even though it is actually a
// discontinuous, combinatorial function of L.
//
// There is no brush-tangent counterpart: B enters this module only as a
// structural stencil, never as a differentiable parameter, so its implicit
// JVP is the zero map and is not represented as a callable here.
func STEJacobianVectorProduct(tangentLatent *raster.FloatGrid) (*raster.FloatGrid, error) {
	if tangentLatent == nil {
		return nil, feasibleErrorf("STEJacobianVectorProduct", ErrNilLatent)
	}
	return tangentLatent.Clone(), nil
}
