package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// RequiredPixels computes the required-pixel mask for a material whose
// existing pixels are pixelExisting, under brush br. A pixel not yet in
// pixelExisting is required for this material when
// every brush placement the opposite material could use to reach it would
// necessarily overlap pixelExisting — i.e. the opposite material can no
// longer legally claim it.
//
//	blocked  = ¬P ∧ ¬dilate(P, B)   // outside P, and outside P's own dilation:
//	                                // "safely outside" placements for the
//	                                // opposite material to center on.
//	required = ¬(dilate(blocked, B) ∨ P)
func RequiredPixels(pixelExisting *raster.BoolGrid, br *brush.Brush) (*raster.BoolGrid, error) {
	if pixelExisting == nil {
		return nil, feasibleErrorf("RequiredPixels", ErrNilDesign)
	}
	if br == nil {
		return nil, feasibleErrorf("RequiredPixels", ErrNilBrush)
	}
	notP := pixelExisting.Not()
	dilP, err := br.Dilate(pixelExisting)
	if err != nil {
		return nil, feasibleErrorf("RequiredPixels", err)
	}
	blocked, err := notP.And(dilP.Not())
	if err != nil {
		return nil, feasibleErrorf("RequiredPixels", err)
	}
	dilBlocked, err := br.Dilate(blocked)
	if err != nil {
		return nil, feasibleErrorf("RequiredPixels", err)
	}
	reach, err := dilBlocked.Or(pixelExisting)
	if err != nil {
		return nil, feasibleErrorf("RequiredPixels", err)
	}
	return reach.Not(), nil
}
