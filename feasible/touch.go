package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// AddTouchAt applies a single touch of material m at (i, j). It returns a
// new *Design, or d itself when (i, j) is already a touch of m; d is never
// mutated.
func AddTouchAt(d *Design, m Material, i, j int, br *brush.Brush) (*Design, error) {
	if d == nil {
		return nil, feasibleErrorf("AddTouchAt", ErrNilDesign)
	}
	pos, err := raster.SingletonBoolGrid(d.rows, d.cols, i, j)
	if err != nil {
		return nil, feasibleErrorf("AddTouchAt", err)
	}
	return addTouch(d, m, pos, br)
}

// AddTouchMask applies a batch of touches of material m at every true cell
// of positions in one logical step: a single coordinate or an arbitrary
// mask are both accepted, so a caller taking every free touch at once can
// pass the current touch_free mask directly. It returns a new *Design, or d
// itself when positions adds no new touch of m; d is never mutated.
func AddTouchMask(d *Design, m Material, positions *raster.BoolGrid, br *brush.Brush) (*Design, error) {
	if d == nil {
		return nil, feasibleErrorf("AddTouchMask", ErrNilDesign)
	}
	if positions == nil {
		return nil, feasibleErrorf("AddTouchMask", ErrNilDesign)
	}
	return addTouch(d, m, positions, br)
}

// addTouch implements the ten-step touch-application update. pos holds the
// newly-requested touch positions (a single coordinate or a mask); it is
// OR'd into the material's existing touch-center set before anything else
// runs.
func addTouch(d *Design, m Material, pos *raster.BoolGrid, br *brush.Brush) (*Design, error) {
	if br == nil {
		return nil, feasibleErrorf("addTouch", ErrNilBrush)
	}
	own := d.planes(m)
	opp := d.planes(m.Opposite())

	// Step 1: fold the requested positions into the material's touch set.
	newTouchExisting, err := own.TouchExisting.Or(pos)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	if newTouchExisting.Equal(own.TouchExisting) {
		// Idempotence: no new positions ⇒ no-op, including the "free touch
		// when touch_free is empty" and "re-touch an existing center" cases.
		return d, nil
	}

	// Step 2: m_pixel_existing ← m_pixel_existing ∨ dilate(new touch set, B).
	dilatedTouches, err := br.Dilate(newTouchExisting)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	pixelExisting, err := dilatedTouches.Or(own.PixelExisting)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 3: o_touch_invalid ← dilate(m_pixel_existing, B).
	oppTouchInvalid, err := br.Dilate(pixelExisting)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 4: m_pixel_required ← RequiredPixels(m_pixel_existing, B).
	pixelRequired, err := RequiredPixels(pixelExisting, br)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 6 (computed before 5's second half needs it): free touches over
	// the refreshed pixel set.
	pixelsForFree, err := pixelExisting.Or(pixelRequired)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	touchFree, err := FreeTouches(newTouchExisting, pixelsForFree, br)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 5 (first half): touch_valid ← (touch_valid ∧ ¬touch_invalid) ∨ touch_resolving.
	validMinusInvalid, err := own.TouchValid.AndNot(own.TouchInvalid)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	touchValidStep1, err := validMinusInvalid.Or(own.TouchResolving)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 7: touch_resolving ← dilate(pixel_required, B) ∧ touch_valid ∧ ¬touch_free.
	dilatedRequired, err := br.Dilate(pixelRequired)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	resolvingCandidate, err := dilatedRequired.And(touchValidStep1)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	touchResolving, err := resolvingCandidate.AndNot(touchFree)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 5 (second half): touch_valid ← touch_valid ∧ ¬touch_existing.
	touchValid, err := touchValidStep1.AndNot(newTouchExisting)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Failure mode: a required pixel with no valid touch left to cover it.
	if pixelRequired.Any() && !touchValid.Any() {
		return nil, feasibleErrorf("addTouch", ErrInfeasibleBrush)
	}

	// Step 8: o_touch_valid ← o_touch_valid ∧ ¬o_touch_invalid.
	oppTouchValid, err := opp.TouchValid.AndNot(oppTouchInvalid)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 9: o_pixel_impossible ← o_pixel_impossible ∨ m_pixel_existing ∨ m_pixel_required.
	oppImpossibleStep, err := opp.PixelImpossible.Or(pixelExisting)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	oppPixelImpossible, err := oppImpossibleStep.Or(pixelRequired)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	// Step 10: m_pixel_possible ← m_pixel_possible ∧ ¬(m_pixel_existing ∨ m_pixel_impossible_prev).
	notYetPossibleExcluded, err := pixelExisting.Or(own.PixelImpossible)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	pixelPossible, err := own.PixelPossible.AndNot(notYetPossibleExcluded)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}
	pixelImpossible, err := own.PixelImpossible.AndNot(pixelPossible)
	if err != nil {
		return nil, feasibleErrorf("addTouch", err)
	}

	newOwn := &MaterialPlanes{
		PixelExisting:   pixelExisting,
		PixelRequired:   pixelRequired,
		PixelPossible:   pixelPossible,
		PixelImpossible: pixelImpossible,
		TouchExisting:   newTouchExisting,
		TouchValid:      touchValid,
		TouchFree:       touchFree,
		TouchResolving:  touchResolving,
		TouchInvalid:    own.TouchInvalid.Clone(), // refreshed only by the opposite's turn
	}
	newOpp := &MaterialPlanes{
		PixelExisting:   opp.PixelExisting.Clone(),
		PixelRequired:   opp.PixelRequired.Clone(),
		PixelPossible:   opp.PixelPossible.Clone(),
		PixelImpossible: oppPixelImpossible,
		TouchExisting:   opp.TouchExisting.Clone(),
		TouchValid:      oppTouchValid,
		TouchFree:       opp.TouchFree.Clone(),
		TouchResolving:  opp.TouchResolving.Clone(),
		TouchInvalid:    oppTouchInvalid,
	}

	out := &Design{rows: d.rows, cols: d.cols}
	if m == Void {
		out.void, out.solid = newOwn, newOpp
	} else {
		out.void, out.solid = newOpp, newOwn
	}
	return out, nil
}
