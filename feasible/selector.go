package feasible

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/feasibrush/feasibrush/morph"
	"github.com/feasibrush/feasibrush/raster"
)

// maskedSum computes Σ L[i,j]·[mask[i,j]] via gonum's floats.Sum. An empty
// mask contributes the selector value 0: an absent material (empty free
// set) is treated as selector value 0.
func maskedSum(L *raster.FloatGrid, mask *raster.BoolGrid) (float64, error) {
	vals, err := L.MaskedValues(mask)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, nil
	}
	return floats.Sum(vals), nil
}

// SelectStep inspects the current Design against L to choose the next
// action: free touches first, then resolving touches, then ordinary valid
// touches, else InternalInvariantViolation.
func SelectStep(d *Design, L *raster.FloatGrid) (Action, error) {
	if d == nil {
		return Action{}, feasibleErrorf("SelectStep", ErrNilDesign)
	}
	if L == nil {
		return Action{}, feasibleErrorf("SelectStep", ErrNilLatent)
	}
	if r, c := L.Dims(); r != d.rows || c != d.cols {
		return Action{}, feasibleErrorf("SelectStep", ErrDimensionMismatch)
	}

	voidFree, solidFree := d.void.TouchFree, d.solid.TouchFree
	if voidFree.Any() || solidFree.Any() {
		sv, err := maskedSum(L, voidFree)
		if err != nil {
			return Action{}, feasibleErrorf("SelectStep", err)
		}
		ss, err := maskedSum(L, solidFree)
		if err != nil {
			return Action{}, feasibleErrorf("SelectStep", err)
		}
		if math.Abs(sv) > math.Abs(ss) {
			return Action{Kind: TakeFreeVoid}, nil
		}
		return Action{Kind: TakeFreeSolid}, nil
	}

	voidResolving, solidResolving := d.void.TouchResolving, d.solid.TouchResolving
	haveVoidResolving, haveSolidResolving := voidResolving.Any(), solidResolving.Any()
	if haveVoidResolving || haveSolidResolving {
		return selectBetween(L, voidResolving, solidResolving, haveVoidResolving, haveSolidResolving, ResolveVoid, ResolveSolid)
	}

	voidValid, solidValid := d.void.TouchValid, d.solid.TouchValid
	haveVoidValid, haveSolidValid := voidValid.Any(), solidValid.Any()
	if haveVoidValid || haveSolidValid {
		return selectBetween(L, voidValid, solidValid, haveVoidValid, haveSolidValid, TouchVoidAt, TouchSolidAt)
	}

	return Action{}, feasibleErrorf("SelectStep", ErrInternalInvariantViolation)
}

// selectBetween implements the shared argmin/argmax-then-compare-magnitude
// logic used by both the resolving tier and the ordinary-valid tier: void
// picks argmin2d (most negative, i.e. most solid-biased, latent among its
// own candidates), solid picks argmax2d, and whichever side's chosen cell
// has the larger |L| wins; a magnitude tie defaults to solid. The "both
// populated" branch is kept even though the reference implementation notes
// it may be redundant.
func selectBetween(L *raster.FloatGrid, voidMask, solidMask *raster.BoolGrid, haveVoid, haveSolid bool, voidKind, solidKind ActionKind) (Action, error) {
	var vi, vj, si, sj int
	var vVal, sVal float64
	if haveVoid {
		i, j, err := morph.ArgMin2D(L, voidMask)
		if err != nil {
			return Action{}, feasibleErrorf("selectBetween", err)
		}
		vi, vj = i, j
		vVal, err = L.At(i, j)
		if err != nil {
			return Action{}, feasibleErrorf("selectBetween", err)
		}
	}
	if haveSolid {
		i, j, err := morph.ArgMax2D(L, solidMask)
		if err != nil {
			return Action{}, feasibleErrorf("selectBetween", err)
		}
		si, sj = i, j
		sVal, err = L.At(i, j)
		if err != nil {
			return Action{}, feasibleErrorf("selectBetween", err)
		}
	}
	switch {
	case haveVoid && !haveSolid:
		return Action{Kind: voidKind, I: vi, J: vj}, nil
	case haveSolid && !haveVoid:
		return Action{Kind: solidKind, I: si, J: sj}, nil
	default:
		if math.Abs(vVal) > math.Abs(sVal) {
			return Action{Kind: voidKind, I: vi, J: vj}, nil
		}
		return Action{Kind: solidKind, I: si, J: sj}, nil
	}
}
