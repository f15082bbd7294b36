package feasible

import (
	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// FreeTouches computes the free-touch mask via the erosion form: centers
// not yet in touchExisting whose brush footprint already lies entirely
// within pixelsMask.
//
//	touch_free = erode(pixelsMask, B) ∧ ¬touch_existing
//
// This is O(rows·cols·|B|_true); prefer it over FreeTouchesNaive for any
// grid beyond toy size.
func FreeTouches(touchExisting, pixelsMask *raster.BoolGrid, br *brush.Brush) (*raster.BoolGrid, error) {
	if touchExisting == nil || pixelsMask == nil {
		return nil, feasibleErrorf("FreeTouches", ErrNilDesign)
	}
	if br == nil {
		return nil, feasibleErrorf("FreeTouches", ErrNilBrush)
	}
	eroded, err := br.Erode(pixelsMask)
	if err != nil {
		return nil, feasibleErrorf("FreeTouches", err)
	}
	return eroded.AndNot(touchExisting)
}

// FreeTouchesNaive computes the same mask by the direct design-level
// definition: form the singleton mask for every candidate center, dilate by
// B, test subset of pixelsMask, union the passing centers, then subtract
// touchExisting. It exists to ground FreeTouches' equivalence in tests; it
// is O(rows²·cols²·|B|_true) and unsuitable for production-size grids.
func FreeTouchesNaive(touchExisting, pixelsMask *raster.BoolGrid, br *brush.Brush) (*raster.BoolGrid, error) {
	if touchExisting == nil || pixelsMask == nil {
		return nil, feasibleErrorf("FreeTouchesNaive", ErrNilDesign)
	}
	if br == nil {
		return nil, feasibleErrorf("FreeTouchesNaive", ErrNilBrush)
	}
	rows, cols := pixelsMask.Dims()
	out, err := raster.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, feasibleErrorf("FreeTouchesNaive", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			singleton, err := raster.SingletonBoolGrid(rows, cols, i, j)
			if err != nil {
				return nil, feasibleErrorf("FreeTouchesNaive", err)
			}
			footprint, err := br.Dilate(singleton)
			if err != nil {
				return nil, feasibleErrorf("FreeTouchesNaive", err)
			}
			outside, err := footprint.AndNot(pixelsMask)
			if err != nil {
				return nil, feasibleErrorf("FreeTouchesNaive", err)
			}
			if !outside.Any() {
				_ = out.Set(i, j, true)
			}
		}
	}
	return out.AndNot(touchExisting)
}
