package brush

import (
	"github.com/feasibrush/feasibrush/morph"
	"github.com/feasibrush/feasibrush/raster"
)

// Brush is a small, odd-dimension boolean stencil with a geometric center.
// The zero value is not usable; construct via NewBrush or NewBrushFromWeights.
type Brush struct {
	mask   *raster.BoolGrid
	ci, cj int // geometric center: (rows-1)/2, (cols-1)/2
}

// NewBrush validates mask (odd dimensions, at least one true cell) and
// returns a Brush centered at its geometric center.
func NewBrush(mask *raster.BoolGrid) (*Brush, error) {
	if mask == nil {
		return nil, brushErrorf("NewBrush", ErrNilMask)
	}
	rows, cols := mask.Dims()
	if rows%2 == 0 || cols%2 == 0 {
		return nil, brushErrorf("NewBrush", ErrEvenDimension)
	}
	if !mask.Any() {
		return nil, brushErrorf("NewBrush", ErrEmptyBrush)
	}
	return &Brush{mask: mask.Clone(), ci: (rows - 1) / 2, cj: (cols - 1) / 2}, nil
}

// NewBrushFromWeights thresholds a real-valued stencil (`> 0`) and builds a
// Brush from the result.
func NewBrushFromWeights(weights *raster.FloatGrid) (*Brush, error) {
	if weights == nil {
		return nil, brushErrorf("NewBrushFromWeights", ErrNilMask)
	}
	return NewBrush(weights.ThresholdPositive())
}

// Mask returns the brush's boolean footprint. The returned grid is owned by
// the caller (a defensive copy); mutating it does not affect the Brush.
func (b *Brush) Mask() *raster.BoolGrid { return b.mask.Clone() }

// Dims returns the brush's (rows, cols).
func (b *Brush) Dims() (int, int) { return b.mask.Dims() }

// Center returns the brush's geometric center (ci, cj).
func (b *Brush) Center() (int, int) { return b.ci, b.cj }

// Flip returns a new Brush with the mask rotated 180° about its center
// (morph.FlipMask). Used wherever erosion or an asymmetric-brush caveat
// requires the flipped stencil explicitly.
func (b *Brush) Flip() (*Brush, error) {
	flipped, err := morph.FlipMask(b.mask, b.ci, b.cj)
	if err != nil {
		return nil, brushErrorf("Flip", err)
	}
	return &Brush{mask: flipped, ci: b.ci, cj: b.cj}, nil
}

// FitMask returns a rows×cols grid that is true at (i, j) exactly where a
// brush centered there lies entirely within [0, rows) × [0, cols) — the
// "touch_valid = all true except borders where brush wouldn't fit" initial
// condition. This bounding-box test is distinct from the zero-padding
// convention dilation/erosion use elsewhere: a touch whose
// footprint would be clipped is not merely attenuated, it is never offered
// as a candidate center at all.
func (b *Brush) FitMask(rows, cols int) (*raster.BoolGrid, error) {
	out, err := raster.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, brushErrorf("FitMask", err)
	}
	for i := 0; i < rows; i++ {
		if i-b.ci < 0 || i+b.ci >= rows {
			continue
		}
		for j := 0; j < cols; j++ {
			if j-b.cj < 0 || j+b.cj >= cols {
				continue
			}
			_ = out.Set(i, j, true)
		}
	}
	return out, nil
}

// Dilate applies morph.Dilate(M, brush-mask, center) using this brush's own
// mask and center, so callers never have to thread center coordinates
// through feasible's touch-application code by hand.
func (b *Brush) Dilate(M *raster.BoolGrid) (*raster.BoolGrid, error) {
	return morph.Dilate(M, b.mask, b.ci, b.cj)
}

// Erode applies morph.Erode(M, brush-mask, center) using this brush's own
// mask and center.
func (b *Brush) Erode(M *raster.BoolGrid) (*raster.BoolGrid, error) {
	return morph.Erode(M, b.mask, b.ci, b.cj)
}
