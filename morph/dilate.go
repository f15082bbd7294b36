package morph

import "github.com/feasibrush/feasibrush/raster"

// brushOffsets returns the (dr, dc) offsets of every true cell of b relative
// to the designated center (ci, cj). q ∈ B is represented here by its offset
// from center, so that dilate(M, B) = { p + (q-center) : p ∈ M, q ∈ B }.
func brushOffsets(b *raster.BoolGrid, ci, cj int) [][2]int {
	var offs [][2]int
	rows, cols := b.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v, _ := b.At(r, c); v {
				offs = append(offs, [2]int{r - ci, c - cj})
			}
		}
	}
	return offs
}

// Dilate computes dilate(M, B) centered at (centerI, centerJ): the output
// grid has the same shape as M. Border policy is zero-padding: a shift
// reaching outside M contributes nothing.
//
// Complexity: O(rows(M)·cols(M)·|B|_true).
func Dilate(M, B *raster.BoolGrid, centerI, centerJ int) (*raster.BoolGrid, error) {
	if M == nil || B == nil {
		return nil, morphErrorf("Dilate", ErrNilInput)
	}
	rows, cols := M.Dims()
	out, err := raster.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, morphErrorf("Dilate", err)
	}
	offs := brushOffsets(B, centerI, centerJ)
	if len(offs) == 0 {
		return out, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			hit := false
			for _, o := range offs {
				if M.AtUnchecked(i-o[0], j-o[1]) {
					hit = true
					break
				}
			}
			if hit {
				_ = out.Set(i, j, true)
			}
		}
	}
	return out, nil
}

// Erode computes erode(M, B) = ¬dilate(¬M, B_flipped), where B_flipped is B
// rotated 180° about its own center. For an asymmetric brush the flip must
// be applied consistently: this function always flips, so callers never
// need to pre-flip B themselves.
//
// Complexity: O(rows(M)·cols(M)·|B|_true).
func Erode(M, B *raster.BoolGrid, centerI, centerJ int) (*raster.BoolGrid, error) {
	if M == nil || B == nil {
		return nil, morphErrorf("Erode", ErrNilInput)
	}
	flipped, err := FlipMask(B, centerI, centerJ)
	if err != nil {
		return nil, morphErrorf("Erode", err)
	}
	notM := M.Not()
	d, err := Dilate(notM, flipped, centerI, centerJ)
	if err != nil {
		return nil, morphErrorf("Erode", err)
	}
	return d.Not(), nil
}

// FlipMask returns B point-reflected about (ci, cj): FlipMask(B)[r][c] =
// B[2*ci-r][2*cj-c]. For an odd-dimension brush whose center is its
// geometric center, this maps B's own bounding box onto itself, so the
// result has identical shape. Cells whose mirror falls outside B are false
// in the result (zero-padding), which only arises for a non-geometric
// center.
func FlipMask(B *raster.BoolGrid, ci, cj int) (*raster.BoolGrid, error) {
	if B == nil {
		return nil, morphErrorf("FlipMask", ErrNilInput)
	}
	rows, cols := B.Dims()
	out, err := raster.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, morphErrorf("FlipMask", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, _ := B.At(r, c)
			if !v {
				continue
			}
			mr, mc := 2*ci-r, 2*cj-c
			if mr >= 0 && mr < rows && mc >= 0 && mc < cols {
				_ = out.Set(mr, mc, true)
			}
		}
	}
	return out, nil
}

// BatchDilate applies Dilate(M_k, B, centerI, centerJ) to every mask in
// masks, the stack form of Dilate for probing many candidate footprints in
// one call. Package feasible does not call it: its naive free-touch form
// dilates one candidate at a time. All masks in the stack must share one
// shape.
func BatchDilate(masks []*raster.BoolGrid, B *raster.BoolGrid, centerI, centerJ int) ([]*raster.BoolGrid, error) {
	if len(masks) == 0 {
		return nil, morphErrorf("BatchDilate", ErrEmptyStack)
	}
	rows, cols := masks[0].Dims()
	out := make([]*raster.BoolGrid, len(masks))
	for k, m := range masks {
		if m == nil {
			return nil, morphErrorf("BatchDilate", ErrNilInput)
		}
		r, c := m.Dims()
		if r != rows || c != cols {
			return nil, morphErrorf("BatchDilate", ErrShapeMismatch)
		}
		d, err := Dilate(m, B, centerI, centerJ)
		if err != nil {
			return nil, morphErrorf("BatchDilate", err)
		}
		out[k] = d
	}
	return out, nil
}
