package morph

import (
	"math"

	"github.com/feasibrush/feasibrush/raster"
)

// ArgMin2D returns the (i, j) of the minimal entry of M, masked to cells
// where mask is true (cells where mask is false are treated as +∞). Ties
// are broken lexicographically ascending by (i, j) — row-major, first
// occurrence wins — because selection determinism depends on it.
//
// ErrNoCandidates is returned if mask has no true cell.
func ArgMin2D(M *raster.FloatGrid, mask *raster.BoolGrid) (int, int, error) {
	if M == nil || mask == nil {
		return 0, 0, morphErrorf("ArgMin2D", ErrNilInput)
	}
	rows, cols := M.Dims()
	best := math.Inf(1)
	bi, bj := -1, -1
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ok, _ := mask.At(i, j)
			if !ok {
				continue
			}
			v, _ := M.At(i, j)
			if v < best {
				best = v
				bi, bj = i, j
			}
		}
	}
	if bi < 0 {
		return 0, 0, morphErrorf("ArgMin2D", ErrNoCandidates)
	}
	return bi, bj, nil
}

// ArgMax2D is the dual of ArgMin2D: masked cells outside mask are treated as
// -∞, ties broken lexicographically ascending by (i, j).
func ArgMax2D(M *raster.FloatGrid, mask *raster.BoolGrid) (int, int, error) {
	if M == nil || mask == nil {
		return 0, 0, morphErrorf("ArgMax2D", ErrNilInput)
	}
	rows, cols := M.Dims()
	best := math.Inf(-1)
	bi, bj := -1, -1
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ok, _ := mask.At(i, j)
			if !ok {
				continue
			}
			v, _ := M.At(i, j)
			if v > best {
				best = v
				bi, bj = i, j
			}
		}
	}
	if bi < 0 {
		return 0, 0, morphErrorf("ArgMax2D", ErrNoCandidates)
	}
	return bi, bj, nil
}
