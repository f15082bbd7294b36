package feasible

import (
	"testing"

	"github.com/feasibrush/feasibrush/raster"
)

func TestRequiredPixels_EmptyExistingNoRequirement(t *testing.T) {
	P, _ := raster.NewBoolGrid(5, 5)
	br := fullSquareBrush(t, 3)
	req, err := RequiredPixels(P, br)
	if err != nil {
		t.Fatalf("RequiredPixels: %v", err)
	}
	if req.Any() {
		t.Errorf("RequiredPixels(empty existing) has true cells; want none")
	}
}

func TestRequiredPixels_NarrowGapForcesRequirement(t *testing.T) {
	// A 1-cell-wide gap in a 7-wide row, bordered by existing pixels, cannot
	// be reached by a 3×3 opposite-material brush without overlapping the
	// existing region, so it's required.
	P, _ := raster.NewBoolGrid(1, 7)
	for _, j := range []int{0, 1, 2, 4, 5, 6} {
		_ = P.Set(0, j, true)
	}
	br := fullSquareBrush(t, 3)
	req, err := RequiredPixels(P, br)
	if err != nil {
		t.Fatalf("RequiredPixels: %v", err)
	}
	v, _ := req.At(0, 3)
	if !v {
		t.Errorf("RequiredPixels gap column = false; want true (gap too narrow for opposite brush)")
	}
}

func TestRequiredPixels_WideGapNotRequired(t *testing.T) {
	P, _ := raster.NewBoolGrid(1, 11)
	for _, j := range []int{0, 1, 2, 8, 9, 10} {
		_ = P.Set(0, j, true)
	}
	br := fullSquareBrush(t, 3)
	req, err := RequiredPixels(P, br)
	if err != nil {
		t.Fatalf("RequiredPixels: %v", err)
	}
	v, _ := req.At(0, 5)
	if v {
		t.Errorf("RequiredPixels center of wide gap = true; want false (opposite brush fits)")
	}
}

func TestRequiredPixels_Errors(t *testing.T) {
	br := fullSquareBrush(t, 3)
	if _, err := RequiredPixels(nil, br); err == nil {
		t.Errorf("RequiredPixels(nil mask) error = nil; want non-nil")
	}
	P, _ := raster.NewBoolGrid(3, 3)
	if _, err := RequiredPixels(P, nil); err == nil {
		t.Errorf("RequiredPixels(nil brush) error = nil; want non-nil")
	}
}
