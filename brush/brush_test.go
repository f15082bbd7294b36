package brush

import (
	"testing"

	"github.com/feasibrush/feasibrush/raster"
)

func square3() *raster.BoolGrid {
	g, _ := raster.FullBoolGrid(3, 3)
	return g
}

func TestNewBrush_Errors(t *testing.T) {
	even, _ := raster.NewBoolGrid(2, 3)
	if _, err := NewBrush(even); err == nil {
		t.Errorf("NewBrush(even dims) error = nil; want non-nil")
	}
	empty, _ := raster.NewBoolGrid(3, 3)
	if _, err := NewBrush(empty); err == nil {
		t.Errorf("NewBrush(empty mask) error = nil; want non-nil")
	}
	if _, err := NewBrush(nil); err == nil {
		t.Errorf("NewBrush(nil) error = nil; want non-nil")
	}
}

func TestNewBrush_Center(t *testing.T) {
	b, err := NewBrush(square3())
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	ci, cj := b.Center()
	if ci != 1 || cj != 1 {
		t.Errorf("Center() = (%d,%d); want (1,1)", ci, cj)
	}
}

func TestNewBrushFromWeights_Thresholds(t *testing.T) {
	w, _ := raster.FromFloat64([][]float64{
		{1, -1, 1},
		{0, 1, 0},
		{1, -1, 1},
	})
	b, err := NewBrushFromWeights(w)
	if err != nil {
		t.Fatalf("NewBrushFromWeights: %v", err)
	}
	v, _ := b.Mask().At(0, 1)
	if v {
		t.Errorf("Mask()[0][1] = true; want false (weight <= 0)")
	}
	v, _ = b.Mask().At(1, 1)
	if !v {
		t.Errorf("Mask()[1][1] = false; want true (weight > 0)")
	}
}

func TestBrush_Flip_Asymmetric(t *testing.T) {
	m, _ := raster.NewBoolGrid(3, 3)
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
		_ = m.Set(p[0], p[1], true)
	}
	b, err := NewBrush(m)
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	flipped, err := b.Flip()
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	want := map[[2]int]bool{{2, 2}: true, {2, 1}: true, {1, 2}: true}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := flipped.Mask().At(i, j)
			if v != want[[2]int{i, j}] {
				t.Errorf("Flip().Mask()[%d][%d] = %v; want %v", i, j, v, want[[2]int{i, j}])
			}
		}
	}
}

func TestBrush_FitMask(t *testing.T) {
	b, err := NewBrush(square3())
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	fit, err := b.FitMask(5, 5)
	if err != nil {
		t.Fatalf("FitMask: %v", err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := i >= 1 && i <= 3 && j >= 1 && j <= 3
			v, _ := fit.At(i, j)
			if v != want {
				t.Errorf("FitMask(5,5)[%d][%d] = %v; want %v", i, j, v, want)
			}
		}
	}
}

func TestBrush_DilateErodeDelegation(t *testing.T) {
	b, err := NewBrush(square3())
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	M, _ := raster.SingletonBoolGrid(5, 5, 2, 2)
	d, err := b.Dilate(M)
	if err != nil {
		t.Fatalf("Dilate: %v", err)
	}
	if d.CountTrue() != 9 {
		t.Errorf("Dilate(singleton) CountTrue() = %d; want 9", d.CountTrue())
	}
	full, _ := raster.FullBoolGrid(5, 5)
	e, err := b.Erode(full)
	if err != nil {
		t.Fatalf("Erode: %v", err)
	}
	if !e.Equal(full) {
		t.Errorf("Erode(full, 3x3 square) != full; interior of a fully-solid grid should survive erosion")
	}
}
