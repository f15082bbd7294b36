package feasible

import (
	"testing"

	"github.com/feasibrush/feasibrush/raster"
)

func TestAddTouchAt_UpdatesPixelExisting(t *testing.T) {
	br := fullSquareBrush(t, 3)
	d, err := NewDesign(7, 7, br)
	if err != nil {
		t.Fatalf("NewDesign: %v", err)
	}
	next, err := AddTouchAt(d, Void, 3, 3, br)
	if err != nil {
		t.Fatalf("AddTouchAt: %v", err)
	}
	for i := 2; i <= 4; i++ {
		for j := 2; j <= 4; j++ {
			v, _ := next.void.PixelExisting.At(i, j)
			if !v {
				t.Errorf("PixelExisting[%d][%d] = false; want true (within brush footprint)", i, j)
			}
		}
	}
	v, _ := next.void.TouchExisting.At(3, 3)
	if !v {
		t.Errorf("TouchExisting[3][3] = false; want true")
	}
	// Invariant 1: materials never overlap.
	overlap, _ := next.void.PixelExisting.And(next.solid.PixelExisting)
	if overlap.Any() {
		t.Errorf("void/solid PixelExisting overlap after a single void touch")
	}
}

func TestAddTouchAt_OppositeTouchInvalidUpdated(t *testing.T) {
	br := fullSquareBrush(t, 3)
	d, err := NewDesign(7, 7, br)
	if err != nil {
		t.Fatalf("NewDesign: %v", err)
	}
	next, err := AddTouchAt(d, Void, 3, 3, br)
	if err != nil {
		t.Fatalf("AddTouchAt: %v", err)
	}
	// o_touch_invalid = dilate(m_pixel_existing, B): solid centers within
	// 2 cells of (3,3) under two successive 3-wide dilations become invalid.
	v, _ := next.solid.TouchInvalid.At(3, 3)
	if !v {
		t.Errorf("solid.TouchInvalid[3][3] = false; want true (coincides with void's own pixel)")
	}
}

func TestAddTouchMask_EmptyMaskIsNoOp(t *testing.T) {
	br := fullSquareBrush(t, 3)
	d, err := NewDesign(5, 5, br)
	if err != nil {
		t.Fatalf("NewDesign: %v", err)
	}
	empty, _ := raster.NewBoolGrid(5, 5)
	same, err := AddTouchMask(d, Void, empty, br)
	if err != nil {
		t.Fatalf("AddTouchMask: %v", err)
	}
	if same != d {
		t.Errorf("AddTouchMask(empty mask) returned a different *Design; want the same pointer (no-op)")
	}
}

func TestAddTouchAt_ReTouchExistingIsNoOp(t *testing.T) {
	br := fullSquareBrush(t, 3)
	d, err := NewDesign(5, 5, br)
	if err != nil {
		t.Fatalf("NewDesign: %v", err)
	}
	once, err := AddTouchAt(d, Void, 2, 2, br)
	if err != nil {
		t.Fatalf("AddTouchAt: %v", err)
	}
	twice, err := AddTouchAt(once, Void, 2, 2, br)
	if err != nil {
		t.Fatalf("AddTouchAt (re-touch): %v", err)
	}
	if twice != once {
		t.Errorf("re-touching an existing center returned a different *Design; want the same pointer (no-op)")
	}
}

func TestAddTouchAt_OriginalDesignUnmodified(t *testing.T) {
	br := fullSquareBrush(t, 3)
	d, err := NewDesign(5, 5, br)
	if err != nil {
		t.Fatalf("NewDesign: %v", err)
	}
	before := d.void.PixelExisting.Clone()
	if _, err := AddTouchAt(d, Void, 2, 2, br); err != nil {
		t.Fatalf("AddTouchAt: %v", err)
	}
	if !d.void.PixelExisting.Equal(before) {
		t.Errorf("AddTouchAt mutated its receiver Design; copy-on-write violated")
	}
}
