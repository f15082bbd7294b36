package feasible

import (
	"testing"

	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/raster"
)

// fullSquareBrush returns a size×size all-true brush (size must be odd).
func fullSquareBrush(t *testing.T, size int) *brush.Brush {
	t.Helper()
	g, err := raster.FullBoolGrid(size, size)
	if err != nil {
		t.Fatalf("FullBoolGrid: %v", err)
	}
	b, err := brush.NewBrush(g)
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	return b
}

// singlePixelBrush returns the degenerate 1×1 brush.
func singlePixelBrush(t *testing.T) *brush.Brush {
	t.Helper()
	g, _ := raster.FullBoolGrid(1, 1)
	b, err := brush.NewBrush(g)
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	return b
}

func constLatent(t *testing.T, rows, cols int, v float64) *raster.FloatGrid {
	t.Helper()
	rowsData := make([][]float64, rows)
	for i := range rowsData {
		row := make([]float64, cols)
		for j := range row {
			row[j] = v
		}
		rowsData[i] = row
	}
	L, err := raster.FromFloat64(rowsData)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	return L
}
