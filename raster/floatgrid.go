package raster

import "fmt"

// floatGridErrorf wraps an underlying error with FloatGrid method context.
func floatGridErrorf(op string, err error) error {
	return fmt.Errorf("FloatGrid.%s: %w", op, err)
}

// FloatGrid is a row-major, flat-backed rows×cols array of float64.
// It backs the latent array L (§3 of the design) and brush weights prior to
// thresholding. The zero value is not usable; construct via NewFloatGrid or
// one of the FromX constructors.
type FloatGrid struct {
	rows, cols int
	data       []float64
}

// NewFloatGrid allocates a rows×cols FloatGrid initialized to zero.
func NewFloatGrid(rows, cols int) (*FloatGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, floatGridErrorf("NewFloatGrid", ErrInvalidDimensions)
	}
	return &FloatGrid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromFloat64 builds a FloatGrid from a rectangular [][]float64. The input
// is copied; later mutation of values does not affect the returned grid.
func FromFloat64(values [][]float64) (*FloatGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, floatGridErrorf("FromFloat64", ErrInvalidDimensions)
	}
	rows, cols := len(values), len(values[0])
	g, err := NewFloatGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, floatGridErrorf("FromFloat64", ErrDimensionMismatch)
		}
		copy(g.data[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// FromFloat32 builds a FloatGrid from a rectangular [][]float32, widening
// each entry to float64. Latent grids are commonly produced as float32;
// internal arithmetic here is performed in float64 throughout.
func FromFloat32(values [][]float32) (*FloatGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, floatGridErrorf("FromFloat32", ErrInvalidDimensions)
	}
	rows, cols := len(values), len(values[0])
	g, err := NewFloatGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, floatGridErrorf("FromFloat32", ErrDimensionMismatch)
		}
		for j, v := range row {
			g.data[i*cols+j] = float64(v)
		}
	}
	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *FloatGrid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *FloatGrid) Cols() int { return g.cols }

// Dims returns (Rows(), Cols()) together for convenience.
func (g *FloatGrid) Dims() (int, int) { return g.rows, g.cols }

func (g *FloatGrid) indexOf(i, j int) (int, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, ErrIndexOutOfBounds
	}
	return i*g.cols + j, nil
}

// At retrieves the value at (i,j). Complexity: O(1).
func (g *FloatGrid) At(i, j int) (float64, error) {
	idx, err := g.indexOf(i, j)
	if err != nil {
		return 0, floatGridErrorf("At", err)
	}
	return g.data[idx], nil
}

// Set assigns v at (i,j). Complexity: O(1).
func (g *FloatGrid) Set(i, j int, v float64) error {
	idx, err := g.indexOf(i, j)
	if err != nil {
		return floatGridErrorf("Set", err)
	}
	g.data[idx] = v
	return nil
}

// Clone returns a deep, independent copy. Complexity: O(rows*cols).
func (g *FloatGrid) Clone() *FloatGrid {
	out := &FloatGrid{rows: g.rows, cols: g.cols, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// ThresholdPositive returns a BoolGrid with true wherever g's value is > 0,
// the convention used throughout this module to interpret a brush's raw
// float weights as a boolean stencil.
func (g *FloatGrid) ThresholdPositive() *BoolGrid {
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	for idx, v := range g.data {
		out.data[idx] = v > 0
	}
	return out
}

// MaskedValues collects, in row-major order, the values of g at every cell
// where mask is true. Used by the step selector (§4.5) to build the slices
// reduced by gonum's floats.Sum.
func (g *FloatGrid) MaskedValues(mask *BoolGrid) ([]float64, error) {
	if mask == nil {
		return nil, floatGridErrorf("MaskedValues", ErrNilGrid)
	}
	if g.rows != mask.rows || g.cols != mask.cols {
		return nil, floatGridErrorf("MaskedValues", ErrDimensionMismatch)
	}
	var out []float64
	for i := 0; i < g.rows; i++ {
		base := i * g.cols
		for j := 0; j < g.cols; j++ {
			if mask.data[base+j] {
				out = append(out, g.data[base+j])
			}
		}
	}
	return out, nil
}
