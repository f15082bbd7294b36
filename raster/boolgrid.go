package raster

import "fmt"

// boolGridErrorf wraps an underlying error with BoolGrid method context.
func boolGridErrorf(op string, err error) error {
	return fmt.Errorf("BoolGrid.%s: %w", op, err)
}

// BoolGrid is a row-major, flat-backed rows×cols array of bool.
// The zero value is not usable; construct via NewBoolGrid.
type BoolGrid struct {
	rows, cols int
	data       []bool // length == rows*cols, row-major
}

// NewBoolGrid allocates a rows×cols BoolGrid initialized to all-false.
// Complexity: O(rows*cols).
func NewBoolGrid(rows, cols int) (*BoolGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, boolGridErrorf("NewBoolGrid", ErrInvalidDimensions)
	}
	return &BoolGrid{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

// FullBoolGrid allocates a rows×cols BoolGrid initialized to all-true.
func FullBoolGrid(rows, cols int) (*BoolGrid, error) {
	g, err := NewBoolGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = true
	}
	return g, nil
}

// SingletonBoolGrid returns a rows×cols grid with exactly (i,j) set true.
func SingletonBoolGrid(rows, cols, i, j int) (*BoolGrid, error) {
	g, err := NewBoolGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := g.Set(i, j, true); err != nil {
		return nil, boolGridErrorf("SingletonBoolGrid", err)
	}
	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *BoolGrid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *BoolGrid) Cols() int { return g.cols }

// Dims returns (Rows(), Cols()) together for convenience.
func (g *BoolGrid) Dims() (int, int) { return g.rows, g.cols }

// indexOf computes the flat offset for (i,j), bounds-checked.
func (g *BoolGrid) indexOf(i, j int) (int, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, ErrIndexOutOfBounds
	}
	return i*g.cols + j, nil
}

// At retrieves the value at (i,j). Complexity: O(1).
func (g *BoolGrid) At(i, j int) (bool, error) {
	idx, err := g.indexOf(i, j)
	if err != nil {
		return false, boolGridErrorf("At", err)
	}
	return g.data[idx], nil
}

// InBounds reports whether (i,j) lies within the grid.
func (g *BoolGrid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// AtUnchecked returns the value at (i,j) without bounds checking; false for
// any (i,j) outside the grid, matching the zero-padding border policy used
// throughout this module's morphology kernels.
func (g *BoolGrid) AtUnchecked(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}
	return g.data[i*g.cols+j]
}

// Set assigns v at (i,j). Complexity: O(1).
func (g *BoolGrid) Set(i, j int, v bool) error {
	idx, err := g.indexOf(i, j)
	if err != nil {
		return boolGridErrorf("Set", err)
	}
	g.data[idx] = v
	return nil
}

// Clone returns a deep, independent copy. Complexity: O(rows*cols).
func (g *BoolGrid) Clone() *BoolGrid {
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	copy(out.data, g.data)
	return out
}

// sameShape validates that g and o share dimensions.
func (g *BoolGrid) sameShape(o *BoolGrid) error {
	if g == nil || o == nil {
		return ErrNilGrid
	}
	if g.rows != o.rows || g.cols != o.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", g.rows, g.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	return nil
}

// And returns a new grid holding the elementwise conjunction of g and o.
// Complexity: O(rows*cols).
func (g *BoolGrid) And(o *BoolGrid) (*BoolGrid, error) {
	if err := g.sameShape(o); err != nil {
		return nil, boolGridErrorf("And", err)
	}
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	for idx := range g.data {
		out.data[idx] = g.data[idx] && o.data[idx]
	}
	return out, nil
}

// Or returns a new grid holding the elementwise disjunction of g and o.
// Complexity: O(rows*cols).
func (g *BoolGrid) Or(o *BoolGrid) (*BoolGrid, error) {
	if err := g.sameShape(o); err != nil {
		return nil, boolGridErrorf("Or", err)
	}
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	for idx := range g.data {
		out.data[idx] = g.data[idx] || o.data[idx]
	}
	return out, nil
}

// Not returns a new grid holding the elementwise negation of g.
// Complexity: O(rows*cols).
func (g *BoolGrid) Not() *BoolGrid {
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	for idx := range g.data {
		out.data[idx] = !g.data[idx]
	}
	return out
}

// AndNot returns g ∧ ¬o (set difference). Complexity: O(rows*cols).
func (g *BoolGrid) AndNot(o *BoolGrid) (*BoolGrid, error) {
	if err := g.sameShape(o); err != nil {
		return nil, boolGridErrorf("AndNot", err)
	}
	out := &BoolGrid{rows: g.rows, cols: g.cols, data: make([]bool, len(g.data))}
	for idx := range g.data {
		out.data[idx] = g.data[idx] && !o.data[idx]
	}
	return out, nil
}

// Any reports whether any cell is true. Complexity: O(rows*cols) worst case,
// early-exits on first true.
func (g *BoolGrid) Any() bool {
	for _, v := range g.data {
		if v {
			return true
		}
	}
	return false
}

// All reports whether every cell is true.
func (g *BoolGrid) All() bool {
	for _, v := range g.data {
		if !v {
			return false
		}
	}
	return true
}

// CountTrue returns the number of true cells. Complexity: O(rows*cols).
func (g *BoolGrid) CountTrue() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether g and o have identical shape and contents.
func (g *BoolGrid) Equal(o *BoolGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for idx := range g.data {
		if g.data[idx] != o.data[idx] {
			return false
		}
	}
	return true
}

// Coords returns the (i,j) coordinates of every true cell, in row-major
// order. Useful for tests and tracing; not used on the per-step hot path.
func (g *BoolGrid) Coords() [][2]int {
	var out [][2]int
	for i := 0; i < g.rows; i++ {
		base := i * g.cols
		for j := 0; j < g.cols; j++ {
			if g.data[base+j] {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
