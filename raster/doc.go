// Package raster provides dense, row-major 2D grids of bool and float64
// values: the substrate every other package in this module builds on.
//
// BoolGrid backs pixel/touch masks (existing, required, valid, free,
// resolving, invalid). FloatGrid backs the latent array and brush weights
// before thresholding. Both store a flat []T slice of length rows*cols and
// expose bounds-checked At/Set plus a small set of elementwise boolean
// combinators (And, Or, Not, AndNot) that allocate a fresh result, mirroring
// how github.com/katalvlaran/lvlath's matrix.Dense and its ew* kernels never
// mutate an input in place.
//
// Complexity: Rows/Cols/At/Set are O(1). Elementwise ops and Clone are
// O(rows*cols).
package raster
