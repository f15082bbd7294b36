// Package morph implements exact 2D binary morphology over raster.BoolGrid:
// dilation, erosion, batch dilation, and deterministic argmin2d/argmax2d over
// a raster.FloatGrid. These are the primitives every touch-validity
// computation in package feasible is built from.
//
// Dilation and erosion are computed directly by shifting the structuring
// element rather than via FFT convolution: brushes are small (bm×bn, single
// digits to low tens of pixels per side) and grids are moderate, so the naive
// O(m·n·bm·bn) per call is the intended complexity — an FFT approach would
// trade exactness (floating-point threshold) for asymptotic gain this domain
// does not need.
//
// Border policy is zero-padding throughout: any shift that would reach
// outside the grid contributes nothing. This matches raster.BoolGrid's
// AtUnchecked convention exactly, so dilation/erosion use AtUnchecked rather
// than bounds-checked At.
package morph
