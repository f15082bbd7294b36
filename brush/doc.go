// Package brush defines Brush, the fixed stencil a Design is painted with.
//
// A Brush wraps a raster.BoolGrid with odd dimensions and a geometric
// center: translation-invariant, assumed connected, and (for the erosion
// form of free-touch analysis) only correct when its asymmetry, if any, is
// handled via Flip — see morph.Erode, which always flips internally.
//
// This module does not provide brush-construction helpers ("notched
// square" and similar shapes are a spec.md Non-goal): callers build a
// [][]bool or [][]float64 themselves and pass it to NewBrush or
// NewBrushFromWeights.
package brush
