// Package rt provides the geometric and raster foundation of a software
// renderer.
//
// # Overview
//
// rt covers the building blocks every later rendering stage depends on:
//   - Tuple: homogeneous coordinates, either a point (w = 1) or a vector (w = 0)
//   - Color: RGB intensities with channelwise arithmetic
//   - Matrix2, Matrix3, Matrix4: square row-major matrices with indexed access
//   - Canvas: a 2D buffer of colors with bounds-checked pixel access
//   - Canvas export: plain-text PPM (P3), PNG, BMP and TIFF
//
// # Quick Start
//
//	c := rt.NewCanvas(10, 20)
//	_ = c.SetPixel(2, 3, rt.NewColor(1, 0, 0))
//	if err := c.PrintPPM(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Equality
//
// Tuple and Color compare with an absolute tolerance ([DefaultEpsilon]).
// EqualWithin accepts an explicit [Tolerance] instead. Matrix Equal is exact;
// use EqualWithin for a tolerant matrix comparison.
//
// # Coordinate System
//
// Canvas coordinates have the origin at the top-left, x increasing right and
// y increasing down. PPM output lists pixels row by row from the top.
package rt
