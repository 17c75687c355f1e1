// Package mercator implements the web-Mercator pixel-pyramid math shared by
// package grid (extents, rasterization) and package isochrone (contour
// vertex placement).
//
// What:
//
//   - Closed-form lon/lat <-> fractional world-pixel conversions at a given
//     zoom level, plus floor/center helpers and tile<->pixel helpers.
//   - PixelGeometry returns the closed WGS84 rectangle for one pixel cell.
//
// Why:
//
//   - Every higher-level module (Grid construction, rasterization weights,
//     isochrone vertex placement) needs the same handful of formulas; a
//     single pure, allocation-free package avoids each caller re-deriving
//     the closed forms slightly differently.
//
// Complexity: every exported function is O(1) with zero allocations.
package mercator
