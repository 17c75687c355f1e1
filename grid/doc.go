// Package grid implements the opportunity grid data model: a rectangular
// window of the web-Mercator pixel pyramid holding one opportunity density
// per pixel.
//
// What:
//
//   - Extents: a comparable (zoom, west, north, width, height) window.
//   - Grid: an immutable, dense Width*Height opportunity raster.
//   - Builder: accumulates point/polygon observations into cells before
//     Build freezes them into a Grid.
//   - TransformWrapper: a read-only upsampling view of a source Grid over a
//     different (higher-zoom) target Extents, exactly conserving total
//     opportunity mass.
//   - WriteTo/ReadFrom: the bit-exact delta-coded binary format.
//
// Why:
//
//   - Opportunity counts must be rasterized once from point/polygon sources
//     and then shared, read-only, across every reducer goroutine for an
//     analysis; a builder/freeze split keeps that invariant enforceable by
//     the type system rather than by convention.
//
// Complexity: PixelWeights/RasterizePolygon are O(pixels in ring's
// envelope); all other operations are O(1) or O(Width*Height).
package grid
