// Package grid provides the 2D coordinate type and a dense, generic,
// row-major container used throughout lvlfov.
//
// What:
//
//   - Coord: an integer (X,Y) value type with component-wise addition.
//   - Grid[T]: a width×height dense array of T addressed by Coord,
//     bounds-checked, with an O(1) row-major index.
//   - Fill: bulk overwrite of every cell, used for scratch-buffer resets.
//
// Why:
//
//   - Visibility sweeps address thousands of cells per call; a flat slice
//     with one multiply per access beats nested slices on locality.
//   - A single container serves both the engine's scratch window and any
//     host-side obstruction or visibility layer.
//
// Complexity:
//
//   - New:      O(W×H) time, O(W×H) memory.
//   - At/Set:   O(1).
//   - InBounds: O(1).
//   - Fill:     O(W×H).
//
// Indexing:
//
//   - Cells are stored row-major with the grid WIDTH as the row stride,
//     so non-square grids address correctly.
//   - Indexing out of bounds is a programming error and panics; callers
//     pre-filter with InBounds.
//
// Errors:
//
//   - ErrBadDimensions: width or height below one.
package grid
