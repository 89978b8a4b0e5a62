// Package gridmap provides a dense reference implementation of the
// fov.MapProvider contract: a rectangular obstruction layer plus a
// parallel visibility layer, with an ASCII rendering.
//
// What:
//
//   - Map: walls + visibility marks over the same width×height rectangle.
//   - SetWall/Wall: edit and query the obstruction layer.
//   - Visible/Reset: query and clear the marks left by a sweep.
//   - String: one bracketed row per line — ' ' unseen floor, '.' visible
//     floor, 'x' unseen wall, 'X' visible wall.
//
// Why:
//
//   - Hosts prototyping against fov.Engine get a working provider for free.
//   - The rendering doubles as the golden-test format for pinning sweeps.
//
// Complexity: all cell operations O(1); Reset and String O(W×H).
package gridmap
