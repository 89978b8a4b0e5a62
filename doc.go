// Package lvlfov is a field-of-view toolkit for grid worlds — fast
// per-tile visibility for roguelikes, tactics games and tile-based
// simulations.
//
// 🚀 What is lvlfov?
//
//	A small, allocation-conscious library that brings together:
//		• Coordinate & grid primitives: a value Coord type and a dense,
//		  bounds-checked generic Grid container
//		• Diamond raycasting: ring-by-ring line-of-sight with exact
//		  obstruction-shadow propagation
//		• A host contract: plug any map into the engine through three
//		  methods — IsBlocking, Bounds, MarkVisible
//		• A reference map: a ready-made dense provider with an ASCII
//		  rendering for debugging and golden tests
//
// ✨ Why choose lvlfov?
//
//   - Zero allocations per sweep – the engine reuses one scratch window,
//     grown only when a larger radius is requested
//   - Host-agnostic – the engine never owns your map, it only reads
//     obstructions and writes visibility marks
//   - Pure Go – no cgo, no hidden deps
//   - Pinned semantics – the propagation rule is locked down by golden
//     grid tests, so refactors cannot silently shift a shadow
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/    — Coord arithmetic and the dense row-major Grid[T] container
//	fov/     — the diamond raycasting Engine and the MapProvider contract
//	gridmap/ — a dense reference MapProvider with ASCII rendering
//
// Quick ASCII example (origin top-left, one wall and its shadow):
//
//	    [..Xx ]
//	    [.....]
//	    [X....]
//
//	'.' visible floor, 'X' visible wall, 'x' wall hidden behind a wall,
//	' ' floor swallowed by an obstruction shadow.
//
// Dive into the fov package docs for the algorithm walkthrough and into
// examples/ for a runnable dungeon sweep.
//
//	go get github.com/katalvlaran/lvlfov/fov
package lvlfov
