// Package fov computes line-of-sight / field-of-view on a 2D grid by
// diamond raycasting: a ring-by-ring sweep that propagates obstruction
// shadows outward from the observer.
//
// What
//
//   - Engine: a reusable sweep engine with a grow-only scratch window.
//   - MapProvider: the host contract — IsBlocking, Bounds, MarkVisible.
//   - Compute(origin, radius, provider): one synchronous sweep; every
//     visible cell is reported through provider.MarkVisible, the origin
//     unconditionally.
//
// Why
//
//   - Turn- or frame-based games recompute visibility constantly; the
//     engine allocates nothing per sweep once warmed up.
//   - The host keeps full ownership of its map: the engine reads
//     obstructions and writes visibility marks, nothing else.
//
// Algorithm Outline
//
//  1. Grow the scratch window to (2·radius+1)² cells when radius exceeds
//     the previous watermark (monotonic, never shrinks).
//  2. Mark the origin visible, seed its scratch cell, and push into the
//     four axis-aligned in-bounds neighbors.
//  3. For each Manhattan distance d = 1..radius-1, walk the diamond ring
//     |dx|+|dy| = d clockwise starting due east, and from every
//     non-swallowed cell push obstruction state into the neighbors
//     strictly farther from the origin.
//  4. Each ray step carries (obstruction offset, per-axis error term)
//     bookkeeping; a blocking host cell restarts the bookkeeping at
//     itself (err == obs marks the wall tile).
//  5. Scan the [-radius,radius]² window once and mark every cell that
//     classifies visible: reached, not swallowed, and either outside any
//     shadow or the shadow's own originating wall.
//  6. Clear the scratch window so the Engine is immediately reusable.
//
// Radius Semantics
//
//	The radius is a Manhattan distance: on an obstacle-free map the
//	visible set is the diamond |dx|+|dy| ≤ radius, clipped to the host
//	bounds. The emission window is merely the diamond's bounding square.
//
// Propagation Rule
//
//	The per-axis tie-break deciding whether a cell inherits its
//	predecessor's obstruction is inherited from the libtcod diamond
//	raycaster. It is deliberately not re-derived: the golden grid tests
//	in this package pin it, and any deviation is a regression.
//
// Concurrency
//
//	Fully synchronous, no suspension points, no internal locking. One
//	Compute call owns the Engine's scratch window and the provider for
//	its whole duration. Concurrent observers need one Engine each.
//
// Errors
//
//	Compute has no error returns. The only failure category is a violated
//	precondition — a scratch access outside the window — which panics as
//	a programming error. All offsets are pre-filtered against provider
//	bounds, so a conforming host never triggers it.
//
// Complexity
//
//   - Time:   O(radius²) per sweep.
//   - Memory: O(maxRadius²), reused across sweeps.
package fov
