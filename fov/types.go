// Package fov defines the host contract and the scratch cell model
// for the diamond raycasting engine of github.com/katalvlaran/lvlfov.
package fov

import (
	"github.com/katalvlaran/lvlfov/grid"
)

// MapProvider is the host-side contract a visibility sweep runs against.
// The engine only reads obstruction state and writes visibility marks;
// it never mutates the host map itself.
//
// The provider is assumed to be a plain synchronous structure: the engine
// holds exclusive access to it for the duration of one Compute call.
type MapProvider interface {
	// IsBlocking reports whether the cell at c blocks sight.
	IsBlocking(c grid.Coord) bool

	// Bounds returns the inclusive [min,max] rectangle of valid cells.
	Bounds() (min, max grid.Coord)

	// MarkVisible flags the cell at c as visible for the current sweep.
	// It must be idempotent: the engine may mark the same cell more than
	// once per Compute call.
	MarkVisible(c grid.Coord)
}

// cellState is the per-offset scratch record of one sweep, keyed relative
// to the origin. The zero value means "untouched": Compute relies on that
// to reset the whole window with a single Fill.
type cellState struct {
	// obs is the offset at which the nearest blocking obstacle along this
	// path was first recorded; the zero Coord means none yet.
	obs grid.Coord

	// err is the Bresenham-style per-axis accumulator that decides how far
	// the obstruction's shadow still reaches.
	err grid.Coord

	// ignore marks a path fully absorbed by an opaque predecessor; no
	// further outward propagation originates here.
	ignore bool

	// visited marks the cell as reached in the current sweep.
	visited bool
}

// isWall reports whether this cell is the tile an obstruction originates at.
func (c cellState) isWall() bool {
	return c.err == c.obs
}

// isObstacle reports whether this cell lies inside an obstruction's shadow.
func (c cellState) isObstacle() bool {
	return (c.err.X != 0 && c.err.X <= c.obs.X) || (c.err.Y != 0 && c.err.Y <= c.obs.Y)
}

// isVisible classifies the cell after a sweep: reached, not swallowed, and
// either clear of any shadow or the shadow's originating wall itself —
// a wall always sees itself even though nothing is seen beyond it.
func (c cellState) isVisible() bool {
	return c.visited && !c.ignore && (!c.isObstacle() || c.isWall())
}
