package fov

import (
	"github.com/katalvlaran/lvlfov/grid"
)

// Engine computes field-of-view by diamond raycasting. It owns a reusable
// scratch window sized to the largest radius requested so far, so repeated
// sweeps allocate nothing.
//
// An Engine is single-threaded: one Compute call owns the scratch window
// exclusively. Concurrent observers must each hold their own Engine.
type Engine struct {
	origin    grid.Coord
	maxRadius int // watermark: largest radius the scratch window can serve
	scratch   *grid.Grid[cellState]
}

// New returns an Engine whose scratch window serves radii up to maxRadius
// without reallocating. A negative maxRadius is treated as zero.
// Complexity: O(maxRadius²) memory.
func New(maxRadius int) *Engine {
	if maxRadius < 0 {
		maxRadius = 0
	}

	return &Engine{maxRadius: maxRadius, scratch: newScratch(maxRadius)}
}

// newScratch allocates the (2r+1)² window for radius r.
func newScratch(r int) *grid.Grid[cellState] {
	g, err := grid.New(2*r+1, 2*r+1, cellState{})
	if err != nil {
		panic(err) // unreachable: 2r+1 ≥ 1
	}

	return g
}

// Compute runs one visibility sweep from origin out to radius and reports
// every visible cell to m via MarkVisible. The origin itself is always
// reported visible; a radius below one reports only the origin.
//
// The sweep walks diamond rings of growing Manhattan distance clockwise
// from due east, propagating obstruction shadows outward, then scans the
// [-radius,radius]² window once and marks every cell that classifies
// visible and lies inside m's bounds. The scratch window is cleared before
// returning, so the Engine is immediately reusable; it grows (never
// shrinks) when radius exceeds the previous watermark.
//
// Complexity: O(radius²) time; allocation-free unless the watermark rises.
func (e *Engine) Compute(origin grid.Coord, radius int, m MapProvider) {
	if radius > e.maxRadius {
		e.maxRadius = radius
		e.scratch = newScratch(radius)
	}
	e.origin = origin

	m.MarkVisible(origin)
	if radius < 1 {
		return
	}

	// Seed the origin and push into its four axis-aligned neighbors.
	zero := grid.Coord{}
	e.at(zero).visited = true
	e.propagateFrom(zero, m)

	// Ring sweep: clockwise over each diamond ring, starting due east.
	for d := 1; d < radius; d++ {
		ox, oy := d, 0
		for ox != 0 {
			e.propagateFrom(grid.Coord{X: ox, Y: oy}, m)
			ox--
			oy++
		}
		for oy != 0 {
			e.propagateFrom(grid.Coord{X: ox, Y: oy}, m)
			ox--
			oy--
		}
		for ox != 0 {
			e.propagateFrom(grid.Coord{X: ox, Y: oy}, m)
			ox++
			oy--
		}
		for oy != 0 {
			e.propagateFrom(grid.Coord{X: ox, Y: oy}, m)
			ox++
			oy++
		}
	}

	// Emission: one pass over the window, pre-filtered by host bounds.
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			offset := grid.Coord{X: x, Y: y}
			cell := origin.Add(offset)
			if inBounds(cell, m) && e.at(offset).isVisible() {
				m.MarkVisible(cell)
			}
		}
	}

	e.reset()
}

// propagateFrom pushes obstruction state from offset into the neighbors
// strictly farther from the origin in its quadrant. Paths already swallowed
// by an opaque predecessor propagate nothing.
func (e *Engine) propagateFrom(offset grid.Coord, m MapProvider) {
	if !inBounds(e.origin.Add(offset), m) {
		return
	}
	if e.at(offset).ignore {
		return
	}

	if offset.X >= 0 {
		e.applyRay(offset.AddXY(1, 0), offset, m)
	}
	if offset.Y >= 0 {
		e.applyRay(offset.AddXY(0, 1), offset, m)
	}
	if offset.X <= 0 {
		e.applyRay(offset.AddXY(-1, 0), offset, m)
	}
	if offset.Y <= 0 {
		e.applyRay(offset.AddXY(0, -1), offset, m)
	}
}

// applyRay advances one ray step from source into target, carrying the
// obstruction bookkeeping along the axis the step moved on.
func (e *Engine) applyRay(target, source grid.Coord, m MapProvider) {
	if !inBounds(e.origin.Add(target), m) {
		return
	}
	in := *e.at(source)
	cell := e.at(target)

	if in.obs != (grid.Coord{}) {
		if target.X != source.X {
			// Stepped on the X axis. The orthogonal-error condition follows
			// the libtcod diamond raycaster verbatim; the golden sweep tests
			// pin it, so do not simplify.
			if in.err.X > 0 && (cell.obs.X == 0 || (in.err.Y <= 0 && in.obs.Y > 0)) {
				cell.obs = in.obs
				cell.err = grid.Coord{X: in.err.X - in.obs.Y, Y: in.err.Y + in.obs.Y}
			}
		} else {
			// Stepped on the Y axis.
			if in.err.Y > 0 && (cell.obs.Y == 0 || (in.err.X <= 0 && in.obs.X > 0)) {
				cell.obs = in.obs
				cell.err = grid.Coord{X: in.err.X + in.obs.X, Y: in.err.Y - in.obs.X}
			}
		}
	}

	// A cell first reached through a shadow stays swallowed for the sweep.
	cell.ignore = (!cell.visited || cell.ignore) && in.isObstacle()

	if !cell.ignore && m.IsBlocking(e.origin.Add(target)) {
		// A fresh obstruction originates here: err == obs marks the wall tile.
		cell.obs = grid.Coord{X: abs(target.X), Y: abs(target.Y)}
		cell.err = cell.obs
	}

	cell.visited = true
}

// at returns the scratch cell for an offset relative to the origin.
func (e *Engine) at(offset grid.Coord) *cellState {
	return e.scratch.At(offset.AddXY(e.maxRadius, e.maxRadius))
}

// reset clears every scratch cell, making the Engine reusable with no
// cross-call leakage.
func (e *Engine) reset() {
	e.scratch.Fill(cellState{})
}

// inBounds reports whether cell lies inside the provider's inclusive bounds.
func inBounds(cell grid.Coord, m MapProvider) bool {
	min, max := m.Bounds()

	return cell.X >= min.X && cell.X <= max.X && cell.Y >= min.Y && cell.Y <= max.Y
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
