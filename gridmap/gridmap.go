// Package gridmap implements the dense reference MapProvider
// for the fov engine of github.com/katalvlaran/lvlfov.
package gridmap

import (
	"strings"

	"github.com/katalvlaran/lvlfov/grid"
)

// Map is a dense rectangular world: an obstruction layer the engine reads
// and a visibility layer it writes. Bounds are fixed at construction.
type Map struct {
	walls   *grid.Grid[bool]
	visible *grid.Grid[bool]
}

// New constructs an obstacle-free, fully unseen Map.
// Returns grid.ErrBadDimensions when width or height is less than one.
// Complexity: O(W×H).
func New(width, height int) (*Map, error) {
	walls, err := grid.New(width, height, false)
	if err != nil {
		return nil, err
	}
	visible, err := grid.New(width, height, false)
	if err != nil {
		return nil, err
	}

	return &Map{walls: walls, visible: visible}, nil
}

// Width returns the horizontal extent of the map.
func (m *Map) Width() int { return m.walls.Width() }

// Height returns the vertical extent of the map.
func (m *Map) Height() int { return m.walls.Height() }

// SetWall sets or clears the obstruction at c.
func (m *Map) SetWall(c grid.Coord, wall bool) {
	m.walls.Set(c, wall)
}

// Wall reports whether c holds an obstruction.
func (m *Map) Wall(c grid.Coord) bool {
	return *m.walls.At(c)
}

// Visible reports whether c was marked visible since the last Reset.
func (m *Map) Visible(c grid.Coord) bool {
	return *m.visible.At(c)
}

// Reset clears all visibility marks; the obstruction layer is kept.
// Complexity: O(W×H).
func (m *Map) Reset() {
	m.visible.Fill(false)
}

// IsBlocking implements fov.MapProvider.
func (m *Map) IsBlocking(c grid.Coord) bool {
	return *m.walls.At(c)
}

// Bounds implements fov.MapProvider; the rectangle is inclusive.
func (m *Map) Bounds() (min, max grid.Coord) {
	return grid.Coord{}, grid.Coord{X: m.walls.Width() - 1, Y: m.walls.Height() - 1}
}

// MarkVisible implements fov.MapProvider. Marking an already visible cell
// has no further effect.
func (m *Map) MarkVisible(c grid.Coord) {
	m.visible.Set(c, true)
}

// String renders the map one bracketed row per line, top to bottom:
// ' ' unseen floor, '.' visible floor, 'x' unseen wall, 'X' visible wall.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.walls.Height(); y++ {
		b.WriteByte('[')
		for x := 0; x < m.walls.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			switch {
			case *m.walls.At(c) && *m.visible.At(c):
				b.WriteByte('X')
			case *m.walls.At(c):
				b.WriteByte('x')
			case *m.visible.At(c):
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
