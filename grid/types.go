// Package grid defines the coordinate type and sentinel errors
// for the grid subpackage of github.com/katalvlaran/lvlfov.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a grid with non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be at least one")
)

// Coord is a 2D integer coordinate. It is a plain value: methods return
// new values and never alias their receiver.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum c+o.
// Complexity: O(1).
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// AddXY returns c shifted by the raw pair (dx,dy).
// Complexity: O(1).
func (c Coord) AddXY(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
