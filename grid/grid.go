package grid

import (
	"fmt"
)

// Grid is a width×height dense array of T stored row-major.
// The zero Grid is not usable; construct one with New.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New constructs a Grid of the given dimensions with every cell set to fill.
// Returns ErrBadDimensions if width or height is less than one.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Width returns the horizontal extent of the grid.
// Complexity: O(1).
func (g *Grid[T]) Width() int { return g.width }

// Height returns the vertical extent of the grid.
// Complexity: O(1).
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major slot: Y*width + X.
// The row stride is the grid width, never its height.
func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.width + c.X
}

// At returns a pointer to the cell at c. Indexing out of bounds is a
// programming error and panics; callers uphold the invariant with InBounds.
// Complexity: O(1).
func (g *Grid[T]) At(c Coord) *T {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coord (%d,%d) out of bounds %d×%d", c.X, c.Y, g.width, g.height))
	}

	return &g.cells[g.index(c)]
}

// Set stores v at c, under the same bounds contract as At.
// Complexity: O(1).
func (g *Grid[T]) Set(c Coord, v T) {
	*g.At(c) = v
}

// Fill overwrites every cell with v.
// Complexity: O(W×H).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
