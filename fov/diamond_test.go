package fov_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfov/fov"
	"github.com/katalvlaran/lvlfov/grid"
	"github.com/katalvlaran/lvlfov/gridmap"
)

// newMap builds a width×height reference map or aborts the test.
func newMap(t *testing.T, width, height int) *gridmap.Map {
	t.Helper()
	m, err := gridmap.New(width, height)
	require.NoError(t, err, "gridmap.New(%d,%d)", width, height)

	return m
}

// visibleSet collects every marked cell of m into a set.
func visibleSet(m *gridmap.Map) map[grid.Coord]bool {
	set := make(map[grid.Coord]bool)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if m.Visible(c) {
				set[c] = true
			}
		}
	}

	return set
}

//----------------------------------------------------------------------------//
// Golden Sweep Tests
//----------------------------------------------------------------------------//
// Rendering legend: ' ' unseen floor, '.' visible floor,
//                   'x' unseen wall,  'X' visible wall.
// The expected grids pin the propagation tie-break; treat any diff as a
// regression, not a candidate for "fixing" the expectation.

// TestCompute_EmptyGrid sweeps an obstacle-free 5×5 map from its center
// with a radius far beyond the bounds: every cell is visible.
func TestCompute_EmptyGrid(t *testing.T) {
	m := newMap(t, 5, 5)
	eng := fov.New(5)
	eng.Compute(grid.Coord{X: 2, Y: 2}, 10, m)

	want := "" +
		"[.....]\n" +
		"[.....]\n" +
		"[.....]\n" +
		"[.....]\n" +
		"[.....]\n"
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Errorf("sweep mismatch (-want +got):\n%s", diff)
	}
}

// TestCompute_WindowEdge sweeps from (1,0) with radius 4: the bottom rows
// are progressively trimmed by the diamond's reach.
func TestCompute_WindowEdge(t *testing.T) {
	m := newMap(t, 5, 5)
	eng := fov.New(4)
	eng.Compute(grid.Coord{X: 1, Y: 0}, 4, m)

	want := "" +
		"[.....]\n" +
		"[.....]\n" +
		"[.... ]\n" +
		"[...  ]\n" +
		"[ .   ]\n"
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Errorf("sweep mismatch (-want +got):\n%s", diff)
	}
}

// TestCompute_AlignedWalls places two walls on the origin's row and one on
// its column: the second wall hides behind the first, and each wall casts a
// straight shadow.
func TestCompute_AlignedWalls(t *testing.T) {
	m := newMap(t, 5, 5)
	m.SetWall(grid.Coord{X: 2, Y: 0}, true)
	m.SetWall(grid.Coord{X: 3, Y: 0}, true)
	m.SetWall(grid.Coord{X: 0, Y: 2}, true)
	eng := fov.New(5)
	eng.Compute(grid.Coord{X: 0, Y: 0}, 10, m)

	want := "" +
		"[..Xx ]\n" +
		"[.....]\n" +
		"[X....]\n" +
		"[ ....]\n" +
		"[ ....]\n"
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Errorf("sweep mismatch (-want +got):\n%s", diff)
	}
}

// TestCompute_DiagonalWalls places two off-axis walls: each is visible
// itself while the cells behind it fall into its shadow.
func TestCompute_DiagonalWalls(t *testing.T) {
	m := newMap(t, 5, 5)
	m.SetWall(grid.Coord{X: 3, Y: 1}, true)
	m.SetWall(grid.Coord{X: 2, Y: 2}, true)
	eng := fov.New(5)
	eng.Compute(grid.Coord{X: 0, Y: 0}, 10, m)

	want := "" +
		"[.....]\n" +
		"[...X ]\n" +
		"[..X  ]\n" +
		"[.... ]\n" +
		"[.....]\n"
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Errorf("sweep mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Property Tests
//----------------------------------------------------------------------------//

// TestCompute_OriginAlwaysVisible: the origin is reported for any radius,
// even zero, even when the origin cell itself is a wall.
func TestCompute_OriginAlwaysVisible(t *testing.T) {
	origin := grid.Coord{X: 2, Y: 2}
	for _, radius := range []int{0, 1, 3} {
		m := newMap(t, 5, 5)
		m.SetWall(origin, true)
		eng := fov.New(radius)
		eng.Compute(origin, radius, m)
		assert.True(t, m.Visible(origin), "origin unseen at radius %d", radius)
	}
}

// TestCompute_NegativeRadius behaves like radius zero: only the origin.
func TestCompute_NegativeRadius(t *testing.T) {
	m := newMap(t, 5, 5)
	origin := grid.Coord{X: 2, Y: 2}
	eng := fov.New(-3)
	eng.Compute(origin, -1, m)

	set := visibleSet(m)
	assert.Len(t, set, 1, "negative radius must mark only the origin")
	assert.True(t, set[origin], "origin missing from visible set")
}

// TestCompute_MonotonicRadius: on an unchanged map, everything visible at a
// smaller radius stays visible at a larger one.
func TestCompute_MonotonicRadius(t *testing.T) {
	m := newMap(t, 7, 7)
	m.SetWall(grid.Coord{X: 3, Y: 2}, true)
	m.SetWall(grid.Coord{X: 1, Y: 4}, true)
	m.SetWall(grid.Coord{X: 5, Y: 5}, true)
	origin := grid.Coord{X: 3, Y: 3}

	eng := fov.New(6)
	eng.Compute(origin, 2, m)
	small := visibleSet(m)

	m.Reset()
	eng.Compute(origin, 6, m)
	large := visibleSet(m)

	for c := range small {
		assert.True(t, large[c], "cell (%d,%d) visible at radius 2 but not at 6", c.X, c.Y)
	}
}

// TestCompute_WallSelfVisible: a blocking cell is itself visible while the
// cells straight behind it are not.
func TestCompute_WallSelfVisible(t *testing.T) {
	m := newMap(t, 5, 5)
	wall := grid.Coord{X: 2, Y: 2}
	m.SetWall(wall, true)
	eng := fov.New(5)
	eng.Compute(grid.Coord{X: 0, Y: 2}, 10, m)

	assert.True(t, m.Visible(wall), "wall must see itself")
	assert.False(t, m.Visible(grid.Coord{X: 3, Y: 2}), "cell behind wall leaked")
	assert.False(t, m.Visible(grid.Coord{X: 4, Y: 2}), "far cell behind wall leaked")
}

// TestCompute_ReuseIdempotent: two sweeps with identical arguments on the
// same Engine yield identical results — the scratch reset leaks nothing.
func TestCompute_ReuseIdempotent(t *testing.T) {
	m := newMap(t, 5, 5)
	m.SetWall(grid.Coord{X: 3, Y: 1}, true)
	m.SetWall(grid.Coord{X: 2, Y: 2}, true)
	origin := grid.Coord{X: 0, Y: 0}

	eng := fov.New(5)
	eng.Compute(origin, 10, m)
	first := m.String()

	m.Reset()
	eng.Compute(origin, 10, m)
	if diff := cmp.Diff(first, m.String()); diff != "" {
		t.Errorf("second sweep differs (-first +second):\n%s", diff)
	}
}

// TestCompute_EmptyDiamondSymmetry: with no obstacles and generous bounds,
// the visible set is exactly the Manhattan diamond of the radius.
func TestCompute_EmptyDiamondSymmetry(t *testing.T) {
	const radius = 5
	m := newMap(t, 21, 21)
	origin := grid.Coord{X: 10, Y: 10}
	eng := fov.New(radius)
	eng.Compute(origin, radius, m)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			inDiamond := abs(c.X-origin.X)+abs(c.Y-origin.Y) <= radius
			assert.Equal(t, inDiamond, m.Visible(c),
				"cell (%d,%d): diamond membership %v", x, y, inDiamond)
		}
	}
}

// TestCompute_ScratchGrowth: the watermark grows when a larger radius is
// requested and the grown Engine still sweeps smaller radii correctly.
func TestCompute_ScratchGrowth(t *testing.T) {
	walls := []grid.Coord{{X: 3, Y: 1}, {X: 2, Y: 2}}
	origin := grid.Coord{X: 0, Y: 0}

	buildMap := func() *gridmap.Map {
		m := newMap(t, 5, 5)
		for _, w := range walls {
			m.SetWall(w, true)
		}
		return m
	}

	// Warm a small engine past its watermark, then shrink the radius again.
	grown := fov.New(1)
	m1 := buildMap()
	grown.Compute(origin, 10, m1)

	m2 := buildMap()
	grown.Compute(origin, 3, m2)

	// Reference: a fresh engine sized for each request.
	ref1, ref2 := buildMap(), buildMap()
	fov.New(10).Compute(origin, 10, ref1)
	fov.New(3).Compute(origin, 3, ref2)

	assert.Equal(t, ref1.String(), m1.String(), "grown engine differs at radius 10")
	assert.Equal(t, ref2.String(), m2.String(), "grown engine differs back at radius 3")
}

// abs mirrors the engine's helper for diamond-membership checks.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
