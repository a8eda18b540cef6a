package ant

import (
	"math/big"
	"sort"

	"collatz-ant/internal/core"
)

// Color is the parity shade of a visited cell.
type Color uint8

const (
	White Color = iota
	Black
)

// ColorOf returns black for odd values and white for even ones.
func ColorOf(v *big.Int) Color {
	if v.Bit(0) == 1 {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// MarshalText lets encoders print the color by name.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Cell is the value last written to a coordinate and its derived color.
// Values are never mutated after being written.
type Cell struct {
	Value *big.Int
	Color Color
}

func newCell(v *big.Int) Cell { return Cell{Value: v, Color: ColorOf(v)} }

// Grid is a sparse, grow-only mapping of visited coordinates to cells.
type Grid struct {
	cells  map[core.Point]Cell
	bounds core.Rect
}

func newGrid() *Grid {
	return &Grid{cells: make(map[core.Point]Cell)}
}

func (g *Grid) write(p core.Point, v *big.Int) Cell {
	c := newCell(v)
	if len(g.cells) == 0 {
		g.bounds = core.RectAround(p)
	} else {
		g.bounds = g.bounds.Expand(p)
	}
	g.cells[p] = c
	return c
}

// Len returns the number of visited cells.
func (g *Grid) Len() int { return len(g.cells) }

// Get returns the cell at p. Unvisited cells report ok == false.
func (g *Grid) Get(p core.Point) (Cell, bool) {
	c, ok := g.cells[p]
	return c, ok
}

// Bounds returns the smallest rectangle covering every visited cell.
func (g *Grid) Bounds() core.Rect { return g.bounds }

// Each calls fn for every visited cell, ordered by row then column.
func (g *Grid) Each(fn func(core.Point, Cell)) {
	points := make([]core.Point, 0, len(g.cells))
	for p := range g.cells {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	for _, p := range points {
		fn(p, g.cells[p])
	}
}
