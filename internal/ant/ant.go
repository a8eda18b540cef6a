// Package ant implements the Collatz ant: a Langton-style walker whose turns
// and writes follow the Collatz map of the value under it.
package ant

import (
	"iter"
	"math/big"

	"collatz-ant/internal/core"
)

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// Snapshot is the state of the occupied cell after a step. Value is shared
// with the grid and must not be modified.
type Snapshot struct {
	Index    int
	Position core.Point
	Heading  core.Heading
	Value    *big.Int
	Color    Color
}

// Ant holds the walker state and the cells it has written.
type Ant struct {
	lattice  core.Lattice
	grid     *Grid
	seed     *big.Int
	position core.Point
	heading  core.Heading
	steps    int
}

// New places an ant facing north on the origin, which is set to seed.
func New(seed *big.Int, lattice core.Lattice) (*Ant, error) {
	if seed == nil || seed.Sign() <= 0 {
		return nil, &InvalidInputError{
			Field:  "seed",
			Value:  seed.String(),
			Reason: "must be a positive integer",
		}
	}
	seed = new(big.Int).Set(seed)
	a := &Ant{lattice: lattice, grid: newGrid(), seed: seed}
	a.grid.write(a.position, seed)
	return a, nil
}

// Next applies one Collatz step to v and returns a new value.
func Next(v *big.Int) *big.Int {
	n := new(big.Int)
	if v.Bit(0) == 0 {
		return n.Rsh(v, 1)
	}
	n.Mul(v, three)
	return n.Add(n, one)
}

// Step turns on the parity of the current value, moves one cell and writes
// the next Collatz value there. Value 1 is not terminal.
func (a *Ant) Step() Snapshot {
	cur, _ := a.grid.Get(a.position)
	n := a.lattice.Directions()
	if cur.Value.Bit(0) == 1 {
		a.heading = a.heading.Left(n)
	} else {
		a.heading = a.heading.Right(n)
	}
	a.position = a.position.Add(a.lattice.Offset(a.heading))
	a.grid.write(a.position, Next(cur.Value))
	a.steps++
	return a.Current()
}

// Run lazily performs exactly steps steps, yielding a snapshot after each.
// The sequence continues from the ant's current state and cannot be
// replayed.
func (a *Ant) Run(steps int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for i := 0; i < steps; i++ {
			if !yield(a.Step()) {
				return
			}
		}
	}
}

// Current returns the snapshot of the cell the ant occupies.
func (a *Ant) Current() Snapshot {
	c, _ := a.grid.Get(a.position)
	return Snapshot{
		Index:    a.steps,
		Position: a.position,
		Heading:  a.heading,
		Value:    c.Value,
		Color:    c.Color,
	}
}

// Seed returns a copy of the starting value.
func (a *Ant) Seed() *big.Int { return new(big.Int).Set(a.seed) }

func (a *Ant) Steps() int            { return a.steps }
func (a *Ant) Position() core.Point  { return a.position }
func (a *Ant) Heading() core.Heading { return a.heading }
func (a *Ant) Grid() *Grid           { return a.grid }
func (a *Ant) Lattice() core.Lattice { return a.lattice }

// CountLoops returns the number of unvisited regions fully enclosed by
// visited cells. Lattices without loop support report 0.
func (a *Ant) CountLoops() int {
	if !a.lattice.SupportsLoops() {
		return 0
	}
	area := a.grid.Bounds().Grow(1)
	raster := core.NewByteGrid(area.Width(), area.Height())
	a.grid.Each(func(p core.Point, _ Cell) {
		raster.Set(p.X-area.Min.X, area.Max.Y-p.Y, 1)
	})
	return raster.CountEnclosed(0)
}
