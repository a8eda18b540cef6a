// Package hexagonal provides a six-neighbour lattice in axial coordinates.
package hexagonal

import "collatz-ant/internal/core"

// Name is the registry key.
const Name = "hexagonal"

var (
	offsets = [6]core.Point{
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: 1, Y: -1},
		{X: 0, Y: -1},
		{X: -1, Y: 0},
		{X: -1, Y: 1},
	}
	names = [6]string{"north", "north-east", "south-east", "south", "south-west", "north-west"}
)

// Lattice is the hexagonal grid. Turns rotate by 60 degrees.
type Lattice struct{}

// New returns the hexagonal lattice.
func New() Lattice { return Lattice{} }

func (Lattice) Name() string                      { return Name }
func (Lattice) Directions() int                   { return len(offsets) }
func (Lattice) Offset(h core.Heading) core.Point  { return offsets[h] }
func (Lattice) HeadingName(h core.Heading) string { return names[h] }
func (Lattice) SupportsLoops() bool               { return false }

func init() {
	core.Register(Name, func() core.Lattice { return New() })
}
