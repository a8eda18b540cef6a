// Package square provides the regular four-neighbour lattice.
package square

import "collatz-ant/internal/core"

// Name is the registry key, kept from the original command-line choice.
const Name = "regular"

const (
	North core.Heading = iota
	East
	South
	West
)

var (
	offsets = [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	names   = [4]string{"north", "east", "south", "west"}
)

// Lattice is the square grid with cardinal headings.
type Lattice struct{}

// New returns the square lattice.
func New() Lattice { return Lattice{} }

// Name returns the registry key.
func (Lattice) Name() string { return Name }

// Directions returns 4.
func (Lattice) Directions() int { return len(offsets) }

// Offset returns the unit step for h.
func (Lattice) Offset(h core.Heading) core.Point { return offsets[h] }

// HeadingName returns the cardinal name of h.
func (Lattice) HeadingName(h core.Heading) string { return names[h] }

// SupportsLoops reports true: enclosed regions are well defined on squares.
func (Lattice) SupportsLoops() bool { return true }

func init() {
	core.Register(Name, func() core.Lattice { return New() })
}
