package core

import "sort"

// Heading indexes a lattice's ring of directions. Index 0 is north.
type Heading int

// Left rotates one position counter-clockwise on a ring of n directions.
func (h Heading) Left(n int) Heading { return Heading(((int(h)-1)%n + n) % n) }

// Right rotates one position clockwise on a ring of n directions.
func (h Heading) Right(n int) Heading { return Heading((int(h) + 1) % n) }

// Lattice describes the cell geometry the ant walks on.
type Lattice interface {
	Name() string
	// Directions is the number of headings, ordered clockwise from north.
	Directions() int
	Offset(h Heading) Point
	HeadingName(h Heading) string
	// SupportsLoops reports whether enclosed regions are meaningful for the
	// lattice's square raster.
	SupportsLoops() bool
}

// Factory constructs a Lattice.
type Factory func() Lattice

var lattices = map[string]Factory{}

// Register adds a lattice factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	lattices[name] = f
}

// Lookup constructs the lattice registered under name.
func Lookup(name string) (Lattice, bool) {
	f, ok := lattices[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the registered lattice names in sorted order.
func Names() []string {
	names := make([]string, 0, len(lattices))
	for name := range lattices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
