package core

// Point is an integer lattice coordinate. Y grows upwards.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is an inclusive rectangle of lattice coordinates.
type Rect struct {
	Min, Max Point
}

// RectAround returns the single-cell rectangle containing p.
func RectAround(p Point) Rect { return Rect{Min: p, Max: p} }

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Expand returns the smallest rectangle covering both r and p.
func (r Rect) Expand(p Point) Rect {
	r.Min.X = min(r.Min.X, p.X)
	r.Min.Y = min(r.Min.Y, p.Y)
	r.Max.X = max(r.Max.X, p.X)
	r.Max.Y = max(r.Max.Y, p.Y)
	return r
}

// Grow pads r by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{
		Min: Point{X: r.Min.X - n, Y: r.Min.Y - n},
		Max: Point{X: r.Max.X + n, Y: r.Max.Y + n},
	}
}
