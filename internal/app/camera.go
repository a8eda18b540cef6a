package app

import "collatz-ant/internal/core"

// Camera selects the square window of lattice cells shown on screen.
type Camera struct {
	Center core.Point
	Cells  int
	Follow bool
}

// View returns the visible rectangle, Cells wide and high.
func (c *Camera) View() core.Rect {
	half := c.Cells / 2
	lo := core.Point{X: c.Center.X - half, Y: c.Center.Y - half}
	return core.Rect{Min: lo, Max: core.Point{X: lo.X + c.Cells - 1, Y: lo.Y + c.Cells - 1}}
}

// Pan shifts the view and stops following the ant.
func (c *Camera) Pan(dx, dy int) {
	c.Center = c.Center.Add(core.Point{X: dx, Y: dy})
	c.Follow = false
}

// Track recentres on p while the camera follows the ant.
func (c *Camera) Track(p core.Point) {
	if c.Follow {
		c.Center = p
	}
}
