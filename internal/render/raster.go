package render

import (
	"collatz-ant/internal/ant"
	"collatz-ant/internal/core"
)

// Rasterize paints the part of the ant's grid inside view into dst, top row
// first. dst must be view.Width() by view.Height().
func Rasterize(dst *core.ByteGrid, a *ant.Ant, view core.Rect) {
	dst.Clear()
	grid := a.Grid()
	for y := view.Min.Y; y <= view.Max.Y; y++ {
		for x := view.Min.X; x <= view.Max.X; x++ {
			c, ok := grid.Get(core.Point{X: x, Y: y})
			if !ok {
				continue
			}
			v := CellWhite
			if c.Color == ant.Black {
				v = CellBlack
			}
			dst.Set(x-view.Min.X, view.Max.Y-y, v)
		}
	}
	if p := a.Position(); view.Contains(p) {
		dst.Set(p.X-view.Min.X, view.Max.Y-p.Y, CellAnt)
	}
}
