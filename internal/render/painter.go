//go:build ebiten

package render

import (
	"collatz-ant/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a cell raster into a single RGBA image.
type GridPainter struct {
	w, h, cell int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for w*h cells of cell pixels each.
func NewGridPainter(w, h, cell int) *GridPainter {
	gp := &GridPainter{w: w, h: h, cell: cell, buf: make([]byte, 4*w*h*cell*cell)}
	gp.img = ebiten.NewImage(w*cell, h*cell)
	return gp
}

// Blit uploads g into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.ByteGrid) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, g, gp.cell, Palette, Outline)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the image dimensions in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.cell, gp.h * gp.cell }
