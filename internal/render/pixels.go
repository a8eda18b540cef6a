package render

import (
	"image/color"

	"collatz-ant/internal/core"
)

// Raster values written by Rasterize and understood by the palette.
const (
	CellEmpty uint8 = iota
	CellWhite
	CellBlack
	CellAnt
)

// Palette maps raster values to colors, indexed by the Cell* constants.
var Palette = []color.RGBA{
	CellEmpty: {R: 255, G: 255, B: 255, A: 255},
	CellWhite: {R: 255, G: 255, B: 255, A: 255},
	CellBlack: {R: 0, G: 0, B: 0, A: 255},
	CellAnt:   {R: 220, G: 30, B: 30, A: 255},
}

// Outline is drawn around every non-empty cell.
var Outline = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// fillCellsRGBA expands each raster cell into a size*size block of RGBA
// pixels in buf. Non-empty blocks larger than two pixels get a one pixel
// outline on all four edges. Values beyond the palette use its last entry.
func fillCellsRGBA(buf []byte, g *core.ByteGrid, size int, palette []color.RGBA, outline color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}
	last := len(palette) - 1
	stride := g.W * size * 4
	for cy := 0; cy < g.H; cy++ {
		for cx := 0; cx < g.W; cx++ {
			v := g.At(cx, cy)
			idx := min(int(v), last)
			fill := palette[idx]
			for py := 0; py < size; py++ {
				row := (cy*size+py)*stride + cx*size*4
				for px := 0; px < size; px++ {
					col := fill
					if v != CellEmpty && size > 2 && (px == size-1 || py == size-1 || px == 0 || py == 0) {
						col = outline
					}
					base := row + px*4
					buf[base+0] = col.R
					buf[base+1] = col.G
					buf[base+2] = col.B
					buf[base+3] = col.A
				}
			}
		}
	}
}
