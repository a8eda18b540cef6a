//go:build ebiten

package app

import (
	"image/color"

	"collatz-ant/internal/core"
	"collatz-ant/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{R: 200, G: 20, B: 20, A: 255}

// Game adapts a walk session to the ebiten.Game interface.
type Game struct {
	session *Session
	camera  Camera
	timer   *core.FixedStep
	painter *render.GridPainter
	raster  *core.ByteGrid
	cell    int
}

// New constructs a Game showing cells*cells lattice cells of cell pixels.
func New(session *Session, cfg Options) *Game {
	return &Game{
		session: session,
		camera:  Camera{Cells: cfg.ViewCells},
		timer:   core.NewFixedStep(cfg.Delay),
		painter: render.NewGridPainter(cfg.ViewCells, cfg.ViewCells, cfg.CellSize),
		raster:  core.NewByteGrid(cfg.ViewCells, cfg.ViewCells),
		cell:    cfg.CellSize,
	}
}

// Update handles per-frame input and advances the walk.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Paused = !g.session.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.TickOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.camera.Center = g.session.Ant().Position()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.camera.Follow = !g.camera.Follow
	}
	for key, d := range map[ebiten.Key][2]int{
		ebiten.KeyArrowLeft:  {-1, 0},
		ebiten.KeyArrowRight: {1, 0},
		ebiten.KeyArrowUp:    {0, 1},
		ebiten.KeyArrowDown:  {0, -1},
	} {
		if inpututil.IsKeyJustPressed(key) || inpututil.KeyPressDuration(key) > 20 {
			g.camera.Pan(d[0], d[1])
		}
	}

	if g.session.Advance(g.timer.ShouldStep()) {
		g.camera.Track(g.session.Ant().Position())
	}
	return nil
}

// Draw renders the visible cells and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.raster, g.session.Ant(), g.camera.View())
	g.painter.Blit(screen, g.raster)
	text.Draw(screen, g.session.Status(), basicfont.Face7x13, 6, 16, hudColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
