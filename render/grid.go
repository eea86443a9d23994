package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tilegrid/levels"
)

// ActorColor is the fill used for the actor square.
var ActorColor = levels.Spawn.Color()

var gridLineColor = color.RGBA{A: 0xff}

// View maps grid cells to screen pixels. *obj.Camera implements it.
type View interface {
	ScreenPos(x, y float64) (float64, float64)
	Visible(x, y, screenW, screenH int) bool
	TileSize() int
}

// DrawGrid draws every cell of g that view can see, with a 1px outline.
func DrawGrid(dst *ebiten.Image, g *levels.Grid, view View) {
	if g == nil {
		return
	}
	bounds := dst.Bounds()
	ts := float32(view.TileSize())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !view.Visible(x, y, bounds.Dx(), bounds.Dy()) {
				continue
			}
			px, py := view.ScreenPos(float64(x), float64(y))
			c := g.At(x, y).Color()
			vector.FillRect(dst, float32(px), float32(py), ts, ts, c, false)
			vector.StrokeRect(dst, float32(px), float32(py), ts, ts, 1, gridLineColor, false)
		}
	}
}

// DrawActor fills the cell-sized square at cell coordinates x,y. y may be
// fractional while the actor is falling.
func DrawActor(dst *ebiten.Image, x, y float64, view View) {
	ts := float32(view.TileSize())
	px, py := view.ScreenPos(x, y)
	vector.FillRect(dst, float32(px), float32(py), ts, ts, ActorColor, false)
}
