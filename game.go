package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
	"github.com/milk9111/tilegrid/render"
)

var errNoSpawn = errors.New("no spawn point found, please create a level with a spawn point")

type Game struct {
	frames int
	deaths int
	paused bool
	quit   bool

	spec    *config.PlayerSpec
	path    string
	grid    *levels.Grid
	walker  *obj.Walker
	camera  *obj.Camera
	watcher *config.Watcher
	pauseUI *ebitenui.UI
}

// NewGame starts the walker on the first spawn tile of grid. path is the file
// reloads read from; it may be empty for bundled levels.
func NewGame(spec *config.PlayerSpec, grid *levels.Grid, path string) (*Game, error) {
	g, err := newGame(spec, grid, path)
	if err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func newGame(spec *config.PlayerSpec, grid *levels.Grid, path string) (*Game, error) {
	x, y, ok := grid.FindSpawn()
	if !ok {
		return nil, errNoSpawn
	}

	camera := obj.NewCamera(spec.ScreenWidth, spec.ScreenHeight, spec.TileSize)
	camera.Follow(x, y)
	return &Game{
		spec:   spec,
		path:   path,
		grid:   grid,
		walker: obj.NewWalker(x, y),
		camera: camera,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	g.pollWatcher()

	g.tick(pollInput())
	return nil
}

// tick advances one frame. The walker only moves every move_every frames.
func (g *Game) tick(in obj.Input) {
	g.frames++
	if g.frames%g.spec.MoveEvery == 0 {
		if ev := g.walker.Step(g.grid, in); ev == obj.EventDied {
			g.deaths++
			log.Println("Hit a deadly tile! Game Over.")
		}
	}
	g.camera.Follow(g.walker.X, g.walker.Y)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		if _, ok := g.watcher.Poll(); !ok {
			break
		}
		changed = true
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch %s: %v", g.path, err)
		}
	default:
	}
	if changed {
		g.reload()
	}
}

// reload re-reads the level file. On any failure the current level stays.
func (g *Game) reload() {
	if g.path == "" {
		return
	}
	grid, err := levels.Load(g.path, g.spec.GridWidth, g.spec.GridHeight)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	x, y, ok := grid.FindSpawn()
	if !ok {
		log.Printf("reload %s: %v", g.path, errNoSpawn)
		return
	}
	g.grid = grid
	g.walker.SpawnX, g.walker.SpawnY = x, y
	g.walker.Respawn()
	log.Printf("reloaded %s", g.path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	render.DrawGrid(screen, g.grid, g.camera)
	render.DrawActor(screen, float64(g.walker.X), float64(g.walker.Y), g.camera)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Pos: %d,%d    Deaths: %d    FPS: %.2f", g.walker.X, g.walker.Y, g.deaths, ebiten.ActualFPS()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.ScreenWidth, g.spec.ScreenHeight
}
