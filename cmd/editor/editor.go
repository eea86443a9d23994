package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/editor"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
	"github.com/milk9111/tilegrid/render"
)

// tileKeys binds the number keys to paint tiles.
var tileKeys = []struct {
	key  ebiten.Key
	tile levels.Tile
}{
	{ebiten.Key1, levels.Deadly},
	{ebiten.Key2, levels.Solid},
	{ebiten.Key3, levels.Spawn},
}

// Editor is the Ebiten game wrapping an editor session.
type Editor struct {
	session *editor.Session
	ui      *ebitenui.UI
	buttons map[editor.Button]*widget.Button
	hud     text.Face
	clip    *clipboardBridge
	view    *obj.Camera
}

// NewEditor creates the editor and loads the level file if it exists.
func NewEditor(spec *config.EditorSpec, levelPath string) (*Editor, error) {
	s := editor.NewSession(spec, levelPath)
	if err := s.Load(); err != nil {
		return nil, err
	}

	ui, buttons, err := buildSidebarUI(s)
	if err != nil {
		return nil, err
	}

	return &Editor{
		session: s,
		ui:      ui,
		buttons: buttons,
		hud:     render.HUDFace(),
		clip:    newClipboardBridge(),
		view:    obj.NewCamera(0, 0, spec.TileSize),
	}, nil
}

func (e *Editor) Update() error {
	e.ui.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.session.Click(ebiten.CursorPosition())
	}

	for _, tk := range tileKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			e.session.SelectTile(tk.tile)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := e.session.Save(); err != nil {
			log.Printf("editor: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		// a malformed level file ends the run, like a crash on bad JSON
		if err := e.session.Load(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := e.clip.Copy(e.session.Grid); err != nil {
			log.Printf("editor: copy: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		e.paste()
	}

	if ev := e.session.Tick(pollInput()); ev.Respawned() {
		log.Printf("editor: actor %s, back to spawn", ev)
	}

	e.syncButtons()
	return nil
}

func (e *Editor) paste() {
	l := e.session.Layout
	g, err := e.clip.Paste(l.GridWidth, l.GridHeight)
	if err != nil {
		log.Printf("editor: paste: %v", err)
		return
	}
	if err := e.session.Replace(g); err != nil {
		log.Printf("editor: paste: %v", err)
	}
}

func (e *Editor) syncButtons() {
	for b, btn := range e.buttons {
		if txt := btn.Text(); txt != nil {
			txt.Label = e.session.ButtonLabel(b)
		}
	}
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	s := e.session
	l := s.Layout
	render.DrawGrid(screen, s.Grid, e.view)
	render.DrawActor(screen, float64(s.Body.X), s.Body.Y, e.view)

	e.ui.Draw(screen)

	_, h := l.ScreenSize()
	status := fmt.Sprintf("tile: %s\nmode: %s\nfile: %s", s.Selected, s.Mode, s.Path)
	render.DrawText(screen, status, e.hud, float64(l.SidebarX()+10), float64(h-50), color.Black)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.session.Layout.ScreenSize()
}
