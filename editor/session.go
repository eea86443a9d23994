package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
)

// Mode is the editor's top-level state.
type Mode int

const (
	ModeEdit Mode = iota
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Session is everything the editor mutates: the grid being edited, the
// play-test actor and the sidebar toggles.
type Session struct {
	Layout   Layout
	Grid     *levels.Grid
	Mode     Mode
	Gravity  obj.Gravity
	Selected levels.Tile
	Body     *obj.Body
	Path     string

	// Logf reports user-visible actions. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// NewSession builds an empty edit-mode session from spec. The actor starts at
// the grid center.
func NewSession(spec *config.EditorSpec, path string) *Session {
	if path == "" {
		path = spec.LevelFile
	}
	selected := levels.Tile(spec.DefaultTile)
	if !selectable(selected) {
		selected = levels.Deadly
	}
	s := &Session{
		Layout: Layout{
			TileSize:     spec.TileSize,
			GridWidth:    spec.GridWidth,
			GridHeight:   spec.GridHeight,
			SidebarWidth: spec.SidebarWidth,
		},
		Grid:     levels.NewGrid(spec.GridWidth, spec.GridHeight),
		Mode:     ModeEdit,
		Gravity:  obj.Gravity{Accel: spec.Gravity, Enabled: true},
		Selected: selected,
		Path:     path,
		Logf:     log.Printf,
	}
	s.Body = obj.NewBody(s.Grid.SpawnOrCenter())
	return s
}

func (s *Session) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func selectable(t levels.Tile) bool {
	return t.Valid() && t != levels.Empty
}

// SelectTile sets the paint tile. Empty cannot be selected; painting over a
// filled cell already erases it.
func (s *Session) SelectTile(t levels.Tile) bool {
	if !selectable(t) {
		return false
	}
	s.Selected = t
	return true
}

// Click handles a left-button press at raw pointer pixels.
func (s *Session) Click(x, y int) {
	if s.Layout.InSidebar(x) {
		s.Press(s.Layout.ButtonAt(x, y))
		return
	}
	if s.Mode != ModeEdit {
		return
	}
	if cx, cy, ok := s.Layout.CellAt(x, y); ok {
		s.Paint(cx, cy)
	}
}

// Paint toggles a cell: empty becomes the selected tile, anything else is
// erased. A filled cell cannot be repainted with another tile directly.
func (s *Session) Paint(cx, cy int) bool {
	if !s.Grid.InBounds(cx, cy) {
		return false
	}
	if s.Grid.At(cx, cy) == levels.Empty {
		s.Grid.Set(cx, cy, s.Selected)
	} else {
		s.Grid.Set(cx, cy, levels.Empty)
	}
	return true
}

// Press runs the action bound to a sidebar button.
func (s *Session) Press(b Button) {
	switch b {
	case ButtonPlayer:
		s.logf("editor: player button clicked")
	case ButtonGravity:
		s.ToggleGravity()
	case ButtonPlayStop:
		s.ToggleMode()
	}
}

func (s *Session) ToggleGravity() {
	s.Gravity.Enabled = !s.Gravity.Enabled
	s.logf("editor: gravity toggled: %s", onOff(s.Gravity.Enabled))
}

func (s *Session) ToggleMode() {
	if s.Mode == ModeEdit {
		s.enterPlay()
	} else {
		s.enterEdit()
	}
}

func (s *Session) enterPlay() {
	s.Mode = ModePlay
	s.resetActor()
	s.logf("editor: entering play mode")
}

func (s *Session) enterEdit() {
	s.Mode = ModeEdit
	s.resetActor()
	s.logf("editor: exiting play mode, returning to edit mode")
}

// resetActor re-resolves the spawn from the current grid and moves the actor there.
func (s *Session) resetActor() {
	x, y := s.Grid.SpawnOrCenter()
	s.Body.SpawnX, s.Body.SpawnY = x, y
	s.Body.Respawn()
}

// Tick advances the play-test actor. It does nothing in edit mode.
func (s *Session) Tick(in obj.Input) obj.Event {
	if s.Mode != ModePlay {
		return obj.EventNone
	}
	return s.Body.Step(s.Grid, in, &s.Gravity)
}

// Save writes the grid to the session path.
func (s *Session) Save() error {
	if err := levels.Save(s.Path, s.Grid); err != nil {
		return fmt.Errorf("editor: save %s: %w", s.Path, err)
	}
	s.logf("editor: saved %s", s.Path)
	return nil
}

// Load replaces the grid with the session file. A missing file keeps the
// current grid and is not an error.
func (s *Session) Load() error {
	g, err := levels.Load(s.Path, s.Layout.GridWidth, s.Layout.GridHeight)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.Replace(g); err != nil {
		return err
	}
	s.logf("editor: loaded %s", s.Path)
	return nil
}

// Replace swaps in g, which must match the layout's grid size, and resets the
// actor onto the new spawn.
func (s *Session) Replace(g *levels.Grid) error {
	if g == nil || g.Width != s.Layout.GridWidth || g.Height != s.Layout.GridHeight {
		return fmt.Errorf("editor: %w", levels.ErrShape)
	}
	s.Grid = g
	s.resetActor()
	return nil
}

// ButtonLabel is the caption for b in the current state.
func (s *Session) ButtonLabel(b Button) string {
	switch b {
	case ButtonPlayer:
		return "Player"
	case ButtonGravity:
		return "Gravity: " + onOff(s.Gravity.Enabled)
	case ButtonPlayStop:
		if s.Mode == ModeEdit {
			return "Play"
		}
		return "Stop"
	default:
		return ""
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
