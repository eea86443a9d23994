package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	spec, err := config.LoadEditorSpec("")
	if err != nil {
		t.Fatalf("load editor spec: %v", err)
	}
	s := NewSession(spec, filepath.Join(t.TempDir(), "level.json"))
	s.Logf = t.Logf
	return s
}

func TestLayoutButtons(t *testing.T) {
	l := Layout{TileSize: 20, GridWidth: 50, GridHeight: 20, SidebarWidth: 200}
	if w, h := l.ScreenSize(); w != 1200 || h != 400 {
		t.Fatalf("expected 1200x400, got %dx%d", w, h)
	}

	cases := []struct {
		name string
		x, y int
		want Button
	}{
		{"player_top_left", 1010, 10, ButtonPlayer},
		{"player_inside", 1100, 30, ButtonPlayer},
		{"gravity", 1100, 80, ButtonGravity},
		{"play_stop", 1189, 149, ButtonPlayStop},
		{"gap_between", 1100, 55, ButtonNone},
		{"above_buttons", 1100, 9, ButtonNone},
		{"left_margin", 1002, 30, ButtonPlayer},
		{"sidebar_edge", 1000, 30, ButtonPlayer},
		{"right_margin", 1195, 80, ButtonGravity},
		{"player_bottom_edge", 1100, 50, ButtonPlayer},
		{"gravity_bottom_edge", 1100, 100, ButtonGravity},
		{"play_stop_bottom_edge", 1100, 150, ButtonPlayStop},
		{"below_play_stop", 1100, 151, ButtonNone},
		{"below_buttons", 1100, 300, ButtonNone},
		{"grid_area", 500, 30, ButtonNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := l.ButtonAt(c.x, c.y); got != c.want {
				t.Fatalf("ButtonAt(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}

	if r := l.ButtonRect(ButtonNone); !r.Empty() {
		t.Fatalf("ButtonNone should have no rectangle, got %v", r)
	}
}

func TestPaintToggles(t *testing.T) {
	s := newTestSession(t)
	if s.Selected != levels.Deadly {
		t.Fatalf("expected deadly selected by default, got %v", s.Selected)
	}

	s.Click(5*20+3, 7*20+19)
	if got := s.Grid.At(5, 7); got != levels.Deadly {
		t.Fatalf("expected deadly painted at (5,7), got %v", got)
	}

	// a filled cell is erased even when another tile is selected
	s.SelectTile(levels.Solid)
	s.Click(5*20, 7*20)
	if got := s.Grid.At(5, 7); got != levels.Empty {
		t.Fatalf("expected erase at (5,7), got %v", got)
	}

	s.Click(5*20, 7*20)
	if got := s.Grid.At(5, 7); got != levels.Solid {
		t.Fatalf("expected solid painted at (5,7), got %v", got)
	}
}

func TestSelectTile(t *testing.T) {
	s := newTestSession(t)
	for _, tile := range []levels.Tile{levels.Deadly, levels.Solid, levels.Spawn} {
		if !s.SelectTile(tile) || s.Selected != tile {
			t.Fatalf("expected %v to be selectable", tile)
		}
	}
	if s.SelectTile(levels.Empty) || s.SelectTile(levels.Tile(8)) {
		t.Fatalf("empty and unknown tiles should not be selectable")
	}
	if s.Selected != levels.Spawn {
		t.Fatalf("rejected selection changed the tile to %v", s.Selected)
	}
}

func TestSidebarButtons(t *testing.T) {
	s := newTestSession(t)
	center := func(b Button) (int, int) {
		r := s.Layout.ButtonRect(b)
		return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
	}

	s.Click(center(ButtonGravity))
	if s.Gravity.Enabled {
		t.Fatalf("gravity button should disable gravity")
	}
	if s.ButtonLabel(ButtonGravity) != "Gravity: Off" {
		t.Fatalf("unexpected label %q", s.ButtonLabel(ButtonGravity))
	}
	s.Click(center(ButtonGravity))
	if !s.Gravity.Enabled {
		t.Fatalf("gravity button should re-enable gravity")
	}

	before := s.Grid.Clone()
	s.Click(center(ButtonPlayer))
	if !s.Grid.Equal(before) || s.Mode != ModeEdit {
		t.Fatalf("player button should not change state")
	}

	if s.ButtonLabel(ButtonPlayStop) != "Play" {
		t.Fatalf("unexpected label %q", s.ButtonLabel(ButtonPlayStop))
	}
	s.Click(center(ButtonPlayStop))
	if s.Mode != ModePlay || s.ButtonLabel(ButtonPlayStop) != "Stop" {
		t.Fatalf("expected play mode, got %v", s.Mode)
	}
	s.Click(center(ButtonPlayStop))
	if s.Mode != ModeEdit {
		t.Fatalf("expected edit mode, got %v", s.Mode)
	}

	// clicks in the sidebar outside a button never paint
	s.Click(s.Layout.SidebarX()+100, 300)
	if !s.Grid.Equal(before) {
		t.Fatalf("sidebar click painted the grid")
	}
}

func TestPlayModeDisablesPainting(t *testing.T) {
	s := newTestSession(t)
	s.ToggleMode()
	s.Click(20, 20)
	if s.Grid.At(1, 1) != levels.Empty {
		t.Fatalf("painting should be ignored in play mode")
	}
	s.Tick(obj.Input{})
	if s.Body.Y <= 10 {
		t.Fatalf("actor should start falling in play mode, y=%v", s.Body.Y)
	}
}

func TestModeEntryResetsActor(t *testing.T) {
	s := newTestSession(t)
	if s.Body.X != 25 || s.Body.Y != 10 {
		t.Fatalf("expected actor at grid center, got (%d,%v)", s.Body.X, s.Body.Y)
	}

	s.SelectTile(levels.Spawn)
	s.Paint(4, 2)
	s.ToggleMode()
	if s.Body.X != 4 || s.Body.Y != 2 {
		t.Fatalf("play mode should start at painted spawn, got (%d,%v)", s.Body.X, s.Body.Y)
	}

	s.Gravity.Enabled = false
	s.Tick(obj.Input{Right: true})
	s.Tick(obj.Input{Right: true})
	if s.Body.X != 6 {
		t.Fatalf("expected actor to walk to x=6, got %d", s.Body.X)
	}

	s.ToggleMode()
	if s.Body.X != 4 || s.Body.Y != 2 {
		t.Fatalf("edit mode should reset the actor, got (%d,%v)", s.Body.X, s.Body.Y)
	}
	if ev := s.Tick(obj.Input{Right: true}); ev != obj.EventNone || s.Body.X != 4 {
		t.Fatalf("edit mode should not move the actor")
	}
}

func TestDeadlyStepRespawnsAtSpawn(t *testing.T) {
	s := newTestSession(t)
	s.SelectTile(levels.Spawn)
	s.Paint(3, 10)
	s.SelectTile(levels.Solid)
	for x := 0; x < 10; x++ {
		s.Paint(x, 11)
	}
	s.SelectTile(levels.Deadly)
	s.Paint(6, 10)

	s.ToggleMode()
	for i := 0; i < 5; i++ {
		ev := s.Tick(obj.Input{Right: true})
		if ev == obj.EventDied {
			if s.Body.X != 3 || s.Body.Y != 10 {
				t.Fatalf("expected respawn at (3,10), got (%d,%v)", s.Body.X, s.Body.Y)
			}
			return
		}
	}
	t.Fatalf("actor never stepped onto the deadly tile, at (%d,%v)", s.Body.X, s.Body.Y)
}

func TestSaveLoad(t *testing.T) {
	s := newTestSession(t)

	// missing file keeps the grid
	s.Paint(1, 1)
	if err := s.Load(); err != nil {
		t.Fatalf("load of missing file should be silent, got %v", err)
	}
	if s.Grid.At(1, 1) != levels.Deadly {
		t.Fatalf("missing file should keep the grid")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved := s.Grid.Clone()
	s.Paint(1, 1)
	s.Paint(2, 2)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.Grid.Equal(saved) {
		t.Fatalf("load did not restore the saved grid")
	}

	if err := os.WriteFile(s.Path, []byte("[[0,"), 0644); err != nil {
		t.Fatalf("write malformed: %v", err)
	}
	if err := s.Load(); err == nil {
		t.Fatalf("malformed file should return an error")
	}
}

func TestReplaceRejectsWrongShape(t *testing.T) {
	s := newTestSession(t)
	if err := s.Replace(levels.NewGrid(3, 3)); err == nil {
		t.Fatalf("expected shape error")
	}
	g := levels.NewGrid(s.Layout.GridWidth, s.Layout.GridHeight)
	g.Set(9, 9, levels.Spawn)
	if err := s.Replace(g); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if s.Body.X != 9 || s.Body.Y != 9 {
		t.Fatalf("replace should move the actor to the new spawn")
	}
}
