package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/levels"
	"github.com/milk9111/tilegrid/obj"
)

func testSpec(moveEvery int) *config.PlayerSpec {
	return &config.PlayerSpec{
		TileSize:     40,
		GridWidth:    10,
		GridHeight:   5,
		ScreenWidth:  800,
		ScreenHeight: 800,
		TPS:          60,
		MoveEvery:    moveEvery,
	}
}

func levelWithSpawn(x, y int) *levels.Grid {
	g := levels.NewGrid(10, 5)
	g.Set(x, y, levels.Spawn)
	return g
}

func writeLevel(t *testing.T, path string, g *levels.Grid) {
	t.Helper()
	if err := levels.Save(path, g); err != nil {
		t.Fatalf("save level: %v", err)
	}
}

func TestNewGameRequiresSpawn(t *testing.T) {
	if _, err := newGame(testSpec(1), levels.NewGrid(10, 5), ""); !errors.Is(err, errNoSpawn) {
		t.Fatalf("expected errNoSpawn, got %v", err)
	}

	g, err := newGame(testSpec(1), levelWithSpawn(2, 3), "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if g.walker.X != 2 || g.walker.Y != 3 {
		t.Fatalf("expected walker at spawn (2,3), got (%d,%d)", g.walker.X, g.walker.Y)
	}
}

func TestReloadKeepsLevelOnFailure(t *testing.T) {
	cases := []struct {
		name  string
		write func(t *testing.T, path string)
	}{
		{"malformed", func(t *testing.T, path string) {
			if err := os.WriteFile(path, []byte("[[0,"), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}},
		{"no_spawn", func(t *testing.T, path string) {
			writeLevel(t, path, levels.NewGrid(10, 5))
		}},
		{"wrong_shape", func(t *testing.T, path string) {
			g := levels.NewGrid(3, 3)
			g.Set(1, 1, levels.Spawn)
			writeLevel(t, path, g)
		}},
		{"missing", func(t *testing.T, path string) {
			if err := os.Remove(path); err != nil {
				t.Fatalf("remove: %v", err)
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "level.json")
			grid := levelWithSpawn(2, 3)
			writeLevel(t, path, grid)

			g, err := newGame(testSpec(1), grid, path)
			if err != nil {
				t.Fatalf("new game: %v", err)
			}
			g.tick(obj.Input{Right: true})

			c.write(t, path)
			g.reload()

			if g.grid != grid {
				t.Fatalf("reload should keep the current level")
			}
			if g.walker.X != 3 || g.walker.Y != 3 || g.walker.SpawnX != 2 {
				t.Fatalf("walker should be untouched, got %+v", *g.walker)
			}
		})
	}
}

func TestReloadMovesToNewSpawn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	grid := levelWithSpawn(2, 3)
	writeLevel(t, path, grid)

	g, err := newGame(testSpec(1), grid, path)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	next := levelWithSpawn(7, 1)
	next.Set(8, 1, levels.Solid)
	writeLevel(t, path, next)
	g.reload()

	if !g.grid.Equal(next) {
		t.Fatalf("expected the new level after reload")
	}
	if g.walker.X != 7 || g.walker.Y != 1 || g.walker.SpawnX != 7 || g.walker.SpawnY != 1 {
		t.Fatalf("expected walker at new spawn (7,1), got %+v", *g.walker)
	}
}

func TestReloadWithoutPathIsNoop(t *testing.T) {
	grid := levelWithSpawn(2, 3)
	g, err := newGame(testSpec(1), grid, "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.reload()
	if g.grid != grid {
		t.Fatalf("bundled level should not be replaced")
	}
}

func TestMoveEveryThrottlesWalker(t *testing.T) {
	cases := []struct {
		name      string
		moveEvery int
		ticks     int
		wantX     int
	}{
		{"every_tick", 1, 4, 4},
		{"every_second", 2, 4, 2},
		{"every_third", 3, 7, 2},
		{"clamped_at_edge", 1, 20, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := newGame(testSpec(c.moveEvery), levelWithSpawn(0, 2), "")
			if err != nil {
				t.Fatalf("new game: %v", err)
			}
			for i := 0; i < c.ticks; i++ {
				g.tick(obj.Input{Right: true})
			}
			if g.walker.X != c.wantX {
				t.Fatalf("expected x=%d after %d ticks, got %d", c.wantX, c.ticks, g.walker.X)
			}
			if g.camera.X != g.walker.X-10 {
				t.Fatalf("camera should follow the walker, got camera x=%d", g.camera.X)
			}
		})
	}
}

func TestTickCountsDeaths(t *testing.T) {
	grid := levelWithSpawn(2, 2)
	grid.Set(3, 2, levels.Deadly)
	g, err := newGame(testSpec(1), grid, "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.tick(obj.Input{Right: true})
	if g.deaths != 1 {
		t.Fatalf("expected one death, got %d", g.deaths)
	}
	if g.walker.X != 2 || g.walker.Y != 2 {
		t.Fatalf("expected respawn at (2,2), got (%d,%d)", g.walker.X, g.walker.Y)
	}
}

func TestWatcherReloadsSavedLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	grid := levelWithSpawn(2, 3)
	writeLevel(t, path, grid)

	g, err := newGame(testSpec(1), grid, path)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()
	g.watcher = w

	writeLevel(t, path, levelWithSpawn(6, 4))

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		g.pollWatcher()
		if g.walker.SpawnX == 6 && g.walker.SpawnY == 4 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("level change on disk was not picked up, spawn still (%d,%d)", g.walker.SpawnX, g.walker.SpawnY)
}
