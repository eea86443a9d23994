package obj

import "github.com/milk9111/tilegrid/levels"

// Walker is the standalone player's actor. It moves one cell per step in any
// combination of the four directions.
type Walker struct {
	X, Y int

	SpawnX, SpawnY int
}

func NewWalker(spawnX, spawnY int) *Walker {
	return &Walker{X: spawnX, Y: spawnY, SpawnX: spawnX, SpawnY: spawnY}
}

func (w *Walker) Respawn() {
	w.X = w.SpawnX
	w.Y = w.SpawnY
}

// Step moves the walker. Moves are clamped to the grid edges and rejected
// whole when the destination blocks. Landing on a deadly cell respawns.
func (w *Walker) Step(g *levels.Grid, in Input) Event {
	nx, ny := w.X, w.Y
	if in.Left && nx > 0 {
		nx--
	}
	if in.Right && nx < g.Width-1 {
		nx++
	}
	if in.Up && ny > 0 {
		ny--
	}
	if in.Down && ny < g.Height-1 {
		ny++
	}

	ev := EventNone
	if nx != w.X || ny != w.Y {
		if g.At(nx, ny).Blocks() {
			ev = EventBlocked
		} else {
			w.X, w.Y = nx, ny
			ev = EventMoved
		}
	}

	if g.At(w.X, w.Y).Kills() {
		w.Respawn()
		return EventDied
	}
	return ev
}
