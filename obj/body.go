package obj

import (
	"math"

	"github.com/milk9111/tilegrid/levels"
)

// DefaultGravity is the downward acceleration in cells per tick squared.
const DefaultGravity = 0.5

// Gravity is the fall state shared between the play-test body and the
// editor's gravity button.
type Gravity struct {
	Accel   float64
	Enabled bool
}

// Body is the play-test actor: whole cells horizontally, fractional rows
// vertically while falling.
type Body struct {
	X  int
	Y  float64
	VY float64

	SpawnX, SpawnY int
}

// NewBody places a body on its spawn cell.
func NewBody(spawnX, spawnY int) *Body {
	b := &Body{SpawnX: spawnX, SpawnY: spawnY}
	b.Respawn()
	return b
}

// Respawn moves the body to its spawn and stops any fall.
func (b *Body) Respawn() {
	b.X = b.SpawnX
	b.Y = float64(b.SpawnY)
	b.VY = 0
}

// Row is the grid row the body occupies.
func (b *Body) Row() int {
	return int(math.Floor(b.Y))
}

// Step advances the body one tick: horizontal move first, then gravity, then
// the bottom-edge check. A nil or disabled gravity skips the fall.
func (b *Body) Step(g *levels.Grid, in Input, grav *Gravity) Event {
	ev := b.stepHorizontal(g, in)
	if ev == EventDied {
		b.Respawn()
		return ev
	}

	if grav != nil && grav.Enabled {
		if landed := b.fall(g, grav); landed {
			ev = EventLanded
		}
	}

	if b.Row() >= g.Height {
		b.Respawn()
		return EventFellOut
	}
	return ev
}

func (b *Body) stepHorizontal(g *levels.Grid, in Input) Event {
	nx := b.X
	if in.Left && nx > 0 {
		nx--
	}
	if in.Right && nx < g.Width-1 {
		nx++
	}
	if nx == b.X {
		return EventNone
	}

	dest := g.At(nx, b.Row())
	switch {
	case dest.Blocks():
		return EventBlocked
	case dest.Kills():
		return EventDied
	}
	b.X = nx
	return EventMoved
}

// fall applies one tick of gravity. Every row crossed is checked so a fast
// fall cannot tunnel through a one-cell floor.
func (b *Body) fall(g *levels.Grid, grav *Gravity) bool {
	b.VY += grav.Accel
	target := b.Y + b.VY

	last := int(math.Floor(target))
	for row := b.Row(); row <= last; row++ {
		if row+1 >= g.Height {
			break
		}
		below := g.At(b.X, row+1)
		if !below.Supports() {
			continue
		}
		b.Y = float64(row)
		b.VY = 0
		if below.Blocks() {
			grav.Enabled = false
		}
		return true
	}

	b.Y = target
	return false
}
