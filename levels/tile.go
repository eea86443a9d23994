package levels

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Tile is the code stored in a grid cell.
type Tile int

const (
	Empty Tile = iota
	Deadly
	Solid
	Spawn
)

// TileInfo describes how a tile looks and how actors interact with it.
type TileInfo struct {
	Name  string
	Color color.RGBA
	// Blocks rejects horizontal and walker moves into the cell.
	Blocks bool
	// Kills respawns an actor that steps into the cell.
	Kills bool
	// Supports stops a falling actor on top of the cell.
	Supports bool
}

var tileTable = [...]TileInfo{
	Empty:  {Name: "empty", Color: colornames.White},
	Deadly: {Name: "deadly", Color: colornames.Red, Kills: true, Supports: true},
	Solid:  {Name: "solid", Color: colornames.Lime, Blocks: true, Supports: true},
	Spawn:  {Name: "spawn", Color: colornames.Blue},
}

// Valid reports whether t is a known tile code.
func (t Tile) Valid() bool {
	return t >= 0 && int(t) < len(tileTable)
}

// Info returns the table entry for t. Unknown codes get a magenta placeholder.
func (t Tile) Info() TileInfo {
	if !t.Valid() {
		return TileInfo{Name: fmt.Sprintf("tile(%d)", int(t)), Color: colornames.Magenta}
	}
	return tileTable[t]
}

func (t Tile) String() string { return t.Info().Name }

func (t Tile) Color() color.RGBA { return t.Info().Color }

func (t Tile) Blocks() bool { return t.Info().Blocks }

func (t Tile) Kills() bool { return t.Info().Kills }

func (t Tile) Supports() bool { return t.Info().Supports }
