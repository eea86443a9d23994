package levels

import (
	"encoding/json"
	"fmt"
)

const (
	DefaultWidth  = 50
	DefaultHeight = 20
)

// Grid is a fixed-size tile map stored row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Tile
}

// NewGrid returns an all-empty grid of w x h cells.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{Width: w, Height: h, Cells: make([]Tile, w*h)}
}

// InBounds reports whether x,y addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	if g == nil {
		return false
	}
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the tile at x,y or Empty when out of bounds.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.Cells[y*g.Width+x]
}

// Set writes t at x,y. It returns false when x,y is out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Cells[y*g.Width+x] = t
	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid as a nested slice, one inner slice per row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = int(g.Cells[y*g.Width+x])
		}
		rows[y] = row
	}
	return rows
}

// MarshalJSON encodes the grid as an array of rows. Dimensions are not stored.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes an array of rows and takes its dimensions from the data.
// Rows must all have the same length and hold known tile codes.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]int
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	cells := make([]Tile, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return fmt.Errorf("row %d has %d cells, want %d", y, len(row), w)
		}
		for x, v := range row {
			t := Tile(v)
			if !t.Valid() {
				return fmt.Errorf("cell (%d,%d): unknown tile code %d", x, y, v)
			}
			cells = append(cells, t)
		}
	}
	g.Width = w
	g.Height = h
	g.Cells = cells
	return nil
}
