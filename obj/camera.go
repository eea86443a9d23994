package obj

// Camera keeps a grid position centered on screen. Positions are in cells;
// the top-left of the view may be negative near the grid edges.
type Camera struct {
	X, Y int

	tileSize int
	halfW    int
	halfH    int
}

// NewCamera creates a camera for a screen of the given pixel size. A camera
// that never follows anything keeps cell 0,0 at the screen origin.
func NewCamera(screenW, screenH, tileSize int) *Camera {
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Camera{
		tileSize: tileSize,
		halfW:    screenW / (2 * tileSize),
		halfH:    screenH / (2 * tileSize),
	}
}

// Follow recenters the view on cell x,y.
func (c *Camera) Follow(x, y int) {
	c.X = x - c.halfW
	c.Y = y - c.halfH
}

// ScreenPos maps a cell to the pixel position of its top-left corner. Rows
// may be fractional.
func (c *Camera) ScreenPos(x, y float64) (float64, float64) {
	ts := float64(c.tileSize)
	return (x - float64(c.X)) * ts, (y - float64(c.Y)) * ts
}

// Visible reports whether cell x,y falls at least partly inside a screen of
// screenW x screenH pixels.
func (c *Camera) Visible(x, y, screenW, screenH int) bool {
	px := (x - c.X) * c.tileSize
	py := (y - c.Y) * c.tileSize
	return px+c.tileSize > 0 && py+c.tileSize > 0 && px < screenW && py < screenH
}

// TileSize is the pixel size of one cell.
func (c *Camera) TileSize() int {
	return c.tileSize
}
