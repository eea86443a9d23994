package editor

import "image"

// Button identifies a sidebar control.
type Button int

const (
	ButtonNone Button = iota
	ButtonPlayer
	ButtonGravity
	ButtonPlayStop
)

// Buttons lists the sidebar buttons top to bottom.
var Buttons = []Button{ButtonPlayer, ButtonGravity, ButtonPlayStop}

func (b Button) String() string {
	switch b {
	case ButtonPlayer:
		return "player"
	case ButtonGravity:
		return "gravity"
	case ButtonPlayStop:
		return "play/stop"
	default:
		return "none"
	}
}

const (
	buttonInset   = 10
	buttonHeight  = 40
	buttonSpacing = 10
)

// Layout is the pixel geometry of the editor window: the grid on the left and
// a fixed-width sidebar on the right.
type Layout struct {
	TileSize     int
	GridWidth    int
	GridHeight   int
	SidebarWidth int
}

// SidebarX is the first pixel column of the sidebar.
func (l Layout) SidebarX() int {
	return l.GridWidth * l.TileSize
}

// ScreenSize is the window size in pixels.
func (l Layout) ScreenSize() (int, int) {
	return l.SidebarX() + l.SidebarWidth, l.GridHeight * l.TileSize
}

// InSidebar reports whether pixel column x belongs to the sidebar.
func (l Layout) InSidebar(x int) bool {
	return x >= l.SidebarX()
}

// ButtonSize is the pixel size of every sidebar button.
func (l Layout) ButtonSize() (int, int) {
	return l.SidebarWidth - 2*buttonInset, buttonHeight
}

// ButtonRect returns the screen rectangle of b. The zero rectangle is
// returned for ButtonNone.
func (l Layout) ButtonRect(b Button) image.Rectangle {
	idx := -1
	for i, v := range Buttons {
		if v == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return image.Rectangle{}
	}
	w, h := l.ButtonSize()
	x0 := l.SidebarX() + buttonInset
	y0 := buttonInset + idx*(buttonHeight+buttonSpacing)
	return image.Rect(x0, y0, x0+w, y0+h)
}

// hitRect is the clickable band of b: the full sidebar width, with both the
// top and bottom edge rows of the drawn button included.
func (l Layout) hitRect(b Button) image.Rectangle {
	r := l.ButtonRect(b)
	if r.Empty() {
		return r
	}
	sx := l.SidebarX()
	return image.Rect(sx, r.Min.Y, sx+l.SidebarWidth, r.Max.Y+1)
}

// ButtonAt hit-tests the sidebar buttons against raw pointer coordinates.
// Any sidebar column counts, so the side margins around a button hit it too.
func (l Layout) ButtonAt(x, y int) Button {
	if !l.InSidebar(x) {
		return ButtonNone
	}
	p := image.Pt(x, y)
	for _, b := range Buttons {
		if p.In(l.hitRect(b)) {
			return b
		}
	}
	return ButtonNone
}

// CellAt converts pointer pixels over the grid into cell coordinates.
func (l Layout) CellAt(x, y int) (int, int, bool) {
	if x < 0 || y < 0 || l.TileSize <= 0 {
		return 0, 0, false
	}
	cx, cy := x/l.TileSize, y/l.TileSize
	if cx >= l.GridWidth || cy >= l.GridHeight {
		return 0, 0, false
	}
	return cx, cy, true
}
