package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// UIFace returns a Go Regular face of the given size for widget labels.
func UIFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

// HUDFace is the fixed 7x13 bitmap face used for status lines.
func HUDFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// DrawText draws msg with its top-left at x,y. Lines are 16px apart.
func DrawText(dst *ebiten.Image, msg string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, msg, face, op)
}
