package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	sidebarColor     = color.RGBA{150, 150, 150, 255}
	buttonIdleColor  = color.RGBA{0, 0, 0, 255}
	buttonHoverColor = color.RGBA{40, 40, 40, 255}
	buttonPressColor = color.RGBA{70, 70, 90, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func sidebarButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(buttonIdleColor),
		Hover:   solidNineSlice(buttonHoverColor),
		Pressed: solidNineSlice(buttonPressColor),
	}
}

func sidebarButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.White,
		Hover:    color.White,
		Pressed:  color.White,
		Disabled: color.Gray{Y: 128},
	}
}
