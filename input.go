package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegrid/obj"
)

// pollInput reads the held arrow keys.
func pollInput() obj.Input {
	return obj.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyDown),
	}
}
