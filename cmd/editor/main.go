package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegrid/config"
)

func main() {
	levelPath := flag.String("level", "", "level file to edit (defaults to level_file in editor.yaml)")
	configDir := flag.String("config", "config", "directory checked for an editor.yaml override")
	flag.Parse()

	spec, err := config.LoadEditorSpec(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	ed, err := NewEditor(spec, *levelPath)
	if err != nil {
		log.Fatal(err)
	}

	w, h := ed.session.Layout.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Game Editor with Player")
	ebiten.SetTPS(spec.TPS)

	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
