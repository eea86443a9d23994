package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/levels"
)

func main() {
	levelPath := flag.String("level", "", "level file to play (prompts when empty)")
	demo := flag.Bool("demo", false, "play a level bundled with the binary")
	demoLevel := flag.String("demo-level", "sample", "bundled level played with -demo")
	watch := flag.Bool("watch", true, "reload the level when the file changes on disk")
	configDir := flag.String("config", "config", "directory checked for a player.yaml override")
	flag.Parse()

	spec, err := config.LoadPlayerSpec(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	var (
		grid *levels.Grid
		path string
	)
	if *demo {
		bundled := levels.Embedded()
		if !slices.Contains(bundled, *demoLevel) {
			log.Fatalf("unknown bundled level %q, choose one of: %s", *demoLevel, strings.Join(bundled, ", "))
		}
		grid, err = levels.LoadLevelFromFS(*demoLevel, spec.GridWidth, spec.GridHeight)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		path = *levelPath
		if path == "" {
			path = levels.PromptPath(os.Stdin, os.Stdout, "level.json")
		}
		grid, err = levels.Load(path, spec.GridWidth, spec.GridHeight)
		if err != nil {
			log.Fatalf("could not load level file %s: %v", path, err)
		}
	}

	game, err := NewGame(spec, grid, path)
	if err != nil {
		log.Fatal(err)
	}

	if *watch && path != "" {
		w, err := config.NewWatcher(path)
		if err != nil {
			log.Printf("watch %s: %v", path, err)
		} else {
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(spec.ScreenWidth, spec.ScreenHeight)
	ebiten.SetWindowTitle("Level Play")
	ebiten.SetTPS(spec.TPS)

	err = ebiten.RunGame(game)
	if game.watcher != nil {
		game.watcher.Close()
	}
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
