package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pmalloy/plumber/common"
)

func main() {
	configPath := flag.String("config", "config.txt", "path to the game configuration file")
	debug := flag.Bool("debug", false, "enable prefab hot reload and debug output")
	flag.Parse()

	game, err := NewGame(*configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	game.input = NewInput()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("plumber")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
