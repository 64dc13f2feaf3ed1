package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kwheeler/ballpit/common"
)

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the settings yaml")
	debug := flag.Bool("debug", false, "show frame and pool counters")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ArenaWidth, common.ArenaHeight)
	ebiten.SetWindowTitle("ballpit")

	game, err := NewGame(*configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
