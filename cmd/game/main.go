package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pebblegreen/stealth-golf/internal/game"
)

func main() {
	levelPath := flag.String("level", "", "path to a level JSON file (default: built-in rotation)")
	flag.Parse()

	var g *game.Game
	if *levelPath != "" {
		l, err := game.LoadLevel(*levelPath)
		if err != nil {
			log.Fatal(err)
		}
		g = game.New(l)
	} else {
		g = game.New()
	}

	ebiten.SetWindowTitle("Stealth Golf")
	ebiten.SetWindowSize(480, 800)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
