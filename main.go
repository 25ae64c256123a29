package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "seed for enemy placement (0 uses the clock)")
	startStage := flag.Int("stage", 1, "stage a new game starts on")
	watch := flag.Bool("watch", false, "reload the stage when prefab yaml changes on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("aircombat")

	game := NewGame(*startStage, *seed, *debug, *watch)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
