package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mover/common"
	"github.com/milk9111/mover/params"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	paramsPath := flag.String("params", "", "game parameters file (default: params/game.yaml or the embedded copy)")
	watch := flag.Bool("watch", false, "reload the parameters file when it changes")
	logFile := flag.String("log", "", "write logs to this file, rotated")
	flag.Parse()

	if *logFile != "" {
		closeLog := setupLogFile(*logFile)
		defer closeLog()
	}

	p, err := params.LoadParameters(*paramsPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded parameters: position=%v scale=%v velocity=%v",
		p.InitialPlayerPosition, p.InitialPlayerScale, p.InitialPlayerVelocity)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("mover")

	game, err := NewGame(p, GameOptions{
		Debug:      *debug,
		Watch:      *watch,
		ParamsPath: *paramsPath,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
