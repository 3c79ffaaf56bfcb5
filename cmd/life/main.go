//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sparselife/internal/app"
	"sparselife/internal/config"
	"sparselife/internal/core"
	_ "sparselife/internal/life"
	_ "sparselife/internal/sims/fullscan"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	log.Printf("Making %dx%d grid...", cfg.Rows, cfg.Columns)
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	ctl := app.NewController(sim, cfg.Seed, cfg.StartRunning)
	game := app.New(ctl, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("Game of Life: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
