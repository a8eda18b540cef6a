//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"collatz-ant/internal/app"
	"collatz-ant/internal/config"
	"collatz-ant/internal/core"
	_ "collatz-ant/internal/lattice/hexagonal"
	_ "collatz-ant/internal/lattice/square"
	"collatz-ant/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Steps = 0
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	lattice, _ := core.Lookup(cfg.Lattice)
	session, err := app.NewSession(cfg.Seed.Value, lattice, cfg.Steps, logger)
	if err != nil {
		log.Fatal(err)
	}

	opts := app.OptionsFrom(cfg)
	game := app.New(session, opts)

	ebiten.SetWindowTitle("Collatz Ant: " + lattice.Name())
	ebiten.SetWindowSize(opts.ViewCells*opts.CellSize, opts.ViewCells*opts.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
