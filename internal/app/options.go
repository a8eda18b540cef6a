package app

import (
	"time"

	"collatz-ant/internal/config"
)

// Options are the viewer settings taken from the run configuration.
type Options struct {
	Delay     time.Duration
	CellSize  int
	ViewCells int
}

// OptionsFrom extracts the viewer settings from cfg.
func OptionsFrom(cfg *config.Config) Options {
	return Options{Delay: cfg.Delay(), CellSize: cfg.CellSize, ViewCells: cfg.ViewCells}
}
