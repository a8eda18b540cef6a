// Command collatz-ant prints the walk of a Collatz ant, one line per step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"collatz-ant/internal/ant"
	"collatz-ant/internal/config"
	"collatz-ant/internal/core"
	_ "collatz-ant/internal/lattice/hexagonal"
	_ "collatz-ant/internal/lattice/square"
	"collatz-ant/internal/logging"
	"collatz-ant/internal/report"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("collatz-ant", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: collatz-ant [flags] SEED")
		fs.PrintDefaults()
	}

	cfg := config.NewConfig()
	if err := cfg.Parse(fs, args); err != nil {
		return fail(stderr, err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(stderr, err)
	}
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return fail(stderr, err)
	}

	lattice, _ := core.Lookup(cfg.Lattice)
	a, err := ant.New(cfg.Seed.Value, lattice)
	if err != nil {
		return fail(stderr, err)
	}
	log.Debug("starting walk", "seed", cfg.Seed.String(), "steps", cfg.Steps, "lattice", lattice.Name(), "format", cfg.Format)

	out, err := report.New(cfg.Format, stdout, lattice, a.Seed())
	if err != nil {
		return fail(stderr, err)
	}
	if err := out.Write(a.Current()); err != nil {
		log.Error("write failed", "error", err)
		return exitInvalid
	}
	for snap := range a.Run(cfg.Steps) {
		if err := out.Write(snap); err != nil {
			log.Error("write failed", "error", err)
			return exitInvalid
		}
	}

	sum := report.Summary{Counted: lattice.SupportsLoops()}
	if sum.Counted {
		sum.Loops = a.CountLoops()
	}
	if err := out.Close(sum); err != nil {
		log.Error("write failed", "error", err)
		return exitInvalid
	}
	log.Debug("walk finished", "steps", a.Steps(), "cells", a.Grid().Len())
	return exitOK
}

func fail(stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	var invalid *ant.InvalidInputError
	if errors.As(err, &invalid) {
		fmt.Fprintf(stderr, "collatz-ant: %v\n", err)
		return exitInvalid
	}
	return exitUsage
}
