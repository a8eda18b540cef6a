package app

import (
	"fmt"
	"log/slog"
	"math/big"

	"collatz-ant/internal/ant"
	"collatz-ant/internal/core"
)

// Session owns the ant shown by the viewer and the step budget.
type Session struct {
	seed    *big.Int
	limit   int
	lattice core.Lattice
	log     *slog.Logger

	ant      *ant.Ant
	Paused   bool
	tickOnce bool
}

// NewSession starts a walk from seed. A limit of zero steps forever.
func NewSession(seed *big.Int, lattice core.Lattice, limit int, log *slog.Logger) (*Session, error) {
	s := &Session{seed: seed, limit: limit, lattice: lattice, log: log}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restarts the walk from the original seed.
func (s *Session) Reset() error {
	a, err := ant.New(s.seed, s.lattice)
	if err != nil {
		return err
	}
	s.ant = a
	s.tickOnce = false
	s.log.Debug("walk reset", "seed", s.seed.String(), "lattice", s.lattice.Name())
	return nil
}

// Ant exposes the current walker.
func (s *Session) Ant() *ant.Ant { return s.ant }

// TickOnce requests a single step even while paused.
func (s *Session) TickOnce() { s.tickOnce = true }

// Done reports whether the walk has used its step budget.
func (s *Session) Done() bool {
	return s.limit > 0 && s.ant.Steps() >= s.limit
}

// Advance steps the ant when due is set and the session is running, or when
// a single step was requested. It reports whether the ant moved.
func (s *Session) Advance(due bool) bool {
	if s.Done() {
		return false
	}
	if !s.tickOnce && (s.Paused || !due) {
		return false
	}
	s.tickOnce = false
	s.ant.Step()
	return true
}

// Status returns the HUD line for the current state.
func (s *Session) Status() string {
	cur := s.ant.Current()
	state := "running"
	switch {
	case s.Done():
		state = "done"
	case s.Paused:
		state = "paused"
	}
	return fmt.Sprintf("step %d  (%d,%d)  value %d  %s  %s",
		cur.Index, cur.Position.X, cur.Position.Y, cur.Value, s.lattice.HeadingName(cur.Heading), state)
}
