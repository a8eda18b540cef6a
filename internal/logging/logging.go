// Package logging builds the structured diagnostic logger shared by the tools.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"collatz-ant/internal/ant"
)

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, &ant.InvalidInputError{Field: "log-level", Value: level, Reason: "choose debug, info, warn or error"}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
