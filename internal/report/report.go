// Package report renders simulation snapshots for the command-line tool.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"collatz-ant/internal/ant"
	"collatz-ant/internal/core"

	"github.com/goccy/go-yaml"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Summary carries the end-of-run facts printed after the last step.
type Summary struct {
	Loops int
	// Counted is false when the lattice has no loop definition.
	Counted bool
}

// Writer consumes snapshots in step order.
type Writer interface {
	Write(ant.Snapshot) error
	Close(Summary) error
}

// New returns a Writer for the named format.
func New(format string, w io.Writer, lattice core.Lattice, seed *big.Int) (Writer, error) {
	switch format {
	case FormatText:
		return &textWriter{w: bufio.NewWriter(w)}, nil
	case FormatYAML:
		return &yamlWriter{w: w, lattice: lattice, doc: yamlDoc{Seed: seed.String(), Lattice: lattice.Name()}}, nil
	default:
		return nil, &ant.InvalidInputError{Field: "format", Value: format, Reason: "choose text or yaml"}
	}
}

type textWriter struct {
	w *bufio.Writer
}

func (t *textWriter) Write(s ant.Snapshot) error {
	_, err := fmt.Fprintf(t.w, "%4d: position=(%3d,%3d) value=%10d color=%s\n",
		s.Index, s.Position.X, s.Position.Y, s.Value, s.Color)
	return err
}

func (t *textWriter) Close(sum Summary) error {
	if sum.Counted {
		if _, err := fmt.Fprintf(t.w, "Loops observed: %d\n", sum.Loops); err != nil {
			return err
		}
	}
	return t.w.Flush()
}

type yamlPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlStep struct {
	Step     int          `yaml:"step"`
	Position yamlPosition `yaml:"position,flow"`
	Heading  string       `yaml:"heading"`
	Value    string       `yaml:"value"`
	Color    string       `yaml:"color"`
}

// Values are decimal strings so arbitrarily large integers survive any
// YAML reader.
type yamlDoc struct {
	Seed    string     `yaml:"seed"`
	Lattice string     `yaml:"lattice"`
	Steps   []yamlStep `yaml:"steps"`
	Loops   *int       `yaml:"loops,omitempty"`
}

type yamlWriter struct {
	w       io.Writer
	lattice core.Lattice
	doc     yamlDoc
}

func (y *yamlWriter) Write(s ant.Snapshot) error {
	y.doc.Steps = append(y.doc.Steps, yamlStep{
		Step:     s.Index,
		Position: yamlPosition{X: s.Position.X, Y: s.Position.Y},
		Heading:  y.lattice.HeadingName(s.Heading),
		Value:    s.Value.String(),
		Color:    s.Color.String(),
	})
	return nil
}

func (y *yamlWriter) Close(sum Summary) error {
	if sum.Counted {
		loops := sum.Loops
		y.doc.Loops = &loops
	}
	out, err := yaml.Marshal(y.doc)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = y.w.Write(out)
	return err
}
