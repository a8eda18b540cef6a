// Package config gathers run settings from flags and optional YAML files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"collatz-ant/internal/ant"
	"collatz-ant/internal/core"
	"collatz-ant/internal/report"

	"github.com/goccy/go-yaml"
)

// Seed is the starting value of the walk. It has no upper bound.
type Seed struct {
	Value *big.Int
}

// UnmarshalYAML accepts a plain or quoted decimal integer.
func (s *Seed) UnmarshalYAML(data []byte) error {
	v, err := ant.ParseSeed(strings.Trim(strings.TrimSpace(string(data)), `"'`))
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

func (s Seed) String() string {
	if s.Value == nil {
		return ""
	}
	return s.Value.String()
}

// Config represents the command-line parameters for a run.
type Config struct {
	Seed      Seed   `yaml:"seed"`
	Steps     int    `yaml:"steps"`
	Lattice   string `yaml:"lattice"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	DelayMS   int    `yaml:"delay_ms"`
	CellSize  int    `yaml:"cell_size"`
	ViewCells int    `yaml:"view_cells"`

	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with the defaults of the original tool.
func NewConfig() *Config {
	return &Config{
		Steps:     20,
		Lattice:   "regular",
		Format:    report.FormatText,
		LogLevel:  "info",
		DelayMS:   200,
		CellSize:  20,
		ViewCells: 30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of steps to simulate")
	fs.IntVar(&c.Steps, "s", c.Steps, "shorthand for -steps")
	fs.StringVar(&c.Lattice, "lattice", c.Lattice, "lattice to walk on ("+strings.Join(core.Names(), ", ")+")")
	fs.StringVar(&c.Format, "format", c.Format, "output format (text, yaml)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "diagnostic log level (debug, info, warn, error)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with default settings")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "viewer delay between steps in milliseconds")
	fs.IntVar(&c.DelayMS, "d", c.DelayMS, "shorthand for -delay")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "viewer cell size in pixels")
	fs.IntVar(&c.ViewCells, "view", c.ViewCells, "viewer width and height in cells")
}

// Delay returns the viewer step delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Parse binds c to fs, parses args and loads the -config file if one was
// named. The seed may appear before, between or after flags. Flags given on
// the command line take precedence over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	args, seedArg := splitNegativeSeed(args)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if seedArg != "" {
		positional = append([]string{seedArg}, positional...)
	}
	if len(positional) > 1 {
		return &ant.InvalidInputError{Field: "argument", Value: positional[1], Reason: "unexpected extra argument"}
	}

	if c.ConfigPath != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return err
			}
		}
	}

	if len(positional) == 1 {
		seed, err := ant.ParseSeed(positional[0])
		if err != nil {
			return err
		}
		c.Seed = Seed{Value: seed}
	}
	return nil
}

// LoadFile overlays settings from a YAML file onto c. Keys absent from the
// file keep their current values; unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ant.InvalidInputError{Field: "config", Value: path, Reason: err.Error()}
	}
	return c.decode(path, data)
}

func (c *Config) decode(path string, data []byte) error {
	keep := c.ConfigPath
	if err := yaml.UnmarshalWithOptions(data, c, yaml.DisallowUnknownField()); err != nil {
		return &ant.InvalidInputError{Field: "config", Value: path, Reason: yaml.FormatError(err, false, true)}
	}
	c.ConfigPath = keep
	return nil
}

// Validate reports every setting the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch {
	case c.Seed.Value == nil:
		errs = append(errs, &ant.InvalidInputError{Field: "seed", Reason: "a positive integer seed is required"})
	case c.Seed.Value.Sign() <= 0:
		errs = append(errs, &ant.InvalidInputError{Field: "seed", Value: c.Seed.String(), Reason: "must be a positive integer"})
	}
	if c.Steps < 0 {
		errs = append(errs, &ant.InvalidInputError{Field: "steps", Value: strconv.Itoa(c.Steps), Reason: "must not be negative"})
	}
	if _, ok := core.Lookup(c.Lattice); !ok {
		errs = append(errs, &ant.InvalidInputError{
			Field:  "lattice",
			Value:  c.Lattice,
			Reason: fmt.Sprintf("choose one of %s", strings.Join(core.Names(), ", ")),
		})
	}
	if c.Format != report.FormatText && c.Format != report.FormatYAML {
		errs = append(errs, &ant.InvalidInputError{Field: "format", Value: c.Format, Reason: "choose text or yaml"})
	}
	if c.DelayMS < 0 {
		errs = append(errs, &ant.InvalidInputError{Field: "delay", Value: strconv.Itoa(c.DelayMS), Reason: "must not be negative"})
	}
	if c.CellSize <= 0 || c.ViewCells <= 0 {
		errs = append(errs, &ant.InvalidInputError{
			Field:  "view",
			Value:  fmt.Sprintf("%dx%d", c.ViewCells, c.CellSize),
			Reason: "cell size and view size must be positive",
		})
	}
	return errors.Join(errs...)
}

// splitNegativeSeed pulls a bare negative integer out of args so the flag
// parser does not mistake it for an unknown flag. Values of a preceding
// "-flag value" pair are left alone.
func splitNegativeSeed(args []string) ([]string, string) {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := new(big.Int).SetString(arg, 10); !ok {
			continue
		}
		if i > 0 && strings.HasPrefix(args[i-1], "-") && !strings.Contains(args[i-1], "=") {
			continue
		}
		rest := append(append([]string(nil), args[:i]...), args[i+1:]...)
		return rest, arg
	}
	return args, ""
}
