// Package config holds the YAML configuration of the generator plan and the
// measurement run. Default returns the stock values; Load overlays a file on
// top of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphbench/bench"
	"github.com/katalvlaran/graphbench/graph"
)

// ErrInvalidConfig wraps every error returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level document.
type Config struct {
	// Dir is where graph files are written and read.
	Dir      string   `yaml:"dir"`
	Generate Generate `yaml:"generate"`
	Measure  Measure  `yaml:"measure"`
	Log      Log      `yaml:"log"`
}

// Generate configures a generation plan.
type Generate struct {
	Mode        graph.Mode `yaml:"mode"`
	Start       int        `yaml:"start"`
	Step        int        `yaml:"step"`
	Count       int        `yaml:"count"`
	EdgeFactor  float64    `yaml:"edge_factor"`
	Seed        int64      `yaml:"seed"`
	MaxAttempts int        `yaml:"max_attempts"`
}

// Measure configures a measurement run.
type Measure struct {
	From      int             `yaml:"from"`
	To        int             `yaml:"to"`
	Algorithm bench.Algorithm `yaml:"algorithm"`
	// Output is the CSV path; empty prints a table to stdout.
	Output string `yaml:"output"`
	// History is the bolt database path; empty disables history.
	History string `yaml:"history"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the stock configuration: 100 graphs of 5000..500000
// vertices with M = 2N, measured over indices 1..300000 with BFS.
func Default() Config {
	return Config{
		Dir: "Graphs",
		Generate: Generate{
			Mode:       graph.General,
			Start:      5000,
			Step:       5000,
			Count:      100,
			EdgeFactor: 2,
		},
		Measure: Measure{
			From:      1,
			To:        300000,
			Algorithm: bench.BFS,
			Output:    "result.csv",
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path and overlays it on Default. Unknown keys are rejected.
// The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("Load: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode is Load for an arbitrary reader. An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Plan converts the generate section into a bench.Plan.
func (c Config) Plan() bench.Plan {
	g := c.Generate
	return bench.Plan{
		Mode:        g.Mode,
		Start:       g.Start,
		Step:        g.Step,
		Count:       g.Count,
		EdgeFactor:  g.EdgeFactor,
		Seed:        g.Seed,
		MaxAttempts: g.MaxAttempts,
	}
}

// Source converts the measure section into a bench.IndexSource using the
// generate mode's file naming.
func (c Config) Source() bench.IndexSource {
	return bench.IndexSource{Dir: c.Dir, From: c.Measure.From, To: c.Measure.To, Mode: c.Generate.Mode}
}

// Validate reports the first inconsistent value.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	g, m := c.Generate, c.Measure
	switch {
	case strings.TrimSpace(c.Dir) == "":
		return invalid("dir is empty")
	case g.Start < 1:
		return invalid("generate.start=%d, want >= 1", g.Start)
	case g.Step < 0:
		return invalid("generate.step=%d, want >= 0", g.Step)
	case g.Count < 1:
		return invalid("generate.count=%d, want >= 1", g.Count)
	case g.EdgeFactor < 0:
		return invalid("generate.edge_factor=%g, want >= 0", g.EdgeFactor)
	case g.MaxAttempts < 0:
		return invalid("generate.max_attempts=%d, want >= 0", g.MaxAttempts)
	case m.From < 1:
		return invalid("measure.from=%d, want >= 1", m.From)
	case m.To < m.From:
		return invalid("measure.to=%d is below measure.from=%d", m.To, m.From)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level: %v", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format=%q, want text or json", c.Log.Format)
	}
	return nil
}
