// SPDX-License-Identifier: MIT
// Package: glayout/internal/config

// Package config loads the process configuration of the glayout CLI from a
// YAML file and validates it. Command-line flags override file values; see
// internal/cli.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/layout"
	"github.com/katalvlaran/glayout/matrix"
	"github.com/katalvlaran/glayout/session"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a configuration that failed decoding or validation.
var ErrInvalidConfig = core.Classify("config: invalid configuration", core.ErrInvalidParameter)

// validate is a singleton validator instance
var validate = validator.New()

// Solver mirrors the layout options.
type Solver struct {
	RepelWeight   float64 `yaml:"repel_weight" validate:"gte=0"`
	SpreadWeight  float64 `yaml:"spread_weight" validate:"gte=0"`
	IdealDistance float64 `yaml:"ideal_distance" validate:"gt=0"`
	Workers       int     `yaml:"workers" validate:"min=1"`
	Degeneracy    string  `yaml:"degeneracy" validate:"oneof=error propagate"`
}

// Run describes what the CLI does with a session.
type Run struct {
	Topology    string  `yaml:"topology" validate:"oneof=random cycle path star complete grid sparse"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	Steps       int     `yaml:"steps" validate:"min=0"`
	Seed        int64   `yaml:"seed"`
	MetricsFile string  `yaml:"metrics_file"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Config is the whole file.
type Config struct {
	Layout session.Params `yaml:"layout"`
	Solver Solver         `yaml:"solver"`
	Run    Run            `yaml:"run"`
	Log    Log            `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Layout: session.DefaultParams(),
		Solver: Solver{
			RepelWeight:   layout.DefaultRepelWeight,
			SpreadWeight:  layout.DefaultSpreadWeight,
			IdealDistance: layout.DefaultIdealDistance,
			Workers:       1,
			Degeneracy:    layout.DegeneracyError.String(),
		},
		Run: Run{
			Topology:    session.TopologyRandom,
			Probability: 0.2,
			Steps:       1,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return Parse(raw)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected; keys
// absent from the document keep their default values.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags on every section and the layout parameters.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config.Validate: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("config.Validate: %w: %w", ErrInvalidConfig, err)
	}
	// YAML .inf passes the gte/gt tags; the layout options reject it.
	for _, w := range []struct {
		name string
		v    float64
	}{
		{"RepelWeight", c.Solver.RepelWeight},
		{"SpreadWeight", c.Solver.SpreadWeight},
		{"IdealDistance", c.Solver.IdealDistance},
	} {
		if math.IsNaN(w.v) || math.IsInf(w.v, 0) {
			return fmt.Errorf("config.Validate: Solver.%s: must be finite: %w", w.name, ErrInvalidConfig)
		}
	}

	return nil
}

// SolverOptions translates the solver section into layout options.
// Call it on a validated Config; the option constructors panic otherwise.
func (c Config) SolverOptions() []layout.Option {
	policy := layout.DegeneracyError
	if c.Solver.Degeneracy == layout.DegeneracyPropagate.String() {
		policy = layout.DegeneracyPropagate
	}

	return []layout.Option{
		layout.WithRepelWeight(c.Solver.RepelWeight),
		layout.WithSpreadWeight(c.Solver.SpreadWeight),
		layout.WithIdealDistance(c.Solver.IdealDistance),
		layout.WithWorkers(c.Solver.Workers),
		layout.WithDegeneracyPolicy(policy),
	}
}

// MatrixOptions lets NaN reach the positions when the solver propagates
// degeneracies, so the commit is not refused.
func (c Config) MatrixOptions() []matrix.Option {
	if c.Solver.Degeneracy == layout.DegeneracyPropagate.String() {
		return []matrix.Option{matrix.WithNoValidateNaNInf()}
	}

	return nil
}

// Generator resolves Run.Topology.
func (c Config) Generator() (session.Generator, error) {
	return session.GeneratorByName(c.Run.Topology, c.Run.Probability)
}
