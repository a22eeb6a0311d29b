// SPDX-License-Identifier: MIT
// Package: glayout/internal/cli

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/glayout/internal/config"
	"github.com/katalvlaran/glayout/session"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the resolved
// configuration, a boolean indicating if the program should exit cleanly,
// or an ExitError.
//
// Precedence: defaults, then the -config file, then flags that were set
// explicitly on the command line.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	def := config.Default()
	flagSet := flag.NewFlagSet("glayout", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
glayout - force-directed graph layout.

Generates a graph, samples initial positions, runs the relaxation and
prints the final {"nodes": [...], "edges": [...]} snapshot as JSON.

Usage:
  glayout [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	vertices := flagSet.Int("vertices", def.Layout.Vertices, "Number of vertices.")
	dimensions := flagSet.Int("dimensions", def.Layout.Dimensions, "Embedding dimensions.")
	maxDegree := flagSet.Int("max-degree", def.Layout.MaxDegree, "Degree bound of the random generator.")
	iterations := flagSet.Int("iterations", def.Layout.Iterations, "Relaxation iterations per step.")
	steps := flagSet.Int("steps", def.Run.Steps, "Number of layout steps to run.")
	centerWeight := flagSet.Float64("center-weight", def.Layout.CenterWeight, "Pull toward the origin.")
	seed := flagSet.Int64("seed", def.Run.Seed, "Random seed; 0 picks a time-based seed.")
	workers := flagSet.Int("workers", def.Solver.Workers, "Goroutines per relaxation iteration.")
	topology := flagSet.String("topology", def.Run.Topology,
		"Edge generator. Options: "+strings.Join(session.Topologies, ", ")+".")
	probability := flagSet.Float64("probability", def.Run.Probability, "Edge probability for the sparse topology.")
	logLevel := flagSet.String("log-level", def.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", def.Log.Format, "Log output format. Options: 'text' or 'json'.")
	metricsFile := flagSet.String("metrics-file", "", "Write Prometheus metrics to this file on exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "unexpected arguments: " + strings.Join(flagSet.Args(), " ")}
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vertices":
			cfg.Layout.Vertices = *vertices
		case "dimensions":
			cfg.Layout.Dimensions = *dimensions
		case "max-degree":
			cfg.Layout.MaxDegree = *maxDegree
		case "iterations":
			cfg.Layout.Iterations = *iterations
		case "center-weight":
			cfg.Layout.CenterWeight = *centerWeight
		case "steps":
			cfg.Run.Steps = *steps
		case "seed":
			cfg.Run.Seed = *seed
		case "workers":
			cfg.Solver.Workers = *workers
		case "topology":
			cfg.Run.Topology = strings.ToLower(*topology)
		case "probability":
			cfg.Run.Probability = *probability
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevel)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormat)
		case "metrics-file":
			cfg.Run.MetricsFile = *metricsFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}
