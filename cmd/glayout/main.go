// SPDX-License-Identifier: MIT
// Package: glayout/cmd/glayout

// Command glayout generates a graph, relaxes its layout and prints the
// final snapshot as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/glayout/internal/cli"
	"github.com/katalvlaran/glayout/internal/ctxlog"
	"github.com/katalvlaran/glayout/internal/metrics"
	"github.com/katalvlaran/glayout/session"
)

// main is the entrypoint for the glayout application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.Log.Level, cfg.Log.Format, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	gen, err := cfg.Generator()
	if err != nil {
		return err
	}
	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	reg := metrics.NewRegistry()

	s, err := session.New(cfg.Layout,
		session.WithSeed(seed),
		session.WithGenerator(cfg.Run.Topology, gen),
		session.WithMetrics(reg),
		session.WithSolverOptions(cfg.SolverOptions()...),
		session.WithMatrixOptions(cfg.MatrixOptions()...),
	)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "session ready", "seed", seed, "topology", cfg.Run.Topology, "steps", cfg.Run.Steps)

	if err := s.NewGraph(ctx); err != nil {
		return err
	}
	for step := 0; step < cfg.Run.Steps; step++ {
		if err := s.Layout(ctx); err != nil {
			return fmt.Errorf("step %d: %w", step+1, err)
		}
	}

	enc := json.NewEncoder(outW)
	if err := enc.Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if cfg.Run.MetricsFile != "" {
		if err := reg.WriteTextfile(cfg.Run.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.InfoContext(ctx, "metrics written", "path", cfg.Run.MetricsFile)
	}

	return nil
}
