// SPDX-License-Identifier: MIT
// Package: glayout/session
//
// session.go - Session state and the user actions.

package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/glayout/builder"
	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/internal/ctxlog"
	"github.com/katalvlaran/glayout/internal/metrics"
	"github.com/katalvlaran/glayout/layout"
	"github.com/katalvlaran/glayout/matrix"
)

// Session holds the parameters, the random source and the current graph.
type Session struct {
	mu sync.Mutex

	params     Params
	rng        *rand.Rand
	gen        Generator
	genName    string
	metrics    *metrics.Registry
	solverOpts []layout.Option
	matrixOpts []matrix.Option

	pos   *matrix.Dense
	edges core.EdgeList
}

// Snapshot is the render payload: one coordinate row per vertex and the
// edges as [src, dst] index pairs.
type Snapshot struct {
	Nodes [][]float64 `json:"nodes"`
	Edges [][2]int    `json:"edges"`
}

// New validates params and builds a Session without a graph.
// Without WithSeed/WithRand the random source is seeded from the clock.
func New(params Params, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("session.New: %w", err)
	}
	s := &Session{
		params:  params,
		gen:     DegreeBounded,
		genName: TopologyRandom,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s, nil
}

// Params returns the current parameters.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.params
}

// SetParams validates and replaces the parameters. The current graph is
// kept; new values apply from the next NewGraph or Layout.
func (s *Session) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("Session.SetParams: %w", err)
	}
	s.mu.Lock()
	s.params = p
	s.mu.Unlock()

	return nil
}

// NewGraph samples fresh positions and then generates edges, both from the
// session random source in that order. The session state is replaced only
// when both steps succeed.
func (s *Session) NewGraph(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.params
	logger := ctxlog.FromContext(ctx)

	pos, err := builder.SamplePositions(p.Vertices, p.Dimensions, s.rng, s.matrixOpts...)
	if err != nil {
		s.recordGeneration(metrics.StatusInvalid, 0, 0)
		return fmt.Errorf("Session.NewGraph: %w", err)
	}
	top, err := builder.Build(s.gen(p), builder.WithRand(s.rng))
	if err != nil {
		s.recordGeneration(metrics.StatusInvalid, 0, 0)
		return fmt.Errorf("Session.NewGraph: %s: %w", s.genName, err)
	}
	if top.Vertices != p.Vertices {
		s.recordGeneration(metrics.StatusInvalid, 0, 0)
		return fmt.Errorf("Session.NewGraph: %s built %d vertices, want %d: %w",
			s.genName, top.Vertices, p.Vertices, ErrTopologyMismatch)
	}

	s.pos, s.edges = pos, top.Edges
	s.recordGeneration(metrics.StatusSuccess, top.Vertices, top.Edges.Len())
	logger.InfoContext(ctx, "graph generated",
		"topology", s.genName,
		"vertices", top.Vertices,
		"edges", top.Edges.Len(),
		"dimensions", p.Dimensions)

	return nil
}

// Layout runs Params.Iterations relaxation passes on the current graph.
// On error the positions keep their previous values.
func (s *Session) Layout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos == nil {
		return fmt.Errorf("Session.Layout: %w", ErrNoGraph)
	}
	p := s.params
	logger := ctxlog.FromContext(ctx)

	start := time.Now()
	err := layout.RelaxContext(ctx, s.pos, s.edges, p.Iterations, p.CenterWeight, s.solverOpts...)
	elapsed := time.Since(start)
	status := layoutStatus(err)
	if s.metrics != nil {
		s.metrics.RecordLayout(status, p.Iterations, elapsed)
	}
	if err != nil {
		logger.WarnContext(ctx, "layout failed", "status", status, "error", err)
		return fmt.Errorf("Session.Layout: %w", err)
	}
	logger.InfoContext(ctx, "layout finished",
		"iterations", p.Iterations,
		"center_weight", p.CenterWeight,
		"duration", elapsed)

	return nil
}

// Position returns a copy of the coordinates of vertex i.
func (s *Session) Position(i int) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos == nil {
		return nil, fmt.Errorf("Session.Position(%d): %w", i, ErrNoGraph)
	}
	row, err := s.pos.Row(i)
	if err != nil {
		return nil, fmt.Errorf("Session.Position: %w", err)
	}

	return row, nil
}

// Edges returns a copy of the current edge list (nil before NewGraph).
func (s *Session) Edges() core.EdgeList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edges == nil {
		return nil
	}
	out := make(core.EdgeList, len(s.edges))
	copy(out, s.edges)

	return out
}

// Snapshot exports the current state for a renderer. Before NewGraph both
// slices are empty (never nil, so JSON encodes []).
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos == nil {
		return Snapshot{Nodes: [][]float64{}, Edges: [][2]int{}}
	}

	return Snapshot{Nodes: s.pos.ToRows(), Edges: s.edges.Pairs()}
}

func (s *Session) recordGeneration(status string, vertices, edges int) {
	if s.metrics != nil {
		s.metrics.RecordGeneration(s.genName, status, vertices, edges)
	}
}

// layoutStatus maps a RelaxContext error to a metrics status label.
func layoutStatus(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusCancelled
	case errors.Is(err, core.ErrNumericDegeneracy):
		return metrics.StatusDegenerate
	case errors.Is(err, core.ErrInvalidParameter):
		return metrics.StatusInvalid
	default:
		return metrics.StatusError
	}
}
