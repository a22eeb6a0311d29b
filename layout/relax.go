// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// relax.go - public entry points and the Jacobi iteration driver.

package layout

import (
	"context"
	"fmt"

	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/internal/ctxlog"
	"github.com/katalvlaran/glayout/matrix"
	"golang.org/x/sync/errgroup"
)

const methodRelax = "Relax"

// solver is the state of one Relax call. It owns two flat buffers that
// swap roles after every iteration; the caller's matrix is not touched
// until commit.
type solver struct {
	cfg    solverConfig
	center float64
	n, d   int
	adj    core.Adjacency
	cur    []float64 // frozen state read by every worker
	next   []float64 // state being written, disjoint rows per worker
	ws     []workspace
	iter   int
}

// Relax runs iterations force-directed passes over pos.
// It is RelaxContext with context.Background.
func Relax(pos *matrix.Dense, edges core.EdgeList, iterations int, centerWeight float64, opts ...Option) error {
	return RelaxContext(context.Background(), pos, edges, iterations, centerWeight, opts...)
}

// RelaxContext runs iterations force-directed passes over pos, the n×d
// position matrix, using edges as the spring relation.
//
// Behavior highlights:
//   - Jacobi update: all rows of iteration k+1 are computed from iteration k.
//   - Atomic toward the caller: pos is overwritten only after the last
//     iteration; on any error it keeps its previous contents.
//   - iterations == 0 is a no-op once the inputs are validated.
//   - ctx is checked before every iteration; one debug record per iteration
//     goes to the context logger (internal/ctxlog).
//
// Errors:
//   - ErrNilPositions, ErrInvalidIterations, ErrInvalidWeight,
//     ErrEdgeOutOfRange and the other core.EdgeList.Validate sentinels
//     (class core.ErrInvalidParameter).
//   - ErrCoincidentVertices, ErrNonFinite (class core.ErrNumericDegeneracy)
//     under DegeneracyError.
//   - A commit refused by the matrix numeric policy, wrapped with
//     core.ErrNumericDegeneracy.
//   - ctx.Err() wrapped with the iteration number.
//
// Complexity: O(iterations·(n²·d + E·d)) time, O(n·d + E) space.
func RelaxContext(ctx context.Context, pos *matrix.Dense, edges core.EdgeList, iterations int, centerWeight float64, opts ...Option) error {
	// 1) Validate everything before any work.
	if pos == nil {
		return fmt.Errorf("%s: %w", methodRelax, ErrNilPositions)
	}
	if iterations < 0 {
		return fmt.Errorf("%s: iterations=%d: %w", methodRelax, iterations, ErrInvalidIterations)
	}
	if !finite(centerWeight) {
		return fmt.Errorf("%s: centerWeight=%g: %w", methodRelax, centerWeight, ErrInvalidWeight)
	}
	n, d := pos.Shape()
	if err := edges.Validate(n); err != nil {
		return fmt.Errorf("%s: %w", methodRelax, err)
	}
	if iterations == 0 {
		return nil
	}

	// 2) Per-call state: adjacency and two private buffers.
	cfg := newSolverConfig(opts...)
	adj, err := core.NewAdjacency(n, edges)
	if err != nil {
		return fmt.Errorf("%s: %w", methodRelax, err)
	}
	workers := min(cfg.workers, n)
	s := &solver{
		cfg:    cfg,
		center: centerWeight,
		n:      n,
		d:      d,
		adj:    adj,
		cur:    pos.Snapshot(),
		next:   make([]float64, n*d),
		ws:     make([]workspace, workers),
	}
	for w := range s.ws {
		s.ws[w] = newWorkspace(d)
	}

	// 3) Iterate, swapping buffers after each full pass.
	logger := ctxlog.FromContext(ctx)
	for it := 0; it < iterations; it++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: iteration %d: %w", methodRelax, it, err)
		}
		maxStep, err := s.iterate(it)
		if err != nil {
			return err
		}
		s.cur, s.next = s.next, s.cur
		logger.DebugContext(ctx, "layout iteration",
			"iteration", it+1, "iterations", iterations, "max_step", maxStep)
	}

	// 4) Commit.
	if err := pos.Assign(s.cur); err != nil {
		return fmt.Errorf("%s: commit: %w: %w", methodRelax, core.ErrNumericDegeneracy, err)
	}

	return nil
}

// iterate computes every row of next from cur and returns the largest
// displacement length. Rows are split into contiguous chunks, one per
// workspace; g.Wait is the barrier before the buffers swap. When several
// chunks fail, the error of the lowest chunk is reported so the message
// does not depend on scheduling.
func (s *solver) iterate(it int) (float64, error) {
	s.iter = it
	k := len(s.ws)
	if k == 1 {
		return s.stepRange(0, s.n, &s.ws[0])
	}

	chunk := (s.n + k - 1) / k
	steps := make([]float64, k)
	errs := make([]error, k)
	var g errgroup.Group
	for w := 0; w < k; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, s.n)
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			steps[w], errs[w] = s.stepRange(lo, hi, &s.ws[w])
			return errs[w]
		})
	}
	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return 0, e
			}
		}
	}

	var maxStep float64
	for _, st := range steps {
		maxStep = max(maxStep, st)
	}

	return maxStep, nil
}

// stepRange runs step for rows [lo, hi) with one workspace.
func (s *solver) stepRange(lo, hi int, ws *workspace) (float64, error) {
	var maxStep float64
	for i := lo; i < hi; i++ {
		st, err := s.step(i, ws)
		if err != nil {
			return 0, err
		}
		maxStep = max(maxStep, st)
	}

	return maxStep, nil
}
