// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// forces.go - per-vertex displacement: repulsion, centering, spring.
//
// All three terms read only the frozen current buffer and accumulate into a
// worker-private displacement vector. Summation order is fixed (repulsion
// over j ascending, centering, spring over neighbours in adjacency order),
// which is what makes results independent of the worker count.

package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// workspace holds the scratch vectors of one worker.
type workspace struct {
	disp []float64 // accumulated displacement of the current row
	diff []float64 // pairwise difference scratch
}

func newWorkspace(d int) workspace {
	return workspace{disp: make([]float64, d), diff: make([]float64, d)}
}

// repulsion adds Σ_{j≠i} repel/‖p−q‖² · (p−q).
func (s *solver) repulsion(i int, p []float64, ws *workspace) error {
	for j := 0; j < s.n; j++ {
		if j == i {
			continue
		}
		q := rowOf(s.cur, j, s.d)
		dist := distance(p, q)
		if dist == 0 && s.cfg.policy == DegeneracyError {
			return fmt.Errorf("%s: iteration %d: vertices %d and %d: %w",
				methodRelax, s.iter, i, j, ErrCoincidentVertices)
		}
		floats.SubTo(ws.diff, p, q)
		floats.AddScaled(ws.disp, s.cfg.repel/(dist*dist), ws.diff)
	}

	return nil
}

// centering adds −center · p/‖p‖ unless p is already at the origin.
func (s *solver) centering(p []float64, ws *workspace) {
	length := norm(p)
	if length > SigDistance {
		floats.AddScaled(ws.disp, -s.center/length, p)
	}
}

// spring adds Σ_{j∈N(i)} w · log10(‖q−p‖/ideal) · (q−p)/‖q−p‖ with
// w = spread/|N(i)|. Isolated vertices feel no spring.
func (s *solver) spring(i int, p []float64, ws *workspace) {
	nbrs := s.adj[i]
	if len(nbrs) == 0 {
		return
	}
	w := s.cfg.spread / float64(len(nbrs))
	for _, j := range nbrs {
		q := rowOf(s.cur, j, s.d)
		floats.SubTo(ws.diff, q, p)
		obs := norm(ws.diff)
		f := w * math.Log10(obs/s.cfg.ideal) / obs
		floats.AddScaled(ws.disp, f, ws.diff)
	}
}

// step computes next[i] = cur[i] + displacement(i) and returns the
// displacement length.
func (s *solver) step(i int, ws *workspace) (float64, error) {
	p := rowOf(s.cur, i, s.d)
	clear(ws.disp)

	if err := s.repulsion(i, p, ws); err != nil {
		return 0, err
	}
	s.centering(p, ws)
	s.spring(i, p, ws)

	out := rowOf(s.next, i, s.d)
	floats.AddTo(out, p, ws.disp)
	if s.cfg.policy == DegeneracyError && !allFinite(out) {
		return 0, fmt.Errorf("%s: iteration %d: vertex %d: %w", methodRelax, s.iter, i, ErrNonFinite)
	}

	return norm(ws.disp), nil
}
