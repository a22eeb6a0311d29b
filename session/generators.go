// SPDX-License-Identifier: MIT
// Package: glayout/session
//
// generators.go - named edge generators selectable by front ends.

package session

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glayout/builder"
)

// Generator maps the current parameters to a builder Constructor. The
// Constructor must produce exactly Params.Vertices vertices.
type Generator func(p Params) builder.Constructor

// Topology names accepted by GeneratorByName.
const (
	TopologyRandom   = "random"
	TopologyCycle    = "cycle"
	TopologyPath     = "path"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologySparse   = "sparse"
)

// Topologies lists the accepted names in a stable order.
var Topologies = []string{
	TopologyRandom, TopologyCycle, TopologyPath, TopologyStar,
	TopologyComplete, TopologyGrid, TopologySparse,
}

// DegreeBounded is the default generator: builder.DegreeBounded over
// Params.Vertices and Params.MaxDegree.
func DegreeBounded(p Params) builder.Constructor {
	return builder.DegreeBounded(p.Vertices, p.MaxDegree)
}

// GeneratorByName resolves a topology name. probability is used by
// "sparse" only and is validated when the graph is built.
func GeneratorByName(name string, probability float64) (Generator, error) {
	switch name {
	case TopologyRandom, "":
		return DegreeBounded, nil
	case TopologyCycle:
		return func(p Params) builder.Constructor { return builder.Cycle(p.Vertices) }, nil
	case TopologyPath:
		return func(p Params) builder.Constructor { return builder.Path(p.Vertices) }, nil
	case TopologyStar:
		return func(p Params) builder.Constructor { return builder.Star(p.Vertices) }, nil
	case TopologyComplete:
		return func(p Params) builder.Constructor { return builder.Complete(p.Vertices) }, nil
	case TopologyGrid:
		return func(p Params) builder.Constructor {
			cols := gridCols(p.Vertices)
			return builder.Grid(p.Vertices/cols, cols)
		}, nil
	case TopologySparse:
		return func(p Params) builder.Constructor { return builder.RandomSparse(p.Vertices, probability) }, nil
	default:
		return nil, fmt.Errorf("GeneratorByName(%q): %w", name, ErrUnknownTopology)
	}
}

// gridCols returns the largest divisor of n not above √n, so that
// rows×cols == n with the squarest possible shape. Prime n gives a 1×n strip.
func gridCols(n int) int {
	if n < 1 {
		return 1
	}
	for c := int(math.Sqrt(float64(n))); c > 1; c-- {
		if n%c == 0 {
			return c
		}
	}
	return 1
}
