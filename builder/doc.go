// Package builder produces the inputs of a layout run: an undirected
// core.EdgeList over vertices 0..n-1 and an initial position matrix.
//
// Two entry points mirror the two stochastic steps of a layout session:
//
//	GenerateGraph(n, maxDegree, rng)  degree-bounded random graph
//	SamplePositions(n, d, rng)        n×d matrix, coordinates uniform on [0,1)
//
// Both take an explicit *rand.Rand; nothing here touches the global source,
// so a fixed seed reproduces the same graph and the same coordinates.
//
// Deterministic demo topologies are available as Constructors and are run
// through Build together with functional options:
//
//	top, err := builder.Build(builder.Cycle(8))
//	top, err := builder.Build(builder.DegreeBounded(20, 4), builder.WithSeed(7))
//	top, err := builder.Build(builder.RandomSparse(30, 0.1), builder.WithSeed(1))
//
// Degree-bounded generation (per source vertex src, ascending):
//
//  1. draw a target degree t uniformly from [1, maxDegree);
//  2. with a budget of MaxEdgeAttempts draws, while degree(src) < t, draw a
//     partner dst; dst == src is redrawn for free, any other draw spends one
//     attempt and is inserted unless either endpoint is already at
//     maxDegree or the pair already exists.
//
// The budget is small on purpose: a vertex may end below its target, the
// result may be disconnected, and isolated vertices are possible. Degrees
// never exceed maxDegree.
//
// Errors are sentinels classified under the core taxonomy; option
// constructors (With*) panic on meaningless values, algorithms never panic.
package builder
