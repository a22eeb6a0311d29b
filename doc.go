// Package glayout computes spatial embeddings of undirected graphs with a
// force-directed solver: unrelated vertices repel, connected vertices are
// pulled toward a target edge length, and every vertex is drawn gently
// toward the origin.
//
// What is here:
//
//	core/     Edge, EdgeList, Adjacency and the shared error taxonomy
//	matrix/   Dense, the row-major position matrix (row i = vertex i)
//	builder/  degree-bounded random graphs, position sampling, demo topologies
//	layout/   Relax / RelaxContext, the Jacobi force iteration
//	session/  parameter + state driver for interactive front ends
//	cmd/      glayout, a CLI printing JSON snapshots
//
// Quick example:
//
//	rng := rand.New(rand.NewSource(42))
//	pos, _ := builder.SamplePositions(9, 3, rng)
//	edges, _ := builder.GenerateGraph(9, 3, rng)
//	_ = layout.Relax(pos, edges, 50, 0.1)
//	row, _ := pos.Row(0) // coordinates of vertex 0
//
// Errors:
//
//	Every failure is classified as core.ErrInvalidParameter,
//	core.ErrIndexOutOfBounds or core.ErrNumericDegeneracy; test with errors.Is.
//
// Randomness is always an injected *rand.Rand. The same seed reproduces
// the same graph, the same positions and the same layout.
package glayout
