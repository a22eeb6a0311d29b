// Package core defines the index-addressed graph primitives shared by the
// generator (builder) and the layout solver (layout).
//
// A vertex is nothing more than an int in [0, n). Its position lives in a
// separate matrix (see package matrix); row i of that matrix belongs to
// vertex i, and that row order is the only identity link between the two.
//
// Types:
//
//	Edge      - unordered pair {Src, Dst}, stored canonically with Src < Dst.
//	EdgeList  - a simple undirected edge set (no loops, no duplicates).
//	Adjacency - vertex -> ordered neighbor indices, derived from an EdgeList.
//
// Error taxonomy (errors.go):
//
//	ErrInvalidParameter  - malformed or out-of-range call inputs.
//	ErrIndexOutOfBounds  - accessor misuse (row/vertex index outside range).
//	ErrNumericDegeneracy - coincident points made a force term undefined.
//
// Every other package wraps one of these three sentinels, so callers may
// branch on either the package-level sentinel or the taxonomy class:
//
//	if errors.Is(err, core.ErrInvalidParameter) { ... }
//
// Complexity:
//
//	NewEdge O(1); EdgeList.Validate O(E); EdgeList.Degrees O(n+E);
//	NewAdjacency O(n+E) time and space.
//
// Concurrency:
//
//	Values are plain slices. An EdgeList or Adjacency may be read by any
//	number of goroutines once built; nothing here mutates shared state.
package core
