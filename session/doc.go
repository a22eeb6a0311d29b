// Package session drives a layout the way an interactive front end does:
// it owns the four user parameters, one random source, the current
// positions and edges, and exposes the two user actions.
//
//	s, _ := session.New(session.DefaultParams(), session.WithSeed(42))
//	_ = s.NewGraph(ctx) // sample positions, then generate edges
//	_ = s.Layout(ctx)   // run Params.Iterations relaxation passes
//	snap := s.Snapshot() // node rows + edge index pairs for a renderer
//
// A Session serializes its methods with a mutex; the position matrix is
// borrowed exclusively by the solver during Layout.
package session
