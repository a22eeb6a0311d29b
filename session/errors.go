// SPDX-License-Identifier: MIT
// Package: glayout/session
//
// errors.go - sentinel errors for the session driver.

package session

import "github.com/katalvlaran/glayout/core"

var (
	// ErrNoGraph indicates that Layout or Position ran before any NewGraph.
	ErrNoGraph = core.Classify("session: no graph generated yet", core.ErrInvalidParameter)

	// ErrInvalidParams indicates that Params failed validation.
	ErrInvalidParams = core.Classify("session: invalid parameters", core.ErrInvalidParameter)

	// ErrUnknownTopology indicates an unrecognised generator name.
	ErrUnknownTopology = core.Classify("session: unknown topology", core.ErrInvalidParameter)

	// ErrTopologyMismatch indicates a generator whose vertex count differs
	// from Params.Vertices.
	ErrTopologyMismatch = core.Classify("session: topology vertex count mismatch", core.ErrInvalidParameter)
)
