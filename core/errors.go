// SPDX-License-Identifier: MIT
// Package: glayout/core
//
// errors.go - error taxonomy shared by every package of the module.
//
// Error policy:
//   • Three classes only; package sentinels elsewhere wrap exactly one of them.
//   • Callers branch with errors.Is, never with string comparison.
//   • All failures are local and synchronous; nothing is retried internally.

package core

import "errors"

var (
	// ErrInvalidParameter marks malformed or out-of-range call inputs:
	// vertex/dimension counts, degree bounds, iteration counts, edge endpoints.
	ErrInvalidParameter = errors.New("glayout: invalid parameter")

	// ErrIndexOutOfBounds marks accessor misuse, e.g. reading the position
	// row of a vertex that does not exist.
	ErrIndexOutOfBounds = errors.New("glayout: index out of bounds")

	// ErrNumericDegeneracy marks a force evaluation that is undefined because
	// two distinct vertices occupy exactly the same position.
	ErrNumericDegeneracy = errors.New("glayout: numeric degeneracy")
)

// Package-local sentinels wrapping the taxonomy.
var (
	// ErrSelfLoop is returned when an edge joins a vertex to itself.
	ErrSelfLoop = Classify("core: self-loop", ErrInvalidParameter)

	// ErrDuplicateEdge is returned when an EdgeList holds the same unordered pair twice.
	ErrDuplicateEdge = Classify("core: duplicate edge", ErrInvalidParameter)

	// ErrEndpointOutOfRange is returned when an edge endpoint is outside [0, n).
	ErrEndpointOutOfRange = Classify("core: edge endpoint out of range", ErrInvalidParameter)
)

// classified is a sentinel that reports its taxonomy class through Unwrap.
type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }
func (e *classified) Unwrap() error { return e.class }

// Classify builds a package sentinel: msg is the full message
// ("matrix: index out of range") and class one of the taxonomy errors above.
// The result satisfies errors.Is(err, class) without repeating class text.
func Classify(msg string, class error) error {
	return &classified{msg: msg, class: class}
}
