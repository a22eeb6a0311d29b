// SPDX-License-Identifier: MIT
// Package: glayout/internal/cli

// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags, layered over an optional YAML file, into the
// configuration of a layout run.
package cli
