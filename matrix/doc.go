// Package matrix provides Dense, the row-major float64 matrix used as the
// PositionMatrix of a layout: row i holds the coordinates of vertex i,
// column j the coordinate along dimension j.
//
// What is here:
//
//	dense.go   - Dense storage, safe element/row accessors, snapshot/assign.
//	options.go - numeric policy (finite-only ingestion, on by default).
//	errors.go  - sentinels, each classified under the core error taxonomy.
//
// Guarantees:
//
//   - Safety at the public surface: At/Set/Row/SetRow return errors, never panic.
//   - Row accessors used by drawing surfaces (Row) return copies; RowView is the
//     explicit no-copy escape hatch for hot loops.
//   - Assign is all-or-nothing: the matrix is left untouched on any error.
//   - Determinism: fixed row-major traversal everywhere, no map iteration.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Row O(c); Clone/Snapshot/Assign O(r*c).
//
// Concurrency:
//
//	Dense carries no lock. A matrix is owned by one caller at a time; the
//	layout solver borrows it exclusively for the duration of one call.
package matrix
