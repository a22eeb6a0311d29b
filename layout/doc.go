// Package layout implements a force-directed layout solver for undirected
// graphs embedded in d-dimensional space.
//
// Relax refines a caller-owned position matrix (row i = vertex i) in place.
// Every iteration reads a frozen snapshot of all rows and writes the next
// state into a separate buffer (Jacobi update), so the outcome does not
// depend on the order in which rows are processed. Per vertex i:
//
//	repulsion  Σ_{j≠i} repel/‖p_i−p_j‖² · (p_i − p_j)
//	centering  −center · p_i/‖p_i‖            when ‖p_i‖ > SigDistance
//	spring     Σ_{j∈N(i)} (spread/|N(i)|) · log10(‖p_j−p_i‖/ideal) · (p_j−p_i)/‖p_j−p_i‖
//
// and the new row is p_i plus their sum: no damping, no clamping, no
// cooling schedule. Repulsion falls off with the inverse distance, the
// spring is logarithmic in the ratio to the ideal length (pulling when
// longer, pushing when shorter) and its weight is split over the
// neighbours so high-degree vertices are not over-pulled.
//
// The caller's matrix is written once, after the last iteration succeeded.
// Any error (invalid input, coincident vertices, cancellation) leaves it
// untouched.
//
// Two distinct vertices at exactly the same position make the repulsion
// undefined. With the default DegeneracyError policy Relax reports
// ErrCoincidentVertices (class core.ErrNumericDegeneracy); DegeneracyPropagate
// lets IEEE Inf/NaN flow into the result instead.
//
// Complexity: O(iterations · (n²·d + E·d)) time, O(n·d + E) extra space.
// WithWorkers(k) splits the rows of each iteration over k goroutines; the
// arithmetic per row is unchanged, so results are bit-identical for every k.
package layout
