// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - Safety at the public surface: accessors return errors instead of panicking.
//   - Determinism: fixed loop orders, no map iteration.
//   - Numeric policy (optional rejection of NaN/Inf) from a single flag.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c); Clone/Assign: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
	ctxApply  = "Apply"
	ctxAssign = "Assign"
	ctxFrom   = "NewDenseFrom"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with a uniform Dense context and callsite indices:
// "Dense.<method>(row,col): %w". The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection on every write path.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard for Set/SetRow/Apply/Assign
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a rows×cols zero matrix using row-major storage.
//
// Inputs:
//   - rows, cols: both must be > 0.
//   - opts: numeric policy (WithValidateNaNInf is the default).
//
// Errors:
//   - ErrInvalidDimensions (class core.ErrInvalidParameter).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // zero-filled
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// All rows must share the length of rows[0]; values are checked against the
// numeric policy before anything is allocated.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", ctxFrom, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has len %d, want %d: %w", ctxFrom, i, len(row), c, ErrDimensionMismatch)
		}
		if o.validateNaNInf {
			for j, v := range row {
				if !isFinite(v) {
					return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
				}
			}
		}
	}

	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c), validateNaNInf: o.validateNaNInf}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// ValidatesNaNInf reports whether the finite-only policy is active.
func (m *Dense) ValidatesNaNInf() bool { return m.validateNaNInf }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i: the coordinates of vertex i in a position
// matrix. The copy is safe to keep across later layout runs.
//
// Errors:
//   - ErrOutOfRange (class core.ErrIndexOutOfBounds) when i ∉ [0, Rows()).
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(Cols()).
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowView returns row i without copying. Writes through the slice bypass
// the numeric policy. Panics on an out-of-range i, like slice indexing.
func (m *Dense) RowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// SetRow overwrites row i with vals (len must equal Cols()).
// The row is validated before the first write.
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, v := range vals {
			if !isFinite(v) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Snapshot returns a copy of the flat row-major buffer.
func (m *Dense) Snapshot() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Assign replaces the whole buffer with data (row-major, len r*c).
//
// Behavior highlights:
//   - All-or-nothing: length and numeric policy are checked first, so on
//     error the matrix keeps its previous contents.
//
// Errors: ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
func (m *Dense) Assign(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.%s: len %d, want %d: %w", ctxAssign, len(data), len(m.data), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if !isFinite(v) {
				return denseErrorf(ctxAssign, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return nil
}

// ToRows exports the matrix as freshly allocated rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Do visits every element in row-major order; returning false stops early.
func (m *Dense) Do(fn func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !fn(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every element with fn(i, j, v), row-major.
// With the numeric policy on, the first non-finite result aborts with
// ErrNaNInf; elements before it have already been written.
func (m *Dense) Apply(fn func(i, j int, v float64) float64) error {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			nv := fn(i, j, m.data[base+j])
			if m.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
