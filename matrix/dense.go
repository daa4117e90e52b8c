// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer with an explicit index formula per storage order.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose unchecked Coeff/SetCoeff and a direct-access evaluator for expression layers.
//   - Report static Traits (shape, strides, flags) consumed by view trait inference.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Coeff: O(1); Block: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxBlock = "Block" // ctor tag for Dense.Block
	ctxFrom  = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseReadCost is the relative cost of one coefficient load from a flat buffer.
const denseReadCost = 1

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a flat buffer.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c laid out per order.
//   - fixed, readOnly and validateNaNInf come from Options at construction.
type Dense struct {
	r, c           int          // row and column counts
	data           []float64    // contiguous storage (len == r*c)
	order          StorageOrder // RowMajor: i*c+j; ColMajor: j*r+i
	fixed          bool         // shape reported as Fixed in Traits
	readOnly       bool         // LvalueBit dropped; Set rejected
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Lvalue       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (order, fixed shape, read-only, numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The storage order only changes the layout; (row, col) semantics are identical.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		order:          o.order,
		fixed:          o.fixedShape,
		readOnly:       o.readOnly,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix filled from values given in row-major reading order.
// Implementation:
//   - Stage 1: allocate via NewDense.
//   - Stage 2: validate len(values)==rows*cols and the numeric policy.
//   - Stage 3: scatter values into the configured layout.
//
// Behavior highlights:
//   - WithColMajor still reads values row by row; only the layout differs.
//   - WithReadOnly applies after filling.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (length mismatch), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s: %d values for %dx%d: %w", ctxFrom, len(values), rows, cols, ErrBadShape)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = values[i*cols+j]
			if m.validateNaNInf {
				if err = ValidateFinite(v); err != nil {
					return nil, denseErrorf(ctxFrom, i, j, err)
				}
			}
			m.data[m.offset(i, j)] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }


// Order returns the storage order chosen at construction.
func (m *Dense) Order() StorageOrder { return m.order }

// outerStride is the distance between consecutive rows (RowMajor) or columns (ColMajor).
func (m *Dense) outerStride() int {
	if m.order == RowMajor {
		return m.c
	}

	return m.r
}

// offset computes the flat offset of (row, col) without bounds checks.
func (m *Dense) offset(row, col int) int {
	if m.order == RowMajor {
		return row*m.c + col
	}

	return col*m.r + row
}

// indexOf bounds-checks (row,col) and returns the flat offset or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// Traits reports the static description of m.
// MAIN DESCRIPTION:
//   - Shape is Fixed only under WithFixedShape; otherwise Dynamic.
//   - InnerStride is always 1; OuterStride is Fixed only when the shape is fixed.
//   - Flags: order bit, LinearAccess, DirectAccess, and Lvalue unless read-only.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Traits() Traits {
	t := Traits{
		Rows:        Dynamic,
		Cols:        Dynamic,
		MaxRows:     Dynamic,
		MaxCols:     Dynamic,
		InnerStride: Fixed(1),
		OuterStride: Dynamic,
		Flags:       LinearAccessBit | DirectAccessBit,
	}
	if m.fixed {
		t.Rows, t.Cols = Fixed(m.r), Fixed(m.c)
		t.MaxRows, t.MaxCols = t.Rows, t.Cols
		t.OuterStride = Fixed(m.outerStride())
	}
	if m.order == RowMajor {
		t.Flags |= RowMajorBit
	}
	if !m.readOnly {
		t.Flags |= LvalueBit
	}

	return t
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds, read-only or numeric policy).
// Implementation:
//   - Stage 1: reject writes on read-only matrices.
//   - Stage 2: compute offset via indexOf (bounds check).
//   - Stage 3: enforce numeric policy, then write.
//
// Errors:
//   - ErrReadOnly, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m.readOnly {
		return denseErrorf(ctxSet, row, col, ErrReadOnly)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf {
		if err = ValidateFinite(v); err != nil {
			return denseErrorf(ctxSet, row, col, err)
		}
	}
	m.data[off] = v

	return nil
}

// Coeff reads (row, col) without bounds checks beyond the slice's own.
func (m *Dense) Coeff(row, col int) float64 { return m.data[m.offset(row, col)] }

// SetCoeff writes (row, col) without bounds or policy checks.
// Callers are expected to honour IsLvalue on Traits.
func (m *Dense) SetCoeff(row, col int, v float64) { m.data[m.offset(row, col)] = v }

// Evaluator returns the direct-access evaluator over m's buffer.
// Complexity: O(1).
func (m *Dense) Evaluator() Evaluator { return denseEvaluator{m: m} }

// String renders rows as lines with comma-separated values.
// Complexity: O(r*c).
func (m *Dense) String() string { return format(m) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[m.offset(i, j)]) {
				return
			}
		}
	}
}

// Block creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate window bounds; allow zero-area.
//   - Stage 2: return Block with offsets.
//
// Behavior highlights:
//   - Writes via the block reflect in the base; policies are inherited.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Block(r0, c0, rows, cols int) (*Block, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, ErrBadShape)
	}

	return &Block{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// format renders any Expr through its evaluator in row-major reading order.
func format(e Expr) string {
	var b strings.Builder
	ev := e.Evaluator()
	rows, cols := e.Rows(), e.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			b.WriteString(fmt.Sprintf("%g", ev.Coeff(i, j)))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Format renders any Expr as "[a, b]\n[c, d]\n".
// Intended for diagnostics; not for hot paths.
func Format(e Expr) string { return format(e) }

// denseEvaluator reads straight from the Dense buffer.
type denseEvaluator struct{ m *Dense }

var _ DirectAccessor = denseEvaluator{}

func (e denseEvaluator) Coeff(row, col int) float64 { return e.m.data[e.m.offset(row, col)] }
func (e denseEvaluator) CoeffReadCost() int         { return denseReadCost }
func (e denseEvaluator) Flags() Flags               { return e.m.Traits().Flags }
func (e denseEvaluator) Data() []float64            { return e.m.data }
func (e denseEvaluator) InnerStride() int           { return 1 }
func (e denseEvaluator) OuterStride() int           { return e.m.outerStride() }
func (e denseEvaluator) Order() StorageOrder        { return e.m.order }
