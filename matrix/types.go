// SPDX-License-Identifier: MIT

// Package matrix: static trait vocabulary and expression contracts.
// This file contains ONLY the types shared by every expression (Dense, Block,
// indexed views): dimensions, storage order, flag bits, the Traits record and
// the Expr/Lvalue/Evaluator interfaces. Concrete storage lives in dense.go.
package matrix

import "fmt"

// Dim is a statically known extent (rows, cols, strides) or Dynamic.
// A Dim is part of an expression's type-level description: it never changes
// for the lifetime of the expression that reports it.
type Dim int

// Dynamic marks an extent that is only known at runtime.
const Dynamic Dim = -1

// Fixed returns n as a statically known Dim.
// Negative n collapses to Dynamic.
func Fixed(n int) Dim {
	if n < 0 {
		return Dynamic
	}

	return Dim(n)
}

// IsDynamic reports whether d is only known at runtime.
func (d Dim) IsDynamic() bool { return d < 0 }

// String renders Fixed values as numbers and Dynamic as "dynamic".
func (d Dim) String() string {
	if d.IsDynamic() {
		return "dynamic"
	}

	return fmt.Sprintf("%d", int(d))
}

// StorageOrder is the linear layout of an expression's coefficients.
type StorageOrder uint8

const (
	// ColMajor stores columns contiguously (offset = col*outer + row*inner).
	ColMajor StorageOrder = iota
	// RowMajor stores rows contiguously (offset = row*outer + col*inner).
	RowMajor
)

// String returns "col-major" or "row-major".
func (o StorageOrder) String() string {
	if o == RowMajor {
		return "row-major"
	}

	return "col-major"
}

// Flags is the capability bitset an expression or evaluator advertises.
type Flags uint32

const (
	// RowMajorBit is set when the expression is laid out row by row.
	RowMajorBit Flags = 1 << iota
	// EvalBeforeNestingBit asks consumers to materialize before nesting.
	EvalBeforeNestingBit
	// LinearAccessBit allows coefficient access by a single linear index.
	LinearAccessBit
	// LvalueBit marks expressions that accept coefficient writes.
	LvalueBit
	// DirectAccessBit marks constant-stride memory that supports pointer/stride arithmetic.
	DirectAccessBit
)

// HereditaryBits are the flags an enclosing expression inherits from its nested one.
const HereditaryBits = RowMajorBit | EvalBeforeNestingBit

// Has reports whether every bit of mask is set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// String lists the set bits, e.g. "RowMajor|Lvalue|DirectAccess".
func (f Flags) String() string {
	names := [...]string{"RowMajor", "EvalBeforeNesting", "LinearAccess", "Lvalue", "DirectAccess"}
	var s string
	for i, n := range names {
		if f&(1<<uint(i)) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n
	}
	if s == "" {
		return "none"
	}

	return s
}

// Traits is the static description of an expression.
//   - Rows/Cols: extents when fixed, Dynamic otherwise.
//   - MaxRows/MaxCols: upper bounds used for orientation decisions.
//   - InnerStride/OuterStride: memory strides in elements, or Dynamic.
//   - Flags: capability bits (storage order, lvalue, direct access, ...).
type Traits struct {
	Rows, Cols       Dim
	MaxRows, MaxCols Dim
	InnerStride      Dim
	OuterStride      Dim
	Flags            Flags
}

// IsRowMajor reports whether RowMajorBit is set.
func (t Traits) IsRowMajor() bool { return t.Flags.Has(RowMajorBit) }

// IsLvalue reports whether the expression accepts coefficient writes.
func (t Traits) IsLvalue() bool { return t.Flags.Has(LvalueBit) }

// HasDirectAccess reports whether DirectAccessBit is set.
func (t Traits) HasDirectAccess() bool { return t.Flags.Has(DirectAccessBit) }

// Order returns the storage order encoded in Flags.
func (t Traits) Order() StorageOrder {
	if t.IsRowMajor() {
		return RowMajor
	}

	return ColMajor
}

// Expr is a lazily evaluated two-dimensional float64 expression.
// Rows/Cols are runtime extents; Traits is fixed for the lifetime of the value.
type Expr interface {
	Rows() int
	Cols() int
	Traits() Traits
	Evaluator() Evaluator
}

// Lvalue is an Expr whose coefficients can be written in place.
// SetCoeff performs no bounds checking.
type Lvalue interface {
	Expr
	SetCoeff(row, col int, v float64)
}

// Evaluator performs coefficient reads for one expression.
// Coeff performs no bounds checking beyond what the backing storage does.
type Evaluator interface {
	Coeff(row, col int) float64
	// CoeffReadCost is a relative, non-negative cost estimate of one Coeff call.
	CoeffReadCost() int
	Flags() Flags
}

// DirectAccessor is an Evaluator over constant-stride memory.
// The coefficient (row, col) lives at Data()[row*rowStride + col*colStride]
// where the strides follow from Order(), InnerStride() and OuterStride().
type DirectAccessor interface {
	Evaluator
	Data() []float64
	InnerStride() int
	OuterStride() int
	Order() StorageOrder
}

// AxisStrides converts inner/outer strides of a DirectAccessor into per-axis
// (row, col) strides.
// Complexity: O(1).
func AxisStrides(d DirectAccessor) (rowStride, colStride int) {
	if d.Order() == RowMajor {
		return d.OuterStride(), d.InnerStride()
	}

	return d.InnerStride(), d.OuterStride()
}

// Matrix is an expression with checked element access: At/Set return
// ErrOutOfRange (and policy errors such as ErrReadOnly, ErrNaNInf) instead of
// panicking, and Coeff reads without checks or evaluator construction.
// Dense, Block and indexed views implement it.
// Complexity: all methods O(1).
type Matrix interface {
	Expr
	Coeff(i, j int) float64
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
}
