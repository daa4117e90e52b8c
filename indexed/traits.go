// SPDX-License-Identifier: MIT

// Package indexed - static trait inference for indexed views.
//
// Purpose:
//   - Derive, from the nested expression's Traits and the two selector
//     Descriptors only (never their runtime positions), the view's shape,
//     storage order, strides and capability flags.
//   - Degrade to conservative answers (Dynamic, no direct access) instead of failing.
//
// Determinism & Performance:
//   - Pure function of its inputs, O(1), no allocations.

package indexed

import (
	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/matrix"
)

// Traits is the full static bundle of an indexed view.
//   - The embedded matrix.Traits is what the view reports as an Expr.
//   - RowIncr/ColIncr are the selector increments; InnerIncr/OuterIncr the
//     same two values reordered by the view's storage order.
//   - DirectAccess is the eligibility computed from the increments alone;
//     Flags carries DirectAccessBit only when the nested expression has it too.
type Traits struct {
	matrix.Traits

	RowIncr, ColIncr     index.Incr
	InnerIncr, OuterIncr index.Incr

	SameOrderAsNested bool // view order equals nested order
	DirectAccess      bool // both increments known and non-negative
	BlockAlike        bool // both increments exactly 1
	InnerPanel        bool // same order and the selector along the nested inner axis is All
}

// axisSize returns the selector's static count, or Dynamic.
func axisSize(d index.Descriptor) matrix.Dim {
	if d.Size.IsDynamic() {
		return matrix.Dynamic
	}

	return d.Size
}

// maxSize falls back to the nested bound when the view extent is Dynamic.
func maxSize(size, nestedMax matrix.Dim) matrix.Dim {
	if !size.IsDynamic() {
		return size
	}

	return nestedMax
}

// isRowMajor resolves 1×N as row-major and N×1 as col-major; anything else
// inherits the nested order.
func isRowMajor(maxRows, maxCols matrix.Dim, nestedRowMajor bool) bool {
	switch {
	case maxRows == 1 && maxCols != 1:
		return true
	case maxCols == 1 && maxRows != 1:
		return false
	default:
		return nestedRowMajor
	}
}

// scaledStride is nestedStride*incr, or Dynamic when either side is not a
// usable constant (dynamic, undefined or negative increment; dynamic stride).
func scaledStride(nestedStride matrix.Dim, incr index.Incr) matrix.Dim {
	if !incr.IsKnown() || incr < 0 || nestedStride.IsDynamic() {
		return matrix.Dynamic
	}

	return matrix.Fixed(int(nestedStride) * int(incr))
}

// directAccessEligible requires both increments known and non-negative.
// Negative strides are excluded even though a stride-aware consumer could
// handle them.
func directAccessEligible(inner, outer index.Incr) bool {
	return inner.IsKnown() && outer.IsKnown() && inner >= 0 && outer >= 0
}

// Infer computes the static bundle of a view over nested with the given
// row/column selector descriptors.
// MAIN DESCRIPTION:
//   - Pure trait computation; never fails.
//
// Implementation:
//   - Stage 1: shape: selector counts, max sizes fall back to nested bounds.
//   - Stage 2: storage order: 1×N ⇒ row-major, N×1 ⇒ col-major, else nested.
//   - Stage 3: inner/outer increments per order; nested strides swapped when
//     the orders differ.
//   - Stage 4: strides, direct-access eligibility, block-alike, inner panel.
//   - Stage 5: flags: nested hereditary bits (+ DirectAccessBit when eligible),
//     with the order and lvalue bits overridden.
//
// Complexity:
//   - Time O(1), Space O(1).
func Infer(nested matrix.Traits, rows, cols index.Descriptor) Traits {
	var t Traits

	// Stage 1: shape.
	t.Rows = axisSize(rows)
	t.Cols = axisSize(cols)
	t.MaxRows = maxSize(t.Rows, nested.MaxRows)
	t.MaxCols = maxSize(t.Cols, nested.MaxCols)

	// Stage 2: orientation.
	nestedRowMajor := nested.IsRowMajor()
	rowMajor := isRowMajor(t.MaxRows, t.MaxCols, nestedRowMajor)

	// Stage 3: increments and nested strides seen in the view's order.
	t.RowIncr, t.ColIncr = rows.Incr, cols.Incr
	if rowMajor {
		t.InnerIncr, t.OuterIncr = t.ColIncr, t.RowIncr
	} else {
		t.InnerIncr, t.OuterIncr = t.RowIncr, t.ColIncr
	}
	t.SameOrderAsNested = rowMajor == nestedRowMajor
	nestedInner, nestedOuter := nested.InnerStride, nested.OuterStride
	if !t.SameOrderAsNested {
		nestedInner, nestedOuter = nestedOuter, nestedInner
	}

	// Stage 4: strides and capability classification.
	t.InnerStride = scaledStride(nestedInner, t.InnerIncr)
	t.OuterStride = scaledStride(nestedOuter, t.OuterIncr)
	t.DirectAccess = directAccessEligible(t.InnerIncr, t.OuterIncr)
	t.BlockAlike = t.InnerIncr == 1 && t.OuterIncr == 1
	innerSel := rows
	if nestedRowMajor {
		innerSel = cols
	}
	t.InnerPanel = t.SameOrderAsNested && innerSel.Kind == index.KindAll

	// Stage 5: flags.
	mask := matrix.HereditaryBits
	if t.DirectAccess {
		mask |= matrix.DirectAccessBit
	}
	t.Flags = nested.Flags & mask &^ (matrix.RowMajorBit | matrix.LvalueBit)
	if rowMajor {
		t.Flags |= matrix.RowMajorBit
	}
	if nested.IsLvalue() {
		t.Flags |= matrix.LvalueBit
	}

	return t
}
