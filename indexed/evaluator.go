// SPDX-License-Identifier: MIT

package indexed

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/matrix"
)

const panicNegativeCost = "indexed: negative coefficient read cost"

// Strategy names the evaluation path chosen for a view.
type Strategy uint8

const (
	// Gather translates every coordinate through both selectors.
	Gather Strategy = iota
	// Stride reads the nested buffer with precomputed per-axis strides.
	Stride
)

// String returns "gather" or "stride".
func (s Strategy) String() string {
	if s == Stride {
		return "stride"
	}

	return "gather"
}

// checkCost rejects a negative cost estimate (programmer error in a nested evaluator).
func checkCost(cost int) {
	if cost < 0 {
		panic(panicNegativeCost)
	}
}

// Evaluator returns the evaluator for v, choosing the strategy from its traits.
// MAIN DESCRIPTION:
//   - Stride when the view carries DirectAccessBit, the nested evaluator is a
//     matrix.DirectAccessor, and both selectors are affine.
//   - Gather otherwise; it is valid for every view.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View) Evaluator() matrix.Evaluator {
	arg := v.xpr.Evaluator()
	var ev matrix.Evaluator
	if s, ok := newStrideEvaluator(v, arg); ok {
		ev = s
	} else {
		ev = newGatherEvaluator(v, arg)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("indexed: %dx%d view (%s) evaluates by %s", v.Rows(), v.Cols(), v.traits.Flags, StrategyOf(ev))
	}

	return ev
}

// StrategyOf reports which strategy produced ev; evaluators from other
// packages report Gather.
func StrategyOf(ev matrix.Evaluator) Strategy {
	if _, ok := ev.(*strideEvaluator); ok {
		return Stride
	}

	return Gather
}

// NewGatherEvaluator returns the index-gather evaluator for v regardless of
// its traits. Useful to compare strategies.
func NewGatherEvaluator(v *View) matrix.Evaluator {
	return newGatherEvaluator(v, v.xpr.Evaluator())
}

// gatherEvaluator maps (row, col) through the selectors and delegates to the
// nested evaluator. It holds no mutable state.
type gatherEvaluator struct {
	arg  matrix.Evaluator
	view *View
}

func newGatherEvaluator(v *View, arg matrix.Evaluator) *gatherEvaluator {
	checkCost(arg.CoeffReadCost())

	return &gatherEvaluator{arg: arg, view: v}
}

// Coeff returns arg.Coeff(rows[row], cols[col]); no bounds checks.
func (e *gatherEvaluator) Coeff(row, col int) float64 {
	return e.arg.Coeff(e.view.rows.At(row), e.view.cols.At(col))
}

// CoeffReadCost is the nested cost; index translation is treated as free.
func (e *gatherEvaluator) CoeffReadCost() int { return e.arg.CoeffReadCost() }

// Flags keeps only the nested hereditary bits.
func (e *gatherEvaluator) Flags() matrix.Flags { return e.arg.Flags() & matrix.HereditaryBits }

// strideEvaluator reads data[base + row*rowStride + col*colStride].
type strideEvaluator struct {
	data                 []float64
	base                 int
	rowStride, colStride int
	cost                 int
	flags                matrix.Flags
	order                matrix.StorageOrder
}

var _ matrix.DirectAccessor = (*strideEvaluator)(nil)

// newStrideEvaluator builds the direct-stride strategy when v qualifies.
// Implementation:
//   - Stage 1: require DirectAccessBit on the view and a DirectAccessor nested evaluator.
//   - Stage 2: require affine selectors and read their runtime first/incr.
//   - Stage 3: fold the nested axis strides with the selector increments.
func newStrideEvaluator(v *View, arg matrix.Evaluator) (*strideEvaluator, bool) {
	if !v.traits.HasDirectAccess() {
		return nil, false
	}
	da, ok := arg.(matrix.DirectAccessor)
	if !ok {
		return nil, false
	}
	ra, rok := v.rows.(index.Affine)
	ca, cok := v.cols.(index.Affine)
	if !rok || !cok {
		return nil, false
	}
	checkCost(da.CoeffReadCost())

	r0, rIncr := ra.Affine()
	c0, cIncr := ca.Affine()
	nrs, ncs := matrix.AxisStrides(da)
	flags := da.Flags()&matrix.EvalBeforeNestingBit | matrix.DirectAccessBit
	if v.traits.IsRowMajor() {
		flags |= matrix.RowMajorBit
	}

	return &strideEvaluator{
		data:      da.Data(),
		base:      r0*nrs + c0*ncs,
		rowStride: nrs * rIncr,
		colStride: ncs * cIncr,
		cost:      da.CoeffReadCost(),
		flags:     flags,
		order:     v.traits.Order(),
	}, true
}

func (e *strideEvaluator) Coeff(row, col int) float64 {
	return e.data[e.base+row*e.rowStride+col*e.colStride]
}

func (e *strideEvaluator) CoeffReadCost() int         { return e.cost }
func (e *strideEvaluator) Flags() matrix.Flags        { return e.flags }
func (e *strideEvaluator) Order() matrix.StorageOrder { return e.order }

// Data returns the buffer starting at the view origin; nil when the origin
// lies past the end (empty views).
func (e *strideEvaluator) Data() []float64 {
	if e.base > len(e.data) {
		return nil
	}

	return e.data[e.base:]
}

func (e *strideEvaluator) InnerStride() int {
	if e.order == matrix.RowMajor {
		return e.colStride
	}

	return e.rowStride
}

func (e *strideEvaluator) OuterStride() int {
	if e.order == matrix.RowMajor {
		return e.rowStride
	}

	return e.colStride
}

