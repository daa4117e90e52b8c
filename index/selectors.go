// SPDX-License-Identifier: MIT

package index

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvindex/matrix"
)

// ErrNegativeSize is returned when a sequence is built with a negative element count.
var ErrNegativeSize = errors.New("index: negative size")

// Compile-time assertions for the closed set of selector kinds.
var (
	_ Selector = SingleIndex{}
	_ Affine   = SingleIndex{}
	_ Selector = (*ArithmeticSeq)(nil)
	_ Affine   = (*ArithmeticSeq)(nil)
	_ Selector = (*Sequence)(nil)
	_ Selector = AllRange{}
	_ Binder   = AllRange{}
	_ Affine   = AllRange{}
)

// ---------- Single ----------

// SingleIndex selects one position. Its count is Fixed(1) and its increment 1.
type SingleIndex struct{ i int }

// Single selects position i.
func Single(i int) SingleIndex { return SingleIndex{i: i} }

// Len is always 1.
func (s SingleIndex) Len() int { return 1 }

// At returns the selected position for any logical index.
func (s SingleIndex) At(int) int { return s.i }

// Affine reports (i, 1).
func (s SingleIndex) Affine() (first, incr int) { return s.i, 1 }

// Descriptor reports a Fixed(1) count with unit increment.
func (s SingleIndex) Descriptor() Descriptor {
	return Descriptor{Kind: KindSingle, Size: matrix.Fixed(1), Incr: 1}
}

// ---------- Seq ----------

// SeqOption tunes what an arithmetic sequence advertises statically.
type SeqOption func(*seqOptions)

type seqOptions struct {
	incr      int
	fixedIncr bool
	fixedSize bool
}

// WithIncr sets a runtime increment k: the descriptor reports DynamicIncr.
func WithIncr(k int) SeqOption {
	return func(o *seqOptions) { o.incr, o.fixedIncr = k, false }
}

// WithFixedIncr sets a statically known increment k (negative allowed).
func WithFixedIncr(k int) SeqOption {
	return func(o *seqOptions) { o.incr, o.fixedIncr = k, true }
}

// WithFixedSize makes the descriptor report the element count as Fixed.
func WithFixedSize() SeqOption {
	return func(o *seqOptions) { o.fixedSize = true }
}

// ArithmeticSeq selects first, first+incr, ..., first+(size-1)*incr.
type ArithmeticSeq struct {
	first, size, incr int
	desc              Descriptor
}

// Seq builds an arithmetic sequence of size elements starting at first.
// MAIN DESCRIPTION:
//   - Default increment is a static 1 and the count is Dynamic.
//   - WithIncr/WithFixedIncr/WithFixedSize adjust the static descriptor.
//
// Errors:
//   - ErrNegativeSize when size < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func Seq(first, size int, opts ...SeqOption) (*ArithmeticSeq, error) {
	if size < 0 {
		return nil, fmt.Errorf("index.Seq(%d,%d): %w", first, size, ErrNegativeSize)
	}
	o := seqOptions{incr: 1, fixedIncr: true}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	d := Descriptor{Kind: KindSeq, Size: matrix.Dynamic, Incr: DynamicIncr}
	if o.fixedSize {
		d.Size = matrix.Fixed(size)
	}
	if o.fixedIncr {
		d.Incr = Incr(o.incr)
	}

	return &ArithmeticSeq{first: first, size: size, incr: o.incr, desc: d}, nil
}

// Len returns the element count.
func (s *ArithmeticSeq) Len() int { return s.size }

// At returns first + i*incr.
func (s *ArithmeticSeq) At(i int) int { return s.first + i*s.incr }

// Affine reports (first, incr).
func (s *ArithmeticSeq) Affine() (first, incr int) { return s.first, s.incr }

// Descriptor reports the static view chosen at construction.
func (s *ArithmeticSeq) Descriptor() Descriptor { return s.desc }

// ---------- List / Array ----------

// Sequence selects an arbitrary, possibly non-uniform list of positions.
// Its increment is always UndefinedIncr.
type Sequence struct {
	idx   []int
	fixed bool
}

// List selects the given positions; the count is Dynamic.
// The slice is copied.
func List(idx ...int) *Sequence {
	return &Sequence{idx: append([]int(nil), idx...)}
}

// Array selects the given positions; the count is Fixed(len(idx)).
// The slice is copied.
func Array(idx ...int) *Sequence {
	return &Sequence{idx: append([]int(nil), idx...), fixed: true}
}

// Len returns the number of positions.
func (s *Sequence) Len() int { return len(s.idx) }

// At returns the i-th position.
func (s *Sequence) At(i int) int { return s.idx[i] }

// Indices returns a copy of the positions.
func (s *Sequence) Indices() []int { return append([]int(nil), s.idx...) }

// Descriptor reports KindList with UndefinedIncr.
func (s *Sequence) Descriptor() Descriptor {
	d := Descriptor{Kind: KindList, Size: matrix.Dynamic, Incr: UndefinedIncr}
	if s.fixed {
		d.Size = matrix.Fixed(len(s.idx))
	}

	return d
}

// ---------- All ----------

// AllRange selects every position of the axis it is bound to.
// Unbound, it has length 0 and a Dynamic count.
type AllRange struct {
	n    int
	size matrix.Dim
}

// All selects the whole axis once bound by the view.
func All() AllRange { return AllRange{size: matrix.Dynamic} }

// Bind resolves the extent against the axis.
func (a AllRange) Bind(axisLen int, axisSize matrix.Dim) Selector {
	return AllRange{n: axisLen, size: axisSize}
}

// Len returns the bound axis length.
func (a AllRange) Len() int { return a.n }

// At is the identity mapping.
func (a AllRange) At(i int) int { return i }

// Affine reports (0, 1).
func (a AllRange) Affine() (first, incr int) { return 0, 1 }

// Descriptor reports the axis static size with unit increment.
func (a AllRange) Descriptor() Descriptor {
	return Descriptor{Kind: KindAll, Size: a.size, Incr: 1}
}
