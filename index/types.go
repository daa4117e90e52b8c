// SPDX-License-Identifier: MIT

// Package index: selector contracts and their static descriptors.
// This file contains ONLY the shared vocabulary: Incr, Kind, Descriptor and
// the Selector/Binder/Affine interfaces. Concrete selectors live in selectors.go.
package index

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvindex/matrix"
)

// Incr is the static difference between physical positions mapped from
// consecutive logical positions. Negative values are legal (reversed ranges);
// DynamicIncr and UndefinedIncr are sentinels outside the usable range.
type Incr int

const (
	// DynamicIncr marks an increment that is constant but only known at runtime.
	DynamicIncr Incr = math.MinInt
	// UndefinedIncr marks selectors with no constant increment (arbitrary sequences).
	UndefinedIncr Incr = math.MinInt + 1
)

// IsDynamic reports whether i is DynamicIncr.
func (i Incr) IsDynamic() bool { return i == DynamicIncr }

// IsUndefined reports whether i is UndefinedIncr.
func (i Incr) IsUndefined() bool { return i == UndefinedIncr }

// IsKnown reports whether i is a statically known constant (possibly negative).
func (i Incr) IsKnown() bool { return !i.IsDynamic() && !i.IsUndefined() }

// String renders known increments as numbers, sentinels as words.
func (i Incr) String() string {
	switch {
	case i.IsDynamic():
		return "dynamic"
	case i.IsUndefined():
		return "undefined"
	default:
		return fmt.Sprintf("%d", int(i))
	}
}

// Kind is the closed set of selector shapes.
type Kind uint8

const (
	// KindSingle selects exactly one position.
	KindSingle Kind = iota
	// KindSeq selects an arithmetic progression first, first+incr, ...
	KindSeq
	// KindList selects an arbitrary sequence of positions.
	KindList
	// KindAll selects every position of the axis in order.
	KindAll
)

// String returns the lower-case kind name used in configs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindSeq:
		return "seq"
	case KindList:
		return "list"
	case KindAll:
		return "all"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Descriptor is the static introspection record of a selector:
// its kind, its element count (Fixed or Dynamic) and its increment.
type Descriptor struct {
	Kind Kind
	Size matrix.Dim
	Incr Incr
}

// Selector maps logical positions 0..Len()-1 to physical axis positions.
// At performs no bounds checking; see Validate.
type Selector interface {
	Len() int
	At(i int) int
	Descriptor() Descriptor
}

// Binder is implemented by selectors whose extent depends on the axis they
// are applied to (All). Bind returns the resolved selector.
type Binder interface {
	Bind(axisLen int, axisSize matrix.Dim) Selector
}

// Affine is implemented by selectors whose mapping is first + i*incr at runtime.
type Affine interface {
	Affine() (first, incr int)
}

// Bind resolves s against an axis of runtime length axisLen and static size
// axisSize. Selectors that do not implement Binder are returned unchanged.
// Complexity: O(1).
func Bind(s Selector, axisLen int, axisSize matrix.Dim) Selector {
	if b, ok := s.(Binder); ok {
		return b.Bind(axisLen, axisSize)
	}

	return s
}

// Validate checks that every position mapped by s lies in [0, axisLen).
// Implementation:
//   - Stage 1: affine selectors check the first position, then bound the span
//     (n-1)*|incr| by axisLen-1 without multiplying, so an increment that
//     would wrap int is rejected; the last position is checked after that.
//   - Stage 2: other selectors scan all positions.
//
// Errors:
//   - matrix.ErrOutOfRange wrapped with the offending logical/physical pair.
//
// Complexity:
//   - O(1) for affine selectors, O(Len) otherwise.
func Validate(s Selector, axisLen int) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	if a, ok := s.(Affine); ok {
		first, incr := a.Affine()
		if err := matrix.ValidateIndex(first, axisLen); err != nil {
			return fmt.Errorf("index.Validate: position 0 -> %d: %w", first, err)
		}
		if n > 1 && incr != 0 {
			if incr <= -axisLen || incr >= axisLen {
				return fmt.Errorf("index.Validate: increment %d on axis of %d: %w", incr, axisLen, matrix.ErrOutOfRange)
			}
			step := incr
			if step < 0 {
				step = -step
			}
			if n-1 > (axisLen-1)/step {
				return fmt.Errorf("index.Validate: %d positions of step %d on axis of %d: %w",
					n, incr, axisLen, matrix.ErrOutOfRange)
			}
		}
		last := first + (n-1)*incr
		if err := matrix.ValidateIndex(last, axisLen); err != nil {
			return fmt.Errorf("index.Validate: position %d -> %d: %w", n-1, last, err)
		}

		return nil
	}
	var i, p int
	for i = 0; i < n; i++ {
		p = s.At(i)
		if err := matrix.ValidateIndex(p, axisLen); err != nil {
			return fmt.Errorf("index.Validate: position %d -> %d: %w", i, p, err)
		}
	}

	return nil
}
