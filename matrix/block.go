// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Block is a non-owning rectangular window into a Dense (shared storage).
// It is an Expr (and Lvalue when the base is writable) so it can be nested
// inside other expressions, including indexed views.
type Block struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // window height
	c    int    // window width
	ro   bool   // read-only handle over a possibly writable base
}

var (
	_ Lvalue = (*Block)(nil)
	_ Matrix = (*Block)(nil)
)

// Rows returns the number of rows in the block.
// Complexity: O(1).
func (b *Block) Rows() int { return b.r }

// Cols returns the number of columns in the block.
// Complexity: O(1).
func (b *Block) Cols() int { return b.c }

// Origin returns the top-left corner of the block in base coordinates.
func (b *Block) Origin() (row, col int) { return b.r0, b.c0 }

// Base returns the Dense the block windows into.
func (b *Block) Base() *Dense { return b.base }

// ReadOnly returns a handle on the same window that drops LvalueBit and
// rejects Set with ErrReadOnly. The receiver is left unchanged.
// Complexity: O(1).
func (b *Block) ReadOnly() *Block {
	c := *b
	c.ro = true

	return &c
}

// readOnly reports whether writes through b are rejected.
func (b *Block) readOnly() bool { return b.ro || b.base.readOnly }

// Traits reports a window of the base: same order, strides and lvalue-ness,
// runtime extents, and no linear access (rows are not adjacent in memory).
// Complexity: O(1).
func (b *Block) Traits() Traits {
	bt := b.base.Traits()

	return Traits{
		Rows:        Dynamic,
		Cols:        Dynamic,
		MaxRows:     bt.MaxRows,
		MaxCols:     bt.MaxCols,
		InnerStride: bt.InnerStride,
		OuterStride: bt.OuterStride,
		Flags:       b.flags(bt.Flags),
	}
}

// flags derives the block flags from the base flags.
func (b *Block) flags(base Flags) Flags {
	f := base &^ LinearAccessBit
	if b.ro {
		f &^= LvalueBit
	}

	return f
}

// At reads element (i,j) in the block or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe read within the block bounds; translates to base coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Block) At(i, j int) (float64, error) {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return 0, fmt.Errorf("Block.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return b.base.Coeff(b.r0+i, b.c0+j), nil
}

// Coeff reads (i, j) without bounds checks.
func (b *Block) Coeff(i, j int) float64 { return b.base.Coeff(b.r0+i, b.c0+j) }

// Set writes element (i,j) in the block, honoring the base policies.
// Implementation:
//   - Stage 1: reject when the block or its base is read-only.
//   - Stage 2: check bounds.
//   - Stage 3: validate finite when base policy is enabled, then write-through.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Block) Set(i, j int, val float64) error {
	if b.readOnly() {
		return fmt.Errorf("Block.Set(%d,%d): %w", i, j, ErrReadOnly)
	}
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("Block.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if b.base.validateNaNInf {
		if err := ValidateFinite(val); err != nil {
			return fmt.Errorf("Block.Set(%d,%d): %w", i, j, err)
		}
	}
	b.base.SetCoeff(b.r0+i, b.c0+j, val)

	return nil
}

// SetCoeff writes through to the base without checks.
func (b *Block) SetCoeff(i, j int, v float64) { b.base.SetCoeff(b.r0+i, b.c0+j, v) }

// Evaluator returns a direct-access evaluator rooted at the block origin.
func (b *Block) Evaluator() Evaluator { return blockEvaluator{b: b} }

// String renders the window like Dense.String.
func (b *Block) String() string { return format(b) }

type blockEvaluator struct{ b *Block }

var _ DirectAccessor = blockEvaluator{}

func (e blockEvaluator) Coeff(i, j int) float64 { return e.b.base.Coeff(e.b.r0+i, e.b.c0+j) }
func (e blockEvaluator) CoeffReadCost() int     { return denseReadCost }
func (e blockEvaluator) Flags() Flags           { return e.b.Traits().Flags }
func (e blockEvaluator) InnerStride() int       { return 1 }
func (e blockEvaluator) OuterStride() int       { return e.b.base.outerStride() }
func (e blockEvaluator) Order() StorageOrder    { return e.b.base.order }

// Data returns the base buffer starting at the block origin; nil for empty blocks.
func (e blockEvaluator) Data() []float64 {
	if e.b.r == 0 || e.b.c == 0 {
		return nil
	}

	return e.b.base.data[e.b.base.offset(e.b.r0, e.b.c0):]
}
