// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts Dense traits or Set behavior and is covered by tests.
//
// Notes:
//   - Storage order and fixed shape are static properties: they end up in Traits
//     and drive the trait inference of every view built on top of the Dense.
//   - Read-only matrices drop LvalueBit; Set returns ErrReadOnly on them.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultOrder is the storage order of a Dense created without WithColMajor.
	DefaultOrder = RowMajor

	// DefaultFixedShape reports Rows/Cols as Dynamic unless WithFixedShape is given.
	DefaultFixedShape = false

	// DefaultReadOnly keeps new matrices writable.
	DefaultReadOnly = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool         // DefaultValidateNaNInf
	order          StorageOrder // DefaultOrder
	fixedShape     bool         // DefaultFixedShape
	readOnly       bool         // DefaultReadOnly
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation in Set (use with care).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRowMajor lays rows out contiguously (default).
func WithRowMajor() Option {
	return func(o *Options) { o.order = RowMajor }
}

// WithColMajor lays columns out contiguously.
// Implementation:
//   - Stage 1: set order=ColMajor.
//
// Behavior highlights:
//   - Traits drop RowMajorBit; OuterStride becomes the row count.
//   - At/Set/NewDenseFrom keep logical (row, col) semantics; only the layout changes.
func WithColMajor() Option {
	return func(o *Options) { o.order = ColMajor }
}

// WithFixedShape declares the shape as statically known.
// Implementation:
//   - Stage 1: set fixedShape=true.
//
// Behavior highlights:
//   - Traits report Rows/Cols/MaxRows/MaxCols and OuterStride as Fixed values
//     instead of Dynamic; downstream trait inference can then fix view sizes.
func WithFixedShape() Option {
	return func(o *Options) { o.fixedShape = true }
}

// WithReadOnly drops LvalueBit from the matrix traits.
// Set returns ErrReadOnly; views built on top expose no mutable nested expression.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

// gatherOptions resolves defaults then applies user setters in order.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		order:          DefaultOrder,
		fixedShape:     DefaultFixedShape,
		readOnly:       DefaultReadOnly,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
