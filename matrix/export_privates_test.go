// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot and layout offsets.
//
// Purpose:
//   - Expose the resolved Options and Dense.offset to matrix_test ONLY.
//   - Compiled only with the tests (file name ends in _test.go), so the
//     production API is not widened.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields; tests catch drift.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Order          StorageOrder
	FixedShape     bool
	ReadOnly       bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		Order:          o.order,
		FixedShape:     o.fixedShape,
		ReadOnly:       o.readOnly,
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// ExportedOffset exposes the storage offset of (row, col) in the flat buffer.
var ExportedOffset = (*Dense).offset
