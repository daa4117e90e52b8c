// Package matrix provides the dense storage and the expression contracts that
// lazy views are built on.
//
// The matrix package provides:
//
//   - Dense: a flat float64 buffer in row- or column-major order with checked
//     At/Set and unchecked Coeff/SetCoeff.
//   - Block: a no-copy rectangular window into a Dense.
//   - Expr / Lvalue / Evaluator: the read/write contracts every expression
//     implements, plus DirectAccessor for constant-stride memory.
//   - Traits: the static description of an expression (shape as Fixed or
//     Dynamic, storage order, strides, capability Flags) consumed by trait
//     inference in package indexed.
//
// See the examples in this package and in indexed for usage patterns.
package matrix
