// Package lvindex provides lazy indexed views over dense matrices: pick any
// rows and any columns of a matrix by index selectors and get back an
// expression that reads (and writes) straight through to the original storage.
//
// What is in the box?
//
//	• Dense storage in row- or column-major order, with static traits
//	• Selectors: single index, arithmetic sequence, index list, all
//	• Trait inference: shape, storage order, strides and access flags of a
//	  view are resolved once, from the selectors' static descriptors
//	• Two evaluation strategies: direct strided reads when the selectors are
//	  affine with non-negative increments, index gather otherwise
//	• Views are expressions themselves, so views of views compose
//
// Everything is organized under three packages:
//
//	matrix/   - Dense, Block, the Expr/Evaluator contracts and trait vocabulary
//	index/    - selector kinds and their static descriptors
//	indexed/  - Infer, View, evaluators, Materialize
//
// plus the ixview command (cmd/ixview) that prints a view, or its inferred
// traits, from a YAML description.
//
// Quick example: rows {3,1} and columns {0,2} of a 4×4 matrix
//
//	 0  1  2  3
//	 4  5  6  7          [12, 14]
//	 8  9 10 11   ──►    [ 4,  6]
//	12 13 14 15
//
//	go get github.com/katalvlaran/lvindex/indexed
package lvindex
