// Package indexed implements lazy indexed views: a read/write expression that
// gathers the rows and columns picked by two independent selectors from a
// nested expression, without copying data.
//
// Three cooperating pieces:
//
//   - Infer: a pure trait computation from the nested Traits and the two
//     selector Descriptors. It fixes the view's shape (Fixed or Dynamic), its
//     storage order (1×N is row-major, N×1 col-major, otherwise inherited),
//     strides, and whether direct strided access, block-alike fast paths and
//     writes are allowed.
//   - View: holds the nested expression (Borrow or Own) and the selectors,
//     and exposes Rows/Cols, the nested expression and the selectors.
//   - Evaluators: index-gather (always valid) and direct-stride (chosen when
//     the traits allow it). Both satisfy View(E,R,C).Coeff(i,j) == E.Coeff(R[i],C[j]).
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom(4, 4, data)
//	v, _ := indexed.Borrow(m, index.List(3, 1), index.Array(0, 2))
//	x := v.Coeff(0, 1) // == m.Coeff(3, 2)
//
// Selector ranges are not validated at construction: out-of-range positions
// are reported by At/Set and are undefined behavior for Coeff.
package indexed
