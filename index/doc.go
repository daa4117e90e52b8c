// Package index provides the row/column selectors used to build indexed views.
//
// A selector maps logical positions 0..Len()-1 onto physical positions of one
// axis of an expression. Besides the runtime mapping, every selector carries a
// static Descriptor: its Kind, its element count (Fixed or Dynamic) and its
// increment (a constant, DynamicIncr, or UndefinedIncr for arbitrary lists).
// Package indexed reads only the descriptors to classify a view.
//
// Kinds:
//
//	Single(i)               one position, count 1, incr 1
//	Seq(first, n, opts...)  arithmetic progression; incr 1 unless WithIncr/WithFixedIncr
//	List(i...) / Array(i...) arbitrary positions, incr undefined
//	All()                   the whole axis, incr 1, count of the axis
package index
