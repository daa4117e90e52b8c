package index_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/matrix"
)

func mustSeq(t *testing.T, first, size int, opts ...index.SeqOption) *index.ArithmeticSeq {
	t.Helper()
	s, err := index.Seq(first, size, opts...)
	require.NoError(t, err)

	return s
}

// TestDescriptors covers the static count/increment of every kind.
func TestDescriptors(t *testing.T) {
	cases := []struct {
		name string
		sel  index.Selector
		want index.Descriptor
	}{
		{"single", index.Single(4), index.Descriptor{Kind: index.KindSingle, Size: 1, Incr: 1}},
		{"seq default", mustSeq(t, 0, 3), index.Descriptor{Kind: index.KindSeq, Size: matrix.Dynamic, Incr: 1}},
		{"seq runtime incr", mustSeq(t, 0, 3, index.WithIncr(2)), index.Descriptor{Kind: index.KindSeq, Size: matrix.Dynamic, Incr: index.DynamicIncr}},
		{"seq fixed", mustSeq(t, 5, 3, index.WithFixedIncr(-1), index.WithFixedSize()), index.Descriptor{Kind: index.KindSeq, Size: 3, Incr: -1}},
		{"list", index.List(0, 2, 3, 7), index.Descriptor{Kind: index.KindList, Size: matrix.Dynamic, Incr: index.UndefinedIncr}},
		{"array", index.Array(0, 2), index.Descriptor{Kind: index.KindList, Size: 2, Incr: index.UndefinedIncr}},
		{"all unbound", index.All(), index.Descriptor{Kind: index.KindAll, Size: matrix.Dynamic, Incr: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.sel.Descriptor())
		})
	}
}

// TestMappings checks runtime positions.
func TestMappings(t *testing.T) {
	s := mustSeq(t, 5, 3, index.WithFixedIncr(-2))
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{5, 3, 1}, []int{s.At(0), s.At(1), s.At(2)})

	l := index.List(3, 1)
	require.Equal(t, 2, l.Len())
	require.Equal(t, 1, l.At(1))
	require.Equal(t, []int{3, 1}, l.Indices())

	require.Equal(t, 4, index.Single(4).At(0))
	require.Equal(t, 1, index.Single(4).Len())
}

// TestListCopiesInput ensures later mutation of the caller slice is not observed.
func TestListCopiesInput(t *testing.T) {
	in := []int{1, 2}
	l := index.List(in...)
	in[0] = 9
	require.Equal(t, 1, l.At(0))
}

// TestSeqNegativeSize rejects negative element counts.
func TestSeqNegativeSize(t *testing.T) {
	_, err := index.Seq(0, -1)
	require.ErrorIs(t, err, index.ErrNegativeSize)
}

// TestBindAll resolves All against an axis and leaves other kinds untouched.
func TestBindAll(t *testing.T) {
	b := index.Bind(index.All(), 5, matrix.Fixed(5))
	require.Equal(t, 5, b.Len())
	require.Equal(t, 3, b.At(3))
	require.Equal(t, matrix.Fixed(5), b.Descriptor().Size)

	l := index.List(1)
	require.Same(t, l, index.Bind(l, 5, matrix.Dynamic))
}

// TestValidate checks both the affine endpoint path and the scanning path.
func TestValidate(t *testing.T) {
	require.NoError(t, index.Validate(mustSeq(t, 0, 4, index.WithIncr(2)), 7))
	require.ErrorIs(t, index.Validate(mustSeq(t, 0, 4, index.WithIncr(2)), 6), matrix.ErrOutOfRange)
	require.ErrorIs(t, index.Validate(mustSeq(t, 2, 4, index.WithFixedIncr(-1)), 6), matrix.ErrOutOfRange)
	require.NoError(t, index.Validate(index.List(0, 5, 2), 6))
	require.ErrorIs(t, index.Validate(index.List(0, 6), 6), matrix.ErrOutOfRange)
	require.NoError(t, index.Validate(index.List(), 0))
}

// TestValidateAffineNoWrap rejects sequences whose span would wrap int and
// land back inside the axis.
func TestValidateAffineNoWrap(t *testing.T) {
	// 0, -MaxInt, -2*MaxInt: the last term wraps to 2.
	wrap := mustSeq(t, 0, 3, index.WithFixedIncr(-math.MaxInt))
	require.Equal(t, 2, wrap.At(2))
	require.ErrorIs(t, index.Validate(wrap, 4), matrix.ErrOutOfRange)

	// 1 + 4*2^62 wraps back to 1.
	big := mustSeq(t, 1, 5, index.WithIncr(math.MaxInt/2+1))
	require.Equal(t, 1, big.At(4))
	require.ErrorIs(t, index.Validate(big, 4), matrix.ErrOutOfRange)

	// (n-1)*incr overflows for a huge count.
	require.ErrorIs(t, index.Validate(mustSeq(t, 0, math.MaxInt/2, index.WithIncr(4)), 4), matrix.ErrOutOfRange)

	// one past the end, and the exact fit
	require.ErrorIs(t, index.Validate(mustSeq(t, 0, 2, index.WithIncr(4)), 4), matrix.ErrOutOfRange)
	require.NoError(t, index.Validate(mustSeq(t, 0, 2, index.WithIncr(3)), 4))
	require.NoError(t, index.Validate(mustSeq(t, 3, 4, index.WithFixedIncr(-1)), 4))

	// a zero increment repeats the first position
	require.NoError(t, index.Validate(mustSeq(t, 2, math.MaxInt, index.WithIncr(0)), 4))
}

// TestIncrPredicates covers the sentinel helpers.
func TestIncrPredicates(t *testing.T) {
	require.True(t, index.DynamicIncr.IsDynamic())
	require.False(t, index.DynamicIncr.IsKnown())
	require.True(t, index.UndefinedIncr.IsUndefined())
	require.True(t, index.Incr(-1).IsKnown())
	require.Equal(t, "undefined", index.UndefinedIncr.String())
	require.Equal(t, "dynamic", index.DynamicIncr.String())
	require.Equal(t, "-3", index.Incr(-3).String())
	require.Equal(t, "all", index.KindAll.String())
}
