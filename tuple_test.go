package adapt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/adapt"
)

func TestPairLength(t *testing.T) {
	p := adapt.Zip2(adapt.SliceOf(makeInts(4)), adapt.NewRange(0, 10))
	require.Equal(t, 4, p.BaseLength())

	p = adapt.Zip2(adapt.SliceOf(makeInts(4)), adapt.NewRange(0, 4))
	require.Equal(t, 4, p.BaseLength())
}

func TestPairDivide(t *testing.T) {
	p := adapt.Zip2(adapt.SliceOf(makeInts(4)), adapt.NewRange(0, 10))
	left, right := p.Divide()
	require.Equal(t, 2, left.First.BaseLength())
	require.Equal(t, adapt.Range[int]{Start: 0, End: 5}, left.Second)
	require.Equal(t, 2, right.First.BaseLength())
	require.Equal(t, adapt.Range[int]{Start: 5, End: 10}, right.Second)
	require.Equal(t, 2, left.BaseLength())
	require.Equal(t, 2, right.BaseLength())
}

func TestTriple(t *testing.T) {
	tr := adapt.Zip3(adapt.NewRange(0, 9), adapt.MutSlice[int](makeInts(5)), adapt.SliceOf(makeInts(7)))
	require.Equal(t, 5, tr.BaseLength())

	left, right := tr.Divide()
	require.Equal(t, adapt.Range[int]{Start: 0, End: 4}, left.First)
	require.Equal(t, adapt.MutSlice[int]{0, 1}, left.Second)
	require.Equal(t, []int{0, 1, 2}, left.Third.Clone())
	require.Equal(t, adapt.Range[int]{Start: 4, End: 9}, right.First)
	require.Equal(t, adapt.MutSlice[int]{2, 3, 4}, right.Second)
	require.Equal(t, []int{3, 4, 5, 6}, right.Third.Clone())
}

func TestPairAtAligned(t *testing.T) {
	p := adapt.ZipAt2(adapt.SliceOf(makeInts(6)), adapt.NewRange(100, 110))
	require.Equal(t, 6, p.BaseLength())

	left, right := p.DivideAt(2)
	require.Equal(t, []int{0, 1}, left.First.Clone())
	require.Equal(t, adapt.Range[int]{Start: 100, End: 102}, left.Second)
	require.Equal(t, []int{2, 3, 4, 5}, right.First.Clone())
	require.Equal(t, adapt.Range[int]{Start: 102, End: 110}, right.Second)
	require.Equal(t, 4, right.BaseLength())

	left, right = p.Divide()
	require.Equal(t, 3, left.BaseLength())
	require.Equal(t, adapt.Range[int]{Start: 100, End: 103}, left.Second)
	require.Equal(t, 3, right.BaseLength())
}

func TestPairAtOutOfRange(t *testing.T) {
	p := adapt.ZipAt2(adapt.SliceOf(makeInts(3)), adapt.NewRange(0, 10))
	requireAssertionPanic(t, func() { p.DivideAt(4) })
}

func TestTripleAt(t *testing.T) {
	tr := adapt.ZipAt3(adapt.NewRange(0, 8), adapt.NewRange(10, 15), adapt.MutSlice[int](makeInts(6)))
	require.Equal(t, 5, tr.BaseLength())

	left := adapt.CutLeftAt(&tr, 3)
	require.Equal(t, adapt.Range[int]{Start: 0, End: 3}, left.First)
	require.Equal(t, adapt.Range[int]{Start: 10, End: 13}, left.Second)
	require.Equal(t, adapt.MutSlice[int]{0, 1, 2}, left.Third)
	require.Equal(t, adapt.Range[int]{Start: 3, End: 8}, tr.First)
	require.Equal(t, adapt.Range[int]{Start: 13, End: 15}, tr.Second)
	require.Equal(t, adapt.MutSlice[int]{3, 4, 5}, tr.Third)
	require.Equal(t, 2, tr.BaseLength())

	requireAssertionPanic(t, func() { tr.DivideAt(3) })
}

func TestNestedPairAtChunks(t *testing.T) {
	in := makeInts(6)
	out := make([]int, 6)
	p := adapt.ZipAt2(adapt.SliceOf(in), adapt.MutSlice[int](out))
	for chunk := range adapt.Chunks(p, adapt.Blocks(p.BaseLength(), 4)).All() {
		for i, v := range chunk.First.All() {
			chunk.Second[i] = v * v
		}
	}
	require.Equal(t, []int{0, 1, 4, 9, 16, 25}, out)
}
