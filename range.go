package adapt

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/exascience/adapt/internal"
)

// A Range is the half-open interval of integers from Start to End, including
// Start but excluding End, with Start <= End.
type Range[T constraints.Integer] struct {
	Start, End T
}

// NewRange returns the range from start to end. It panics if end < start,
// or if the number of integers in the range does not fit in an int.
func NewRange[T constraints.Integer](start, end T) Range[T] {
	rangeLength(start, end)
	return Range[T]{start, end}
}

// BaseLength implements the method of the Divisible interface. It panics if
// End < Start, or if the length does not fit in an int.
func (r Range[T]) BaseLength() int {
	return rangeLength(r.Start, r.End)
}

// rangeLength subtracts in uint64, which is exact for every pair of integers
// with start <= end, whatever the width and signedness of T.
func rangeLength[T constraints.Integer](start, end T) int {
	if end < start {
		panic(errors.AssertionFailedf("invalid range: %v:%v", start, end))
	}
	length := uint64(end) - uint64(start)
	if length > math.MaxInt {
		panic(errors.AssertionFailedf("range %v:%v is too long: %v", start, end, length))
	}
	return int(length)
}

// Divide implements the method of the Divisible interface.
func (r Range[T]) Divide() (Range[T], Range[T]) {
	return r.DivideAt(r.BaseLength() / 2)
}

// DivideAt implements the method of the DivisibleAt interface.
func (r Range[T]) DivideAt(index int) (Range[T], Range[T]) {
	internal.CheckIndex(index, r.BaseLength())
	// T(index) may wrap for narrow types; the sum wraps back into the range.
	mid := r.Start + T(index)
	return Range[T]{r.Start, mid}, Range[T]{mid, r.End}
}

// All returns the integers of the range in increasing order.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
