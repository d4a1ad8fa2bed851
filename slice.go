package adapt

import (
	"iter"
	"slices"

	"github.com/exascience/adapt/internal"
)

// A Slice is a read-only divisible view on a slice.
//
// The zero Slice is empty and ready to use.
type Slice[T any] struct {
	s []T
}

// SliceOf returns a read-only view on s. The caller must not modify s while
// the view is in use.
func SliceOf[T any](s []T) Slice[T] {
	return Slice[T]{s[:len(s):len(s)]}
}

// BaseLength implements the method of the Divisible interface.
func (s Slice[T]) BaseLength() int {
	return len(s.s)
}

// Divide implements the method of the Divisible interface.
func (s Slice[T]) Divide() (Slice[T], Slice[T]) {
	return s.DivideAt(len(s.s) / 2)
}

// DivideAt implements the method of the DivisibleAt interface.
func (s Slice[T]) DivideAt(index int) (Slice[T], Slice[T]) {
	n := len(s.s)
	internal.CheckIndex(index, n)
	return Slice[T]{s.s[:index:index]}, Slice[T]{s.s[index:n:n]}
}

// At returns the element at index i.
func (s Slice[T]) At(i int) T {
	return s.s[i]
}

// All returns the index-value pairs of the view in order.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return slices.All(s.s)
}

// Clone returns a copy of the elements of the view.
func (s Slice[T]) Clone() []T {
	return slices.Clone(s.s)
}

// A MutSlice is a divisible slice with mutable elements.
//
// The two halves of a split are capacity-limited to their own elements, so
// appending to one half never writes into the other.
type MutSlice[T any] []T

// BaseLength implements the method of the Divisible interface.
func (s MutSlice[T]) BaseLength() int {
	return len(s)
}

// Divide implements the method of the Divisible interface.
func (s MutSlice[T]) Divide() (MutSlice[T], MutSlice[T]) {
	return s.DivideAt(len(s) / 2)
}

// DivideAt implements the method of the DivisibleAt interface.
func (s MutSlice[T]) DivideAt(index int) (MutSlice[T], MutSlice[T]) {
	n := len(s)
	internal.CheckIndex(index, n)
	return s[:index:index], s[index:n:n]
}
