package adapt

import "golang.org/x/exp/constraints"

// Mergeable is implemented by the outputs of work applied to divisible values.
//
// Fuse consumes the receiver, which is the output for a left half, and other,
// which is the output for the adjacent right half, and returns the output for
// the combined extent. Fusing along a divide tree must give the same result
// as processing the undivided value, so Fuse must be associative for
// operands produced by consecutive parts of one split. It only needs to be
// commutative if the combination is inherently order-insensitive.
type Mergeable[M any] interface {
	Fuse(other M) M
}

// Unit is the output of work that is performed only for its side effects.
type Unit struct{}

// Fuse implements the method of the Mergeable interface.
func (Unit) Fuse(Unit) Unit {
	return Unit{}
}

// A List collects elements in the order of the extents that produced them.
type List[T any] []T

// Fuse implements the method of the Mergeable interface by appending other to
// l. Both l and other are consumed.
func (l List[T]) Fuse(other List[T]) List[T] {
	return append(l, other...)
}

// A Sum adds up numbers. Addition is order-insensitive, so the outputs
// can be combined in any order.
type Sum[T constraints.Integer | constraints.Float] struct {
	Value T
}

// Fuse implements the method of the Mergeable interface.
func (s Sum[T]) Fuse(other Sum[T]) Sum[T] {
	return Sum[T]{s.Value + other.Value}
}

// FuseAll fuses first with each of rest, from left to right.
func FuseAll[M Mergeable[M]](first M, rest ...M) M {
	for _, m := range rest {
		first = first.Fuse(m)
	}
	return first
}
