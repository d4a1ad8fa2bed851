package adapt

import "iter"

// Divisible is implemented by values that represent a contiguous extent of
// work that can be split in two.
//
// BaseLength reports the size of the extent without modifying it. A length of
// 0 means that the extent is exhausted.
//
// Divide consumes the receiver and returns two independently owned halves
// whose lengths sum to the original length. Values with an intrinsic order
// split at BaseLength()/2, so that the left half receives the smaller share
// when the length is odd.
//
// The halves must not share mutable state, so that they can be processed by
// different goroutines.
type Divisible[D any] interface {
	BaseLength() int
	Divide() (D, D)
}

// DivisibleAt is implemented by divisible values that can additionally be
// split at an arbitrary offset.
//
// DivideAt consumes the receiver and returns a left half of length index and a
// right half of length BaseLength()-index. It panics unless
// 0 <= index <= BaseLength(). Divide has the same effect as
// DivideAt(BaseLength()/2).
type DivisibleAt[D any] interface {
	Divisible[D]
	DivideAt(index int) (D, D)
}

// IsEmpty reports whether d.BaseLength() == 0.
func IsEmpty[D Divisible[D]](d D) bool {
	return d.BaseLength() == 0
}

// CutLeftAt removes the first index units from *d and returns them. Afterwards
// *d holds the remaining BaseLength()-index units.
//
// Both halves are computed before *d is replaced, which happens in a single
// assignment, so *d always holds either the original value or the right
// half. CutLeftAt must not be called concurrently on the same variable.
//
// CutLeftAt panics unless 0 <= index <= d.BaseLength().
func CutLeftAt[D DivisibleAt[D]](d *D, index int) D {
	left, right := (*d).DivideAt(index)
	*d = right
	return left
}

// Chunks returns an iterator that cuts consecutive prefixes off d, one for
// each size in sizes. See ChunkIterator for the termination rules.
func Chunks[D DivisibleAt[D]](d D, sizes iter.Seq[int]) *ChunkIterator[D] {
	next, stop := iter.Pull(sizes)
	return &ChunkIterator[D]{remaining: d, next: next, stop: stop}
}
