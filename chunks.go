package adapt

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"
)

/*
A ChunkIterator sequentially cuts prefixes of requested sizes off a
divisible value. It is created by Chunks.

Each call to Next pulls the next requested size s from the size
sequence and returns the first s units of the remaining value, which
shrinks accordingly. The iterator is finished as soon as the remaining
value is empty or the size sequence is exhausted, whichever comes
first.

A size that is negative or exceeds the remaining length is a bug in
the caller: Next panics instead of returning a shorter chunk.

A ChunkIterator is not safe for concurrent use. Call Stop when
abandoning an iterator before it is finished, to release the size
sequence.
*/
type ChunkIterator[D DivisibleAt[D]] struct {
	remaining D
	next      func() (int, bool)
	stop      func()
	done      bool
}

// Next returns the next chunk, or false if the iterator is finished.
func (it *ChunkIterator[D]) Next() (chunk D, ok bool) {
	if it.done {
		return chunk, false
	}
	if IsEmpty(it.remaining) {
		it.Stop()
		return chunk, false
	}
	size, ok := it.next()
	if !ok {
		it.Stop()
		return chunk, false
	}
	if length := it.remaining.BaseLength(); size < 0 || size > length {
		it.Stop()
		panic(errors.AssertionFailedf("chunk size %d out of range [0, %d]", size, length))
	}
	return CutLeftAt(&it.remaining, size), true
}

// Remaining returns what is left of the divisible value.
func (it *ChunkIterator[D]) Remaining() D {
	return it.remaining
}

// Stop finishes the iterator and releases the size sequence. Stop is
// idempotent.
func (it *ChunkIterator[D]) Stop() {
	if !it.done {
		it.done = true
		it.stop()
	}
}

// All returns the remaining chunks as a sequence. Breaking out of the
// sequence stops the iterator.
func (it *ChunkIterator[D]) All() iter.Seq[D] {
	return func(yield func(D) bool) {
		defer it.Stop()
		for {
			chunk, ok := it.Next()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}

// Blocks returns a finite sequence of sizes that sums to exactly length:
// length/size times the size, followed by the rest if it is not zero. Blocks
// panics if length < 0 or size < 1.
func Blocks(length, size int) iter.Seq[int] {
	checkSizes(length, size)
	return func(yield func(int) bool) {
		for ; length >= size; length -= size {
			if !yield(size) {
				return
			}
		}
		if length > 0 {
			yield(length)
		}
	}
}

// Doubling returns a finite sequence of sizes that sums to exactly length. It
// starts at start and doubles on every step, and the last size is cut down to
// what is left. Doubling panics if length < 0 or start < 1.
func Doubling(length, start int) iter.Seq[int] {
	checkSizes(length, start)
	return func(yield func(int) bool) {
		for n := start; length > 0; {
			n = min(n, length)
			if !yield(n) {
				return
			}
			length -= n
			if n > math.MaxInt/2 {
				n = math.MaxInt
			} else {
				n *= 2
			}
		}
	}
}

func checkSizes(length, size int) {
	if length < 0 {
		panic(errors.AssertionFailedf("invalid length: %v", length))
	}
	if size < 1 {
		panic(errors.AssertionFailedf("invalid chunk size: %v", size))
	}
}
