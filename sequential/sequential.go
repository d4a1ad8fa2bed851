// Package sequential provides a sequential implementation of the
// scheduler provided by the parallel package. This is useful for
// testing and debugging.
//
// It is not recommended to use the implementation of this package
// for any other purpose, because dividing a value only pays off when
// the parts are processed in parallel.
package sequential

import (
	"github.com/cockroachdb/errors"

	"github.com/exascience/adapt"
	"github.com/exascience/adapt/internal"
)

// Work receives an input, a batch count n, and a work function f,
// divides the input value into batches, and invokes the work function
// for each of these batches sequentially, from left to right. The
// outputs are combined by Fuse, following the shape of the divide
// tree.
//
// The batches are determined exactly as by parallel.Work, so both
// produce the same sequence of work function invocations for the same
// input.
//
// Work panics if the input policy is not adapt.Default, or if n < 0.
func Work[D adapt.Divisible[D], M adapt.Mergeable[M]](
	in adapt.Input[D],
	n int,
	f adapt.WorkFunc[D, M],
) M {
	if in.Policy != adapt.Default {
		panic(errors.AssertionFailedf("unsupported policy: %v", in.Policy))
	}
	var recur func(D, int) M
	recur = func(d D, n int) M {
		if n <= 1 || d.BaseLength() < 2 {
			return internal.Drain[D, M](d, f)
		}
		left, right := d.Divide()
		half := n / 2
		m0 := recur(left, half)
		m1 := recur(right, n-half)
		return m0.Fuse(m1)
	}
	return recur(in.Value, internal.ComputeNofBatches(in.Value.BaseLength(), n))
}

// Adaptive receives an adaptive computation w, a policy, and a batch
// count n, splits w into batches exactly as parallel.Adaptive does,
// and completes these batches sequentially, from left to right. The
// outputs are combined by Fuse, following the shape of the split tree.
//
// Adaptive panics if the policy is not adapt.Default, or if n < 0.
func Adaptive[W adapt.AdaptiveWork[W, M], M adapt.Mergeable[M]](
	w W,
	policy adapt.Policy,
	n int,
) M {
	if policy != adapt.Default {
		panic(errors.AssertionFailedf("unsupported policy: %v", policy))
	}
	var recur func(W, int) M
	recur = func(w W, n int) M {
		if n <= 1 || w.RemainingLength() < 2 {
			return internal.Complete[W, M](w)
		}
		left, right := w.Split()
		half := n / 2
		m0 := recur(left, half)
		m1 := recur(right, n-half)
		return m0.Fuse(m1)
	}
	return recur(w, internal.ComputeNofBatches(w.RemainingLength(), n))
}
