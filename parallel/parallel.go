// Package parallel provides a fork/join scheduler for divisible values.
//
// It implements the adapt.Default policy: a divisible value is divided into
// batches by repeated midpoint splits, the batches are processed in parallel,
// and their outputs are fused in the shape of the divide tree.
package parallel

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/exascience/adapt"
	"github.com/exascience/adapt/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only
// when all thunks have terminated.
//
// If one or more thunks panic, the panics are recovered, and once all
// thunks have terminated, Do panics with the left-most recovered
// panic value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var left, right func()
	switch len(thunks) {
	case 2:
		left, right = thunks[0], thunks[1]
	default:
		half := len(thunks) / 2
		left = func() { Do(thunks[:half]...) }
		right = func() { Do(thunks[half:]...) }
	}
	var p0, p1 interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p1 = internal.WrapPanic(recover())
			wg.Done()
		}()
		right()
	}()
	func() {
		defer func() {
			p0 = internal.WrapPanic(recover())
		}()
		left()
	}()
	wg.Wait()
	if p0 != nil {
		panic(p0)
	}
	if p1 != nil {
		panic(p1)
	}
}

// Work receives an input, a batch count n, and a work function f,
// divides the input value into batches, and invokes the work function
// for each of these batches in parallel. The outputs of the work
// function invocations are then combined by Fuse, following the shape
// of the divide tree, so the left output is always the receiver.
//
// The batches are determined by halving the input value with Divide
// and n at the same time, until n reaches 1 or a batch is shorter than
// 2. If n is 0, a reasonable default is used that takes
// runtime.GOMAXPROCS(0) into account. An empty input value is passed
// to the work function once.
//
// The work function is invoked with the batch length as the limit. If
// it returns a remainder, it is invoked again on that remainder, and
// the outputs are fused in order. A remainder that is not shorter than
// the value it was produced from is a bug in the work function, and
// causes a panic.
//
// Work panics if the input policy is not adapt.Default, or if n < 0.
//
// If one or more work function invocations panic, the corresponding
// goroutines recover the panics, and Work eventually panics with the
// left-most recovered panic value.
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
		var m0, m1 M
		Do(
			func() { m0 = recur(left, half) },
			func() { m1 = recur(right, n-half) },
		)
		return m0.Fuse(m1)
	}
	return recur(in.Value, internal.ComputeNofBatches(in.Value.BaseLength(), n))
}

// Schedule processes the input with the default number of batches. It
// is equivalent to Work(in, 0, f).
func Schedule[D adapt.Divisible[D], M adapt.Mergeable[M]](
	in adapt.Input[D],
	f adapt.WorkFunc[D, M],
) M {
	return Work(in, 0, f)
}

// Adaptive receives an adaptive computation w, a policy, and a batch
// count n, splits w into batches, and completes these batches in
// parallel. The outputs of the batches are then combined by Fuse,
// following the shape of the split tree.
//
// The batches are determined by halving w with Split and n at the same
// time, until n reaches 1 or fewer than 2 units remain. If n is 0, a
// reasonable default is used that takes runtime.GOMAXPROCS(0) into
// account. A batch is completed by invoking Work with the remaining
// length as the limit until no units remain, and then invoking Output.
// A Work invocation that processes no units causes a panic.
//
// Adaptive panics if the policy is not adapt.Default, or if n < 0.
//
// If one or more batches panic, the corresponding goroutines recover
// the panics, and Adaptive eventually panics with the left-most
// recovered panic value.
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
		var m0, m1 M
		Do(
			func() { m0 = recur(left, half) },
			func() { m1 = recur(right, n-half) },
		)
		return m0.Fuse(m1)
	}
	return recur(w, internal.ComputeNofBatches(w.RemainingLength(), n))
}
