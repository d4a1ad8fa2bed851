package internal

import (
	"runtime"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// ComputeNofBatches determines into how many batches a divisible value of the
// given size is divided. If n is 0, a default is used that takes
// runtime.GOMAXPROCS(0) into account. The result never exceeds size, and is 1
// for an empty value.
func ComputeNofBatches(size, n int) (batches int) {
	switch {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(errors.AssertionFailedf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(errors.AssertionFailedf("invalid length: %v", size))
	}
	return
}

// CheckIndex panics if index is not a valid split offset for a value of the
// given length, that is, unless 0 <= index <= length.
func CheckIndex(index, length int) {
	if index < 0 || index > length {
		panic(errors.AssertionFailedf("divide at %d out of range [0, %d]", index, length))
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
//
// Errors keep their cause chain, so assertion failures remain detectable with
// errors.HasAssertionFailure after being rethrown.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			r := errors.Wrapf(err, "%s\nrethrown at", debug.Stack())
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return errors.Newf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}

type lengther interface {
	BaseLength() int
}

type fuser[M any] interface {
	Fuse(other M) M
}

// Drain invokes f on d until f reports no remainder, fusing the partial
// outputs in order. Each remainder must be strictly shorter than the value it
// was produced from.
func Drain[D lengther, M fuser[M]](d D, f func(D, int) (M, D, bool)) M {
	length := d.BaseLength()
	out, rest, more := f(d, length)
	for more {
		restLength := rest.BaseLength()
		if restLength >= length {
			panic(errors.AssertionFailedf("work function made no progress: %d of %d units left", restLength, length))
		}
		length = restLength
		var next M
		next, rest, more = f(rest, length)
		out = out.Fuse(next)
	}
	return out
}

type adaptiveWork[M any] interface {
	Work(limit int)
	Output() M
	RemainingLength() int
}

// Complete invokes w.Work until no units are left, and returns the output of
// w. Each invocation must process at least one unit.
func Complete[W adaptiveWork[M], M any](w W) M {
	for length := w.RemainingLength(); length > 0; {
		w.Work(length)
		rest := w.RemainingLength()
		if rest >= length {
			panic(errors.AssertionFailedf("adaptive work made no progress: %d of %d units left", rest, length))
		}
		length = rest
	}
	return w.Output()
}
