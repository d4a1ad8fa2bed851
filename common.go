package adapt

import "fmt"

// A Policy selects the scheduling algorithm that processes an Input.
type Policy int

const (
	// Default selects the default algorithm of the scheduler the input
	// is handed to.
	Default Policy = iota
)

func (p Policy) String() string {
	switch p {
	case Default:
		return "default"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

type (
	// A WorkFunc processes at most limit units of a divisible value d.
	//
	// It returns the partial output for the processed prefix. If it stops
	// before d is exhausted, it also returns the unprocessed remainder
	// rest with more set to true, so that the scheduler can divide rest
	// further or invoke the work function on it again. The outputs of
	// successive invocations are fused in order.
	WorkFunc[D any, M any] func(d D, limit int) (out M, rest D, more bool)

	// An Input pairs a divisible value with the policy that is used to
	// process it. It is owned by the caller until it is handed to a
	// scheduler, which consumes it.
	Input[D Divisible[D]] struct {
		Value  D
		Policy Policy
	}
)

// WithPolicy wraps d into an Input for the given policy.
func WithPolicy[D Divisible[D]](d D, policy Policy) Input[D] {
	return Input[D]{Value: d, Policy: policy}
}
