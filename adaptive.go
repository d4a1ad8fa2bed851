package adapt

// AdaptiveWork is a stateful computation that processes its input piece by
// piece and can be split while it is in progress.
//
// W is the type implementing the interface, usually a pointer type, and M is
// the type of its output.
type AdaptiveWork[W any, M any] interface {
	// Work processes at most limit units of the remaining input.
	Work(limit int)

	// Output returns the result of the units processed so far. It
	// consumes the computation.
	Output() M

	// RemainingLength returns the number of units not yet processed.
	RemainingLength() int

	// Split divides the remaining input into two independent
	// computations. The output accumulated so far belongs to the left
	// computation, so that fusing the left and the right outputs yields
	// the output of the undivided computation. Split consumes the
	// receiver.
	Split() (W, W)
}
