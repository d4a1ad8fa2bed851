// Package adapt provides the data side of adaptive divide-and-conquer
// algorithms. Algorithms describe how their input can be divided and how
// partial results are merged, and leave the actual parallel execution to a
// scheduler.
//
// The package defines the following building blocks:
//
// Divisible and DivisibleAt describe values that report a length and can be
// split into two independently owned halves, either at the midpoint or at an
// arbitrary offset.
//
// Mergeable describes partial results that can be fused back together in the
// order of the splits that produced them.
//
// Slice, MutSlice, Range, Pair, Triple, PairAt, and TripleAt are ready-made
// divisible adapters for read-only slices, mutable slices, integer ranges, and
// lock-step compositions of several divisible values.
//
// Chunks builds a sequential iterator that repeatedly cuts prefixes of
// requested sizes off a divisible value.
//
// AdaptiveWork describes stateful computations that process their input
// piece by piece and can be split while in progress, as an alternative to a
// work function over a divisible value.
//
// WithPolicy pairs a divisible value with a scheduling Policy, which is the
// object handed to a scheduler.
//
// Adapt provides the following subpackages:
//
// adapt/parallel provides a fork/join scheduler for the Default policy.
//
// adapt/sequential provides a sequential implementation of the same
// scheduler, for testing and debugging purposes.
//
// adapt/dense provides a divisible view on the rows of a gonum matrix.
//
// Splitting is ownership transfer: the two halves of a split never share
// mutable state, so they can be handed to different goroutines without
// further synchronization. See http://supertech.csail.mit.edu/papers/steal.pdf
// for the theoretical background of the schedulers this layer is meant for.
package adapt
