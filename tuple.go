package adapt

import "github.com/exascience/adapt/internal"

// A Pair drives two divisible values in lock-step. Its length is the length
// of the shorter component, so offsets beyond the shorter component must not
// be requested.
//
// Divide splits each component independently at its own midpoint. Use PairAt
// when the components must stay aligned at a common offset.
type Pair[A Divisible[A], B Divisible[B]] struct {
	First  A
	Second B
}

// Zip2 returns the pair of a and b.
func Zip2[A Divisible[A], B Divisible[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

// BaseLength implements the method of the Divisible interface.
func (p Pair[A, B]) BaseLength() int {
	return min(p.First.BaseLength(), p.Second.BaseLength())
}

// Divide implements the method of the Divisible interface.
func (p Pair[A, B]) Divide() (Pair[A, B], Pair[A, B]) {
	leftA, rightA := p.First.Divide()
	leftB, rightB := p.Second.Divide()
	return Pair[A, B]{leftA, leftB}, Pair[A, B]{rightA, rightB}
}

// A Triple drives three divisible values in lock-step, like Pair.
type Triple[A Divisible[A], B Divisible[B], C Divisible[C]] struct {
	First  A
	Second B
	Third  C
}

// Zip3 returns the triple of a, b, and c.
func Zip3[A Divisible[A], B Divisible[B], C Divisible[C]](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a, b, c}
}

// BaseLength implements the method of the Divisible interface.
func (t Triple[A, B, C]) BaseLength() int {
	return min(t.First.BaseLength(), t.Second.BaseLength(), t.Third.BaseLength())
}

// Divide implements the method of the Divisible interface.
func (t Triple[A, B, C]) Divide() (Triple[A, B, C], Triple[A, B, C]) {
	leftA, rightA := t.First.Divide()
	leftB, rightB := t.Second.Divide()
	leftC, rightC := t.Third.Divide()
	return Triple[A, B, C]{leftA, leftB, leftC}, Triple[A, B, C]{rightA, rightB, rightC}
}

// A PairAt drives two values that can be divided at an offset in lock-step.
// Both components are always divided at the same offset, so element i of
// First stays aligned with element i of Second.
type PairAt[A DivisibleAt[A], B DivisibleAt[B]] struct {
	First  A
	Second B
}

// ZipAt2 returns the aligned pair of a and b.
func ZipAt2[A DivisibleAt[A], B DivisibleAt[B]](a A, b B) PairAt[A, B] {
	return PairAt[A, B]{a, b}
}

// BaseLength implements the method of the Divisible interface.
func (p PairAt[A, B]) BaseLength() int {
	return min(p.First.BaseLength(), p.Second.BaseLength())
}

// Divide implements the method of the Divisible interface.
func (p PairAt[A, B]) Divide() (PairAt[A, B], PairAt[A, B]) {
	return p.DivideAt(p.BaseLength() / 2)
}

// DivideAt implements the method of the DivisibleAt interface. It panics
// unless 0 <= index <= p.BaseLength().
func (p PairAt[A, B]) DivideAt(index int) (PairAt[A, B], PairAt[A, B]) {
	internal.CheckIndex(index, p.BaseLength())
	leftA, rightA := p.First.DivideAt(index)
	leftB, rightB := p.Second.DivideAt(index)
	return PairAt[A, B]{leftA, leftB}, PairAt[A, B]{rightA, rightB}
}

// A TripleAt drives three values that can be divided at an offset in
// lock-step, like PairAt.
type TripleAt[A DivisibleAt[A], B DivisibleAt[B], C DivisibleAt[C]] struct {
	First  A
	Second B
	Third  C
}

// ZipAt3 returns the aligned triple of a, b, and c.
func ZipAt3[A DivisibleAt[A], B DivisibleAt[B], C DivisibleAt[C]](a A, b B, c C) TripleAt[A, B, C] {
	return TripleAt[A, B, C]{a, b, c}
}

// BaseLength implements the method of the Divisible interface.
func (t TripleAt[A, B, C]) BaseLength() int {
	return min(t.First.BaseLength(), t.Second.BaseLength(), t.Third.BaseLength())
}

// Divide implements the method of the Divisible interface.
func (t TripleAt[A, B, C]) Divide() (TripleAt[A, B, C], TripleAt[A, B, C]) {
	return t.DivideAt(t.BaseLength() / 2)
}

// DivideAt implements the method of the DivisibleAt interface. It panics
// unless 0 <= index <= t.BaseLength().
func (t TripleAt[A, B, C]) DivideAt(index int) (TripleAt[A, B, C], TripleAt[A, B, C]) {
	internal.CheckIndex(index, t.BaseLength())
	leftA, rightA := t.First.DivideAt(index)
	leftB, rightB := t.Second.DivideAt(index)
	leftC, rightC := t.Third.DivideAt(index)
	return TripleAt[A, B, C]{leftA, leftB, leftC}, TripleAt[A, B, C]{rightA, rightB, rightC}
}
