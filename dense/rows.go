/*
Package dense provides a divisible view on the rows of a gonum dense
matrix, so that row-oriented matrix computations can be expressed with
the adapt algebra.
*/
package dense

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/adapt/internal"
)

/*
Rows is a band of consecutive rows of a dense matrix. Dividing a band
yields two disjoint bands, so the rows of both halves can be modified
in parallel.

The zero Rows is an empty band.
*/
type Rows struct {
	m      *mat.Dense
	lo, hi int
}

// RowsOf returns the band of all rows of m. It panics if m is nil.
func RowsOf(m *mat.Dense) Rows {
	if m == nil {
		panic(errors.AssertionFailedf("nil matrix"))
	}
	r, _ := m.Dims()
	return Rows{m, 0, r}
}

// BaseLength implements the method of the adapt.Divisible interface.
func (r Rows) BaseLength() int {
	return r.hi - r.lo
}

// Divide implements the method of the adapt.Divisible interface.
func (r Rows) Divide() (Rows, Rows) {
	return r.DivideAt(r.BaseLength() / 2)
}

// DivideAt implements the method of the adapt.DivisibleAt interface.
func (r Rows) DivideAt(index int) (Rows, Rows) {
	internal.CheckIndex(index, r.BaseLength())
	mid := r.lo + index
	return Rows{r.m, r.lo, mid}, Rows{r.m, mid, r.hi}
}

// Offset returns the index of the first row of the band in the
// underlying matrix.
func (r Rows) Offset() int {
	return r.lo
}

// Row returns a view on row i of the band. Modifying the returned slice
// modifies the underlying matrix.
func (r Rows) Row(i int) []float64 {
	if i < 0 || i >= r.BaseLength() {
		panic(errors.AssertionFailedf("row %d out of range [0, %d)", i, r.BaseLength()))
	}
	return r.m.RawRowView(r.lo + i)
}

// Matrix returns the band as a view on the underlying matrix, or nil
// if the band is empty.
func (r Rows) Matrix() *mat.Dense {
	if r.BaseLength() == 0 {
		return nil
	}
	_, c := r.m.Dims()
	return r.m.Slice(r.lo, r.hi, 0, c).(*mat.Dense)
}
