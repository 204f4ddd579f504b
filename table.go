package bezier

import (
	"math"
)

// lookupTable is a piecewise linear function on [0, 1], sampled at n uniformly
// spaced positions. Sample i is at position i/(n-1); positions aren't stored.
type lookupTable[S Scalar] struct {
	data []S
}

// newLookupTable returns a table of n zero samples. n must be at least 2.
func newLookupTable[S Scalar](n int) lookupTable[S] {
	return lookupTable[S]{data: make([]S, n)}
}

func (tb lookupTable[S]) lastIndex() S {
	return S(len(tb.data) - 1)
}

func (tb lookupTable[S]) toIndex(pos S) S {
	return pos * tb.lastIndex()
}

// line writes the linear function through (i1, v1) and (i2, v2) into all
// samples from position i1 up to the end of the table.
//
// Samples past i2 are extrapolated. Lines must be inserted in increasing
// order of position so that each line overwrites the extrapolated tail of its
// predecessor. Continuing to the end also ensures that the last sample gets
// written when i2 is 1 but its index rounds down.
func (tb lookupTable[S]) line(i1, v1, i2, v2 S) {
	x1 := tb.toIndex(i1)
	x2 := tb.toIndex(i2)
	if x1 == x2 {
		return
	}
	idx := 1 / (x2 - x1)

	for i := max(int(math.Ceil(float64(x1))), 0); i < len(tb.data); i++ {
		f := (S(i) - x1) * idx
		tb.data[i] = v1*(1-f) + v2*f
	}
}

// valueAt linearly interpolates the samples around pos. Positions outside of
// [0, 1] are clamped.
func (tb lookupTable[S]) valueAt(pos S) S {
	return tb.valueAtIndex(tb.toIndex(pos))
}

// tangentAt returns the derivative of the table at pos, using central
// differences one sample to either side, or one-sided differences at the ends
// of the table.
func (tb lookupTable[S]) tangentAt(pos S) S {
	last := tb.lastIndex()
	x := min(max(tb.toIndex(pos), 0), last)
	x1 := max(x-1, 0)
	x2 := min(x+1, last)
	return (tb.valueAtIndex(x2) - tb.valueAtIndex(x1)) / ((x2 - x1) / last)
}

func (tb lookupTable[S]) valueAtIndex(x S) S {
	if math.IsNaN(float64(x)) {
		return x
	}
	x = min(max(x, 0), tb.lastIndex())
	fl := math.Floor(float64(x))
	f := x - S(fl)
	i1 := int(fl)
	i2 := int(math.Ceil(float64(x)))
	return tb.data[i1]*(1-f) + tb.data[i2]*f
}
