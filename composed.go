package bezier

import (
	"iter"
	"math"
	"slices"
)

// ComposedCurve is a sequence of Béziers of possibly mixed degree, each
// starting where the previous one ended.
//
// Each segment takes up an equal share of the parameter range. For example,
// with three segments, they cover t ∈ [0, 1/3], [1/3, 2/3], and [2/3, 1].
type ComposedCurve[S Scalar, P Point[S, P]] struct {
	last   P
	curves []Bezier[S, P]
}

// NewComposedCurve returns an empty composed curve starting at start.
func NewComposedCurve[S Scalar, P Point[S, P]](start P) *ComposedCurve[S, P] {
	return &ComposedCurve[S, P]{last: start}
}

// LineTo appends a line from the current point to p. Does nothing if p is the
// current point.
func (cc *ComposedCurve[S, P]) LineTo(p P) {
	if p == cc.last {
		return
	}
	cc.curves = append(cc.curves, Line[S, P]{cc.last, p}.Bezier())
	cc.last = p
}

// QuadTo appends a quadratic Bézier from the current point. Does nothing if
// all points are the current point.
func (cc *ComposedCurve[S, P]) QuadTo(p1, p2 P) {
	if p1 == cc.last && p2 == cc.last {
		return
	}
	cc.curves = append(cc.curves, QuadBez[S, P]{cc.last, p1, p2}.Bezier())
	cc.last = p2
}

// CubicTo appends a cubic Bézier from the current point. Does nothing if all
// points are the current point.
func (cc *ComposedCurve[S, P]) CubicTo(p1, p2, p3 P) {
	if p1 == cc.last && p2 == cc.last && p3 == cc.last {
		return
	}
	cc.curves = append(cc.curves, CubicBez[S, P]{cc.last, p1, p2, p3}.Bezier())
	cc.last = p3
}

// Close appends a line back to the start of the first segment, if there is
// one.
func (cc *ComposedCurve[S, P]) Close() {
	if len(cc.curves) == 0 {
		return
	}
	cc.LineTo(cc.curves[0].StartPoint())
}

// Len returns the number of segments.
func (cc *ComposedCurve[S, P]) Len() int {
	return len(cc.curves)
}

// Segments returns an iterator over the curve's segments.
func (cc *ComposedCurve[S, P]) Segments() iter.Seq[Bezier[S, P]] {
	return slices.Values(cc.curves)
}

// segmentAt maps t to a segment index and the parameter within that segment.
// t == 1 maps to the end of the last segment.
func (cc *ComposedCurve[S, P]) segmentAt(t S) (int, S) {
	x := clamp01(t) * S(len(cc.curves))
	fl := math.Floor(float64(x))
	i := int(fl)
	if i >= len(cc.curves) {
		return len(cc.curves) - 1, 1
	}
	return i, x - S(fl)
}

// ValueAt evaluates the segment covering t. t is clamped to [0, 1].
func (cc *ComposedCurve[S, P]) ValueAt(t S) P {
	if len(cc.curves) == 0 {
		return cc.last
	}
	i, u := cc.segmentAt(t)
	return cc.curves[i].ValueAt(u)
}

// TangentAt returns the tangent of the segment covering t, scaled by the
// number of segments.
func (cc *ComposedCurve[S, P]) TangentAt(t S) P {
	if len(cc.curves) == 0 {
		return cc.last.Scale(0)
	}
	i, u := cc.segmentAt(t)
	return cc.curves[i].TangentAt(u).Scale(S(len(cc.curves)))
}

func (cc *ComposedCurve[S, P]) StartPoint() P {
	if len(cc.curves) == 0 {
		return cc.last
	}
	return cc.curves[0].StartPoint()
}

func (cc *ComposedCurve[S, P]) EndPoint() P {
	return cc.last
}

// EstimateLength returns the sum of the segments' estimated lengths.
func (cc *ComposedCurve[S, P]) EstimateLength(precision S) S {
	var sum S
	for _, c := range cc.curves {
		sum += c.EstimateLength(precision)
	}
	return sum
}
