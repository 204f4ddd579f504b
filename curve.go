package bezier

import (
	"golang.org/x/exp/constraints"
)

// DefaultPrecision is a default value for [Curve.EstimateLength]. It asks for
// the lower and upper length bounds to be within 0.1% of each other.
const DefaultPrecision = 1e-3

// Scalar is the type of curve parameters, lengths, and scale factors.
type Scalar interface {
	constraints.Float
}

// Point describes values that can be interpolated by curves.
//
// P is usually the type implementing the interface, e.g.
// Point[float64, Vec2] is implemented by [Vec2].
type Point[S Scalar, P any] interface {
	comparable

	// Add returns the component-wise sum of the receiver and o.
	Add(o P) P
	// Sub returns the component-wise difference of the receiver and o.
	Sub(o P) P
	// Scale multiplies every component by s.
	Scale(s S) P
	// Distance returns the distance between the receiver and o.
	Distance(o P) S
}

// Curve describes a curve parametrized by a scalar.
type Curve[S Scalar, P any] interface {
	// ValueAt evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	ValueAt(t S) P
	// TangentAt evaluates the derivative of the curve at parameter t.
	// The result is not normalized.
	TangentAt(t S) P
	StartPoint() P
	EndPoint() P

	// EstimateLength returns an estimate of the curve's arc length.
	//
	// The precision is the maximum relative gap between the lower and upper
	// bound of the estimate. A precision of +Inf estimates in a single step, a
	// precision of 0.1 asks for the bounds to differ by less than 10%.
	EstimateLength(precision S) S
}

var _ Curve[float64, Float64] = Dot[float64, Float64]{}
var _ Curve[float64, Float64] = Line[float64, Float64]{}
var _ Curve[float64, Float64] = QuadBez[float64, Float64]{}
var _ Curve[float64, Float64] = CubicBez[float64, Float64]{}
var _ Curve[float64, Float64] = Bezier[float64, Float64]{}
var _ Curve[float64, Vec2] = &ComposedCurve[float64, Vec2]{}
var _ Curve[float32, F32Vec2] = &LinearSpeed[float32, F32Vec2]{}

// maxLengthDepth limits the number of bisections done by [Curve.EstimateLength].
const maxLengthDepth = 20

// lengthBounded describes Béziers that can bound their own length and split
// themselves in half.
type lengthBounded[S Scalar, T any] interface {
	LengthBounds() (lo, hi S)
	Subdivide() (T, T)
}

// estimateLength refines the length bounds of c by recursive bisection until
// their relative gap is smaller than precision.
func estimateLength[S Scalar, T lengthBounded[S, T]](c T, precision S, depth int) S {
	lo, hi := c.LengthBounds()
	if hi == 0 {
		return 0
	}
	if (hi-lo)/hi < precision || depth >= maxLengthDepth {
		return (lo + hi) * 0.5
	}
	c0, c1 := c.Subdivide()
	return estimateLength(c0, precision, depth+1) + estimateLength(c1, precision, depth+1)
}

func clamp01[S Scalar](t S) S {
	return min(max(t, 0), 1)
}
