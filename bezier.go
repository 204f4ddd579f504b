package bezier

import (
	"fmt"
)

// Kind is the degree tag of a [Bezier].
type Kind int

const (
	// A single point.
	DotKind Kind = iota + 1
	// A line segment.
	LineKind
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k Kind) String() string {
	switch k {
	case DotKind:
		return "DotKind"
	case LineKind:
		return "LineKind"
	case QuadKind:
		return "QuadKind"
	case CubicKind:
		return "CubicKind"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Bezier represents a Bézier curve whose degree is only known at runtime.
// This type acts as a sort of tagged union representing all possible
// segments ([Dot], [Line], [QuadBez], and [CubicBez]).
//
// Only the first Degree()+1 points are meaningful.
type Bezier[S Scalar, P Point[S, P]] struct {
	// We don't use an interface so that Béziers stay plain values and
	// sequences of them don't allocate per segment.

	Kind Kind
	P0   P
	P1   P
	P2   P
	P3   P
}

// Degree returns the polynomial degree of the curve.
func (b Bezier[S, P]) Degree() int {
	switch b.Kind {
	case DotKind:
		return 0
	case LineKind:
		return 1
	case QuadKind:
		return 2
	case CubicKind:
		return 3
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}

// Dot returns the dot represented by this curve. This is only valid when Kind
// == DotKind.
func (b Bezier[S, P]) Dot() Dot[S, P] { return Dot[S, P]{b.P0} }

// Line returns the line represented by this curve. This is only valid when
// Kind == LineKind.
func (b Bezier[S, P]) Line() Line[S, P] { return Line[S, P]{b.P0, b.P1} }

// Quad returns the quadratic Bézier represented by this curve. This is only
// valid when Kind == QuadKind.
func (b Bezier[S, P]) Quad() QuadBez[S, P] { return QuadBez[S, P]{b.P0, b.P1, b.P2} }

// Cubic returns the cubic Bézier represented by this curve. This is only
// valid when Kind == CubicKind.
func (b Bezier[S, P]) Cubic() CubicBez[S, P] { return CubicBez[S, P]{b.P0, b.P1, b.P2, b.P3} }

func (b Bezier[S, P]) ValueAt(t S) P {
	switch b.Kind {
	case DotKind:
		return b.Dot().ValueAt(t)
	case LineKind:
		return b.Line().ValueAt(t)
	case QuadKind:
		return b.Quad().ValueAt(t)
	case CubicKind:
		return b.Cubic().ValueAt(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}

func (b Bezier[S, P]) TangentAt(t S) P {
	switch b.Kind {
	case DotKind:
		return b.Dot().TangentAt(t)
	case LineKind:
		return b.Line().TangentAt(t)
	case QuadKind:
		return b.Quad().TangentAt(t)
	case CubicKind:
		return b.Cubic().TangentAt(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}

func (b Bezier[S, P]) StartPoint() P {
	switch b.Kind {
	case DotKind:
		return b.Dot().StartPoint()
	case LineKind:
		return b.Line().StartPoint()
	case QuadKind:
		return b.Quad().StartPoint()
	case CubicKind:
		return b.Cubic().StartPoint()
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}

func (b Bezier[S, P]) EndPoint() P {
	switch b.Kind {
	case DotKind:
		return b.Dot().EndPoint()
	case LineKind:
		return b.Line().EndPoint()
	case QuadKind:
		return b.Quad().EndPoint()
	case CubicKind:
		return b.Cubic().EndPoint()
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}

func (b Bezier[S, P]) EstimateLength(precision S) S {
	switch b.Kind {
	case DotKind:
		return b.Dot().EstimateLength(precision)
	case LineKind:
		return b.Line().EstimateLength(precision)
	case QuadKind:
		return b.Quad().EstimateLength(precision)
	case CubicKind:
		return b.Cubic().EstimateLength(precision)
	default:
		panic(fmt.Sprintf("unhandled case %v", b.Kind))
	}
}
