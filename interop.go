package bezier

import (
	"fmt"
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// FromSegment converts a path segment from honnef.co/go/curve.
func FromSegment(seg curve.PathSegment) Bezier[float64, Vec2] {
	switch seg.Kind {
	case curve.LineKind:
		return Line[float64, Vec2]{Vec2(seg.P0), Vec2(seg.P1)}.Bezier()
	case curve.QuadKind:
		return QuadBez[float64, Vec2]{Vec2(seg.P0), Vec2(seg.P1), Vec2(seg.P2)}.Bezier()
	case curve.CubicKind:
		return CubicBez[float64, Vec2]{Vec2(seg.P0), Vec2(seg.P1), Vec2(seg.P2), Vec2(seg.P3)}.Bezier()
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// FromElements builds a composed curve from a sequence of path elements.
//
// A composed curve is a single continuous curve. Subsequent subpaths are
// connected to the end of the previous one with a line.
func FromElements(seq iter.Seq[curve.PathElement]) *ComposedCurve[float64, Vec2] {
	var cc *ComposedCurve[float64, Vec2]
	var subpathStart Vec2
	begin := func(pt curve.Point) {
		if cc == nil {
			cc = NewComposedCurve[float64](Vec2(pt))
			subpathStart = Vec2(pt)
		}
	}
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			if cc == nil {
				begin(el.P0)
			} else {
				cc.LineTo(Vec2(el.P0))
				subpathStart = Vec2(el.P0)
			}
		case curve.LineToKind:
			begin(el.P0)
			cc.LineTo(Vec2(el.P0))
		case curve.QuadToKind:
			begin(el.P1)
			cc.QuadTo(Vec2(el.P0), Vec2(el.P1))
		case curve.CubicToKind:
			begin(el.P2)
			cc.CubicTo(Vec2(el.P0), Vec2(el.P1), Vec2(el.P2))
		case curve.ClosePathKind:
			if cc == nil {
				panic("first path element mustn't be ClosePath")
			}
			cc.LineTo(subpathStart)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	if cc == nil {
		return NewComposedCurve[float64](Vec2{})
	}
	return cc
}

// FromBezPath builds a composed curve from a Bézier path. See [FromElements].
func FromBezPath(p curve.BezPath) *ComposedCurve[float64, Vec2] {
	return FromElements(slices.Values(p))
}
