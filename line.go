package bezier

// Dot is a Bézier curve of degree 0. It evaluates to the same point for any t.
type Dot[S Scalar, P Point[S, P]] struct {
	P0 P
}

func (d Dot[S, P]) ValueAt(t S) P {
	return d.P0
}

// TangentAt returns the zero vector.
func (d Dot[S, P]) TangentAt(t S) P {
	return d.P0.Scale(0)
}

func (d Dot[S, P]) StartPoint() P { return d.P0 }
func (d Dot[S, P]) EndPoint() P   { return d.P0 }

// EstimateLength returns 0.
func (d Dot[S, P]) EstimateLength(precision S) S {
	return 0
}

func (d Dot[S, P]) Bezier() Bezier[S, P] {
	return Bezier[S, P]{Kind: DotKind, P0: d.P0}
}

// Line represents a line segment. It is a Bézier curve of degree 1.
type Line[S Scalar, P Point[S, P]] struct {
	// The line's start point.
	P0 P
	// The line's end point.
	P1 P
}

// ValueAt linearly interpolates between the line's end points.
func (l Line[S, P]) ValueAt(t S) P {
	return l.P0.Add(l.P1.Sub(l.P0).Scale(t))
}

// TangentAt returns P1 - P0 for any t.
func (l Line[S, P]) TangentAt(t S) P {
	return l.P1.Sub(l.P0)
}

func (l Line[S, P]) StartPoint() P { return l.P0 }
func (l Line[S, P]) EndPoint() P   { return l.P1 }

// Length returns the length of the line.
func (l Line[S, P]) Length() S {
	return l.P0.Distance(l.P1)
}

// EstimateLength returns the exact length of the line.
func (l Line[S, P]) EstimateLength(precision S) S {
	return l.Length()
}

func (l Line[S, P]) Bezier() Bezier[S, P] {
	return Bezier[S, P]{Kind: LineKind, P0: l.P0, P1: l.P1}
}
