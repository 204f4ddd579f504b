package bezier

// QuadBez is a quadratic Bézier segment.
type QuadBez[S Scalar, P Point[S, P]] struct {
	P0 P
	P1 P
	P2 P
}

// ValueAt evaluates the quadratic in the Bernstein basis. t is not clamped.
func (q QuadBez[S, P]) ValueAt(t S) P {
	mt := 1 - t
	a := q.P0.Scale(mt * mt)
	b := q.P1.Scale(2 * mt * t)
	c := q.P2.Scale(t * t)
	return a.Add(b).Add(c)
}

// TangentAt evaluates the first derivative of the quadratic.
func (q QuadBez[S, P]) TangentAt(t S) P {
	t2 := t + t
	d0 := q.P1.Sub(q.P0).Scale(2 - t2)
	d1 := q.P2.Sub(q.P1).Scale(t2)
	return d0.Add(d1)
}

func (q QuadBez[S, P]) StartPoint() P {
	return q.P0
}

func (q QuadBez[S, P]) EndPoint() P {
	return q.P2
}

// LengthBounds returns the distance between the end points and the length of
// the control polygon, which bound the arc length from below and above.
func (q QuadBez[S, P]) LengthBounds() (lo, hi S) {
	lo = q.P0.Distance(q.P2)
	hi = q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	return lo, hi
}

// EstimateLength estimates the arc length by recursive subdivision, until the
// relative gap between the bounds returned by [QuadBez.LengthBounds] is
// smaller than precision.
func (q QuadBez[S, P]) EstimateLength(precision S) S {
	return estimateLength(q, precision, 0)
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez[S, P]) Subdivide() (QuadBez[S, P], QuadBez[S, P]) {
	m01 := midpoint[S](q.P0, q.P1)
	m12 := midpoint[S](q.P1, q.P2)
	pm := midpoint[S](m01, m12)
	return QuadBez[S, P]{q.P0, m01, pm},
		QuadBez[S, P]{pm, m12, q.P2}
}

func (q QuadBez[S, P]) Bezier() Bezier[S, P] {
	return Bezier[S, P]{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// midpoint returns the point halfway between a and b.
func midpoint[S Scalar, P Point[S, P]](a, b P) P {
	return a.Add(b).Scale(0.5)
}
