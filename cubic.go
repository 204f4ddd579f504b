package bezier

// CubicBez is a cubic Bézier segment.
type CubicBez[S Scalar, P Point[S, P]] struct {
	P0 P
	P1 P
	P2 P
	P3 P
}

// ValueAt evaluates the cubic in the Bernstein basis. t is not clamped.
func (c CubicBez[S, P]) ValueAt(t S) P {
	mt := 1 - t
	a := c.P0.Scale(mt * mt * mt)
	b := c.P1.Scale(3 * mt * mt * t)
	d := c.P2.Scale(3 * mt * t * t)
	e := c.P3.Scale(t * t * t)
	return a.Add(b).Add(d.Add(e))
}

// TangentAt evaluates the first derivative of the cubic.
func (c CubicBez[S, P]) TangentAt(t S) P {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0).Scale(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Scale(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Scale(3 * t * t)
	return d0.Add(d1).Add(d2)
}

func (c CubicBez[S, P]) StartPoint() P {
	return c.P0
}

func (c CubicBez[S, P]) EndPoint() P {
	return c.P3
}

// LengthBounds returns the distance between the end points and the length of
// the control polygon, which bound the arc length from below and above.
func (c CubicBez[S, P]) LengthBounds() (lo, hi S) {
	lo = c.P0.Distance(c.P3)
	hi = c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	return lo, hi
}

// EstimateLength estimates the arc length by recursive subdivision, until the
// relative gap between the bounds returned by [CubicBez.LengthBounds] is
// smaller than precision.
func (c CubicBez[S, P]) EstimateLength(precision S) S {
	return estimateLength(c, precision, 0)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez[S, P]) Subdivide() (CubicBez[S, P], CubicBez[S, P]) {
	m01 := midpoint[S](c.P0, c.P1)
	m12 := midpoint[S](c.P1, c.P2)
	m23 := midpoint[S](c.P2, c.P3)
	m012 := midpoint[S](m01, m12)
	m123 := midpoint[S](m12, m23)
	pm := midpoint[S](m012, m123)
	return CubicBez[S, P]{c.P0, m01, m012, pm},
		CubicBez[S, P]{pm, m123, m23, c.P3}
}

func (c CubicBez[S, P]) Bezier() Bezier[S, P] {
	return Bezier[S, P]{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
