package bezier

import (
	"fmt"
	"testing"
)

func TestBezierDispatch(t *testing.T) {
	d := Dot[float64, Vec2]{Vec(1, 2)}
	l := line2{Vec(0, 0), Vec(3, 4)}
	q := quad2{Vec(0, 0), Vec(1, 2), Vec(3, 0)}
	c := cubic2{Vec(0, 0), Vec(0, 1), Vec(2, -1), Vec(2, 0)}

	tests := []struct {
		b      Bezier[float64, Vec2]
		direct Curve[float64, Vec2]
		degree int
	}{
		{d.Bezier(), d, 0},
		{l.Bezier(), l, 1},
		{q.Bezier(), q, 2},
		{c.Bezier(), c, 3},
	}
	for _, tt := range tests {
		t.Run(tt.b.Kind.String(), func(t *testing.T) {
			if got := tt.b.Degree(); got != tt.degree {
				t.Errorf("got degree %d, want %d", got, tt.degree)
			}
			for _, ts := range []float64{0, 0.25, 0.5, 0.9, 1} {
				diff(t, tt.direct.ValueAt(ts), tt.b.ValueAt(ts))
				diff(t, tt.direct.TangentAt(ts), tt.b.TangentAt(ts))
			}
			diff(t, tt.direct.StartPoint(), tt.b.StartPoint())
			diff(t, tt.direct.EndPoint(), tt.b.EndPoint())
			diff(t, tt.direct.EstimateLength(1e-6), tt.b.EstimateLength(1e-6))
		})
	}
}

func TestBezierAccessors(t *testing.T) {
	c := cubic2{Vec(0, 0), Vec(0, 1), Vec(2, -1), Vec(2, 0)}
	b := c.Bezier()
	diff(t, c, b.Cubic())
	diff(t, quad2{c.P0, c.P1, c.P2}, b.Quad())
	diff(t, line2{c.P0, c.P1}, b.Line())
	diff(t, Dot[float64, Vec2]{c.P0}, b.Dot())

	q := quad2{Vec(1, 1), Vec(2, 2), Vec(3, 1)}
	diff(t, Bezier[float64, Vec2]{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}, q.Bezier())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{DotKind, "DotKind"},
		{LineKind, "LineKind"},
		{QuadKind, "QuadKind"},
		{CubicKind, "CubicKind"},
		{0, "Kind(0)"},
		{42, "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
		if got := fmt.Sprint(tt.k); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestBezierInvalidKind(t *testing.T) {
	var b Bezier[float64, Float64]
	ops := map[string]func(){
		"Degree":         func() { b.Degree() },
		"ValueAt":        func() { b.ValueAt(0.5) },
		"TangentAt":      func() { b.TangentAt(0.5) },
		"StartPoint":     func() { b.StartPoint() },
		"EndPoint":       func() { b.EndPoint() },
		"EstimateLength": func() { b.EstimateLength(DefaultPrecision) },
	}
	for name, fn := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != "unhandled case Kind(0)" {
					t.Errorf("got panic %v", r)
				}
			}()
			fn()
		})
	}
}
