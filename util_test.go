package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear[S Scalar, P Point[S, P]](t *testing.T, got P, want P, epsilon S) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

type (
	dot1   = Dot[float64, Float64]
	line1  = Line[float64, Float64]
	quad1  = QuadBez[float64, Float64]
	cubic1 = CubicBez[float64, Float64]
	line2  = Line[float64, Vec2]
	quad2  = QuadBez[float64, Vec2]
	cubic2 = CubicBez[float64, Vec2]
)
