package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleQuadBez() {
	q := bezier.QuadBez[float64, bezier.Float64]{P0: 1, P1: 3, P2: 2}
	fmt.Println(q.ValueAt(0.5))
	fmt.Println(q.TangentAt(0))
	fmt.Printf("%.4f\n", q.EstimateLength(1e-6))
	// Output:
	// 2.25
	// 4
	// 1.6667
}

func ExampleLinearSpeed() {
	c := bezier.CubicBez[float64, bezier.Vec2]{
		P0: bezier.Vec(0, 0),
		P1: bezier.Vec(0, 1),
		P2: bezier.Vec(2, -1),
		P3: bezier.Vec(2, 0),
	}
	ls, err := bezier.NewLinearSpeed(c, bezier.DefaultTableSize, bezier.DefaultStepsCount)
	if err != nil {
		panic(err)
	}
	fmt.Printf("length: %.3f\n", ls.Length())
	// The curve is symmetric, so half of its length is traveled at x = 1.
	fmt.Printf("halfway: x = %.3f\n", ls.PointAt(0.5).X)
	fmt.Printf("speed: %.2f\n", ls.TangentAt(0.3).Hypot())
	// Output:
	// length: 2.502
	// halfway: x = 1.000
	// speed: 2.50
}

func ExampleComposedCurve() {
	cc := bezier.NewComposedCurve[float64](bezier.Vec(0, 0))
	cc.LineTo(bezier.Vec(2, 0))
	cc.QuadTo(bezier.Vec(3, 0), bezier.Vec(3, 1))
	cc.Close()
	for seg := range cc.Segments() {
		fmt.Println(seg.Kind, seg.StartPoint(), seg.EndPoint())
	}
	fmt.Println(cc.ValueAt(1.0 / 6))
	// Output:
	// LineKind ⟨0, 0⟩ ⟨2, 0⟩
	// QuadKind ⟨2, 0⟩ ⟨3, 1⟩
	// LineKind ⟨3, 1⟩ ⟨0, 0⟩
	// ⟨1, 0⟩
}

func ExampleSamplesInclusive() {
	l := bezier.Line[float64, bezier.Float64]{P0: 0, P1: 10}
	for p := range bezier.SamplesInclusive(l, 4) {
		fmt.Println(p)
	}
	// Output:
	// 0
	// 2.5
	// 5
	// 7.5
	// 10
}
