package bezier

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// Vec2 is a 2D point with the same layout as [curve.Vec2] and [curve.Point],
// to which it can be converted directly.
type Vec2 curve.Vec2

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2Of converts a point from honnef.co/go/curve.
func Vec2Of(pt curve.Point) Vec2 {
	return Vec2(pt)
}

// Point returns v as a [curve.Point].
func (v Vec2) Point() curve.Point {
	return curve.Point(v)
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(curve.Vec2(v).Add(curve.Vec2(o)))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(curve.Vec2(v).Sub(curve.Vec2(o)))
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(curve.Vec2(v).Mul(s))
}

// Distance returns the euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return curve.Point(v).Distance(curve.Point(o))
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return curve.Vec2(v).Hypot()
}

func (v Vec2) String() string {
	return curve.Vec2(v).String()
}

// F32Vec2 is a 2D point with single precision, compatible with
// golang.org/x/image/math/f32.
type F32Vec2 f32.Vec2

func (v F32Vec2) Add(o F32Vec2) F32Vec2 {
	return F32Vec2{v[0] + o[0], v[1] + o[1]}
}

func (v F32Vec2) Sub(o F32Vec2) F32Vec2 {
	return F32Vec2{v[0] - o[0], v[1] - o[1]}
}

func (v F32Vec2) Scale(s float32) F32Vec2 {
	return F32Vec2{v[0] * s, v[1] * s}
}

// Distance returns the euclidean distance between two points.
func (v F32Vec2) Distance(o F32Vec2) float32 {
	return float32(math.Hypot(float64(v[0]-o[0]), float64(v[1]-o[1])))
}

// Hypot returns the magnitude of the vector.
func (v F32Vec2) Hypot() float32 {
	return float32(math.Hypot(float64(v[0]), float64(v[1])))
}

func (v F32Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v[0], v[1])
}

// GeomVec2 is a 2D point compatible with seehuhn.de/go/geom/vec.
type GeomVec2 vec.Vec2

func (v GeomVec2) Add(o GeomVec2) GeomVec2 {
	return GeomVec2(vec.Vec2(v).Add(vec.Vec2(o)))
}

func (v GeomVec2) Sub(o GeomVec2) GeomVec2 {
	return GeomVec2(vec.Vec2(v).Sub(vec.Vec2(o)))
}

func (v GeomVec2) Scale(s float64) GeomVec2 {
	return GeomVec2(vec.Vec2(v).Mul(s))
}

// Distance returns the euclidean distance between two points.
func (v GeomVec2) Distance(o GeomVec2) float64 {
	return vec.Vec2(v).Sub(vec.Vec2(o)).Length()
}
