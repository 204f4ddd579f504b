// Package bezier evaluates Bézier curves of degree 0 through 3 over arbitrary
// point types, estimates their arc length, and reparameterizes them so that
// they can be traversed at constant speed.
//
// # Points and scalars
//
// Curves are generic over a scalar type S (float32 or float64, see [Scalar])
// and a point type P satisfying [Point]. A point only has to support addition,
// subtraction, scaling by a scalar, and measuring the distance to another
// point. This makes it possible to interpolate not just 2D positions but also
// colors, 3D positions, or plain numbers.
//
// This package provides the following point types:
//   - [Float64] and [Float32], one-dimensional points
//   - [Vec2], a 2D vector compatible with honnef.co/go/curve
//   - [F32Vec2], a 2D vector compatible with golang.org/x/image/math/f32
//   - [GeomVec2], a 2D vector compatible with seehuhn.de/go/geom/vec
//   - [LinearRGBA], a color in linear sRGB, convertible from honnef.co/go/color
//
// # Curves
//
// [Curve] describes parametric curves that can be evaluated at t ∈ [0, 1].
// The following curves are included:
//   - [Dot], a curve of degree 0 that stays at a single point
//   - [Line]
//   - [QuadBez]
//   - [CubicBez]
//   - [Bezier] (as it is a wrapper for the four types above)
//   - [ComposedCurve], a sequence of Béziers of mixed degree
//   - [LinearSpeed], which wraps another curve
//
// # Arc length
//
// [Curve.EstimateLength] bounds a Bézier's length from below by the distance
// between its end points and from above by the length of its control polygon.
// The curve is subdivided until the relative gap between the two bounds is
// smaller than the requested precision. A precision of 0.1 thus asks for the
// two bounds to be within 10% of each other.
//
// # Constant speed
//
// The parameterization of a Bézier is generally not uniform: stepping t in
// equal increments doesn't move equal distances along the curve. [LinearSpeed]
// samples a curve once, builds a table that maps traveled distance to curve
// parameter, and uses it to retime tangents. This is useful for animating
// movement along a path.
package bezier
