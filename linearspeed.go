package bezier

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTableSize is a table size for [NewLinearSpeed] suitable for
	// animations.
	DefaultTableSize = 100
	// DefaultStepsCount is a steps count for [NewLinearSpeed] suitable for
	// animations.
	DefaultStepsCount = 100
)

var (
	ErrTableSize       = errors.New("table size must be at least 2")
	ErrStepsCount      = errors.New("steps count must be at least 1")
	ErrZeroLength      = errors.New("curve has zero length")
	ErrNonFiniteLength = errors.New("curve has non-finite length")
)

// LinearSpeed is a curve that has the same shape as the curve it wraps, but
// whose tangents have a constant magnitude, equal to the curve's length.
// Moving along it in equal steps of t thus covers equal distances.
//
// Only tangents are retimed. ValueAt, StartPoint and EndPoint evaluate the
// wrapped curve unchanged; use [LinearSpeed.PointAt] for positions at constant
// speed.
type LinearSpeed[S Scalar, P Point[S, P]] struct {
	curve  Curve[S, P]
	length S
	// Maps the fraction of traveled distance to the parameter of curve.
	table lookupTable[S]
}

// NewLinearSpeed returns a constant speed version of c.
//
// The curve is evaluated at stepsCount+1 uniformly spaced parameters, and the
// distances between consecutive points are used to approximate arc length.
// tableSize controls the resolution of the table that maps distance to
// parameter. Bigger values for either argument yield better precision.
//
// An error is returned if the sampled length of c is zero or not finite, as
// no parameterization by distance exists in that case.
func NewLinearSpeed[S Scalar, P Point[S, P]](c Curve[S, P], tableSize, stepsCount int) (*LinearSpeed[S, P], error) {
	if tableSize < 2 {
		return nil, fmt.Errorf("bezier: %w, got %d", ErrTableSize, tableSize)
	}
	if stepsCount < 1 {
		return nil, fmt.Errorf("bezier: %w, got %d", ErrStepsCount, stepsCount)
	}

	type sample struct {
		dist S
		t    S
	}
	samples := make([]sample, 1, stepsCount+1)
	last := c.ValueAt(0)
	var total S
	for i := 1; i <= stepsCount; i++ {
		t := S(i) / S(stepsCount)
		pt := c.ValueAt(t)
		total += last.Distance(pt)
		samples = append(samples, sample{total, t})
		last = pt
	}

	if total == 0 {
		return nil, fmt.Errorf("bezier: %w", ErrZeroLength)
	}
	if math.IsInf(float64(total), 0) || math.IsNaN(float64(total)) {
		return nil, fmt.Errorf("bezier: %w, got %v", ErrNonFiniteLength, total)
	}

	table := newLookupTable[S](tableSize)
	for i := 1; i < len(samples); i++ {
		s0, s1 := samples[i-1], samples[i]
		table.line(s0.dist/total, s0.t, s1.dist/total, s1.t)
	}

	return &LinearSpeed[S, P]{
		curve:  c,
		length: total,
		table:  table,
	}, nil
}

// Inner returns the wrapped curve.
func (ls *LinearSpeed[S, P]) Inner() Curve[S, P] {
	return ls.curve
}

// Length returns the length computed when ls was constructed.
func (ls *LinearSpeed[S, P]) Length() S {
	return ls.length
}

// ParamAt returns the parameter of the wrapped curve at which the fraction s
// of the curve's length has been traveled. s is clamped to [0, 1].
func (ls *LinearSpeed[S, P]) ParamAt(s S) S {
	return ls.table.valueAt(clamp01(s))
}

// PointAt returns the point at which the fraction s of the curve's length has
// been traveled.
func (ls *LinearSpeed[S, P]) PointAt(s S) P {
	return ls.curve.ValueAt(ls.ParamAt(s))
}

// ValueAt evaluates the wrapped curve at t.
func (ls *LinearSpeed[S, P]) ValueAt(t S) P {
	return ls.curve.ValueAt(t)
}

// TangentAt returns the derivative of the curve with respect to the fraction
// of traveled distance s. s is clamped to [0, 1].
func (ls *LinearSpeed[S, P]) TangentAt(s S) P {
	s = clamp01(s)
	t := ls.table.valueAt(s)
	return ls.curve.TangentAt(t).Scale(ls.table.tangentAt(s))
}

func (ls *LinearSpeed[S, P]) StartPoint() P {
	return ls.curve.StartPoint()
}

func (ls *LinearSpeed[S, P]) EndPoint() P {
	return ls.curve.EndPoint()
}

// EstimateLength returns the length computed when ls was constructed. The
// precision is ignored.
func (ls *LinearSpeed[S, P]) EstimateLength(precision S) S {
	return ls.length
}
