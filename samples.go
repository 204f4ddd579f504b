package bezier

import (
	"iter"
)

// Samples returns an iterator over steps points of c, evaluated at
// t = 0, 1/steps, …, (steps-1)/steps. The end point is not included; see
// [SamplesInclusive].
func Samples[S Scalar, P any](c Curve[S, P], steps int) iter.Seq[P] {
	return samples(c, steps, false)
}

// SamplesInclusive is like [Samples] but also yields the point at t = 1.
func SamplesInclusive[S Scalar, P any](c Curve[S, P], steps int) iter.Seq[P] {
	return samples(c, steps, true)
}

func samples[S Scalar, P any](c Curve[S, P], steps int, inclusive bool) iter.Seq[P] {
	return func(yield func(P) bool) {
		if steps <= 0 {
			if inclusive {
				yield(c.StartPoint())
			}
			return
		}
		n := steps
		if inclusive {
			n++
		}
		for i := range n {
			if !yield(c.ValueAt(S(i) / S(steps))) {
				return
			}
		}
	}
}
