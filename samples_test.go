package bezier

import (
	"slices"
	"testing"
)

func TestSamples(t *testing.T) {
	l := line1{0, 1}
	diff(t, []Float64{0, 0.25, 0.5, 0.75}, slices.Collect(Samples(l, 4)))
	diff(t, []Float64{0, 0.25, 0.5, 0.75, 1}, slices.Collect(SamplesInclusive(l, 4)))
	diff(t, []Float64{0}, slices.Collect(Samples(l, 1)))
	diff(t, []Float64{0, 1}, slices.Collect(SamplesInclusive(l, 1)))
}

func TestSamplesEmpty(t *testing.T) {
	l := line1{2, 3}
	for _, steps := range []int{0, -1} {
		diff(t, []Float64(nil), slices.Collect(Samples(l, steps)))
		diff(t, []Float64{2}, slices.Collect(SamplesInclusive(l, steps)))
	}
}

func TestSamplesBreak(t *testing.T) {
	q := quad2{Vec(0, 0), Vec(1, 2), Vec(2, 0)}
	var got []Vec2
	for p := range SamplesInclusive(q, 10) {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	diff(t, []Vec2{q.ValueAt(0), q.ValueAt(0.1), q.ValueAt(0.2)}, got)
}

func TestSamplesLinearSpeed(t *testing.T) {
	// Sampling a constant speed curve yields positions of the wrapped curve,
	// as ValueAt isn't retimed.
	c := cubic2{Vec(0, 0), Vec(0, 1), Vec(2, -1), Vec(2, 0)}
	ls, err := NewLinearSpeed(c, DefaultTableSize, DefaultStepsCount)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, slices.Collect(SamplesInclusive(c, 8)), slices.Collect(SamplesInclusive(ls, 8)))
}
