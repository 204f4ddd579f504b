package bezier

import (
	"math"
	"strconv"
)

// Float64 is a one-dimensional point.
type Float64 float64

func (f Float64) Add(o Float64) Float64 {
	return f + o
}

func (f Float64) Sub(o Float64) Float64 {
	return f - o
}

func (f Float64) Scale(s float64) Float64 {
	return f * Float64(s)
}

// Distance returns |f-o|.
func (f Float64) Distance(o Float64) float64 {
	return math.Abs(float64(f - o))
}

func (f Float64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Float32 is a one-dimensional point with single precision.
type Float32 float32

func (f Float32) Add(o Float32) Float32 {
	return f + o
}

func (f Float32) Sub(o Float32) Float32 {
	return f - o
}

func (f Float32) Scale(s float32) Float32 {
	return f * Float32(s)
}

// Distance returns |f-o|.
func (f Float32) Distance(o Float32) float32 {
	return float32(math.Abs(float64(f - o)))
}

func (f Float32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
