package bezier

import (
	"fmt"
	"math"

	"honnef.co/go/color"
)

// LinearRGBA is a color in linear sRGB with straight alpha.
type LinearRGBA struct {
	R, G, B, A float64
}

// LinearRGBAOf converts c to linear sRGB.
func LinearRGBAOf(c *color.Color) LinearRGBA {
	cc := c.Convert(color.LinearSRGB)
	return LinearRGBA{
		R: float64(cc.Values[0]),
		G: float64(cc.Values[1]),
		B: float64(cc.Values[2]),
		A: float64(cc.Alpha),
	}
}

func (c LinearRGBA) Add(o LinearRGBA) LinearRGBA {
	return LinearRGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c LinearRGBA) Sub(o LinearRGBA) LinearRGBA {
	return LinearRGBA{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

func (c LinearRGBA) Scale(s float64) LinearRGBA {
	return LinearRGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Distance returns the euclidean distance between two colors, treating all
// four channels alike.
func (c LinearRGBA) Distance(o LinearRGBA) float64 {
	d := c.Sub(o)
	return math.Sqrt(d.R*d.R + d.G*d.G + d.B*d.B + d.A*d.A)
}

// Premul returns the color with its color channels multiplied by alpha.
func (c LinearRGBA) Premul() [4]float64 {
	return [4]float64{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

func (c LinearRGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
