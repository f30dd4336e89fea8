package tree

import (
	"math"

	"github.com/willbeason/fractal-trees/pkg/params"
)

// MinWidth is the thinnest stroke ever requested.
const MinWidth = 0.1

// Lerp linearly interpolates between a and b. It returns exactly a at t=0 and exactly b at t=1.
func Lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// LerpColor interpolates each channel independently and clamps the result to [0, 1].
func LerpColor(a, b params.Color, t float64) params.Color {
	var c params.Color
	for i := range c {
		c[i] = Lerp(a[i], b[i], t)
	}
	return c.Clamped()
}

// Progress is how far through the gradient the children drawn from generation are.
// The final generation reaches 1.
func Progress(p params.Params, generation int) float64 {
	if p.Generations <= 0 {
		return 0.0
	}
	return float64(generation+1) / float64(p.Generations)
}

// Gradient is the pen color and width for the children drawn from generation.
func Gradient(p params.Params, generation int) (params.Color, float64) {
	t := Progress(p, generation)

	c := LerpColor(p.StartingColor, p.EndingColor, t)
	width := math.Max(MinWidth, Lerp(p.StartingWidth, p.EndingWidth, t))

	return c, width
}

// SegmentLength is the length of the children drawn from generation.
func SegmentLength(p params.Params, generation int) float64 {
	return p.StartingLength * math.Pow(p.LengthMultiplier, float64(generation+1))
}
