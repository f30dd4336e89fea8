package params

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// Color is an RGB triple with every channel in [0, 1].
type Color [3]float64

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA64{
		R: channel16(c[0]),
		G: channel16(c[1]),
		B: channel16(c[2]),
		A: 0xffff,
	}.RGBA()
}

// Clamped returns c with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

// Rounded returns c with every channel rounded to two decimal digits.
func (c Color) Rounded() Color {
	return Color{round2(c[0]), round2(c[1]), round2(c[2])}
}

func (c Color) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c[0], c[1], c[2])
}

var _ color.Color = Color{}

// Params is the complete numeric description of one tree.
//
// A Params is built once, by Defaults, Random, or FromRecord, and is only read afterwards.
type Params struct {
	// LeftAngle is how far, in degrees, each left branch turns counter-clockwise from its parent.
	LeftAngle float64
	// RightAngle is how far, in degrees, each right branch turns clockwise from its parent.
	RightAngle float64

	// LengthMultiplier is the ratio between the length of a generation's branches and the previous one's.
	// Values of 1.0 or more grow the tree instead of shrinking it.
	LengthMultiplier float64
	// StartingLength is the length of the trunk.
	StartingLength float64
	// StartingAngle is the trunk's offset in degrees from straight up. Positive leans left.
	StartingAngle float64

	// StartingWidth and EndingWidth are the stroke widths of the trunk and of the final generation.
	StartingWidth, EndingWidth float64

	// Generations is the number of branch generations drawn after the trunk.
	// Zero draws only the trunk.
	Generations int

	BackgroundColor Color
	// StartingColor and EndingColor are the ends of the tree's gradient.
	StartingColor, EndingColor Color

	// Animate is whether the tree is presented generation by generation. It is not persisted.
	Animate bool
}

// Defaults returns the hand-tuned tree drawn when no other parameters are given.
func Defaults() Params {
	return Params{
		LeftAngle:        10,
		RightAngle:       60,
		LengthMultiplier: 0.7,
		StartingLength:   180,
		StartingAngle:    10,
		StartingWidth:    15,
		EndingWidth:      1,
		Generations:      10,
		BackgroundColor:  Color{1, 1, 0.9},
		StartingColor:    Color{0.25, 0.15, 0.0},
		EndingColor:      Color{0.0, 0.8, 0.0},
		Animate:          true,
	}
}

// Ranges Random draws from. Integer ranges are inclusive.
const (
	RandomMaxAngle = 60.0

	RandomMinMultiplier   = 0.25
	RandomMultiplierRange = 1.0

	RandomMinLength = 100
	RandomMaxLength = 200

	RandomMinStartingAngle = -30
	RandomMaxStartingAngle = 30

	RandomMinWidth   = 0.1
	RandomWidthRange = 15.0

	RandomMinGenerations = 5
	RandomMaxGenerations = 10
)

// Random returns Defaults with the shape of the tree redrawn from r.
// Widths other than the trunk's, colors, and Animate keep their default values.
func Random(r *rand.Rand) Params {
	p := Defaults()

	p.LeftAngle = r.Float64() * RandomMaxAngle
	p.RightAngle = r.Float64() * RandomMaxAngle
	p.LengthMultiplier = RandomMinMultiplier + r.Float64()*RandomMultiplierRange
	p.StartingLength = float64(randInt(r, RandomMinLength, RandomMaxLength))
	p.StartingAngle = float64(randInt(r, RandomMinStartingAngle, RandomMaxStartingAngle))
	p.StartingWidth = RandomMinWidth + r.Float64()*RandomWidthRange
	p.Generations = randInt(r, RandomMinGenerations, RandomMaxGenerations)

	return p
}

// Validate reports whether p can be drawn.
func (p Params) Validate() error {
	if p.Generations < 0 {
		return fmt.Errorf("%w: %s is %d, must not be negative", ErrInvalid, KeyGenerations, p.Generations)
	}
	if !(p.LengthMultiplier > 0) || math.IsInf(p.LengthMultiplier, 0) {
		return fmt.Errorf("%w: %s is %v, must be positive", ErrInvalid, KeyLengthMultiplier, p.LengthMultiplier)
	}

	colors := []struct {
		key string
		c   Color
	}{
		{KeyBackgroundColor, p.BackgroundColor},
		{KeyStartingColor, p.StartingColor},
		{KeyEndingColor, p.EndingColor},
	}
	for _, nc := range colors {
		for _, v := range nc.c {
			if !(v >= 0 && v <= 1) {
				return fmt.Errorf("%w: %s channel %v outside [0, 1]", ErrInvalid, nc.key, v)
			}
		}
	}

	return nil
}

// randInt returns an integer in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func channel16(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * math.MaxUint16))
}
