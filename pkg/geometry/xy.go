package geometry

import "math"

// XY is a point in the plane, y pointing up.
type XY struct {
	X, Y float64
}

func (xy XY) Add(other XY) XY {
	return XY{X: xy.X + other.X, Y: xy.Y + other.Y}
}

func (xy XY) Sub(other XY) XY {
	return XY{X: xy.X - other.X, Y: xy.Y - other.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Length is the distance of xy from the origin.
func (xy XY) Length() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Rescale scales xy, rotates it counter-clockwise by angle radians, and then translates it by offset.
func Rescale(xy XY, scale float64, angle float64, offset XY) XY {
	x := xy.X * scale
	y := xy.Y * scale

	x2 := x*math.Cos(angle) - y*math.Sin(angle) + offset.X
	y2 := x*math.Sin(angle) + y*math.Cos(angle) + offset.Y

	return XY{X: x2, Y: y2}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// NormalizeHeading maps a heading in degrees into [0, 360).
func NormalizeHeading(degrees float64) float64 {
	h := math.Mod(degrees, 360.0)
	if h < 0 {
		h += 360.0
	}
	// math.Mod of a tiny negative number can round back up to 360.
	if h >= 360.0 {
		h = 0.0
	}
	return h
}

// Step returns the point reached by travelling length units from xy along heading.
// Headings are measured in degrees counter-clockwise from the positive x axis.
func Step(xy XY, heading float64, length float64) XY {
	return Rescale(XY{X: length, Y: 0.0}, 1.0, Radians(heading), xy)
}
