package tree

import (
	"time"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/params"
)

// Renderer is a pen the Engine draws with.
//
// Headings are in degrees, counter-clockwise from the positive x axis,
// so 90 points straight up.
type Renderer interface {
	// Origin is where the trunk starts, usually near the bottom center of the canvas.
	Origin() geometry.XY

	SetBackground(c params.Color)
	SetPenColor(c params.Color)
	SetPenWidth(width float64)

	// MoveTo repositions the pen without drawing.
	MoveTo(position geometry.XY)
	SetHeading(degrees float64)
	Left(degrees float64)
	Right(degrees float64)

	// Forward draws a line of the given length along the current heading and
	// returns where the pen ended up and its heading.
	Forward(length float64) (geometry.XY, float64)

	// PresentFrame makes everything drawn so far visible.
	PresentFrame()

	// Pace blocks for d so an observer can watch the tree grow.
	Pace(d time.Duration)
}
