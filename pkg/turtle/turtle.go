package turtle

import (
	"time"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/params"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// DefaultMargin is the gap between the bottom of the canvas and the start of the trunk.
const DefaultMargin = 60.0

// A Segment is one straight stroke.
type Segment struct {
	From, To geometry.XY
	Width    float64
	Color    params.Color
}

// A Surface is whatever the Turtle's strokes end up on.
//
// Coordinates are centered on the canvas with y pointing up.
type Surface interface {
	Clear(background params.Color)
	Stroke(s Segment)
	Present()
}

// Turtle keeps pen state and turns pen movements into Segments on a Surface.
type Turtle struct {
	surface Surface
	origin  geometry.XY

	position geometry.XY
	heading  float64
	width    float64
	color    params.Color

	sleep func(time.Duration)
}

var _ tree.Renderer = &Turtle{}

// New returns a Turtle drawing on s whose trunks start at origin.
func New(s Surface, origin geometry.XY) *Turtle {
	return &Turtle{
		surface:  s,
		origin:   origin,
		position: origin,
		width:    1.0,
		sleep:    time.Sleep,
	}
}

// BottomCenter is the trunk origin for a canvas height units tall.
func BottomCenter(height float64) geometry.XY {
	return geometry.XY{X: 0.0, Y: -height/2.0 + DefaultMargin}
}

func (t *Turtle) Origin() geometry.XY {
	return t.origin
}

func (t *Turtle) SetBackground(c params.Color) {
	t.surface.Clear(c)
}

func (t *Turtle) SetPenColor(c params.Color) {
	t.color = c
}

func (t *Turtle) SetPenWidth(width float64) {
	t.width = width
}

func (t *Turtle) MoveTo(position geometry.XY) {
	t.position = position
}

func (t *Turtle) SetHeading(degrees float64) {
	t.heading = geometry.NormalizeHeading(degrees)
}

func (t *Turtle) Left(degrees float64) {
	t.SetHeading(t.heading + degrees)
}

func (t *Turtle) Right(degrees float64) {
	t.SetHeading(t.heading - degrees)
}

func (t *Turtle) Forward(length float64) (geometry.XY, float64) {
	to := geometry.Step(t.position, t.heading, length)

	t.surface.Stroke(Segment{
		From:  t.position,
		To:    to,
		Width: t.width,
		Color: t.color,
	})

	t.position = to
	return t.position, t.heading
}

func (t *Turtle) PresentFrame() {
	t.surface.Present()
}

func (t *Turtle) Pace(d time.Duration) {
	if d > 0 {
		t.sleep(d)
	}
}

// Position is where the pen currently rests.
func (t *Turtle) Position() geometry.XY {
	return t.position
}

// Heading is the pen's current heading in [0, 360).
func (t *Turtle) Heading() float64 {
	return t.heading
}
