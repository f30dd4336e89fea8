package turtle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/params"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want geometry.XY) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon, "%s.X", name)
	assert.InDelta(t, want.Y, got.Y, epsilon, "%s.Y", name)
}

func TestTurtle_Headings(t *testing.T) {
	tt := New(&Recorder{}, geometry.XY{})

	tt.SetHeading(80)
	tt.Left(24)
	assert.InDelta(t, 104.0, tt.Heading(), epsilon)

	tt.SetHeading(80)
	tt.Right(60)
	assert.InDelta(t, 20.0, tt.Heading(), epsilon)

	tt.Right(45)
	assert.InDelta(t, 335.0, tt.Heading(), epsilon)

	tt.Left(400)
	assert.InDelta(t, 15.0, tt.Heading(), epsilon)
}

func TestTurtle_ForwardStrokes(t *testing.T) {
	rec := &Recorder{}
	tt := New(rec, geometry.XY{X: 0, Y: -340})

	tt.MoveTo(tt.Origin())
	tt.SetPenWidth(3)
	tt.SetPenColor(params.Color{0.5, 0.25, 0})
	tt.SetHeading(90)

	end, heading := tt.Forward(100)
	assertNear(t, "end", end, geometry.XY{X: 0, Y: -240})
	assert.InDelta(t, 90.0, heading, epsilon)

	require.Len(t, rec.Segments, 1)
	s := rec.Segments[0]
	assertNear(t, "from", s.From, geometry.XY{X: 0, Y: -340})
	assertNear(t, "to", s.To, end)
	assert.Equal(t, 3.0, s.Width)
	assert.Equal(t, params.Color{0.5, 0.25, 0}, s.Color)
}

func TestTurtle_MoveToDoesNotDraw(t *testing.T) {
	rec := &Recorder{}
	tt := New(rec, geometry.XY{})

	tt.MoveTo(geometry.XY{X: 10, Y: 10})
	tt.MoveTo(geometry.XY{X: -10, Y: 4})

	assert.Empty(t, rec.Segments)
	assert.Equal(t, geometry.XY{X: -10, Y: 4}, tt.Position())
}

func TestTurtle_PresentAndBackground(t *testing.T) {
	rec := &Recorder{}
	tt := New(rec, geometry.XY{})

	tt.SetBackground(params.Color{1, 1, 0.9})
	tt.Forward(1)
	tt.PresentFrame()
	tt.Forward(1)
	tt.Forward(1)
	tt.PresentFrame()

	assert.Equal(t, params.Color{1, 1, 0.9}, rec.Background)
	assert.Equal(t, []int{1, 3}, rec.Frames)
}

func TestTurtle_Pace(t *testing.T) {
	tt := New(&Recorder{}, geometry.XY{})

	var slept []time.Duration
	tt.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}

	tt.Pace(50 * time.Millisecond)
	tt.Pace(0)

	assert.Equal(t, []time.Duration{50 * time.Millisecond}, slept)
}

func TestBottomCenter(t *testing.T) {
	assert.Equal(t, geometry.XY{X: 0, Y: -340}, BottomCenter(800))
}

func TestTurtle_DrawsTree(t *testing.T) {
	rec := &Recorder{}
	tt := New(rec, BottomCenter(800))
	tt.sleep = func(time.Duration) {}

	p := params.Defaults()
	p.Generations = 3
	p.StartingAngle = 0
	p.LeftAngle = 30
	p.RightAngle = 30

	stats := tree.Run(p, tt)
	assert.Equal(t, 15, stats.Segments)
	require.Len(t, rec.Segments, 15)

	// Trunk goes straight up from the origin.
	assertNear(t, "trunk from", rec.Segments[0].From, geometry.XY{X: 0, Y: -340})
	assertNear(t, "trunk to", rec.Segments[0].To, geometry.XY{X: 0, Y: -160})

	// A symmetric tree's first children mirror each other around the trunk.
	left, right := rec.Segments[1], rec.Segments[2]
	assert.InDelta(t, -left.To.X, right.To.X, epsilon)
	assert.InDelta(t, left.To.Y, right.To.Y, epsilon)
	assert.Less(t, left.To.X, 0.0)

	// Trunk, then one frame per generation.
	assert.Equal(t, []int{1, 3, 7, 15}, rec.Frames)
}
