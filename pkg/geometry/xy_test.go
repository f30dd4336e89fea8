package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestStep(t *testing.T) {
	tcs := []struct {
		name    string
		from    XY
		heading float64
		length  float64
		want    XY
	}{
		{name: "north", from: XY{}, heading: 90, length: 10, want: XY{X: 0, Y: 10}},
		{name: "east", from: XY{X: 1, Y: 1}, heading: 0, length: 2, want: XY{X: 3, Y: 1}},
		{name: "south west", from: XY{}, heading: 225, length: math.Sqrt2, want: XY{X: -1, Y: -1}},
		{name: "zero length", from: XY{X: 4, Y: -2}, heading: 33, length: 0, want: XY{X: 4, Y: -2}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Step(tc.from, tc.heading, tc.length)
			assert.InDelta(t, tc.want.X, got.X, epsilon)
			assert.InDelta(t, tc.want.Y, got.Y, epsilon)
		})
	}
}

func TestNormalizeHeading(t *testing.T) {
	assert.InDelta(t, 20.0, NormalizeHeading(20), epsilon)
	assert.InDelta(t, 350.0, NormalizeHeading(-10), epsilon)
	assert.InDelta(t, 10.0, NormalizeHeading(730), epsilon)
	assert.InDelta(t, 0.0, NormalizeHeading(360), epsilon)
	assert.InDelta(t, 0.0, NormalizeHeading(-1e-18), epsilon)
}

func TestRescale(t *testing.T) {
	got := Rescale(XY{X: 1, Y: 0}, 2.0, math.Pi/2, XY{X: 5, Y: 5})
	assert.InDelta(t, 5.0, got.X, epsilon)
	assert.InDelta(t, 7.0, got.Y, epsilon)
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 5.0, XY{X: 3, Y: 4}.Length(), epsilon)
	assert.InDelta(t, 5.0, XY{X: 4, Y: 4}.Sub(XY{X: 1, Y: 0}).Length(), epsilon)
	assert.Equal(t, XY{X: 2, Y: 4}, XY{X: 1, Y: 2}.Scale(2))
	assert.Equal(t, XY{X: 2, Y: 3}, XY{X: 1, Y: 1}.Add(XY{X: 1, Y: 2}))
}
