package tree

import (
	"fmt"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/params"
)

// A Node is a junction in a fractal: where the next set of branches start from.
//
// Nodes are never linked to one another. Once a generation is drawn its Nodes are discarded.
type Node struct {
	// Position is where the parent branch ended.
	Position geometry.XY

	// Heading is the direction the parent branch was drawn in.
	// Measured in degrees counter-clockwise from the positive x axis.
	Heading float64
}

// A Frontier is every Node of one generation, in drawing order.
type Frontier []Node

// Turn is which way a Branch bends away from its parent.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// A Branch is one child drawn from every Node.
type Branch struct {
	Turn Turn

	// Angle is how far, in degrees, the Branch bends in the direction of Turn.
	Angle float64
}

// apply turns the renderer's pen away from the parent's heading.
func (b Branch) apply(r Renderer) {
	switch b.Turn {
	case Left:
		r.Left(b.Angle)
	case Right:
		r.Right(b.Angle)
	}
}

// Branches returns the children every Node expands into, in drawing order: left, then right.
func Branches(p params.Params) []Branch {
	return []Branch{
		{Turn: Left, Angle: p.LeftAngle},
		{Turn: Right, Angle: p.RightAngle},
	}
}
