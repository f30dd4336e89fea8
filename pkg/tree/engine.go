package tree

import (
	"time"

	"github.com/willbeason/fractal-trees/pkg/params"
)

const (
	// DefaultPace is how long an animated run waits after presenting each generation.
	DefaultPace = 50 * time.Millisecond

	// UpHeading points straight up. The trunk is drawn at UpHeading plus the starting angle.
	UpHeading = 90.0
)

// Stats summarizes a finished run.
type Stats struct {
	// Generations is the number of branch generations drawn after the trunk.
	Generations int
	// Segments counts every line drawn, trunk included.
	Segments int
}

// Engine draws a tree one generation at a time.
//
// An Engine holds no state between runs; everything a generation needs is passed down to the next.
type Engine struct {
	params   params.Params
	branches []Branch
	pace     time.Duration
	logf     func(format string, args ...any)
}

type Option func(*Engine)

// WithPace sets how long to wait between animated generations.
func WithPace(d time.Duration) Option {
	return func(e *Engine) {
		e.pace = d
	}
}

// WithLogf receives one line per drawn generation.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(e *Engine) {
		e.logf = logf
	}
}

func NewEngine(p params.Params, opts ...Option) *Engine {
	e := &Engine{
		params:   p,
		branches: Branches(p),
		pace:     DefaultPace,
		logf:     func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run draws p with r using the default Engine options.
func Run(p params.Params, r Renderer) Stats {
	return NewEngine(p).Run(r)
}

// Run draws the trunk and then every generation of branches. It always runs to completion.
func (e *Engine) Run(r Renderer) Stats {
	p := e.params

	r.SetBackground(p.BackgroundColor)
	r.SetPenWidth(p.StartingWidth)
	r.SetPenColor(p.StartingColor)
	r.MoveTo(r.Origin())

	r.SetHeading(UpHeading + p.StartingAngle)
	end, heading := r.Forward(p.StartingLength)
	if p.Animate {
		r.PresentFrame()
	}

	stats := e.expand(r, Frontier{{Position: end, Heading: heading}}, 0, Stats{Segments: 1})

	// Without animation nothing has been shown yet.
	if !p.Animate {
		r.PresentFrame()
	}

	return stats
}

// expand draws the children of every Node in frontier and recurses into the next generation.
// Recursion is as deep as the number of generations, never as deep as the frontier is wide.
func (e *Engine) expand(r Renderer, frontier Frontier, generation int, stats Stats) Stats {
	if generation >= e.params.Generations {
		return stats
	}

	length := SegmentLength(e.params, generation)
	c, width := Gradient(e.params, generation)
	r.SetPenColor(c)
	r.SetPenWidth(width)

	next := make(Frontier, 0, len(frontier)*len(e.branches))
	for _, node := range frontier {
		for _, b := range e.branches {
			r.MoveTo(node.Position)
			r.SetHeading(node.Heading)
			b.apply(r)

			position, heading := r.Forward(length)
			next = append(next, Node{Position: position, Heading: heading})
		}
	}

	stats.Generations = generation + 1
	stats.Segments += len(next)
	e.logf("generation %d: %d branches, length %.2f, width %.2f, color %v",
		generation+1, len(next), length, width, c)

	if e.params.Animate {
		r.PresentFrame()
		r.Pace(e.pace)
	}

	return e.expand(r, next, generation+1, stats)
}
