package turtle

import "github.com/willbeason/fractal-trees/pkg/params"

// Recorder is a Surface which remembers everything drawn on it.
type Recorder struct {
	Background params.Color
	Segments   []Segment

	// Frames holds how many Segments had been drawn at each Present.
	Frames []int
}

func (r *Recorder) Clear(background params.Color) {
	r.Background = background
}

func (r *Recorder) Stroke(s Segment) {
	r.Segments = append(r.Segments, s)
}

func (r *Recorder) Present() {
	r.Frames = append(r.Frames, len(r.Segments))
}

var _ Surface = &Recorder{}
