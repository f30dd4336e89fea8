package window

import (
	"errors"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/willbeason/fractal-trees/pkg/params"
	"github.com/willbeason/fractal-trees/pkg/turtle"
)

// Config describes the window a tree grows in.
type Config struct {
	Title         string
	Width, Height int

	// Fade is how long each presented generation takes to fade in. Zero shows it at once.
	Fade time.Duration
}

func DefaultConfig() Config {
	return Config{
		Title:  "Fractal Trees!",
		Width:  800,
		Height: 800,
		Fade:   200 * time.Millisecond,
	}
}

// frame is one presented batch of segments.
type frame struct {
	segments []turtle.Segment
	fade     *gween.Tween
	alpha    float32
	done     bool
}

// Window is a turtle.Surface shown in an ebiten window.
//
// Surface methods may be called from any goroutine; the window itself must be run on the main one.
// Pressing Escape closes the window.
type Window struct {
	cfg Config

	mu         sync.Mutex
	background params.Color
	pending    []turtle.Segment
	fading     []*frame

	// canvas holds every frame which has finished fading in.
	canvas *ebiten.Image
}

var (
	_ turtle.Surface = &Window{}
	_ ebiten.Game    = &Window{}
)

func New(cfg Config) *Window {
	return &Window{
		cfg:        cfg,
		background: params.Color{1, 1, 1},
	}
}

func (w *Window) Clear(background params.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.background = background
}

func (w *Window) Stroke(s turtle.Segment) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, s)
}

// Present starts fading in everything stroked since the last Present.
func (w *Window) Present() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) == 0 {
		return
	}

	f := &frame{segments: w.pending}
	if w.cfg.Fade > 0 {
		f.fade = gween.New(0, 1, float32(w.cfg.Fade.Seconds()), ease.OutQuad)
	} else {
		f.alpha, f.done = 1, true
	}

	w.fading = append(w.fading, f)
	w.pending = nil
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, f := range w.fading {
		if f.fade != nil && !f.done {
			f.alpha, f.done = f.fade.Update(dt)
		}
	}

	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.cfg.Width, w.cfg.Height)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Bake finished frames so they are not redrawn every tick.
	fading := w.fading[:0]
	for _, f := range w.fading {
		if f.done {
			w.strokeAll(w.canvas, f.segments, 1)
			continue
		}
		fading = append(fading, f)
	}
	w.fading = fading

	screen.Fill(w.background)
	screen.DrawImage(w.canvas, &ebiten.DrawImageOptions{})
	for _, f := range w.fading {
		w.strokeAll(screen, f.segments, f.alpha)
	}
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *Window) strokeAll(dst *ebiten.Image, segments []turtle.Segment, alpha float32) {
	for _, s := range segments {
		x0, y0 := w.screenXY(s.From.X, s.From.Y)
		x1, y1 := w.screenXY(s.To.X, s.To.Y)
		vector.StrokeLine(dst, x0, y0, x1, y1, float32(s.Width), withAlpha(s.Color, alpha), true)
	}
}

// screenXY maps centered, y-up turtle coordinates to screen pixels.
func (w *Window) screenXY(x, y float64) (float32, float32) {
	return float32(float64(w.cfg.Width)/2.0 + x), float32(float64(w.cfg.Height)/2.0 - y)
}

func withAlpha(c params.Color, alpha float32) color.Color {
	r, g, b, _ := c.RGBA()
	a := clamp01(alpha)
	// Premultiplied.
	return color.RGBA64{
		R: uint16(float32(r) * a),
		G: uint16(float32(g) * a),
		B: uint16(float32(b) * a),
		A: uint16(0xffff * a),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
