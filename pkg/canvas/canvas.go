package canvas

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	// Register the formats draw.NewFormattedCanvas understands.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/params"
	"github.com/willbeason/fractal-trees/pkg/turtle"
)

// Config is the size of the exported image in points.
type Config struct {
	Width, Height float64
}

func DefaultConfig() Config {
	return Config{Width: 800, Height: 800}
}

// Canvas is a turtle.Surface which renders into a png, jpg, tiff, svg, pdf, or eps image.
type Canvas struct {
	cfg    Config
	format string
	c      vg.CanvasWriterTo

	strokes, frames int
}

var _ turtle.Surface = &Canvas{}

// New returns an empty Canvas in the given format.
func New(cfg Config, format string) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}

	c, err := draw.NewFormattedCanvas(vg.Length(cfg.Width), vg.Length(cfg.Height), format)
	if err != nil {
		return nil, fmt.Errorf("creating %q canvas: %w", format, err)
	}

	return &Canvas{cfg: cfg, format: format, c: c}, nil
}

// FormatOf is the image format implied by path's extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// point maps turtle coordinates, centered with y up, onto the canvas, whose origin is the bottom left.
func (c *Canvas) point(xy geometry.XY) vg.Point {
	return vg.Point{
		X: vg.Length(xy.X + c.cfg.Width/2.0),
		Y: vg.Length(xy.Y + c.cfg.Height/2.0),
	}
}

func (c *Canvas) Clear(background params.Color) {
	w, h := vg.Length(c.cfg.Width), vg.Length(c.cfg.Height)

	var p vg.Path
	p.Move(vg.Point{X: 0, Y: 0})
	p.Line(vg.Point{X: w, Y: 0})
	p.Line(vg.Point{X: w, Y: h})
	p.Line(vg.Point{X: 0, Y: h})
	p.Close()

	c.c.SetColor(background)
	c.c.Fill(p)
}

func (c *Canvas) Stroke(s turtle.Segment) {
	var p vg.Path
	p.Move(c.point(s.From))
	p.Line(c.point(s.To))

	c.c.SetColor(s.Color)
	c.c.SetLineWidth(vg.Points(s.Width))
	c.c.Stroke(p)
	c.strokes++
}

// Present is a no-op; the image is only complete once written.
func (c *Canvas) Present() {
	c.frames++
}

// Strokes is how many segments have been drawn.
func (c *Canvas) Strokes() int {
	return c.strokes
}

func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	return c.c.WriteTo(w)
}

// Save writes the image to path, creating its directory if needed.
func (c *Canvas) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = c.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
