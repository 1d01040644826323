package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/segment"
	"github.com/fogleman/gg"

	"github.com/ironsheep/midi-fractal/internal/errdefs"
)

// Sample is a pitch and its position in the note sequence.
type Sample struct {
	Index int `json:"index"`
	Pitch int `json:"pitch"`
}

// Samples indexes pitches by order of occurrence.
func Samples(pitches []int) []Sample {
	samples := make([]Sample, len(pitches))
	for i, p := range pitches {
		samples[i] = Sample{Index: i, Pitch: p}
	}
	return samples
}

// Style selects how samples are drawn.
type Style string

const (
	StylePoint  Style = "point"
	StyleLine   Style = "line"
	StyleCircle Style = "circle"
)

// ParseStyle maps a plot type name to a Style. Names other than "line" and
// "circle" select StylePoint.
func ParseStyle(name string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case StyleLine:
		return StyleLine
	case StyleCircle:
		return StyleCircle
	default:
		return StylePoint
	}
}

// Options controls the canvas and the trace.
type Options struct {
	Width        int
	Height       int
	Style        Style
	LineWidth    int
	CircleRadius int
}

// DefaultOptions returns a 1024x600 canvas drawn with 1 pixel lines.
func DefaultOptions() Options {
	return Options{
		Width:        1024,
		Height:       600,
		Style:        StyleLine,
		LineWidth:    1,
		CircleRadius: 10,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", errdefs.ErrInvalidInput, o.Width, o.Height)
	}
	if o.Style == StyleLine && o.LineWidth < 1 {
		return fmt.Errorf("%w: line width must be at least 1, got %d", errdefs.ErrInvalidInput, o.LineWidth)
	}
	if o.Style == StyleCircle && o.CircleRadius < 0 {
		return fmt.Errorf("%w: circle radius must not be negative, got %d", errdefs.ErrInvalidInput, o.CircleRadius)
	}
	return nil
}

var (
	background = color.RGBA{0, 0, 0, 255}
	ink        = color.RGBA{255, 255, 255, 255}
)

// inkLevel is the gray level at which a partly covered pixel becomes ink,
// roughly 40% coverage.
const inkLevel = 102

// Render draws samples onto a new opts.Width x opts.Height canvas.
//
// Line style strokes a segment between each pair of consecutive points.
// Circle style fills a circle around every point after the first, and point
// style sets a single pixel for every point after the first; the first point
// only starts the trace. A sequence of one sample has no segment to draw, so
// its point is marked in the selected style instead.
//
// The result holds only ink and background pixels.
func Render(samples []Sample, opts Options) (*image.RGBA, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no notes to render", errdefs.ErrInvalidInput)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	lo, hi := Bounds(samples)
	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(ink)
	dc.SetLineWidth(float64(opts.LineWidth))

	prev := ScalePoint(samples[0], lo, hi, opts.Width, opts.Height)
	if len(samples) == 1 {
		mark(dc, prev, prev, opts)
		return binarize(canvas), nil
	}
	for _, s := range samples[1:] {
		next := ScalePoint(s, lo, hi, opts.Width, opts.Height)
		mark(dc, prev, next, opts)
		prev = next
	}
	return binarize(canvas), nil
}

// binarize snaps the anti-aliased trace to ink and background.
func binarize(canvas *image.RGBA) *image.RGBA {
	mask := segment.Threshold(canvas, inkLevel)
	out := image.NewRGBA(canvas.Bounds())
	draw.Draw(out, out.Bounds(), mask, mask.Bounds().Min, draw.Src)
	return out
}

// mark draws the trace step from prev to next. Coordinates are shifted to
// pixel centers so a 1 pixel line covers exactly one row or column, and a
// circle of radius r spans 2r+1 pixels.
func mark(dc *gg.Context, prev, next image.Point, opts Options) {
	switch opts.Style {
	case StyleLine:
		if prev == next {
			dc.SetPixel(next.X, next.Y)
			return
		}
		dc.DrawLine(center(prev.X), center(prev.Y), center(next.X), center(next.Y))
		dc.Stroke()
	case StyleCircle:
		if opts.CircleRadius == 0 {
			dc.SetPixel(next.X, next.Y)
			return
		}
		dc.DrawCircle(center(next.X), center(next.Y), float64(opts.CircleRadius)+0.5)
		dc.Fill()
	default:
		dc.SetPixel(next.X, next.Y)
	}
}

func center(v int) float64 {
	return float64(v) + 0.5
}
