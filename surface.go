package fraktale

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Renderer names accepted by NewCanvas.
const (
	RendererRaster = "raster"
	RendererVector = "vector"
)

// ErrBadRenderer is returned for a renderer name NewCanvas doesn't know.
var ErrBadRenderer = errors.New("unknown renderer")

var (
	background = color.White
	foreground = color.Black
)

// Surface receives the draw commands of a generator. Coordinates are pixels
// with y growing downward.
type Surface interface {
	// Clear paints the background over the full bounds.
	Clear()
	Line(p1, p2 image.Point)
	Polygon(pts []image.Point)
}

// Canvas is a Surface that can hand back what has been drawn so far.
type Canvas interface {
	Surface
	Image() (image.Image, error)
	Size() image.Point
}

// NewCanvas returns a cleared canvas of the given size for the named renderer.
func NewCanvas(renderer string, width, height int, strokeWidth float64) (Canvas, error) {
	var c Canvas
	switch renderer {
	case RendererRaster, "":
		c = NewRaster(image.NewRGBA(image.Rect(0, 0, width, height)), strokeWidth)
	case RendererVector:
		c = NewVector(width, height, strokeWidth)
	default:
		return nil, fmt.Errorf("%w %q", ErrBadRenderer, renderer)
	}
	c.Clear()
	return c, nil
}

// Recorder keeps every command since the last Clear and forwards them to
// next, if any.
type Recorder struct {
	next     Surface
	lines    []Line
	polygons []Polygon
	clears   int
}

// NewRecorder returns a Recorder forwarding to next. next may be nil.
func NewRecorder(next Surface) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Clear() {
	r.lines = nil
	r.polygons = nil
	r.clears++
	if r.next != nil {
		r.next.Clear()
	}
}

func (r *Recorder) Line(p1, p2 image.Point) {
	r.lines = append(r.lines, Line{P1: p1, P2: p2})
	if r.next != nil {
		r.next.Line(p1, p2)
	}
}

func (r *Recorder) Polygon(pts []image.Point) {
	r.polygons = append(r.polygons, append(Polygon(nil), pts...))
	if r.next != nil {
		r.next.Polygon(pts)
	}
}

// Lines returns the lines drawn since the last Clear.
func (r *Recorder) Lines() []Line {
	return r.lines
}

// Polygons returns the polygons drawn since the last Clear.
func (r *Recorder) Polygons() []Polygon {
	return r.polygons
}

// Clears returns how often Clear was called.
func (r *Recorder) Clears() int {
	return r.clears
}
