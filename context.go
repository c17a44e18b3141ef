package fraktale

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"
)

// One canvas unit per pixel.
const vectorResolution = 1.0

// Vector is a Surface kept as canvas paths and rasterized on demand.
// Canvas has y growing upward, so every point is flipped on the way in.
type Vector struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height int
	strokeWidth   float64
	img           image.Image // last rasterization, nil once drawn on
}

// NewVector returns an empty vector surface of width x height pixels.
func NewVector(width, height int, strokeWidth float64) *Vector {
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	v := &Vector{
		c:           canvas.New(float64(width), float64(height)),
		width:       width,
		height:      height,
		strokeWidth: strokeWidth,
	}
	v.ctx = canvas.NewContext(v.c)
	return v
}

// Clear drops every path and lays down the background.
func (v *Vector) Clear() {
	v.img = nil
	v.c.Reset()
	v.ctx.Push()
	v.ctx.SetFillColor(background)
	v.ctx.SetStrokeColor(canvas.Transparent)
	v.ctx.DrawPath(0, 0, canvas.Rectangle(float64(v.width), float64(v.height)))
	v.ctx.Pop()
}

func (v *Vector) Line(p1, p2 image.Point) {
	v.img = nil
	v.begin()
	v.moveTo(p1)
	v.lineTo(p2)
	v.ctx.Stroke()
	v.ctx.Pop()
}

func (v *Vector) Polygon(pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	v.img = nil
	v.begin()
	v.moveTo(pts[0])
	for _, pt := range pts[1:] {
		v.lineTo(pt)
	}
	v.ctx.Close()
	v.ctx.Stroke()
	v.ctx.Pop()
}

// Image rasterizes the paths in memory. The result is kept until the next
// command.
func (v *Vector) Image() (image.Image, error) {
	if v.img != nil {
		return v.img, nil
	}
	var buf bytes.Buffer
	if err := rasterizer.PNGWriter(vectorResolution)(&buf, v.c); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rasterized canvas: %w", err)
	}
	v.img = img
	return img, nil
}

func (v *Vector) Size() image.Point {
	return image.Point{v.width, v.height}
}

func (v *Vector) begin() {
	v.ctx.Push()
	v.ctx.SetFillColor(canvas.Transparent)
	v.ctx.SetStrokeColor(foreground)
	v.ctx.SetStrokeWidth(v.strokeWidth)
}

func (v *Vector) moveTo(pt image.Point) {
	v.ctx.MoveTo(center(pt.X), float64(v.height)-center(pt.Y))
}

func (v *Vector) lineTo(pt image.Point) {
	v.ctx.LineTo(center(pt.X), float64(v.height)-center(pt.Y))
}
