package fraktale

import (
	"image"

	"github.com/fogleman/gg"
)

// Raster draws straight into an RGBA image.
type Raster struct {
	dc          *gg.Context
	strokeWidth float64
}

// NewRaster wraps img. Nothing is painted until the first command.
func NewRaster(img *image.RGBA, strokeWidth float64) *Raster {
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	return &Raster{
		dc:          gg.NewContextForRGBA(img),
		strokeWidth: strokeWidth,
	}
}

func (r *Raster) Clear() {
	r.dc.SetColor(background)
	r.dc.Clear()
}

// Line strokes through pixel centers so one pixel wide lines stay sharp.
func (r *Raster) Line(p1, p2 image.Point) {
	r.stroke()
	r.dc.DrawLine(center(p1.X), center(p1.Y), center(p2.X), center(p2.Y))
	r.dc.Stroke()
}

func (r *Raster) Polygon(pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	r.stroke()
	r.dc.MoveTo(center(pts[0].X), center(pts[0].Y))
	for _, pt := range pts[1:] {
		r.dc.LineTo(center(pt.X), center(pt.Y))
	}
	r.dc.ClosePath()
	r.dc.Stroke()
}

func (r *Raster) Image() (image.Image, error) {
	return r.dc.Image(), nil
}

func (r *Raster) Size() image.Point {
	return image.Point{r.dc.Width(), r.dc.Height()}
}

func (r *Raster) stroke() {
	r.dc.SetColor(foreground)
	r.dc.SetLineWidth(r.strokeWidth)
}

func center(v int) float64 {
	return float64(v) + 0.5
}
