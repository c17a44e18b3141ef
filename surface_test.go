package fraktale

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		renderer string
		wantErr  error
	}{
		{"", nil},
		{RendererRaster, nil},
		{RendererVector, nil},
		{"opengl", ErrBadRenderer},
	}
	for _, tt := range tests {
		c, err := NewCanvas(tt.renderer, 64, 32, 1)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("NewCanvas(%q) error = %v, want %v", tt.renderer, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if got := c.Size(); got != (image.Point{64, 32}) {
			t.Errorf("NewCanvas(%q).Size() = %v", tt.renderer, got)
		}
	}
}

func TestRasterDraws(t *testing.T) {
	c, err := NewCanvas(RendererRaster, 64, 32, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.Line(image.Point{5, 10}, image.Point{50, 10})
	img, err := c.Image()
	if err != nil {
		t.Fatal(err)
	}
	if g := gray(img, 25, 10); g > 64 {
		t.Errorf("pixel on the line is %d, want dark", g)
	}
	if g := gray(img, 25, 20); g != 255 {
		t.Errorf("pixel off the line is %d, want white", g)
	}

	c.Clear()
	img, _ = c.Image()
	if g := gray(img, 25, 10); g != 255 {
		t.Errorf("pixel after Clear is %d, want white", g)
	}
}

func TestRasterPolygon(t *testing.T) {
	c, err := NewCanvas(RendererRaster, 64, 64, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.Polygon([]image.Point{{4, 50}, {30, 4}, {56, 50}})
	img, _ := c.Image()
	if g := gray(img, 30, 50); g > 64 {
		t.Errorf("pixel on the base is %d, want dark", g)
	}
	// outline only
	if g := gray(img, 30, 35); g != 255 {
		t.Errorf("pixel inside the triangle is %d, want white", g)
	}
}

func TestVectorRasterizes(t *testing.T) {
	c, err := NewCanvas(RendererVector, 64, 32, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.Line(image.Point{5, 10}, image.Point{50, 10})
	img, err := c.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != (image.Point{64, 32}) {
		t.Fatalf("image size = %v, want 64x32", got)
	}
	if on, off := gray(img, 25, 10), gray(img, 25, 25); on >= off {
		t.Errorf("pixel on the line (%d) isn't darker than off it (%d)", on, off)
	}
}

func TestVectorKeepsImageUntilDrawn(t *testing.T) {
	v := NewVector(64, 32, 1)
	v.Clear()
	first, err := v.Image()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := v.Image()
	if first != again {
		t.Error("unchanged drawing rasterized twice")
	}

	v.Line(image.Point{5, 10}, image.Point{50, 10})
	drawn, err := v.Image()
	if err != nil {
		t.Fatal(err)
	}
	if drawn == first {
		t.Fatal("image not refreshed after Line")
	}
	if g := gray(drawn, 25, 10); g >= gray(first, 25, 10) {
		t.Errorf("line missing from refreshed image: %d", g)
	}

	v.Polygon([]image.Point{{4, 28}, {30, 2}, {56, 28}})
	if img, _ := v.Image(); img == drawn {
		t.Error("image not refreshed after Polygon")
	}
	v.Clear()
	if img, _ := v.Image(); img == drawn {
		t.Error("image not refreshed after Clear")
	}
}

func TestRecorderForwards(t *testing.T) {
	inner := NewRecorder(nil)
	r := NewRecorder(inner)
	r.Line(image.Point{0, 0}, image.Point{1, 1})
	pts := []image.Point{{0, 0}, {1, 0}, {0, 1}}
	r.Polygon(pts)
	pts[0] = image.Point{9, 9}

	if len(inner.Lines()) != 1 || len(inner.Polygons()) != 1 {
		t.Errorf("inner got %d lines, %d polygons", len(inner.Lines()), len(inner.Polygons()))
	}
	if r.Polygons()[0][0] != (image.Point{0, 0}) {
		t.Errorf("recorded polygon aliases the caller's slice")
	}
	r.Clear()
	if inner.Clears() != 1 || len(r.Lines()) != 0 || len(r.Polygons()) != 0 {
		t.Errorf("Clear not applied: %d clears, %d lines", inner.Clears(), len(r.Lines()))
	}
}
