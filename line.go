package fraktale

import (
	"image"
)

// Line is a set of two image.Points
type Line struct {
	P1, P2 image.Point
}

// Bounds returns the smallest rectangle holding both end points.
func (l Line) Bounds() image.Rectangle {
	return image.Rectangle{Min: l.P1, Max: l.P2}.Canon()
}

// Polygon is a closed outline, the last point connects back to the first.
type Polygon []image.Point

// Bounds returns the smallest rectangle holding every vertex.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = MinInt(r.Min.X, pt.X)
		r.Min.Y = MinInt(r.Min.Y, pt.Y)
		r.Max.X = MaxInt(r.Max.X, pt.X)
		r.Max.Y = MaxInt(r.Max.Y, pt.Y)
	}
	return r
}

// MinInt return the min of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt return the max of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}
