package fraktale

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

const (
	cantorMinLength = 1  // pixels
	cantorStep      = 20 // pixels between levels

	sierpinskiMinSize = 5 // pixels

	kochAngle = 60 // degrees

	treeMinLength = 5   // pixels
	treeSpread    = 20  // degrees
	treeShrink    = 0.8 // per level
)

// Cantor draws a horizontal line of length at x,y and repeats on the outer
// thirds one step further down.
func Cantor(s Surface, x, y, length int) {
	if length < cantorMinLength {
		return
	}
	s.Line(image.Point{x, y}, image.Point{x + length, y})
	y += cantorStep
	Cantor(s, x, y, length/3)
	Cantor(s, x+2*length/3, y, length/3)
}

// Sierpinski outlines a triangle with its apex at the top of the box
// x,y,size,height and repeats in the bottom left, top and bottom right
// halves.
func Sierpinski(s Surface, x, y, size, height int) {
	if size < sierpinskiMinSize {
		return
	}
	s.Polygon([]image.Point{
		{x, y + height},
		{x + size/2, y},
		{x + size, y + height},
	})
	Sierpinski(s, x, y+height/2, size/2, height/2)
	Sierpinski(s, x+size/2, y, size/2, height/2)
	Sierpinski(s, x+size, y+height/2, size/2, height/2)
}

// Koch draws a Koch curve of the given depth starting at x,y. Depth zero
// (or less) is a straight line.
func Koch(s Surface, x, y, length, depth int) {
	if depth <= 0 {
		s.Line(image.Point{x, y}, image.Point{x + length, y})
		return
	}
	segment := length / 3
	rad := gg.Radians(kochAngle)
	peakX := x + segment + int(float64(segment)*math.Cos(rad))
	peakY := y - int(float64(segment)*math.Sin(rad))

	Koch(s, x, y, segment, depth-1)
	Koch(s, x+segment, y, segment, depth-1)
	Koch(s, peakX, peakY, segment, depth-1)
	Koch(s, x+2*segment, y, segment, depth-1)
}

// Tree draws a branch from x,y at angle degrees (0 along +x, -90 up) and
// forks twice from its end.
func Tree(s Surface, x, y int, angle, length float64) {
	if length < treeMinLength {
		return
	}
	rad := gg.Radians(angle)
	endX := x + int(math.Cos(rad)*length)
	endY := y + int(math.Sin(rad)*length)
	s.Line(image.Point{x, y}, image.Point{endX, endY})
	Tree(s, endX, endY, angle-treeSpread, length*treeShrink)
	Tree(s, endX, endY, angle+treeSpread, length*treeShrink)
}
