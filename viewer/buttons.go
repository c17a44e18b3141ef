package main

import (
	"image"
	"image/color"

	"github.com/scottkirkwood/fraktale"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	barHeight     = 30 // pixels
	buttonHeight  = 24
	buttonPadding = 12 // left and right of the label
	buttonGap     = 6
)

var (
	barColor      = color.Gray{238}
	buttonColor   = color.Gray{250}
	selectedColor = color.Gray{205}
	borderColor   = color.Gray{120}
	labelColor    = color.Black
)

type button struct {
	kind fraktale.Kind
	rect image.Rectangle
}

// buttonBar is the row of fractal buttons above the canvas. Like a flow
// layout the row is centered in the window.
type buttonBar struct {
	buttons []button
}

func layoutBar(width int) buttonBar {
	widths := make([]int, len(fraktale.Kinds))
	total := buttonGap * (len(widths) - 1)
	for i, k := range fraktale.Kinds {
		widths[i] = font.MeasureString(basicfont.Face7x13, k.Label()).Ceil() + 2*buttonPadding
		total += widths[i]
	}

	x := fraktale.ClampInt((width-total)/2, 0, width)
	y := (barHeight - buttonHeight) / 2
	bar := buttonBar{buttons: make([]button, len(widths))}
	for i, k := range fraktale.Kinds {
		bar.buttons[i] = button{
			kind: k,
			rect: image.Rect(x, y, x+widths[i], y+buttonHeight),
		}
		x += widths[i] + buttonGap
	}
	return bar
}

// hit returns the fractal whose button holds pt.
func (b buttonBar) hit(pt image.Point) (fraktale.Kind, bool) {
	for _, btn := range b.buttons {
		if pt.In(btn.rect) {
			return btn.kind, true
		}
	}
	return fraktale.None, false
}

func (b buttonBar) draw(dst draw.Image, active fraktale.Kind) {
	r := dst.Bounds()
	r.Max.Y = r.Min.Y + barHeight
	draw.Draw(dst, r, image.NewUniform(barColor), image.Point{}, draw.Src)

	for _, btn := range b.buttons {
		fill := buttonColor
		if btn.kind == active {
			fill = selectedColor
		}
		draw.Draw(dst, btn.rect, image.NewUniform(borderColor), image.Point{}, draw.Src)
		draw.Draw(dst, btn.rect.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(labelColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(btn.rect.Min.X+buttonPadding, btn.rect.Min.Y+buttonHeight/2+5),
		}
		d.DrawString(btn.kind.Label())
	}
}
