package fraktale

import (
	"errors"
	"fmt"
)

// Kind identifies one of the fractals the window can show.
type Kind int

const (
	None Kind = iota
	KindCantor
	KindSierpinski
	KindKoch
	KindTree
)

// Kinds lists the selectable fractals in button order.
var Kinds = []Kind{KindCantor, KindSierpinski, KindKoch, KindTree}

// ErrUnknownKind is returned when selecting something that isn't in Kinds.
var ErrUnknownKind = errors.New("unknown fractal")

// Fixed placement of each fractal on the surface.
const (
	margin = 20 // pixels, left and right

	cantorTop = 30

	sierpinskiTop    = 250
	sierpinskiHeight = 300

	kochBaseline = 400
	kochDepth    = 5

	treeBottom = 50 // pixels above the lower edge
	treeAngle  = -90
	treeLength = 120
)

// Label is the caption of the button selecting k.
func (k Kind) Label() string {
	switch k {
	case KindCantor:
		return "Cantor Set"
	case KindSierpinski:
		return "Sierpinski Dreieck"
	case KindKoch:
		return "Kochkurve"
	case KindTree:
		return "Rekursiver Baum"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case KindCantor:
		return "cantor"
	case KindSierpinski:
		return "sierpinski"
	case KindKoch:
		return "koch"
	case KindTree:
		return "tree"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid returns true if k can be drawn.
func (k Kind) Valid() bool {
	return k >= KindCantor && k <= KindTree
}

// Draw runs the generator for k sized to a width x height surface.
func Draw(k Kind, s Surface, width, height int) error {
	span := width - 2*margin
	switch k {
	case KindCantor:
		Cantor(s, margin, cantorTop, span)
	case KindSierpinski:
		Sierpinski(s, margin, sierpinskiTop, span, sierpinskiHeight)
	case KindKoch:
		Koch(s, margin, kochBaseline, span, kochDepth)
	case KindTree:
		Tree(s, width/2, height-treeBottom, treeAngle, treeLength)
	default:
		return fmt.Errorf("draw %v: %w", k, ErrUnknownKind)
	}
	return nil
}

// App holds the one piece of state the window has: which fractal is showing.
// It is only touched from the event loop.
type App struct {
	active Kind
}

// Active returns the selected fractal, None before the first selection.
func (a *App) Active() Kind {
	return a.active
}

// Select makes k the active fractal, clears s and draws k onto it.
// An invalid k leaves everything as it was.
func (a *App) Select(k Kind, s Surface, width, height int) error {
	if !k.Valid() {
		return fmt.Errorf("select %v: %w", k, ErrUnknownKind)
	}
	a.active = k
	s.Clear()
	return Draw(k, s, width, height)
}

// Resize clears s and draws the active fractal again for the new size.
// Before anything was selected it only clears.
func (a *App) Resize(s Surface, width, height int) {
	s.Clear()
	if a.active == None {
		return
	}
	// active is always valid, Select guards it
	_ = Draw(a.active, s, width, height)
}
