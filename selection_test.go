package fraktale

import (
	"errors"
	"testing"
)

func TestSelectKoch(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	if err := app.Select(KindKoch, r, 1024, 700); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := len(r.Lines()); got != 1024 {
		t.Errorf("drew %d lines, want 1024", got)
	}
	if got := len(r.Polygons()); got != 0 {
		t.Errorf("drew %d polygons, want 0", got)
	}
	if r.Clears() != 1 {
		t.Errorf("cleared %d times, want 1", r.Clears())
	}
	if app.Active() != KindKoch {
		t.Errorf("Active() = %v, want koch", app.Active())
	}
}

func TestResizeRedrawsSierpinski(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	if err := app.Select(KindSierpinski, r, 1024, 700); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := r.Polygons()[0].Bounds().Dx(); got != 1024-40 {
		t.Fatalf("base width = %d, want %d", got, 1024-40)
	}

	app.Resize(r, 640, 480)
	if r.Clears() != 2 {
		t.Errorf("cleared %d times, want 2", r.Clears())
	}
	base := r.Polygons()[0].Bounds()
	if base.Dx() != 640-40 {
		t.Errorf("base width after resize = %d, want %d", base.Dx(), 640-40)
	}
	if base.Min.X != 20 || base.Min.Y != 250 || base.Max.Y != 550 {
		t.Errorf("outer triangle bounds = %v", base)
	}
}

func TestResizeBeforeSelect(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	app.Resize(r, 800, 600)
	if r.Clears() != 1 {
		t.Errorf("cleared %d times, want 1", r.Clears())
	}
	if len(r.Lines())+len(r.Polygons()) != 0 {
		t.Error("drew something with nothing selected")
	}
}

func TestSelectReplacesDrawing(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	if err := app.Select(KindSierpinski, r, 1024, 700); err != nil {
		t.Fatal(err)
	}
	if err := app.Select(KindCantor, r, 1024, 700); err != nil {
		t.Fatal(err)
	}
	if len(r.Polygons()) != 0 {
		t.Errorf("%d triangles survived the switch", len(r.Polygons()))
	}
	if got := r.Lines()[0]; got.P1.X != 20 || got.P1.Y != 30 || got.P2.X != 1004 {
		t.Errorf("first cantor line = %v", got)
	}
}

func TestSelectUnknown(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	if err := app.Select(KindTree, r, 1024, 700); err != nil {
		t.Fatal(err)
	}
	for _, k := range []Kind{None, Kind(42)} {
		err := app.Select(k, r, 1024, 700)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Select(%v) = %v, want ErrUnknownKind", k, err)
		}
	}
	if app.Active() != KindTree {
		t.Errorf("Active() = %v after bad selects, want tree", app.Active())
	}
	if r.Clears() != 1 {
		t.Errorf("bad select cleared the surface")
	}
}

func TestTreePlacement(t *testing.T) {
	var app App
	r := NewRecorder(nil)
	if err := app.Select(KindTree, r, 1024, 700); err != nil {
		t.Fatal(err)
	}
	trunk := r.Lines()[0]
	if trunk.P1.X != 512 || trunk.P1.Y != 650 {
		t.Errorf("trunk starts at %v, want (512,650)", trunk.P1)
	}
}

func TestLabels(t *testing.T) {
	want := []string{"Cantor Set", "Sierpinski Dreieck", "Kochkurve", "Rekursiver Baum"}
	for i, k := range Kinds {
		if k.Label() != want[i] {
			t.Errorf("%v.Label() = %q, want %q", k, k.Label(), want[i])
		}
	}
}
