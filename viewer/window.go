package main

import (
	"fmt"
	"image"
	"log"

	"github.com/scottkirkwood/fraktale"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	windowWidth  = 1024 // pixels
	windowHeight = 768
	windowTitle  = "Fraktale"
)

var shortcuts = map[key.Code]fraktale.Kind{
	key.Code1: fraktale.KindCantor,
	key.Code2: fraktale.KindSierpinski,
	key.Code3: fraktale.KindKoch,
	key.Code4: fraktale.KindTree,
}

// settingsEvent carries reloaded settings into the event loop.
type settingsEvent struct {
	settings fraktale.Settings
}

// viewer is everything the event loop draws from. Only the loop touches it.
type viewer struct {
	app      fraktale.App
	settings fraktale.Settings
	renderer string // from the command line, wins over the settings file
	canvas   fraktale.Canvas
	rec      *fraktale.Recorder
	bar      buttonBar
	size     image.Point
	verbose  bool
}

func newViewer(settings fraktale.Settings, renderer string, verbose bool) *viewer {
	v := &viewer{
		renderer: renderer,
		verbose:  verbose,
	}
	v.settings = v.override(settings)
	return v
}

func (v *viewer) override(s fraktale.Settings) fraktale.Settings {
	if v.renderer != "" {
		s.Renderer = v.renderer
	}
	return s
}

// resize builds a new canvas below the button row and redraws on it.
func (v *viewer) resize(sz image.Point) error {
	v.size = sz
	v.bar = layoutBar(sz.X)
	w := fraktale.MaxInt(sz.X, 1)
	h := fraktale.MaxInt(sz.Y-barHeight, 1)
	c, err := fraktale.NewCanvas(v.settings.Renderer, w, h, v.settings.StrokeWidth)
	if err != nil {
		return err
	}
	v.canvas = c
	v.rec = fraktale.NewRecorder(c)
	v.app.Resize(v.rec, w, h)
	v.logDrawing()
	return nil
}

func (v *viewer) selectKind(k fraktale.Kind) error {
	if v.canvas == nil {
		return nil
	}
	sz := v.canvas.Size()
	if err := v.app.Select(k, v.rec, sz.X, sz.Y); err != nil {
		return err
	}
	v.logDrawing()
	return nil
}

func (v *viewer) applySettings(s fraktale.Settings) error {
	s = v.override(s)
	if err := s.Validate(); err != nil {
		return err
	}
	v.settings = s
	log.Printf("Settings reloaded: renderer %s, stroke width %v", s.Renderer, s.StrokeWidth)
	if v.canvas == nil {
		return nil
	}
	return v.resize(v.size)
}

// paint renders the button row and the canvas into dst.
func (v *viewer) paint(dst draw.Image) error {
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	v.bar.draw(dst, v.app.Active())
	if v.canvas == nil {
		return nil
	}
	img, err := v.canvas.Image()
	if err != nil {
		return err
	}
	r := dst.Bounds()
	r.Min.Y += barHeight
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
	return nil
}

func (v *viewer) logDrawing() {
	if !v.verbose {
		return
	}
	sz := v.canvas.Size()
	log.Printf("Drew %v on %dx%d: %d lines, %d polygons",
		v.app.Active(), sz.X, sz.Y, len(v.rec.Lines()), len(v.rec.Polygons()))
}

// run opens the window and handles its events until it closes.
func run(s screen.Screen, v *viewer, settingsFile string) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
	})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()

	if settingsFile != "" {
		sw, err := fraktale.WatchSettings(settingsFile,
			func(st fraktale.Settings) { w.Send(settingsEvent{st}) },
			func(err error) { log.Printf("Settings not reloaded: %v", err) })
		if err != nil {
			return err
		}
		defer sw.Close()
	}

	var b screen.Buffer
	defer func() {
		if b != nil {
			b.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			sz := e.Size()
			if sz.X == 0 || sz.Y == 0 {
				continue
			}
			if b != nil {
				b.Release()
			}
			if b, err = s.NewBuffer(sz); err != nil {
				return fmt.Errorf("new buffer: %w", err)
			}
			if err := v.resize(sz); err != nil {
				return err
			}
			w.Send(paint.Event{})

		case paint.Event:
			if b == nil {
				continue
			}
			if err := v.paint(b.RGBA()); err != nil {
				return err
			}
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()

		case mouse.Event:
			if e.Button != mouse.ButtonLeft || e.Direction != mouse.DirPress {
				continue
			}
			k, ok := v.bar.hit(image.Point{int(e.X), int(e.Y)})
			if !ok {
				continue
			}
			if err := v.selectKind(k); err != nil {
				return err
			}
			w.Send(paint.Event{})

		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return nil
			}
			k, ok := shortcuts[e.Code]
			if !ok {
				continue
			}
			if err := v.selectKind(k); err != nil {
				return err
			}
			w.Send(paint.Event{})

		case settingsEvent:
			if err := v.applySettings(e.settings); err != nil {
				log.Printf("Settings rejected: %v", err)
				continue
			}
			w.Send(paint.Event{})

		case error:
			return fmt.Errorf("screen: %w", e)
		}
	}
}
