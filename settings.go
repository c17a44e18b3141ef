package fraktale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const maxStrokeWidth = 10 // pixels

// Settings are the optional knobs read from a JSON file.
type Settings struct {
	Renderer    string  `json:"renderer"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// DefaultSettings draws with one pixel black lines on the raster renderer.
func DefaultSettings() Settings {
	return Settings{
		Renderer:    RendererRaster,
		StrokeWidth: 1,
	}
}

// Validate reports the first bad field.
func (s Settings) Validate() error {
	switch s.Renderer {
	case RendererRaster, RendererVector:
	default:
		return fmt.Errorf("renderer %q: %w", s.Renderer, ErrBadRenderer)
	}
	if s.StrokeWidth <= 0 || s.StrokeWidth > maxStrokeWidth {
		return fmt.Errorf("stroke width %v not in (0, %d]", s.StrokeWidth, maxStrokeWidth)
	}
	return nil
}

// LoadSettings reads fname over the defaults. An empty fname returns the
// defaults.
func LoadSettings(fname string) (Settings, error) {
	s := DefaultSettings()
	if fname == "" {
		return s, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", fname, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", fname, err)
	}
	return s, nil
}

// SettingsWatcher reloads a settings file whenever it is written.
type SettingsWatcher struct {
	watcher *fsnotify.Watcher
	fname   string
	done    chan struct{}
}

// WatchSettings calls onChange with the new settings after each write to
// fname, and onError when a reload fails. Both run on the watcher goroutine.
func WatchSettings(fname string, onChange func(Settings), onError func(error)) (*SettingsWatcher, error) {
	fname = filepath.Clean(fname)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the folder, editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", fname, err)
	}
	sw := &SettingsWatcher{
		watcher: watcher,
		fname:   fname,
		done:    make(chan struct{}),
	}
	go sw.watchForEvents(onChange, onError)
	return sw, nil
}

func (sw *SettingsWatcher) watchForEvents(onChange func(Settings), onError func(error)) {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.fname {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s, err := LoadSettings(sw.fname)
			if err != nil {
				onError(err)
				continue
			}
			onChange(s)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to finish.
func (sw *SettingsWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}
