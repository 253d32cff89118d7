package engine

import (
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/particle"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// ThemeSource is the part of the theme store the watcher needs.
type ThemeSource interface {
	Theme() theme.Mode
	Subscribe(fn func(theme.Mode)) (unsubscribe func())
}

// Watcher rebuilds the field when the viewport size changes and recolors
// it when the theme changes.
type Watcher struct {
	loop  *Loop
	field *particle.Field
	theme ThemeSource
	log   *zap.Logger

	width, height int
	sized         bool
	mode          theme.Mode
	unsubscribe   func()
}

func NewWatcher(loop *Loop, field *particle.Field, ts ThemeSource, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Watcher{loop: loop, field: field, theme: ts, log: log, mode: ts.Theme()}
	w.unsubscribe = ts.Subscribe(w.themeChanged)
	return w
}

// Resize reinitializes the field when the viewport differs from the last
// one seen. It reports whether the field was rebuilt.
func (w *Watcher) Resize(width, height int) bool {
	if w.sized && width == w.width && height == w.height {
		return false
	}
	w.width, w.height, w.sized = width, height, true

	mode := w.theme.Theme()
	w.mode = mode
	ps := w.field.Initialize(width, height, mode)
	w.loop.Reset(ps, width, height)
	w.log.Debug("particle field rebuilt",
		zap.Int("width", width), zap.Int("height", height), zap.Int("particles", len(ps)))
	return true
}

func (w *Watcher) themeChanged(mode theme.Mode) {
	if mode == w.mode {
		return
	}
	w.mode = mode
	w.loop.Recolor(mode)
	w.log.Debug("particle colors regenerated", zap.Stringer("mode", mode))
}

// Close detaches from the theme store.
func (w *Watcher) Close() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}
