package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/particle"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// ErrNoSurface is returned by Start when no drawing surface is available.
var ErrNoSurface = errors.New("engine: drawing surface unavailable")

// ErrStopped is returned by Start after Stop.
var ErrStopped = errors.New("engine: loop stopped")

// ThemeReader is the read side of the theme store.
type ThemeReader interface {
	Theme() theme.Mode
}

// Loop advances the field once per display frame and paints the result.
// The host calls Tick from its update callback and Paint from its draw
// callback; both do nothing until Start and after Stop.
type Loop struct {
	field *particle.Field
	input *Input
	theme ThemeReader
	log   *zap.Logger

	particles     []particle.Particle
	width, height float64
	frame         particle.Frame
	tick          uint64

	surface Surface
	running bool
	stopped bool
}

func NewLoop(field *particle.Field, input *Input, tr ThemeReader, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{field: field, input: input, theme: tr, log: log}
}

// Start binds the loop to s. A nil surface leaves the loop idle.
func (l *Loop) Start(s Surface) error {
	if l.stopped {
		return ErrStopped
	}
	if s == nil {
		l.log.Error("particle loop not started", zap.Error(ErrNoSurface))
		return ErrNoSurface
	}
	l.surface = s
	l.running = true
	return nil
}

// Stop cancels the loop for good. Later Tick and Paint calls are no-ops.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.running = false
	l.surface = nil
	l.log.Debug("particle loop stopped", zap.Uint64("ticks", l.tick))
}

// Reset replaces the particle set and viewport bounds.
func (l *Loop) Reset(ps []particle.Particle, width, height int) {
	l.particles = ps
	l.width = float64(width)
	l.height = float64(height)
	l.frame = particle.Frame{Particles: ps}
}

// Recolor regenerates every particle's color for mode.
func (l *Loop) Recolor(mode theme.Mode) {
	l.particles = l.field.RegenerateColors(l.particles, mode)
	l.frame.Particles = l.particles
}

// Particles returns the current particle set.
func (l *Loop) Particles() []particle.Particle { return l.particles }

// Frame returns the draw instructions produced by the last Tick.
func (l *Loop) Frame() particle.Frame { return l.frame }

// Tick advances the field by one frame using the latest input and theme.
// It reports whether a frame was produced.
func (l *Loop) Tick() bool {
	if !l.running {
		return false
	}
	ptr, hover := l.input.State()
	l.frame = l.field.Advance(l.particles, particle.State{
		Tick:    l.tick,
		Width:   l.width,
		Height:  l.height,
		Pointer: ptr,
		Hover:   hover,
		Mode:    l.theme.Theme(),
	})
	l.particles = l.frame.Particles
	l.tick++
	return true
}

// Paint clears the surface and draws the last frame, links first so
// particles sit on top.
func (l *Loop) Paint() {
	if !l.running {
		return
	}
	s := l.surface
	s.Clear()
	for _, ln := range l.frame.Links {
		s.StrokeLine(ln.X0, ln.Y0, ln.X1, ln.Y1, ln.Width, ln.Color)
	}
	for _, c := range l.frame.Circles {
		s.FillCircle(c.X, c.Y, c.R, c.Color)
	}
}
