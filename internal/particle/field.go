package particle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// State is everything Advance reads besides the particles themselves.
type State struct {
	Tick    uint64
	Width   float64
	Height  float64
	Pointer Point
	Hover   bool
	Mode    theme.Mode
}

// Circle is a filled disc draw instruction.
type Circle struct {
	X, Y, R float64
	Color   Color
}

// Link is a connecting line draw instruction.
type Link struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          Color
}

// Frame is the outcome of one Advance: the next particle set and what to draw.
type Frame struct {
	Particles []Particle
	Circles   []Circle
	Links     []Link
}

// Field generates and advances particle sets. All randomness comes from
// its source, so a seeded Field is reproducible.
type Field struct {
	rng *rand.Rand
}

// NewField returns a Field drawing from rng, or from a time-seeded source
// when rng is nil.
func NewField(rng *rand.Rand) *Field {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return &Field{rng: rng}
}

// Initialize creates a complete particle set for a width x height viewport.
func (f *Field) Initialize(width, height int, mode theme.Mode) []Particle {
	n := Count(width, height)
	out := make([]Particle, n)
	for i := range out {
		size := baseSize(f.rng)
		out[i] = Particle{
			X:         f.rng.Float64() * float64(width),
			Y:         f.rng.Float64() * float64(height),
			VX:        symmetric(f.rng, config.SpeedFactor),
			VY:        symmetric(f.rng, config.SpeedFactor),
			BaseSize:  size,
			Size:      size,
			Color:     paletteColor(f.rng, mode),
			PulseRate: f.rng.Float64()*0.03 + 0.01,
			PulseDir:  1,
		}
	}
	return out
}

// RegenerateColors returns a copy of ps with a fresh palette color for
// mode on every particle. Nothing else changes.
func (f *Field) RegenerateColors(ps []Particle, mode theme.Mode) []Particle {
	out := make([]Particle, len(ps))
	for i, p := range ps {
		p.Color = paletteColor(f.rng, mode)
		out[i] = p
	}
	return out
}

// Advance moves every particle one tick and returns the new set with its
// draw instructions. ps is not modified.
func (f *Field) Advance(ps []Particle, st State) Frame {
	fr := Frame{
		Particles: make([]Particle, len(ps)),
		Circles:   make([]Circle, 0, len(ps)),
	}

	pulse := st.Tick%config.PulseEvery == 0
	for i, p := range ps {
		p.X += p.VX + symmetric(f.rng, config.JitterRange)
		p.Y += p.VY + symmetric(f.rng, config.JitterRange)

		// Only bounce particles still heading out, so one that is already
		// turning back does not flip again.
		if (p.X < 0 && p.VX < 0) || (p.X > st.Width && p.VX > 0) {
			p.VX = -p.VX + symmetric(f.rng, config.BounceJitter)
		}
		if (p.Y < 0 && p.VY < 0) || (p.Y > st.Height && p.VY > 0) {
			p.VY = -p.VY + symmetric(f.rng, config.BounceJitter)
		}

		if !(st.Hover && interact(&p, st.Pointer)) && pulse {
			step(&p)
		}

		limit(&p)

		fr.Particles[i] = p
		fr.Circles = append(fr.Circles, Circle{X: p.X, Y: p.Y, R: p.Size, Color: p.Color})
	}

	fr.Links = links(fr.Particles, st.Mode)
	return fr
}

// interact applies the pointer force when p is inside the interaction
// radius and reports whether it did.
func interact(p *Particle, ptr Point) bool {
	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	dist := math.Hypot(dx, dy)
	if dist >= config.InteractRadius || dist == 0 {
		return false
	}

	force := (config.InteractRadius - dist) / config.InteractRadius
	factor := config.RepelForce
	if p.Large() {
		factor = config.AttractForce
	}
	p.VX += dx / dist * force * factor
	p.VY += dy / dist * force * factor

	if !p.Large() {
		p.Size = p.BaseSize * (1 + force*config.RepelGrowth)
	}
	return true
}

// step advances the pulse oscillation, reversing at the size bounds.
func step(p *Particle) {
	if p.PulseDir >= 0 {
		p.Size += p.PulseRate
		if p.Size > p.BaseSize*config.PulseUpperBound {
			p.PulseDir = -1
		}
		return
	}
	p.Size -= p.PulseRate
	if p.Size < p.BaseSize*config.PulseLowerBound {
		p.PulseDir = 1
	}
}

func limit(p *Particle) {
	top := MaxSpeed(p.BaseSize)
	if s := p.Speed(); s > top {
		p.VX = p.VX / s * top
		p.VY = p.VY / s * top
	}
}

// links connects every pair closer than their connection radius. The
// pairwise scan is quadratic; the particle cap keeps it within budget.
func links(ps []Particle, mode theme.Mode) []Link {
	var out []Link
	for i := 0; i < len(ps); i++ {
		a := ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := ps[j]
			radius := config.LinkRadius
			if a.Large() || b.Large() {
				radius = config.LargeLinkRadius
			}
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist >= radius || dist == 0 {
				continue
			}

			bothLarge := a.Large() && b.Large()
			opacity := config.LinkOpacity * (1 - dist/radius) * (a.BaseSize + b.BaseSize) / 10
			if bothLarge {
				opacity *= config.LargeLinkBoost
			}
			out = append(out, Link{
				X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y,
				Width: config.LinkWidthFactor * math.Min(a.BaseSize, b.BaseSize),
				Color: linkColor(mode, bothLarge).WithAlpha(opacity),
			})
		}
	}
	return out
}
