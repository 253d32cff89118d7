// Package particle simulates the drifting, pulsing, pointer-reactive
// particle field and produces the draw instructions for each frame.
package particle

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-portfolio/internal/config"
)

// Particle is a single point in the field. BaseSize never changes after
// creation; Size is what gets drawn.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	BaseSize  float64
	Size      float64
	Color     Color
	PulseRate float64
	PulseDir  int // +1 growing, -1 shrinking
}

// Large reports whether p belongs to the large, pointer-attracted group.
func (p Particle) Large() bool { return p.BaseSize > config.LargeThreshold }

// Speed is the velocity magnitude.
func (p Particle) Speed() float64 { return math.Hypot(p.VX, p.VY) }

// MaxSpeed is the velocity cap for a particle of the given base size.
func MaxSpeed(baseSize float64) float64 {
	if baseSize > config.LargeThreshold {
		return config.BaseMaxSpeed + config.LargeSpeedBonus
	}
	return config.BaseMaxSpeed
}

// Count is the number of particles for a viewport, one per ParticleArea
// pixels, capped at MaxParticles.
func Count(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n := width * height / config.ParticleArea
	if n > config.MaxParticles {
		return config.MaxParticles
	}
	return n
}

// baseSize draws from the bimodal size distribution: mostly [0.5,3.5),
// the rest [4,10).
func baseSize(rng *rand.Rand) float64 {
	if rng.Float64() < config.SmallShare {
		return rng.Float64()*3 + 0.5
	}
	return rng.Float64()*6 + 4
}

// symmetric returns a value uniform in [-r, r).
func symmetric(rng *rand.Rand, r float64) float64 {
	return (rng.Float64()*2 - 1) * r
}
