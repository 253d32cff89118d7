package particle

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// Color is hue in degrees, saturation and lightness in [0,1], alpha in [0,1].
// It stays structured until a surface converts it for drawing.
type Color struct {
	H, S, L, A float64
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// fromRGB builds a Color from 8-bit channels.
func fromRGB(r, g, b uint8) Color {
	h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	return Color{H: h, S: s, L: l, A: 1}
}

var (
	darkLink       = fromRGB(255, 255, 255)
	darkLargeLink  = fromRGB(255, 215, 255)
	lightLink      = Color{H: 240, S: 0.7, L: 0.7, A: 1}
	lightLargeLink = fromRGB(100, 100, 255)
)

// linkColor picks the connection stroke for a pair; bothLarge selects the
// brighter (dark) or more saturated (light) variant.
func linkColor(mode theme.Mode, bothLarge bool) Color {
	switch {
	case mode.IsDark() && bothLarge:
		return darkLargeLink
	case mode.IsDark():
		return darkLink
	case bothLarge:
		return lightLargeLink
	default:
		return lightLink
	}
}

// between returns an integer drawn uniformly from [lo, lo+span).
func between(rng *rand.Rand, lo, span int) float64 {
	return float64(lo + rng.IntN(span))
}

// paletteColor draws a particle color for mode. One in ten is an accent.
func paletteColor(rng *rand.Rand, mode theme.Mode) Color {
	accent := rng.Float64() < config.AccentChance
	var h, s, l float64
	if mode.IsDark() {
		switch {
		case accent:
			h = between(rng, 40, 60) // yellows and oranges
		case rng.Float64() > 0.5:
			h = between(rng, 220, 60) // blues and purples
		default:
			h = between(rng, 300, 30) // pinks
		}
		s = between(rng, 70, 30)
		l = between(rng, 60, 20)
	} else {
		switch {
		case accent:
			h = between(rng, 180, 60) // deeper teals
		case rng.Float64() > 0.5:
			h = between(rng, 180, 60) // teals and light blues
		default:
			h = between(rng, 240, 40) // light purples
		}
		s = between(rng, 60, 40)
		l = between(rng, 70, 20)
	}
	return Color{H: h, S: s / 100, L: l / 100, A: rng.Float64()*0.3 + 0.1}
}
