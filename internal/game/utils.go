package game

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-portfolio/internal/particle"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toNRGBA converts a structured particle color for drawing.
func toNRGBA(c particle.Color) color.NRGBA {
	r, g, b := colorful.Hsl(c.H, clamp01(c.S), clamp01(c.L)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// blend mixes two colors in RGB space, t in [0,1].
func blend(a, b color.NRGBA, t float64) color.NRGBA {
	ca, _ := colorful.MakeColor(color.NRGBA{R: a.R, G: a.G, B: a.B, A: 255})
	cb, _ := colorful.MakeColor(color.NRGBA{R: b.R, G: b.G, B: b.B, A: 255})
	r, g, bl := ca.BlendRgb(cb, clamp01(t)).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*clamp01(t)
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// wrap splits s into lines of at most width runes, breaking on spaces.
func wrap(s string, width int) []string {
	var lines []string
	var line []rune
	word := []rune{}
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	push := func() {
		if len(word) == 0 {
			return
		}
		if len(line) > 0 && len(line)+1+len(word) > width {
			flush()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, word...)
		word = word[:0]
	}
	for _, r := range s {
		if r == ' ' || r == '\n' {
			push()
			continue
		}
		word = append(word, r)
	}
	push()
	flush()
	return lines
}
