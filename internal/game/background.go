package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

type palette struct {
	from, to color.NRGBA
	blobs    [4]color.NRGBA
}

var palettes = map[theme.Mode]palette{
	theme.Light: {
		from: color.NRGBA{R: 224, G: 231, B: 255, A: 255},
		to:   color.NRGBA{R: 236, G: 225, B: 255, A: 255},
		blobs: [4]color.NRGBA{
			{R: 165, G: 180, B: 252, A: 40}, // indigo-300
			{R: 216, G: 180, B: 254, A: 40}, // purple-300
			{R: 129, G: 140, B: 248, A: 40}, // indigo-400
			{R: 192, G: 132, B: 252, A: 40}, // purple-400
		},
	},
	theme.Dark: {
		from: color.NRGBA{R: 49, G: 46, B: 129, A: 255},
		to:   color.NRGBA{R: 76, G: 29, B: 149, A: 255},
		blobs: [4]color.NRGBA{
			{R: 236, G: 72, B: 153, A: 40}, // pink-500
			{R: 239, G: 68, B: 68, A: 40},  // red-500
			{R: 219, G: 39, B: 119, A: 40}, // pink-600
			{R: 220, G: 38, B: 38, A: 40},  // red-600
		},
	},
}

// drawBackground paints a slowly sweeping two-stop gradient with a soft
// blob in each corner.
func (g *Game) drawBackground(screen *ebiten.Image) {
	p := palettes[g.store.Theme()]
	w, h := float64(g.width), float64(g.height)
	if h <= 0 || w <= 0 {
		return
	}

	phase := float64(g.tick) * config.GradientSpeed
	for y := 0; y < g.height; y += 2 {
		ratio := float64(y) / h
		t := 0.5 + 0.5*math.Sin(phase+ratio*math.Pi)
		c := blend(p.from, p.to, t)
		vector.StrokeLine(screen, 0, float32(y)+1, float32(w), float32(y)+1, 2, c, false)
	}

	corners := [4][2]float64{{0, 0}, {w, h}, {0, h}, {w, 0}}
	for i, pos := range corners {
		radius := 128.0
		if i >= 2 {
			radius = 96
		}
		pulse := 1 + 0.1*math.Sin(phase*4+float64(i)*math.Pi/2)
		for ring := 4; ring >= 1; ring-- {
			vector.DrawFilledCircle(screen, float32(pos[0]), float32(pos[1]),
				float32(radius*pulse*float64(ring)/4), p.blobs[i], true)
		}
	}
}
