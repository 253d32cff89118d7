package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-portfolio/internal/particle"
)

// layerSurface paints particles onto a transparent layer that is composited
// over the background, so clearing it leaves the gradient intact.
type layerSurface struct {
	img *ebiten.Image
}

// fit makes the layer match the viewport, recreating it when the size changes.
func (s *layerSurface) fit(w, h int) {
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (s *layerSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *layerSurface) FillCircle(x, y, r float64, c particle.Color) {
	if s.img == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), toNRGBA(c), true)
}

func (s *layerSurface) StrokeLine(x0, y0, x1, y1, width float64, c particle.Color) {
	if s.img == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(c), true)
}
