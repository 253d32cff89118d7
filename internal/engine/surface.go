// Package engine drives the particle field frame by frame: it tracks the
// pointer, rebuilds the field on resize and theme change, and paints each
// frame onto a Surface. It has no windowing dependency.
package engine

import "github.com/iburimskiy/particle-portfolio/internal/particle"

// Surface is an immediate-mode 2D drawing target sized to the viewport.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c particle.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c particle.Color)
}
