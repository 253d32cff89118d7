package engine

import (
	"sync"

	"github.com/iburimskiy/particle-portfolio/internal/particle"
)

// Input records the pointer position and whether it is over the drawing
// surface. It never touches particles; the loop reads it each tick.
type Input struct {
	mu      sync.Mutex
	pointer particle.Point
	hover   bool
}

func NewInput() *Input { return &Input{} }

// Track feeds a polled pointer sample. It reports whether the pointer
// entered or left the surface.
func (in *Input) Track(x, y float64, inside bool) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pointer = particle.Point{X: x, Y: y}
	if inside == in.hover {
		return false
	}
	in.hover = inside
	return true
}

// State returns the pointer position and hover flag.
func (in *Input) State() (particle.Point, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.pointer, in.hover
}

// Press follows one mouse press on a control. A press that starts on the
// control owns the button until release, so releasing it elsewhere clicks
// nothing.
type Press struct {
	held bool
}

// Down records a button press; over reports whether it landed on the control.
func (p *Press) Down(over bool) {
	if over {
		p.held = true
	}
}

// Up ends the press. clicked is true when the press started and ended on the
// control. free is true when the press never belonged to it, so the release
// may act on whatever else is under the pointer.
func (p *Press) Up(over bool) (clicked, free bool) {
	clicked = p.held && over
	free = !p.held
	p.held = false
	return clicked, free
}

// Held reports whether a press on the control is in progress.
func (p *Press) Held() bool { return p.held }
