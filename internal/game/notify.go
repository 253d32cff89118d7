package game

import (
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/contact"
)

// ShowError pops a modal error dialog. Used when the window cannot start.
func ShowError(title, text string) error {
	return zenity.Error(text, zenity.Title(title), zenity.ErrorIcon)
}

// activate runs a clicked card row's action without blocking the frame.
func (g *Game) activate(e entry) {
	row := contact.Entry{Label: e.label, Value: e.value, Link: e.link}
	go func() {
		if err := g.contact.Activate(row); err != nil {
			g.log.Warn("card action failed", zap.String("label", row.Label), zap.Error(err))
		}
	}()
}
