package game

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/engine"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

const charWidth = 6 // debug font glyph width

type tab int

const (
	tabContact tab = iota
	tabSocial
)

// entry is a clickable row on the card. Rows with a link open it;
// the others copy their value.
type entry struct {
	label string
	value string
	link  string
	color color.NRGBA
}

// card is the profile panel: name, rotating title, bio and two tabs of rows.
type card struct {
	profile  config.ProfileConfig
	contacts []entry
	socials  []entry
	active   tab
	title    int

	// hit areas from the last layout
	tabs [2]image.Rectangle
	rows []image.Rectangle
	box  image.Rectangle
}

func newCard(p config.ProfileConfig) *card {
	c := &card{profile: p}
	add := func(list *[]entry, label, value, link string, clr color.NRGBA) {
		if value != "" {
			*list = append(*list, entry{label: label, value: value, link: link, color: clr})
		}
	}
	add(&c.contacts, "Email", p.Email, "", color.NRGBA{R: 239, G: 68, B: 68, A: 230})
	add(&c.contacts, "Phone", p.Phone, "", color.NRGBA{R: 34, G: 197, B: 94, A: 230})
	if p.WhatsApp != "" {
		add(&c.contacts, "WhatsApp", p.WhatsApp, "https://wa.me/"+p.WhatsApp, color.NRGBA{R: 22, G: 163, B: 74, A: 230})
	}
	add(&c.contacts, "Website", p.Website, p.Website, color.NRGBA{R: 59, G: 130, B: 246, A: 230})
	add(&c.contacts, "Fiverr", p.Fiverr, p.Fiverr, color.NRGBA{R: 29, G: 191, B: 115, A: 230})
	for _, s := range p.Socials {
		c.socials = append(c.socials, entry{
			label: s.Label,
			value: "@" + s.Username,
			link:  s.URL,
			color: color.NRGBA{R: 99, G: 102, B: 241, A: 230},
		})
	}
	return c
}

func (c *card) nextTab() {
	c.active = (c.active + 1) % 2
}

func (c *card) rotateTitle() {
	if len(c.profile.Titles) > 0 {
		c.title = (c.title + 1) % len(c.profile.Titles)
	}
}

func (c *card) rowsFor(t tab) []entry {
	if t == tabSocial {
		return c.socials
	}
	return c.contacts
}

// hit resolves a click: a tab switch, a row, or nothing.
func (c *card) hit(x, y int) (*entry, bool) {
	pt := image.Pt(x, y)
	for i, r := range c.tabs {
		if pt.In(r) {
			c.active = tab(i)
			return nil, true
		}
	}
	rows := c.rowsFor(c.active)
	for i, r := range c.rows {
		if pt.In(r) && i < len(rows) {
			return &rows[i], true
		}
	}
	return nil, pt.In(c.box)
}

func (c *card) bioLines() []string {
	return wrap(c.profile.Bio, (config.CardWidth-2*config.CardPadding)/charWidth)
}

// draw lays out and paints the card centered in a w x h viewport.
func (c *card) draw(screen *ebiten.Image, w, h int, mode theme.Mode, hoverX, hoverY int) {
	bio := c.bioLines()
	rows := c.rowsFor(c.active)
	height := config.CardPadding*2 + config.LineHeight*(3+len(bio)) + 12 +
		config.RowHeight + len(rows)*(config.RowHeight+6)

	x0 := (w - config.CardWidth) / 2
	y0 := (h - height) / 2
	c.box = image.Rect(x0, y0, x0+config.CardWidth, y0+height)

	panel := color.NRGBA{R: 15, G: 23, B: 42, A: 170}
	border := color.NRGBA{R: 255, G: 255, B: 255, A: 60}
	if mode == theme.Light {
		panel = color.NRGBA{R: 49, G: 46, B: 129, A: 150}
	}
	vector.DrawFilledRect(screen, float32(x0), float32(y0), config.CardWidth, float32(height), panel, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), config.CardWidth, float32(height), 1, border, false)

	x := x0 + config.CardPadding
	y := y0 + config.CardPadding
	ebitenutil.DebugPrintAt(screen, strings.ToUpper(c.profile.Name), x, y)
	y += config.LineHeight
	if len(c.profile.Titles) > 0 {
		ebitenutil.DebugPrintAt(screen, c.profile.Titles[c.title], x, y)
	}
	y += config.LineHeight
	if c.profile.Location != "" {
		ebitenutil.DebugPrintAt(screen, c.profile.Location, x, y)
	}
	y += config.LineHeight + 6
	for _, line := range bio {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += config.LineHeight
	}
	y += 6

	// Tabs
	tabW := (config.CardWidth - 2*config.CardPadding) / 2
	for i, name := range []string{"Contact", "Social"} {
		r := image.Rect(x+i*tabW, y, x+(i+1)*tabW, y+config.RowHeight-6)
		c.tabs[i] = r
		bg := color.NRGBA{R: 255, G: 255, B: 255, A: 25}
		if tab(i) == c.active {
			bg.A = 70
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		ebitenutil.DebugPrintAt(screen, name, r.Min.X+(tabW-len(name)*charWidth)/2, r.Min.Y+(r.Dy()-config.LineHeight)/2)
	}
	y += config.RowHeight

	c.rows = c.rows[:0]
	for _, e := range rows {
		r := image.Rect(x, y, x+config.CardWidth-2*config.CardPadding, y+config.RowHeight)
		c.rows = append(c.rows, r)
		bg := e.color
		if image.Pt(hoverX, hoverY).In(r) {
			bg = blend(bg, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.15)
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		ebitenutil.DebugPrintAt(screen, e.label, r.Min.X+8, r.Min.Y+2)
		ebitenutil.DebugPrintAt(screen, truncate(e.value, 40), r.Min.X+8, r.Min.Y+config.LineHeight)
		marker := "copy"
		if e.link != "" {
			marker = "open"
		}
		ebitenutil.DebugPrintAt(screen, marker, r.Max.X-len(marker)*charWidth-8, r.Min.Y+(r.Dy()-config.LineHeight)/2)
		y += config.RowHeight + 6
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

// toggleButton is the round theme switch in the top-right corner.
type toggleButton struct {
	hovered bool
	press   engine.Press
}

func (b *toggleButton) center(w int) (float32, float32) {
	r := float32(config.ToggleSize) / 2
	return float32(w-config.ToggleMargin) - r, float32(config.ToggleMargin) + r
}

func (b *toggleButton) contains(w, x, y int) bool {
	cx, cy := b.center(w)
	dx, dy := float64(float32(x)-cx), float64(float32(y)-cy)
	return math.Hypot(dx, dy) <= config.ToggleSize/2
}

// draw shows a moon in light mode and a sun in dark mode, the mode a click
// switches to.
func (b *toggleButton) draw(screen *ebiten.Image, w int, mode theme.Mode) {
	cx, cy := b.center(w)
	r := float32(config.ToggleSize) / 2

	bg := color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	if b.hovered {
		bg.A = 51
	}
	if b.press.Held() {
		bg.A = 80
	}
	vector.DrawFilledCircle(screen, cx, cy, r, bg, true)
	vector.StrokeCircle(screen, cx, cy, r, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 51}, true)

	if mode == theme.Light {
		fg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		vector.DrawFilledCircle(screen, cx, cy, r*0.45, fg, true)
		vector.DrawFilledCircle(screen, cx+r*0.22, cy-r*0.18, r*0.38, palettes[theme.Light].to, true)
		return
	}
	fg := color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	vector.DrawFilledCircle(screen, cx, cy, r*0.3, fg, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		x0, y0 := cx+float32(math.Cos(a))*r*0.42, cy+float32(math.Sin(a))*r*0.42
		x1, y1 := cx+float32(math.Cos(a))*r*0.6, cy+float32(math.Sin(a))*r*0.6
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, fg, true)
	}
}
