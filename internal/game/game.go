// Package game hosts the particle background and profile card in an
// ebiten window.
package game

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/contact"
	"github.com/iburimskiy/particle-portfolio/internal/engine"
	"github.com/iburimskiy/particle-portfolio/internal/particle"
	"github.com/iburimskiy/particle-portfolio/internal/sound"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// Options wires the game to its collaborators. Everything but Store and
// Field is optional.
type Options struct {
	Store    *theme.Store
	Field    *particle.Field
	Sound    *sound.Player
	Contact  *contact.Handler
	Window   config.WindowConfig
	Profile  config.ProfileConfig
	Logger   *zap.Logger
}

// Game implements ebiten.Game.
type Game struct {
	ctx      context.Context
	store    *theme.Store
	input    *engine.Input
	loop     *engine.Loop
	watcher  *engine.Watcher
	sound    *sound.Player
	contact  *contact.Handler
	log      *zap.Logger

	layer  *layerSurface
	card   *card
	toggle toggleButton

	width, height int
	tick          uint64
	closed        bool
}

// New builds the game and starts its particle loop.
func New(ctx context.Context, opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	handler := opts.Contact
	if handler == nil {
		handler = contact.NewHandler(contact.Options{Logger: log})
	}
	player := opts.Sound
	if player == nil {
		player = sound.NewPlayer(nil, 0)
	}

	input := engine.NewInput()
	loop := engine.NewLoop(opts.Field, input, opts.Store, log)
	g := &Game{
		ctx:      ctx,
		store:    opts.Store,
		input:    input,
		loop:     loop,
		watcher:  engine.NewWatcher(loop, opts.Field, opts.Store, log),
		sound:    player,
		contact:  handler,
		log:      log,
		layer:    &layerSurface{},
		card:     newCard(opts.Profile),
		width:    opts.Window.Width,
		height:   opts.Window.Height,
	}
	if err := loop.Start(g.layer); err != nil {
		g.watcher.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		g.shutdown()
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.shutdown()
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && mouseX >= 0 && mouseY >= 0 && mouseX < g.width && mouseY < g.height
	g.input.Track(float64(mouseX), float64(mouseY), inside)

	// Toggle button: press and release over it
	g.toggle.hovered = g.toggle.contains(g.width, mouseX, mouseY)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggle.press.Down(g.toggle.hovered)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked, free := g.toggle.press.Up(g.toggle.hovered)
		if clicked {
			g.toggleTheme()
		} else if free {
			if e, ok := g.card.hit(mouseX, mouseY); ok && e != nil {
				g.activate(*e)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.card.nextTab()
	}

	g.tick++
	if g.tick%config.TitleRotateTicks == 0 {
		g.card.rotateTitle()
	}
	g.loop.Tick()
	return nil
}

func (g *Game) toggleTheme() {
	mode := g.store.Toggle()
	g.sound.Click(mode)
	g.log.Info("theme toggled", zap.Stringer("mode", mode))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	g.layer.fit(g.width, g.height)
	g.loop.Paint()
	screen.DrawImage(g.layer.img, nil)

	mode := g.store.Theme()
	mouseX, mouseY := ebiten.CursorPosition()
	g.card.draw(screen, g.width, g.height, mode, mouseX, mouseY)
	g.toggle.draw(screen, g.width, mode)
}

// Layout follows the window size; a change rebuilds the particle field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.watcher.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) shutdown() {
	if g.closed {
		return
	}
	g.closed = true
	g.loop.Stop()
	g.watcher.Close()
	g.sound.Close()
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	g, err := New(ctx, opts)
	if err != nil {
		return err
	}
	defer g.shutdown()

	ebiten.SetWindowSize(opts.Window.Width, opts.Window.Height)
	ebiten.SetWindowTitle(opts.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
