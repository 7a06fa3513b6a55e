// Package window runs the game in a desktop window with Ebitengine. It maps
// keyboard and gamepad state to actions, loads layer images and music, and
// draws snapshots with vector fills and text.
package window

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

const fontSize = 32

// Options configures the window.
type Options struct {
	Title  string
	TPS    int
	Assets string // root for layer images and music
	Music  *Music // receives the configured track once loaded
	Store  *storage.Store
	Logger *log.Logger
}

// Game adapts a game.Runner to ebiten.Game.
type Game struct {
	runner   *game.Runner
	opts     Options
	bindings Bindings
	bound    bool
	device   ebitenDevice
	tracker  *core.InputTracker
	renderer *Renderer
	logger   *log.Logger
}

// NewGame creates the adapter. Default bindings apply until the
// configuration has loaded.
func NewGame(runner *game.Runner, opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: fontSize}

	bindings, err := NewBindings(config.DefaultConfig().Input)
	if err != nil {
		return nil, err
	}

	return &Game{
		runner:   runner,
		opts:     opts,
		bindings: bindings,
		tracker:  core.NewInputTracker(),
		renderer: NewRenderer(NewImages(opts.Assets, opts.Logger), face),
		logger:   opts.Logger,
	}, nil
}

// Update runs one simulation step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.device.poll()
	held := g.bindings.Held(&g.device)
	if ebiten.IsWindowBeingClosed() {
		// Closing the window quits through the state machine so the run is recorded.
		held = append(held, core.ActionQuit)
	}
	res, err := g.runner.Step(g.tracker.Frame(held...), time.Second/time.Duration(g.opts.TPS))
	if err != nil {
		return err
	}

	if !g.bound && g.runner.Ready() {
		g.bind(g.runner.Config())
	}
	if res.Summary != nil {
		g.saveRun(*res.Summary)
	}
	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) bind(cfg *config.Config) {
	g.bound = true
	b, err := NewBindings(cfg.Input)
	if err != nil {
		g.logger.Warn("some bindings ignored", "err", err)
	}
	g.bindings = b
	if g.opts.Music != nil {
		g.opts.Music.SetTrack(cfg.Audio.Music)
	}
}

func (g *Game) saveRun(s game.RunSummary) {
	if g.opts.Store == nil || s.Ticks == 0 {
		return
	}
	if _, err := g.opts.Store.SaveRun(s.Environment, s.Distance, s.Ticks); err != nil {
		g.logger.Warn("run not saved", "err", err)
		return
	}
	g.logger.Debug("run saved", "env", s.Environment, "distance", s.Distance)
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.runner.Snapshot())
}

// Layout keeps the logical screen at the configured viewport size.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.viewport()
	return w, h
}

func (g *Game) viewport() (int, int) {
	if g.runner.Ready() {
		vp := g.runner.Config().Viewport
		return int(vp.Width), int(vp.Height)
	}
	vp := config.DefaultConfig().Viewport
	return int(vp.Width), int(vp.Height)
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(runner *game.Runner, opts Options) error {
	g, err := NewGame(runner, opts)
	if err != nil {
		return err
	}

	w, h := g.viewport()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
