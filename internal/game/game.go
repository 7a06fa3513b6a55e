// Package game wires the runner subsystems into one frame loop. A Runner is
// driven by a platform (terminal or window) calling Step once per tick.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parallax-runner/internal/camera"
	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
	"github.com/vovakirdan/parallax-runner/internal/physics"
	"github.com/vovakirdan/parallax-runner/internal/player"
	"github.com/vovakirdan/parallax-runner/internal/state"
	"github.com/vovakirdan/parallax-runner/internal/transition"
)

// ErrNotReady is returned by operations that need the configuration
// before it has been loaded.
var ErrNotReady = errors.New("game: configuration not loaded")

// Once keys.
const (
	onceEnvironment = "environment"
	oncePlayer      = "player"
)

// Hover marker pulse.
const hoverPeriod = 500 * time.Millisecond

// StepResult describes one tick.
type StepResult struct {
	State    state.GameState
	Changed  bool // the state changed during the tick
	Quit     bool // the process should exit with code 0
	Recycles int  // parallax tiles moved this tick
	Player   player.Result
	Summary  *RunSummary // set when an InGame session ended since the last tick
}

// RunSummary describes one InGame session.
type RunSummary struct {
	Environment string
	Distance    float64
	Ticks       int
}

// Runner owns every subsystem and runs them in a fixed order each tick.
// It is not safe for concurrent use.
type Runner struct {
	source config.Source
	cfg    *config.Config
	logger *log.Logger
	music  Music

	machine  *state.Machine
	world    *physics.World
	player   *player.Controller
	parallax *parallax.Engine
	camera   *camera.Rig
	anim     *transition.Animator
	menu     *Menu
	splash   *transition.Pulse
	hover    *transition.Pulse

	viewport core.Vec2
	env      string
	floor    *physics.Body
	marker   core.Vec2

	tick     uint64
	running  bool
	runTicks int
	runStart float64
	summary  *RunSummary

	splashText string
	splashMax  float64
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner logger. It is shared with the subsystems.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMusic sets the ambient music player.
func WithMusic(m Music) Option {
	return func(r *Runner) {
		if m != nil {
			r.music = m
		}
	}
}

// New creates a runner in the Splash state. Subsystems that depend on the
// configuration are built once src reports it ready.
func New(src config.Source, opts ...Option) *Runner {
	r := &Runner{
		source: src,
		logger: log.New(io.Discard),
		music:  silence{},
	}
	for _, opt := range opts {
		opt(r)
	}

	def := config.DefaultConfig().Splash
	r.splash = transition.NewPulse(core.White.WithAlpha(0), core.White,
		time.Duration(def.DurationMS)*time.Millisecond, transition.SineInOut)
	r.splashText = def.Text
	r.splashMax = def.CompleteAt

	r.machine = state.NewMachine(r.logger)
	r.machine.OnEnter(state.MainMenu, r.enterMainMenu)
	r.machine.OnExit(state.MainMenu, r.exitMainMenu)
	r.machine.OnEnter(state.InGame, r.enterInGame)
	r.machine.OnExit(state.InGame, r.exitInGame)
	return r
}

// Ready reports whether the configuration has been loaded.
func (r *Runner) Ready() bool {
	return r.cfg != nil
}

// Config returns the loaded configuration, or nil while loading.
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// State returns the current game state.
func (r *Runner) State() state.GameState {
	return r.machine.Current()
}

// Machine returns the state machine.
func (r *Runner) Machine() *state.Machine {
	return r.machine
}

// Player returns the player controller, or nil while loading.
func (r *Runner) Player() *player.Controller {
	return r.player
}

// Parallax returns the parallax engine, or nil before the environment is set up.
func (r *Runner) Parallax() *parallax.Engine {
	return r.parallax
}

// Camera returns the camera rig, or nil while loading.
func (r *Runner) Camera() *camera.Rig {
	return r.camera
}

// Animator returns the UI fade animator, or nil while loading.
func (r *Runner) Animator() *transition.Animator {
	return r.anim
}

// Menu returns the menu model, or nil while loading.
func (r *Runner) Menu() *Menu {
	return r.menu
}

// World returns the physics world, or nil while loading.
func (r *Runner) World() *physics.World {
	return r.world
}

// Environment returns the name of the active environment.
func (r *Runner) Environment() string {
	return r.env
}

// Request asks for a transition to any state, for states that have no
// trigger of their own such as Paused and GameOver.
func (r *Runner) Request(to state.GameState) error {
	if !r.Ready() {
		return ErrNotReady
	}
	req, err := r.machine.RequestTransition(to)
	if err != nil {
		return err
	}
	_, err = r.machine.Apply(req)
	return err
}

// Step advances the game by one tick: resource gate and state evaluation,
// then input and player, physics, parallax and camera, and finally UI
// animation. Setup failures are returned as errors and are fatal.
func (r *Runner) Step(in core.InputFrame, dt time.Duration) (StepResult, error) {
	r.tick++
	from := r.machine.Current()

	result := func() StepResult {
		summary := r.summary
		r.summary = nil
		return StepResult{
			State:   r.machine.Current(),
			Changed: r.machine.Current() != from,
			Quit:    r.machine.Quitting(),
			Summary: summary,
		}
	}

	if err := r.poll(); err != nil {
		return result(), err
	}

	if in.JustPressed(core.ActionQuit) {
		if err := r.fire(state.QuitAction); err != nil {
			return result(), err
		}
	}
	if r.machine.Quitting() {
		r.endRun()
		return result(), nil
	}

	if err := r.updateSplash(dt); err != nil {
		return result(), err
	}
	if r.machine.Current() == state.MainMenu {
		if err := r.updateMenu(in); err != nil {
			return result(), err
		}
		if r.machine.Quitting() {
			return result(), nil
		}
	}
	if !r.Ready() {
		return result(), nil
	}

	active := r.machine.Current()
	if active != from {
		// The press that changed state this tick does not also jump.
		in = in.Without(core.ActionJump)
	}
	scrolling := active == state.MainMenu || active == state.InGame

	pres := r.player.Update(player.Context{State: active, Camera: r.camera}, in)
	if pres.Triggered {
		if err := r.fire(pres.Trigger); err != nil {
			return result(), err
		}
	}
	if active == state.InGame {
		r.runTicks++
	}

	if scrolling {
		r.world.Step(dt.Seconds())
	}

	var recycles int
	if pos, ok := r.player.Position(); ok && scrolling {
		if r.parallax != nil {
			if r.cfg.Parallax.GlobalSpeed == 0 {
				r.parallax.SetGlobalSpeed(r.player.Speed())
			}
			recycles = r.parallax.Update(pos.X)
		}
		r.camera.Update(pos)
	}

	r.anim.Tick(dt)
	if r.machine.Current() != state.MainMenu && !r.anim.Busy() && len(r.anim.Elements()) > 0 {
		r.anim.Clear()
	}
	r.hover.Advance(dt)

	res := result()
	res.Player = pres
	res.Recycles = recycles
	return res, nil
}

// fire resolves a trigger against the current state and applies it. A
// trigger without a target is logged by the machine and ignored.
func (r *Runner) fire(t state.Trigger) error {
	req, err := r.machine.Fire(t)
	if errors.Is(err, state.ErrInvalidTransition) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.machine.Apply(req)
	return err
}

// poll checks the configuration source and builds the dependent
// subsystems the first time it is ready.
func (r *Runner) poll() error {
	if r.cfg != nil {
		return nil
	}
	cfg, err := r.source.Poll()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if cfg == nil {
		return nil
	}
	return r.setup(*cfg)
}

func (r *Runner) setup(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	camPolicy, err := camera.ParsePolicy(cfg.Camera.Policy)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	ease, err := transition.EaseByName(cfg.Transition.Ease)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := ValidateEnvironment(cfg); err != nil {
		return err
	}

	r.cfg = &cfg
	r.viewport = core.V(cfg.Viewport.Width, cfg.Viewport.Height)
	r.world = physics.NewWorld(cfg.World.Gravity * cfg.Game.GravityMultiplier)
	r.player = player.New(player.TuningFromConfig(cfg), player.WithLogger(r.logger))

	var offset core.Vec2
	if cfg.Camera.Offset != nil {
		offset = cfg.Camera.Offset.Core()
	}
	r.camera = camera.NewRig(camPolicy, offset)

	r.anim = transition.NewAnimator(transition.Options{
		Duration:      time.Duration(cfg.Transition.DurationMS) * time.Millisecond,
		Ease:          ease,
		ShowThreshold: cfg.Transition.ShowThreshold,
		HideThreshold: cfg.Transition.HideThreshold,
	})
	r.hover = transition.NewPulse(core.White.WithAlpha(0.35), core.White, hoverPeriod, transition.CubicInOut)
	r.menu = NewMenu(cfg.Menu, camPolicy.String())

	r.splash.Period = time.Duration(cfg.Splash.DurationMS) * time.Millisecond
	r.splashText = cfg.Splash.Text
	r.splashMax = cfg.Splash.CompleteAt

	r.logger.Info("configuration ready",
		"viewport", fmt.Sprintf("%.0fx%.0f", r.viewport.X, r.viewport.Y),
		"gravity", r.world.Gravity(),
		"camera", camPolicy,
	)
	return nil
}

// updateSplash advances the splash pulse and completes the splash once its
// first leg has reached the completion point and the configuration is loaded.
func (r *Runner) updateSplash(dt time.Duration) error {
	if r.machine.Current() != state.Splash {
		return nil
	}
	r.splash.Advance(dt)
	if !r.Ready() {
		return nil
	}
	if r.splash.Leg() > 0 || r.splash.Progress() >= r.splashMax {
		return r.fire(state.SplashCompleted)
	}
	return nil
}

func (r *Runner) updateMenu(in core.InputFrame) error {
	if r.menu == nil {
		return nil
	}
	switch r.menu.Handle(in) {
	case MenuMoved:
		r.hover.Reset()
	case MenuPlay:
		return r.fire(state.MenuPlay)
	case MenuQuit:
		return r.fire(state.MenuQuit)
	case MenuPageChanged:
		r.hover.Reset()
		r.showMenu()
	case MenuSettingChanged:
		r.applySettings()
		r.showMenu()
	}
	return nil
}

func (r *Runner) applySettings() {
	if p, err := camera.ParsePolicy(r.menu.Setting(SettingCamera)); err == nil && p != r.camera.Policy {
		r.camera.Policy = p
		r.logger.Info("camera policy changed", "policy", p)
	}
	if r.menu.Setting(SettingMusic) == "off" {
		r.music.Stop()
	} else {
		r.playMusic()
	}
}

func (r *Runner) playMusic() {
	if r.menu.Setting(SettingMusic) == "off" {
		return
	}
	if err := r.music.Play(r.cfg.Game.AudioVolume); err != nil {
		r.logger.Warn("music unavailable", "err", err)
	}
}

// showMenu replaces the animated elements with the current menu page and
// fades them in.
func (r *Runner) showMenu() {
	r.anim.Clear()
	for _, l := range r.menu.Lines() {
		r.anim.Add(transition.NewElement(l.ID, l.Text, core.White))
	}
	r.anim.Show()
}

func (r *Runner) enterMainMenu(from, _ state.GameState) error {
	if err := r.machine.Once(onceEnvironment, r.setupEnvironment); err != nil {
		return err
	}
	if r.cfg.Player.SpawnOn == config.SpawnOnMainMenu {
		if err := r.machine.Once(oncePlayer, r.spawnPlayer); err != nil {
			return err
		}
	}
	r.menu.Reset()
	r.hover.Reset()
	r.showMenu()
	r.playMusic()
	return nil
}

func (r *Runner) exitMainMenu(_, _ state.GameState) error {
	r.anim.Hide()
	return nil
}

func (r *Runner) enterInGame(_, _ state.GameState) error {
	if err := r.machine.Once(onceEnvironment, r.setupEnvironment); err != nil {
		return err
	}
	if err := r.machine.Once(oncePlayer, r.spawnPlayer); err != nil {
		return err
	}
	r.running = true
	r.runTicks = 0
	r.runStart = r.player.Distance()
	return nil
}

func (r *Runner) exitInGame(_, _ state.GameState) error {
	r.endRun()
	return nil
}

// endRun records the summary of the InGame session that just ended.
func (r *Runner) endRun() {
	if !r.running {
		return
	}
	r.running = false
	r.summary = &RunSummary{
		Environment: r.env,
		Distance:    r.player.Distance() - r.runStart,
		Ticks:       r.runTicks,
	}
	r.logger.Info("run finished",
		"env", r.summary.Environment,
		"distance", fmt.Sprintf("%.1f", r.summary.Distance),
		"ticks", r.summary.Ticks,
	)
}

func (r *Runner) spawnPlayer() error {
	if err := r.player.Spawn(r.world, r.viewport); err != nil {
		return fmt.Errorf("game: spawn player: %w", err)
	}
	if r.cfg.Camera.Offset == nil {
		r.camera.Offset = core.V(r.viewport.X*r.player.Tuning().StartFraction, 0)
	}
	r.camera.Update(r.player.Start())
	return nil
}
