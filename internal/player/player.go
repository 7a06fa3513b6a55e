// Package player implements the player controller: it turns logical input
// into movement of the player's physics body while the game is running.
package player

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parallax-runner/internal/camera"
	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/physics"
	"github.com/vovakirdan/parallax-runner/internal/state"
)

// Tuning holds the controller parameters.
type Tuning struct {
	Speed              float64     // forward speed and left/right nudge per tick
	JumpForce          float64     // vertical impulse, units per second
	JumpRequiresGround bool        // ignore Jump while airborne
	Box                physics.Box // collider half extents
	Size               core.Vec2   // sprite size
	StartFraction      float64     // start x as a fraction of viewport width, left of centre
	Z                  float64
	Ramp               config.RampConfig
}

// TuningFromConfig extracts the controller tuning from the configuration.
func TuningFromConfig(cfg config.Config) Tuning {
	return Tuning{
		Speed:              cfg.Player.Speed,
		JumpForce:          cfg.Player.JumpForce,
		JumpRequiresGround: cfg.Player.JumpRequiresGround,
		Box:                physics.Box{HalfW: cfg.Game.PlayerBoxSizeX, HalfH: cfg.Game.PlayerBoxSizeY},
		Size:               core.V(cfg.Game.PlayerSizeX, cfg.Game.PlayerSizeY),
		StartFraction:      cfg.Game.PlayerInitialPosX,
		Z:                  cfg.Player.Z,
		Ramp:               cfg.Player.Ramp,
	}
}

// Context is the read-only view of the frame a controller update runs in.
type Context struct {
	State  state.GameState
	Camera *camera.Rig // nil when no camera is present
}

// Result describes what an update did.
type Result struct {
	Trigger     state.Trigger // valid when Triggered
	Triggered   bool
	Moved       bool
	Jumped      bool
	Delta       core.Vec2 // horizontal displacement applied this tick
	CameraDelta core.Vec2 // camera - player - offset after the move
	HasCamera   bool
}

// Controller drives the player body.
type Controller struct {
	tuning   Tuning
	ramp     *config.Ramp
	world    *physics.World
	body     *physics.Body
	start    core.Vec2
	distance float64
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller. The player does not exist until Spawn.
func New(t Tuning, opts ...Option) *Controller {
	c := &Controller{
		tuning: t,
		ramp:   config.NewRamp(t.Ramp),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartPosition returns the spawn point for a viewport size.
func (c *Controller) StartPosition(viewport core.Vec2) core.Vec2 {
	return core.V(-(viewport.X * c.tuning.StartFraction), 0)
}

// Spawn creates the player body. It runs at most once; later calls are
// no-ops. A non-positive collider fails with physics.ErrInvalidShape.
func (c *Controller) Spawn(world *physics.World, viewport core.Vec2) error {
	if c.body != nil {
		return nil
	}
	start := c.StartPosition(viewport)
	body, err := world.CreateBody(start, c.tuning.Box, physics.Dynamic)
	if err != nil {
		return err
	}
	body.Z = c.tuning.Z
	c.world = world
	c.body = body
	c.start = start
	c.logger.Info("player spawned", "x", start.X, "y", start.Y, "box", c.tuning.Box)
	return nil
}

// Spawned reports whether the player exists.
func (c *Controller) Spawned() bool {
	return c.body != nil
}

// Body returns the player body, or nil before Spawn.
func (c *Controller) Body() *physics.Body {
	return c.body
}

// Position returns the player position.
func (c *Controller) Position() (core.Vec2, bool) {
	if c.body == nil {
		return core.Vec2{}, false
	}
	return c.body.Position, true
}

// Start returns where the player was spawned.
func (c *Controller) Start() core.Vec2 {
	return c.start
}

// Distance returns the total horizontal distance moved since spawn.
func (c *Controller) Distance() float64 {
	return c.distance
}

// Speed returns the current forward speed.
func (c *Controller) Speed() float64 {
	return c.ramp.Speed(c.tuning.Speed, c.distance)
}

// Tuning returns the controller parameters.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Update applies one tick of input. Nothing happens outside InGame or
// before Spawn. A Pause edge produces the PauseEdge trigger and no movement.
// MoveLeft and MoveRight are level actions nudging the position; the forward
// advance is applied every tick regardless of input. Jump is an edge action
// adding a vertical impulse to the body.
func (c *Controller) Update(ctx Context, in core.InputFrame) Result {
	var res Result
	if ctx.State != state.InGame || c.body == nil {
		return res
	}

	if in.JustPressed(core.ActionPause) {
		res.Trigger = state.PauseEdge
		res.Triggered = true
		return res
	}

	dx := c.Speed()
	if in.Pressed(core.ActionMoveLeft) {
		dx -= c.tuning.Speed
	}
	if in.Pressed(core.ActionMoveRight) {
		dx += c.tuning.Speed
	}

	pos := c.body.Position
	pos.X += dx
	// SetTransform only fails for unknown or fixed bodies.
	_ = c.world.SetTransform(c.body.ID, pos)
	c.distance += dx
	res.Delta = core.V(dx, 0)
	res.Moved = dx != 0

	if in.JustPressed(core.ActionJump) && (!c.tuning.JumpRequiresGround || c.body.Grounded) {
		_ = c.world.ApplyImpulse(c.body.ID, core.V(0, c.tuning.JumpForce))
		res.Jumped = true
	}

	if ctx.Camera != nil {
		res.CameraDelta = ctx.Camera.Correction(c.body.Position)
		res.HasCamera = true
	}
	return res
}
