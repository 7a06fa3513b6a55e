package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
	"github.com/vovakirdan/parallax-runner/internal/physics"
	"github.com/vovakirdan/parallax-runner/internal/registry"
)

// CustomEnvironment names runs played on layers listed in the configuration.
const CustomEnvironment = "custom"

// LayersFromConfig resolves the parallax layers: explicit layers win over
// the registered environment preset. It returns the environment name used
// for run history.
func LayersFromConfig(cfg config.ParallaxConfig) ([]parallax.Layer, string, error) {
	if len(cfg.Layers) == 0 {
		env, err := registry.Create(cfg.Environment)
		if err != nil {
			return nil, "", err
		}
		return env.Layers(), env.ID(), nil
	}

	layers := make([]parallax.Layer, 0, len(cfg.Layers))
	for i, lc := range cfg.Layers {
		tint := core.White
		if lc.Tint != "" {
			c, err := core.ParseHex(lc.Tint)
			if err != nil {
				return nil, "", fmt.Errorf("parallax.layers[%d]: %w", i, err)
			}
			tint = c
		}
		layers = append(layers, parallax.Layer{
			Name:             fmt.Sprintf("layer-%d", i),
			Speed:            lc.Speed.Core(),
			Path:             lc.Path,
			TileSize:         lc.TileSize.Core(),
			Scale:            lc.Scale,
			Z:                lc.Z,
			Position:         lc.Position.Core(),
			TransitionFactor: lc.TransitionFactor,
			Tint:             tint,
		})
	}
	return layers, CustomEnvironment, nil
}

// ValidateEnvironment resolves the configured layers and checks that they
// can tile the viewport, without building anything.
func ValidateEnvironment(cfg config.Config) error {
	layers, env, err := LayersFromConfig(cfg.Parallax)
	if err != nil {
		return fmt.Errorf("game: environment: %w", err)
	}
	if _, err := parallax.ParsePolicy(cfg.Parallax.Recycle); err != nil {
		return fmt.Errorf("game: environment: %w", err)
	}
	res := parallax.Resource{Layers: layers, Count: cfg.Parallax.Count}
	if err := parallax.Validate(res, core.V(cfg.Viewport.Width, cfg.Viewport.Height)); err != nil {
		return fmt.Errorf("game: environment %q: %w", env, err)
	}
	return nil
}

// setupEnvironment builds the parallax engine, the floor and the platform
// marker. It runs once, on the first MainMenu entry.
func (r *Runner) setupEnvironment() error {
	cfg := r.cfg
	layers, env, err := LayersFromConfig(cfg.Parallax)
	if err != nil {
		return fmt.Errorf("game: environment: %w", err)
	}
	policy, err := parallax.ParsePolicy(cfg.Parallax.Recycle)
	if err != nil {
		return fmt.Errorf("game: environment: %w", err)
	}

	engine, err := parallax.New(parallax.Resource{
		Layers:      layers,
		Count:       cfg.Parallax.Count,
		GlobalSpeed: r.globalSpeed(),
	}, r.viewport, parallax.WithPolicy(policy), parallax.WithLogger(r.logger))
	if err != nil {
		return fmt.Errorf("game: environment %q: %w", env, err)
	}

	halfW := r.viewport.X / 2
	if cfg.World.FloorUnbounded {
		halfW = math.Inf(1)
	}
	floorPos := core.V(0, -(r.viewport.Y * cfg.Game.FloorMultiplier))
	floor, err := r.world.CreateBody(floorPos, physics.Box{HalfW: halfW, HalfH: cfg.World.FloorHalfHeight}, physics.Fixed)
	if err != nil {
		return fmt.Errorf("game: floor: %w", err)
	}
	floor.Z = cfg.World.FloorZ

	r.parallax = engine
	r.env = env
	r.floor = floor
	r.marker = core.V(-(r.viewport.X * cfg.World.PlatformMarkerX), floor.Rect().Top())
	r.logger.Info("environment ready",
		"env", env,
		"layers", len(engine.Layers()),
		"tiles", len(engine.Tiles()),
		"floor_y", floorPos.Y,
	)
	return nil
}

// globalSpeed returns the parallax global speed: the configured scalar, or
// the player's forward speed when it is zero.
func (r *Runner) globalSpeed() float64 {
	if r.cfg.Parallax.GlobalSpeed != 0 {
		return r.cfg.Parallax.GlobalSpeed
	}
	return r.player.Speed()
}
