package config

import (
	"errors"
	"fmt"
	"math"
)

// Parallax recycle policies.
const (
	RecycleNudge = "nudge"
	RecycleWrap  = "wrap"
)

// Camera policies.
const (
	CameraStatic  = "static"
	CameraFollow  = "follow"
	CameraFollowX = "follow-x"
)

// Easing names accepted by transition.ease.
var easeNames = map[string]bool{
	"linear":           true,
	"quadratic-in":     true,
	"quadratic-out":    true,
	"quadratic-in-out": true,
	"cubic-in-out":     true,
	"sine-in-out":      true,
}

// Validate checks the configuration. All problems are reported together;
// each wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			fail("%s must be > 0, got %v", name, v)
		}
	}
	unit := func(name string, v float64) {
		if !(v >= 0 && v <= 1) {
			fail("%s must be in [0, 1], got %v", name, v)
		}
	}

	g := c.Game
	if !(g.GravityMultiplier >= 0) || math.IsInf(g.GravityMultiplier, 0) {
		fail("game.gravity_multiplier must be >= 0, got %v", g.GravityMultiplier)
	}
	unit("game.player_initial_pos_x", g.PlayerInitialPosX)
	positive("game.player_size_x", g.PlayerSizeX)
	positive("game.player_size_y", g.PlayerSizeY)
	positive("game.player_box_size_x", g.PlayerBoxSizeX)
	positive("game.player_box_size_y", g.PlayerBoxSizeY)
	unit("game.audio_volume", g.AudioVolume)
	unit("game.floor_multiplier", g.FloorMultiplier)

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)

	if c.Player.Speed < 0 {
		fail("player.speed must be >= 0, got %v", c.Player.Speed)
	}
	if c.Player.JumpForce < 0 {
		fail("player.jump_force must be >= 0, got %v", c.Player.JumpForce)
	}
	switch c.Player.SpawnOn {
	case SpawnOnInGame, SpawnOnMainMenu:
	default:
		fail("player.spawn_on must be %q or %q, got %q", SpawnOnInGame, SpawnOnMainMenu, c.Player.SpawnOn)
	}
	if c.Player.Ramp.Enabled && c.Player.Ramp.MaxAt <= 0 {
		fail("player.ramp.max_at must be > 0 when the ramp is enabled, got %v", c.Player.Ramp.MaxAt)
	}

	if c.World.Gravity < 0 {
		fail("world.gravity must be >= 0, got %v", c.World.Gravity)
	}
	positive("world.floor_half_height", c.World.FloorHalfHeight)
	unit("world.platform_marker_x", c.World.PlatformMarkerX)

	if c.Parallax.Count <= 0 {
		fail("parallax.count must be > 0, got %d", c.Parallax.Count)
	}
	if c.Parallax.GlobalSpeed < 0 {
		fail("parallax.global_speed must be >= 0, got %v", c.Parallax.GlobalSpeed)
	}
	switch c.Parallax.Recycle {
	case RecycleNudge, RecycleWrap:
	default:
		fail("parallax.recycle must be %q or %q, got %q", RecycleNudge, RecycleWrap, c.Parallax.Recycle)
	}
	if len(c.Parallax.Layers) == 0 && c.Parallax.Environment == "" {
		fail("parallax needs an environment or explicit layers")
	}

	switch c.Camera.Policy {
	case CameraStatic, CameraFollow, CameraFollowX:
	default:
		fail("camera.policy must be one of %q, %q, %q, got %q", CameraStatic, CameraFollow, CameraFollowX, c.Camera.Policy)
	}

	if c.Transition.DurationMS <= 0 {
		fail("transition.duration_ms must be > 0, got %d", c.Transition.DurationMS)
	}
	if !easeNames[c.Transition.Ease] {
		fail("transition.ease %q is not supported", c.Transition.Ease)
	}
	if !(c.Transition.ShowThreshold > 0 && c.Transition.ShowThreshold < c.Transition.HideThreshold && c.Transition.HideThreshold < 1) {
		fail("transition thresholds must satisfy 0 < show < hide < 1, got %v and %v",
			c.Transition.ShowThreshold, c.Transition.HideThreshold)
	}

	if c.Splash.DurationMS <= 0 {
		fail("splash.duration_ms must be > 0, got %d", c.Splash.DurationMS)
	}
	if !(c.Splash.CompleteAt > 0 && c.Splash.CompleteAt <= 1) {
		fail("splash.complete_at must be in (0, 1], got %v", c.Splash.CompleteAt)
	}

	if c.Input.HoldTicks < 1 {
		fail("input.hold_ticks must be >= 1, got %d", c.Input.HoldTicks)
	}
	for name := range c.Input.Keys {
		if !knownAction(name) {
			fail("input.keys: unknown action %q", name)
		}
	}
	for name := range c.Input.Gamepad {
		if !knownAction(name) {
			fail("input.gamepad: unknown action %q", name)
		}
	}

	return errors.Join(errs...)
}

func knownAction(name string) bool {
	switch name {
	case "pause", "jump", "move_left", "move_right", "up", "down", "confirm", "back", "quit":
		return true
	}
	return false
}
