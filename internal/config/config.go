// Package config provides YAML-based configuration loading and validation
// for the runner. The configuration is loaded once at startup, validated,
// and treated as immutable afterwards.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// ErrInvalidConfig is returned when configuration is missing, malformed or
// fails validation. Startup must abort on it.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration record.
type Config struct {
	Game       GameRecord       `yaml:"game"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	World      WorldConfig      `yaml:"world"`
	Parallax   ParallaxConfig   `yaml:"parallax"`
	Camera     CameraConfig     `yaml:"camera"`
	Transition TransitionConfig `yaml:"transition"`
	Splash     SplashConfig     `yaml:"splash"`
	Menu       MenuConfig       `yaml:"menu"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// GameRecord is the core tuning record. Every field is required.
type GameRecord struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	PlayerInitialPosX float64 `yaml:"player_initial_pos_x"` // fraction of viewport width, left of centre
	PlayerSizeX       float64 `yaml:"player_size_x"`        // sprite size
	PlayerSizeY       float64 `yaml:"player_size_y"`
	PlayerBoxSizeX    float64 `yaml:"player_box_size_x"` // collider half extents
	PlayerBoxSizeY    float64 `yaml:"player_box_size_y"`
	AudioVolume       float64 `yaml:"audio_volume"`
	FloorMultiplier   float64 `yaml:"floor_multiplier"` // fraction of viewport height, below centre
}

// UnmarshalYAML rejects a game record with missing fields instead of
// silently zero-filling them.
func (g *GameRecord) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		GravityMultiplier *float64 `yaml:"gravity_multiplier"`
		PlayerInitialPosX *float64 `yaml:"player_initial_pos_x"`
		PlayerSizeX       *float64 `yaml:"player_size_x"`
		PlayerSizeY       *float64 `yaml:"player_size_y"`
		PlayerBoxSizeX    *float64 `yaml:"player_box_size_x"`
		PlayerBoxSizeY    *float64 `yaml:"player_box_size_y"`
		AudioVolume       *float64 `yaml:"audio_volume"`
		FloorMultiplier   *float64 `yaml:"floor_multiplier"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"gravity_multiplier", raw.GravityMultiplier, &g.GravityMultiplier},
		{"player_initial_pos_x", raw.PlayerInitialPosX, &g.PlayerInitialPosX},
		{"player_size_x", raw.PlayerSizeX, &g.PlayerSizeX},
		{"player_size_y", raw.PlayerSizeY, &g.PlayerSizeY},
		{"player_box_size_x", raw.PlayerBoxSizeX, &g.PlayerBoxSizeX},
		{"player_box_size_y", raw.PlayerBoxSizeY, &g.PlayerBoxSizeY},
		{"audio_volume", raw.AudioVolume, &g.AudioVolume},
		{"floor_multiplier", raw.FloorMultiplier, &g.FloorMultiplier},
	}
	var missing []string
	for _, f := range fields {
		if f.src == nil {
			missing = append(missing, f.name)
			continue
		}
		*f.dst = *f.src
	}
	if len(missing) > 0 {
		return fmt.Errorf("game: missing fields %v", missing)
	}
	return nil
}

// ViewportConfig is the logical viewport in world units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig holds player controller tuning beyond the game record.
type PlayerConfig struct {
	Speed              float64    `yaml:"speed"`      // forward speed and left/right nudge per tick
	JumpForce          float64    `yaml:"jump_force"` // vertical impulse, units per second
	JumpRequiresGround bool       `yaml:"jump_requires_ground"`
	SpawnOn            string     `yaml:"spawn_on"` // "ingame" or "mainmenu"
	Z                  float64    `yaml:"z"`
	Ramp               RampConfig `yaml:"ramp"`
}

// Player spawn states.
const (
	SpawnOnInGame   = "ingame"
	SpawnOnMainMenu = "mainmenu"
)

// WorldConfig holds static geometry and physics constants.
type WorldConfig struct {
	Gravity         float64 `yaml:"gravity"` // units per second squared before the multiplier
	FloorHalfHeight float64 `yaml:"floor_half_height"`
	FloorUnbounded  bool    `yaml:"floor_unbounded"`
	FloorZ          float64 `yaml:"floor_z"`
	PlatformMarkerX float64 `yaml:"platform_marker_x"` // fraction of viewport width, left of centre
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Core converts to a core vector.
func (v Vec) Core() core.Vec2 {
	return core.Vec2{X: v.X, Y: v.Y}
}

// LayerConfig describes one parallax layer.
type LayerConfig struct {
	Speed            Vec     `yaml:"speed"`
	Path             string  `yaml:"path"`
	TileSize         Vec     `yaml:"tile_size"`
	Scale            float64 `yaml:"scale"`
	Z                float64 `yaml:"z"`
	Position         Vec     `yaml:"position"`
	TransitionFactor float64 `yaml:"transition_factor"`
	Tint             string  `yaml:"tint"`
}

// ParallaxConfig selects the background layers.
type ParallaxConfig struct {
	Environment string        `yaml:"environment"`  // registered preset, used when Layers is empty
	Count       int           `yaml:"count"`        // tile instances per layer
	GlobalSpeed float64       `yaml:"global_speed"` // 0 means the player's forward speed
	Recycle     string        `yaml:"recycle"`      // "nudge" or "wrap"
	Layers      []LayerConfig `yaml:"layers"`
}

// CameraConfig selects the camera policy.
type CameraConfig struct {
	Policy string `yaml:"policy"` // "static", "follow" or "follow-x"
	Offset *Vec   `yaml:"offset"` // nil derives the offset from the player's start
}

// TransitionConfig tunes the UI fade animator.
type TransitionConfig struct {
	DurationMS    int     `yaml:"duration_ms"`
	Ease          string  `yaml:"ease"`
	ShowThreshold float64 `yaml:"show_threshold"`
	HideThreshold float64 `yaml:"hide_threshold"`
}

// SplashConfig tunes the splash sequence.
type SplashConfig struct {
	Text       string  `yaml:"text"`
	DurationMS int     `yaml:"duration_ms"`
	CompleteAt float64 `yaml:"complete_at"`
}

// CreditEntry is one block of the credits screen.
type CreditEntry struct {
	Role  string   `yaml:"role"`
	Names []string `yaml:"names"`
}

// MenuConfig holds menu text.
type MenuConfig struct {
	Title   string        `yaml:"title"`
	Credits []CreditEntry `yaml:"credits"`
}

// InputConfig binds logical actions to physical sources.
// Keys are action names (see ActionName).
type InputConfig struct {
	Keys      map[string][]string `yaml:"keys"`
	Gamepad   map[string][]string `yaml:"gamepad"`
	HoldTicks int                 `yaml:"hold_ticks"` // terminal hold window per key event
}

// KeysFor returns the keyboard bindings for an action.
func (c InputConfig) KeysFor(a core.Action) []string {
	return c.Keys[ActionName(a)]
}

// ButtonsFor returns the gamepad bindings for an action.
func (c InputConfig) ButtonsFor(a core.Action) []string {
	return c.Gamepad[ActionName(a)]
}

// ActionName returns the configuration key of an action.
func ActionName(a core.Action) string {
	switch a {
	case core.ActionPause:
		return "pause"
	case core.ActionJump:
		return "jump"
	case core.ActionMoveLeft:
		return "move_left"
	case core.ActionMoveRight:
		return "move_right"
	case core.ActionUp:
		return "up"
	case core.ActionDown:
		return "down"
	case core.ActionConfirm:
		return "confirm"
	case core.ActionBack:
		return "back"
	case core.ActionQuit:
		return "quit"
	default:
		return ""
	}
}

// AudioConfig holds the ambient music track.
type AudioConfig struct {
	Music string `yaml:"music"`
}
