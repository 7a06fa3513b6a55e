package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Tuning constants of the runner.
const (
	PlayerSpeed      = 3.0   // forward speed, units per tick
	PlayerJumpForce  = 700.0 // jump impulse, units per second
	GravityBase      = 980.0 // units per second squared before gravity_multiplier
	TransitionFactor = 1.2
	TileCount        = 4
	FadeDurationMS   = 500
	SplashDurationMS = 3000
)

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameRecord{
			GravityMultiplier: 1.0,
			PlayerInitialPosX: 0.35,
			PlayerSizeX:       170,
			PlayerSizeY:       170,
			PlayerBoxSizeX:    20,
			PlayerBoxSizeY:    45,
			AudioVolume:       0.15,
			FloorMultiplier:   0.4,
		},
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Speed:              PlayerSpeed,
			JumpForce:          PlayerJumpForce,
			JumpRequiresGround: false,
			SpawnOn:            SpawnOnInGame,
			Z:                  1.7,
			Ramp: RampConfig{
				Enabled:      false,
				InitialLevel: 0.0,
				MaxAt:        20000,
				MaxBoost:     1.0,
			},
		},
		World: WorldConfig{
			Gravity:         GravityBase,
			FloorHalfHeight: 50,
			FloorUnbounded:  true,
			FloorZ:          1.5,
			PlatformMarkerX: 0.35,
		},
		Parallax: ParallaxConfig{
			Environment: "forest",
			Count:       TileCount,
			GlobalSpeed: 0,
			Recycle:     RecycleNudge,
		},
		Camera: CameraConfig{
			Policy: CameraFollowX,
		},
		Transition: TransitionConfig{
			DurationMS:    FadeDurationMS,
			Ease:          "quadratic-in",
			ShowThreshold: 0.01,
			HideThreshold: 0.99,
		},
		Splash: SplashConfig{
			Text:       "parallax runner",
			DurationMS: SplashDurationMS,
			CompleteAt: 0.8,
		},
		Menu: MenuConfig{
			Title: "Infinity Runner",
			Credits: []CreditEntry{
				{Role: "Programmer", Names: []string{"Sergio Ribera"}},
				{Role: "Artist", Names: []string{"Sergio Ribera"}},
				{Role: "Music", Names: []string{"Sergio Ribera"}},
				{Role: "Sound Effects", Names: []string{"Sergio Ribera"}},
			},
		},
		Input: InputConfig{
			Keys: map[string][]string{
				"pause":      {"esc", "p"},
				"jump":       {"space", "w"},
				"move_left":  {"left", "a"},
				"move_right": {"right", "d"},
				"up":         {"up", "k"},
				"down":       {"down", "j"},
				"confirm":    {"enter"},
				"back":       {"backspace"},
				"quit":       {"q", "ctrl+c"},
			},
			Gamepad: map[string][]string{
				"pause":      {"start"},
				"jump":       {"a"},
				"move_left":  {"dpad_left"},
				"move_right": {"dpad_right"},
				"up":         {"dpad_up"},
				"down":       {"dpad_down"},
				"confirm":    {"x"},
				"back":       {"b"},
			},
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Music: "audio/game_ambient.ogg",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
