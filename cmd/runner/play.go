package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/platform/tui"
	"github.com/vovakirdan/parallax-runner/internal/platform/window"
	"github.com/vovakirdan/parallax-runner/internal/registry"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

var (
	flagWindow bool
	flagConfig string
	flagEnv    string
	flagCamera string
	flagAssets string
	flagPick   bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start running",
	Long: `Start the runner: splash, main menu, then the run.

Controls (defaults, see 'runner config'):
  Space/W      - Jump
  A/D, arrows  - Nudge left/right
  Esc/P        - Back to the menu
  Enter        - Select menu item
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot (terminal)
  F11          - Toggle fullscreen (window)

Camera policies:
  static    - Camera stays at the origin
  follow    - Camera centres on the player
  follow-x  - Camera tracks the player horizontally

Examples:
  runner play
  runner play --env meadow --camera follow
  runner play --window --assets ./assets
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagEnv, "env", "", "Environment preset (overrides the config's layers)")
	playCmd.Flags().StringVar(&flagCamera, "camera", "", "Camera policy: static, follow, follow-x")
	playCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with layer images and music")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Pick an environment before starting (terminal)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the audio device")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagEnv != "" && !registry.Exists(flagEnv) {
		fmt.Fprintf(os.Stderr, "Error: unknown environment %q\n", flagEnv)
		fmt.Fprintln(os.Stderr, "Run 'runner envs' to see available environments.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store := openStore()
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	env := flagEnv
	if flagPick && !flagWindow {
		picked, ok := pick(store, rc)
		if !ok {
			return
		}
		env = picked
	}

	loader := config.NewAsyncLoaderFunc(func() (config.Config, error) {
		return loadConfig(flagConfig, env, flagCamera)
	})
	loader.Start()

	var err error
	if flagWindow {
		err = runWindow(loader, store)
	} else {
		if flagLogFile == "" {
			if path := defaultLogFile(); path != "" {
				if lerr := logToFile(path); lerr != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", lerr)
				}
			}
		}
		opts := []game.Option{game.WithLogger(logger)}
		var music *tui.Music
		if !flagMute {
			music = tui.NewMusic(flagAssets)
			opts = append(opts, game.WithMusic(music))
		}
		err = tui.Run(game.New(loader, opts...), store, rc, logger, music)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		if store != nil {
			_ = store.Close()
		}
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(path, env, camera string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if env != "" {
		cfg.Parallax.Environment = env
		cfg.Parallax.Layers = nil
	}
	if camera != "" {
		cfg.Camera.Policy = camera
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if err := game.ValidateEnvironment(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runWindow(loader *config.AsyncLoader, store *storage.Store) error {
	if flagLogFile == "" {
		logger = newLogger(os.Stderr, logger.GetLevel())
	}
	opts := window.Options{
		Title:  "Parallax Runner",
		TPS:    flagFPS,
		Assets: flagAssets,
		Store:  store,
		Logger: logger,
	}
	gameOpts := []game.Option{game.WithLogger(logger)}
	if !flagMute {
		opts.Music = window.NewMusic(flagAssets)
		gameOpts = append(gameOpts, game.WithMusic(opts.Music))
	}
	return window.Run(game.New(loader, gameOpts...), opts)
}

// pick shows the environment picker, with the run history one tab away.
func pick(store *storage.Store, rc core.RuntimeConfig) (string, bool) {
	keys := tui.NewKeyMap(config.DefaultConfig().Input)
	for {
		res, err := tui.RunPicker(store, rc, keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return "", false
		}
		rc = res.Config

		switch {
		case res.Quit:
			return "", false
		case res.WantsScores:
			goBack, err := tui.RunScores(store, "", rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return "", false
			}
			if !goBack {
				return "", false
			}
		default:
			return res.EnvID, true
		}
	}
}
