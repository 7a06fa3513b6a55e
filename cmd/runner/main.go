// runner is an endless parallax runner for the terminal and the desktop.
//
// Usage:
//
//	runner play                - Run in the terminal
//	runner play --window       - Run in a desktop window
//	runner play --pick         - Pick an environment first
//	runner envs                - List environment presets
//	runner scores [env]        - Show the longest runs
//	runner config              - Print the default configuration
//	runner config validate <f> - Check a configuration file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.runner/runs.db)
//	--log-file <path>    - Write logs to a file (default: ~/.runner/runner.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/storage"

	// Import environments to register them
	_ "github.com/vovakirdan/parallax-runner/internal/environments"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Parallax Runner - an endless side-scroller",
	Long: `Parallax Runner is an endless side-scroller with layered parallax
backgrounds. It runs in the terminal or in a desktop window.

Available commands:
  play     - Start running
  envs     - Show all environment presets
  scores   - View the longest runs
  config   - Print or validate configuration

Examples:
  runner play
  runner play --window --env meadow
  runner play --pick
  runner scores forest
  runner config > ~/.runner/configs/runner.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(envsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger points the logger at --log-file. Without it, play picks a
// default (see runPlay) and other commands drop logs.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	if flagLogFile == "" {
		return nil
	}
	return logToFile(flagLogFile)
}

// defaultLogFile is where the terminal frontend logs, since it owns the screen.
func defaultLogFile() string {
	if dir := config.UserConfigDir(); dir != "" {
		return filepath.Join(dir, "runner.log")
	}
	return ""
}

func logToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	logFile = f
	logger = newLogger(f, logger.GetLevel())
	return nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
}

// openStore opens the run history. Runs still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}
