package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/state"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

// Model is the Bubble Tea model driving a game.Runner in the terminal.
type Model struct {
	runner    *game.Runner
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	tracker   *core.InputTracker
	holdTicks int
	bound     bool // keys rebuilt from the loaded configuration
	music     *Music
	help      help.Model
	logger    *log.Logger
	quitting  bool
	err       error
}

// NewModel creates a model for the runner. Keys start from the default
// bindings and switch to the configured ones once the configuration loads.
func NewModel(runner *game.Runner, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	def := config.DefaultConfig().Input
	h := help.New()
	h.ShowAll = false
	return Model{
		runner:    runner,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMap(def),
		tracker:   core.NewInputTracker(),
		holdTicks: def.HoldTicks,
		help:      h,
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0)) // last row is the help bar
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key event into taps. Terminals report key repeats
// rather than key state, so each tap holds its actions for a short window.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	for _, a := range m.keys.Actions(msg) {
		m.tracker.Tap(a, m.holdTicks)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.runner.Step(m.tracker.Frame(), m.config.TickDuration())
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if !m.bound && m.runner.Ready() {
		in := m.runner.Config().Input
		m.keys = NewKeyMap(in)
		m.holdTicks = in.HoldTicks
		m.bound = true
		if m.music != nil {
			m.music.SetTrack(m.runner.Config().Audio.Music)
		}
	}

	if res.Summary != nil {
		m.saveRun(*res.Summary)
	}
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickDuration())
}

func (m Model) saveRun(s game.RunSummary) {
	if m.store == nil || s.Ticks == 0 {
		return
	}
	if _, err := m.store.SaveRun(s.Environment, s.Distance, s.Ticks); err != nil {
		m.logger.Warn("run not saved", "err", err)
		return
	}
	m.logger.Debug("run saved", "env", s.Environment, "distance", s.Distance)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.runner.Snapshot())

	dir := filepath.Join(config.UserConfigDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.runner.Snapshot())
	out := RenderScreen(m.screen)
	if m.runner.State() == state.InGame || m.runner.State() == state.MainMenu {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the runner and blocks until it quits.
// music may be nil; it should be the player the runner was built with.
func Run(runner *game.Runner, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, music *Music) error {
	model := NewModel(runner, store, cfg, logger)
	model.music = music
	if music != nil {
		defer music.Close()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
