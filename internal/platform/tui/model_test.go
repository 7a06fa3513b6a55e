package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/state"
	"github.com/vovakirdan/parallax-runner/internal/storage"

	_ "github.com/vovakirdan/parallax-runner/internal/environments"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Splash.DurationMS = 100
	runner := game.New(config.Ready(cfg))
	return NewModel(runner, store, core.DefaultConfig(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickBindsKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if !m.bound {
		t.Error("keys should be rebound once the configuration is ready")
	}
	if m.runner.State() != state.Splash {
		t.Errorf("State() = %v, expected Splash", m.runner.State())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should stop the program")
	}
	if !m.runner.Machine().Quitting() {
		t.Error("machine should be quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 0})
	if m.screen.Height() != 0 {
		t.Errorf("screen height = %d, expected 0", m.screen.Height())
	}
}

func TestModelSavesRun(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer func() { _ = store.Close() }()

	m := newTestModel(t, store)
	for range 10 {
		m, _ = update(t, m, TickMsg{})
	}
	if m.runner.State() != state.MainMenu {
		t.Fatalf("State() = %v, expected MainMenu", m.runner.State())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 20 {
		m, _ = update(t, m, TickMsg{})
	}
	if m.runner.State() != state.InGame {
		t.Fatalf("State() = %v, expected InGame", m.runner.State())
	}

	m, _ = update(t, m, runeKey('q'))
	_, _ = update(t, m, TickMsg{})

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopRuns() returned %d runs, expected 1", len(runs))
	}
	if runs[0].Environment != "forest" || runs[0].Ticks == 0 {
		t.Errorf("run = %+v, expected a forest run with ticks", runs[0])
	}
}
