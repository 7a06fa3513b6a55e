package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunRows(t *testing.T) {
	at := time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC)
	rows := RunRows([]storage.RunEntry{
		{Distance: 1234.4, Ticks: 90, CreatedAt: at},
		{Distance: 10, Ticks: 60, CreatedAt: at},
	})

	expected := [][]string{
		{"#1", "1234", "1.5s", "Mar 04 18:30"},
		{"#2", "10", "1.0s", "Mar 04 18:30"},
	}
	for i, row := range rows {
		if !slices.Equal([]string(row), expected[i]) {
			t.Errorf("row %d = %v, expected %v", i, row, expected[i])
		}
	}
}

func TestScoreEnvironments(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveRun("custom", 50, 10); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	if _, err := store.SaveRun("forest", 50, 10); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}

	got := ScoreEnvironments(store)
	expected := []string{"forest", "meadow", "custom"}
	if !slices.Equal(got, expected) {
		t.Errorf("ScoreEnvironments() = %v, expected %v", got, expected)
	}
	if got := ScoreEnvironments(nil); !slices.Equal(got, []string{"forest", "meadow"}) {
		t.Errorf("ScoreEnvironments(nil) = %v, expected registered only", got)
	}
}

func TestScoresModelSwitchesEnvironment(t *testing.T) {
	store := newTestStore(t)
	for _, d := range []float64{100, 300} {
		if _, err := store.SaveRun("meadow", d, 20); err != nil {
			t.Fatalf("SaveRun() error: %v", err)
		}
	}

	m := NewScoresModel(store, "meadow", 100, 30)
	if m.Environment() != "meadow" || len(m.runs) != 2 {
		t.Fatalf("start = %q with %d runs, expected meadow with 2", m.Environment(), len(m.runs))
	}
	if m.runs[0].Distance != 300 {
		t.Errorf("first run = %v, expected the longest", m.runs[0].Distance)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoresModel)
	if m.Environment() != "forest" || len(m.runs) != 0 {
		t.Errorf("after tab = %q with %d runs, expected forest with none", m.Environment(), len(m.runs))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty environment should show the empty message")
	}

	next, _ = m.Update(runeKey('b'))
	m = next.(ScoresModel)
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestPickerSelects(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveRun("meadow", 420, 20); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	keys := NewKeyMap(config.DefaultConfig().Input)

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected PickResult
	}{
		{"first", []tea.KeyMsg{{Type: tea.KeyEnter}}, PickResult{EnvID: "forest"}},
		{"second", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, PickResult{EnvID: "meadow"}},
		{"cursor stops", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, PickResult{EnvID: "meadow"}},
		{"runs", []tea.KeyMsg{{Type: tea.KeyTab}}, PickResult{WantsScores: true}},
		{"quit", []tea.KeyMsg{runeKey('q')}, PickResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewPickerModel(store, core.DefaultConfig(), keys)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			got := m.(PickerModel).Result()
			got.Config = core.RuntimeConfig{}
			if got != tt.expected {
				t.Errorf("Result() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestPickerShowsBest(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveRun("meadow", 420, 20); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	m := NewPickerModel(store, core.DefaultConfig(), NewKeyMap(config.DefaultConfig().Input))
	if !strings.Contains(m.View(), "best 420") {
		t.Errorf("View() = %q, expected the best run", m.View())
	}
}
