package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/registry"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

// PickerItem is a selectable environment.
type PickerItem struct {
	EnvID  string
	Title  string
	Layers int
	Best   float64 // longest stored run, 0 when none
}

// PickerModel is the Bubble Tea model for the environment picker.
type PickerModel struct {
	items    []PickerItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     KeyMap
	scores   key.Binding
	quitting bool
	selected *PickerItem
	openRuns bool // tab pressed for run history
}

// NewPickerModel lists the registered environments with their best runs.
func NewPickerModel(store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) PickerModel {
	envs := registry.List()
	items := make([]PickerItem, 0, len(envs))
	for _, e := range envs {
		item := PickerItem{EnvID: e.ID, Title: e.Title, Layers: e.Layers}
		if store != nil {
			if best, err := store.BestRun(e.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return PickerModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   keys,
		scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "runs")),
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.scores) {
		m.openRuns = true
		return m, tea.Quit
	}

	for _, a := range m.keys.Actions(msg) {
		switch a {
		case core.ActionQuit, core.ActionBack:
			m.quitting = true
			return m, tea.Quit

		case core.ActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case core.ActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case core.ActionConfirm:
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  P A R A L L A X   R U N N E R  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose an environment", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%d layers)", cursor, item.Title, item.Layers)
		if item.Best > 0 {
			line += fmt.Sprintf("  best %.0f", item.Best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Runs  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected item, or nil if none was selected.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// Config returns the runtime config, updated by resizes.
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// PickResult holds the outcome of the picker.
type PickResult struct {
	EnvID       string
	Config      core.RuntimeConfig
	WantsScores bool
	Quit        bool
}

// Result converts the final model state to a PickResult.
func (m PickerModel) Result() PickResult {
	res := PickResult{Config: m.config}
	switch {
	case m.openRuns:
		res.WantsScores = true
	case m.selected != nil:
		res.EnvID = m.selected.EnvID
	default:
		res.Quit = true
	}
	return res
}

// RunPicker shows the environment picker and returns the choice.
func RunPicker(store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) (PickResult, error) {
	model := NewPickerModel(store, cfg, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickResult{Config: cfg}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
