package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parallax-runner/internal/registry"
	"github.com/vovakirdan/parallax-runner/internal/storage"
)

// Scores layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show environment sidebar
	sidebarWidth       = 20  // Width of environment sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoresKeyMap defines the key bindings for the run history screen.
type ScoresKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextEnv key.Binding
	PrevEnv key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextEnv, k.PrevEnv, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextEnv, k.PrevEnv},
		{k.Back, k.Quit},
	}
}

// DefaultScoresKeyMap returns default key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev environment"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next environment"),
		),
		NextEnv: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next environment"),
		),
		PrevEnv: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev environment"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoresModel is the Bubble Tea model for the run history screen.
type ScoresModel struct {
	envs        []string // environments with a tab
	envCursor   int
	store       *storage.Store
	runs        []storage.RunEntry
	table       table.Model
	help        help.Model
	keys        ScoresKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// ScoreEnvironments lists registered environments followed by any other
// environment that has stored runs, such as custom layer sets.
func ScoreEnvironments(store *storage.Store) []string {
	seen := make(map[string]bool)
	var envs []string
	for _, e := range registry.List() {
		seen[e.ID] = true
		envs = append(envs, e.ID)
	}
	if store == nil {
		return envs
	}
	stats, err := store.AllStats()
	if err != nil {
		return envs
	}
	var extra []string
	for env := range stats {
		if !seen[env] {
			extra = append(extra, env)
		}
	}
	sort.Strings(extra)
	return append(envs, extra...)
}

// NewScoresModel creates a run history model starting at env, or at the
// first environment when env is empty.
func NewScoresModel(store *storage.Store, env string, width, height int) ScoresModel {
	h := help.New()
	h.ShowAll = false

	m := ScoresModel{
		envs:        ScoreEnvironments(store),
		store:       store,
		keys:        DefaultScoresKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, e := range m.envs {
		if e == env {
			m.envCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.envs) > 0 {
		m.loadRuns(m.envs[m.envCursor])
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Distance", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 48 {
		columns[1].Width = 12
		columns[3].Width = min(tableWidth-30, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the longest runs for the environment.
func (m *ScoresModel) loadRuns(env string) {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(env, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows. Time assumes 60 ticks per second.
func RunRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%.0f", r.Distance),
			fmt.Sprintf("%.1fs", float64(r.Ticks)/60),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextEnv), key.Matches(msg, m.keys.Right):
			if len(m.envs) > 0 {
				m.envCursor = (m.envCursor + 1) % len(m.envs)
				m.loadRuns(m.envs[m.envCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevEnv), key.Matches(msg, m.keys.Left):
			if len(m.envs) > 0 {
				m.envCursor = (m.envCursor - 1 + len(m.envs)) % len(m.envs)
				m.loadRuns(m.envs[m.envCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Environment returns the selected environment.
func (m ScoresModel) Environment() string {
	if len(m.envs) == 0 {
		return ""
	}
	return m.envs[m.envCursor]
}

// View renders the run history.
func (m ScoresModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LONGEST RUNS"
	if env := m.Environment(); env != "" {
		title = fmt.Sprintf("LONGEST RUNS - %s", env)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.Environment()), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoresModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Environments\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, env := range m.envs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.envCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := env
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}
	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m ScoresModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPress play and keep running!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user pressed back.
func (m ScoresModel) IsGoingBack() bool {
	return m.goingBack
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScores runs the run history screen.
// Returns true if the user wants to go back, false if quitting.
func RunScores(store *storage.Store, env string, width, height int) (goBack bool, err error) {
	model := NewScoresModel(store, env, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoresModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
