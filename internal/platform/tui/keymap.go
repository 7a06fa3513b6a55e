package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
)

// KeyMap translates Bubble Tea key messages to logical actions using the
// bindings from the input configuration. One key may drive several
// actions, e.g. "up" moves the menu cursor and nothing else in the run.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// helpText labels the actions in help views.
var helpText = map[core.Action]string{
	core.ActionPause:     "pause",
	core.ActionJump:      "jump",
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionUp:        "up",
	core.ActionDown:      "down",
	core.ActionConfirm:   "select",
	core.ActionBack:      "back",
	core.ActionQuit:      "quit",
}

// NewKeyMap builds bindings for every action from the configuration.
func NewKeyMap(cfg config.InputConfig) KeyMap {
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(core.AllActions))}
	for _, a := range core.AllActions {
		keys := terminalKeys(cfg.KeysFor(a))
		if len(keys) == 0 {
			continue
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.KeysFor(a)[0], helpText[a]),
		)
	}
	return km
}

// terminalKeys converts configured key names to Bubble Tea key strings.
func terminalKeys(names []string) []string {
	out := make([]string, 0, len(names)+1)
	for _, n := range names {
		if n == "space" {
			out = append(out, " ", "space")
			continue
		}
		out = append(out, n)
	}
	return out
}

// Actions returns every action bound to the key.
func (km KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, a := range core.AllActions {
		if b, ok := km.bindings[a]; ok && key.Matches(msg, b) {
			out = append(out, a)
		}
	}
	return out
}

// Binding returns the binding of an action.
func (km KeyMap) Binding(a core.Action) (key.Binding, bool) {
	b, ok := km.bindings[a]
	return b, ok
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.list(core.ActionJump, core.ActionMoveLeft, core.ActionMoveRight, core.ActionPause, core.ActionQuit)
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.list(core.ActionJump, core.ActionMoveLeft, core.ActionMoveRight, core.ActionPause),
		km.list(core.ActionUp, core.ActionDown, core.ActionConfirm, core.ActionBack, core.ActionQuit),
	}
}

func (km KeyMap) list(actions ...core.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := km.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}
