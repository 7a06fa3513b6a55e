package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
)

// Page is a menu screen.
type Page int

const (
	PageMain Page = iota
	PageOptions
	PageCredits
)

// String returns the page name.
func (p Page) String() string {
	switch p {
	case PageMain:
		return "main"
	case PageOptions:
		return "options"
	case PageCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// MenuAction is the outcome of one tick of menu input.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuMoved
	MenuPlay
	MenuQuit
	MenuPageChanged
	MenuSettingChanged
)

// Setting is a cyclable option shown on the options page.
type Setting struct {
	Name   string
	Label  string
	Values []string
	index  int
}

// Value returns the selected value.
func (s *Setting) Value() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[s.index]
}

func (s *Setting) next() {
	if len(s.Values) > 0 {
		s.index = (s.index + 1) % len(s.Values)
	}
}

func (s *Setting) set(v string) {
	for i, val := range s.Values {
		if val == v {
			s.index = i
			return
		}
	}
}

// Line is one row of the current menu page.
type Line struct {
	ID         string
	Text       string
	Selectable bool
}

// Menu setting names.
const (
	SettingCamera = "camera"
	SettingMusic  = "music"
)

var mainItems = []string{"Play", "Options", "Credits", "Quit"}

// Menu is the logical main menu: pages, cursor and settings. Layout and
// widgets belong to the renderers.
type Menu struct {
	title    string
	credits  []config.CreditEntry
	settings []*Setting
	page     Page
	cursor   int
}

// NewMenu creates a menu on the main page.
func NewMenu(cfg config.MenuConfig, camera string) *Menu {
	cam := &Setting{
		Name:   SettingCamera,
		Label:  "Camera",
		Values: []string{config.CameraStatic, config.CameraFollow, config.CameraFollowX},
	}
	cam.set(camera)
	music := &Setting{Name: SettingMusic, Label: "Music", Values: []string{"on", "off"}}
	return &Menu{
		title:    cfg.Title,
		credits:  cfg.Credits,
		settings: []*Setting{cam, music},
	}
}

// Page returns the current page.
func (m *Menu) Page() Page {
	return m.page
}

// Cursor returns the index of the hovered selectable line.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Setting returns the current value of a named setting.
func (m *Menu) Setting(name string) string {
	for _, s := range m.settings {
		if s.Name == name {
			return s.Value()
		}
	}
	return ""
}

// Lines returns the rows of the current page, top to bottom.
func (m *Menu) Lines() []Line {
	switch m.page {
	case PageOptions:
		lines := []Line{{ID: "options-title", Text: "Options"}}
		for _, s := range m.settings {
			lines = append(lines, Line{
				ID:         "setting-" + s.Name,
				Text:       fmt.Sprintf("%s: %s", s.Label, s.Value()),
				Selectable: true,
			})
		}
		return append(lines, Line{ID: "back", Text: "Back", Selectable: true})

	case PageCredits:
		lines := []Line{{ID: "credits-title", Text: "Credits"}}
		for i, c := range m.credits {
			lines = append(lines, Line{
				ID:   fmt.Sprintf("credit-%d", i),
				Text: fmt.Sprintf("%s: %s", c.Role, strings.Join(c.Names, ", ")),
			})
		}
		return append(lines, Line{ID: "back", Text: "Back", Selectable: true})

	default:
		lines := []Line{{ID: "title", Text: m.title}}
		for _, item := range mainItems {
			lines = append(lines, Line{
				ID:         "item-" + strings.ToLower(item),
				Text:       item,
				Selectable: true,
			})
		}
		return lines
	}
}

// Selected returns the ID of the hovered line.
func (m *Menu) Selected() string {
	n := 0
	for _, l := range m.Lines() {
		if !l.Selectable {
			continue
		}
		if n == m.cursor {
			return l.ID
		}
		n++
	}
	return ""
}

func (m *Menu) selectable() int {
	n := 0
	for _, l := range m.Lines() {
		if l.Selectable {
			n++
		}
	}
	return n
}

func (m *Menu) open(p Page) {
	m.page = p
	m.cursor = 0
}

// Reset returns to the main page.
func (m *Menu) Reset() {
	m.open(PageMain)
}

// Handle applies one tick of input. Up and Down wrap around the selectable
// lines; Confirm activates the hovered line; Back leaves a sub page.
func (m *Menu) Handle(in core.InputFrame) MenuAction {
	n := m.selectable()
	switch {
	case in.JustPressed(core.ActionUp) && n > 0:
		m.cursor = (m.cursor - 1 + n) % n
		return MenuMoved
	case in.JustPressed(core.ActionDown) && n > 0:
		m.cursor = (m.cursor + 1) % n
		return MenuMoved
	case in.JustPressed(core.ActionBack) && m.page != PageMain:
		m.open(PageMain)
		return MenuPageChanged
	case in.JustPressed(core.ActionConfirm):
		return m.activate()
	}
	return MenuNone
}

func (m *Menu) activate() MenuAction {
	id := m.Selected()
	switch id {
	case "item-play":
		return MenuPlay
	case "item-quit":
		return MenuQuit
	case "item-options":
		m.open(PageOptions)
		return MenuPageChanged
	case "item-credits":
		m.open(PageCredits)
		return MenuPageChanged
	case "back":
		m.open(PageMain)
		return MenuPageChanged
	}
	for _, s := range m.settings {
		if id == "setting-"+s.Name {
			s.next()
			return MenuSettingChanged
		}
	}
	return MenuNone
}
