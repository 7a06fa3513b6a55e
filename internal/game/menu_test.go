package game

import (
	"testing"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
)

func newTestMenu() *Menu {
	return NewMenu(config.DefaultConfig().Menu, config.CameraFollowX)
}

func TestMenuCursorWraps(t *testing.T) {
	m := newTestMenu()

	tests := []struct {
		action   core.Action
		expected string
	}{
		{core.ActionDown, "item-options"},
		{core.ActionDown, "item-credits"},
		{core.ActionDown, "item-quit"},
		{core.ActionDown, "item-play"},
		{core.ActionUp, "item-quit"},
	}
	for _, tt := range tests {
		if got := m.Handle(press(tt.action)); got != MenuMoved {
			t.Errorf("Handle(%v) = %v, expected MenuMoved", tt.action, got)
		}
		if m.Selected() != tt.expected {
			t.Errorf("Selected() = %q, expected %q", m.Selected(), tt.expected)
		}
	}
}

func TestMenuActivate(t *testing.T) {
	m := newTestMenu()
	if got := m.Handle(press(core.ActionConfirm)); got != MenuPlay {
		t.Errorf("Confirm on Play = %v, expected MenuPlay", got)
	}

	m.Handle(press(core.ActionUp))
	if got := m.Handle(press(core.ActionConfirm)); got != MenuQuit {
		t.Errorf("Confirm on Quit = %v, expected MenuQuit", got)
	}
}

func TestMenuCreditsPage(t *testing.T) {
	m := newTestMenu()
	m.Handle(press(core.ActionDown))
	m.Handle(press(core.ActionDown))
	if got := m.Handle(press(core.ActionConfirm)); got != MenuPageChanged {
		t.Fatalf("Confirm on Credits = %v, expected MenuPageChanged", got)
	}
	if m.Page() != PageCredits || m.Cursor() != 0 {
		t.Fatalf("page = %v cursor = %d, expected credits at 0", m.Page(), m.Cursor())
	}

	lines := m.Lines()
	if lines[0].Text != "Credits" {
		t.Errorf("first line = %q, expected Credits", lines[0].Text)
	}
	if lines[1].Text != "Programmer: Sergio Ribera" {
		t.Errorf("second line = %q, expected the programmer credit", lines[1].Text)
	}
	if m.Selected() != "back" {
		t.Errorf("Selected() = %q, expected back as the only selectable line", m.Selected())
	}

	if got := m.Handle(press(core.ActionBack)); got != MenuPageChanged || m.Page() != PageMain {
		t.Errorf("Back = %v on page %v, expected main", got, m.Page())
	}
	if got := m.Handle(press(core.ActionBack)); got != MenuNone {
		t.Errorf("Back on main = %v, expected MenuNone", got)
	}
}

func TestMenuSettingsCycle(t *testing.T) {
	m := newTestMenu()
	if m.Setting(SettingCamera) != config.CameraFollowX {
		t.Fatalf("camera = %q, expected follow-x", m.Setting(SettingCamera))
	}

	m.Handle(press(core.ActionDown))
	m.Handle(press(core.ActionConfirm))
	if m.Page() != PageOptions {
		t.Fatalf("page = %v, expected options", m.Page())
	}

	expected := []string{config.CameraStatic, config.CameraFollow, config.CameraFollowX}
	for _, e := range expected {
		if got := m.Handle(press(core.ActionConfirm)); got != MenuSettingChanged {
			t.Fatalf("Confirm on setting = %v, expected MenuSettingChanged", got)
		}
		if m.Setting(SettingCamera) != e {
			t.Errorf("camera = %q, expected %q", m.Setting(SettingCamera), e)
		}
	}
	if m.Lines()[1].Text != "Camera: follow-x" {
		t.Errorf("line = %q, expected Camera: follow-x", m.Lines()[1].Text)
	}
	if m.Setting("missing") != "" {
		t.Error("unknown setting should be empty")
	}
}

func TestMenuIgnoresHeldKeys(t *testing.T) {
	m := newTestMenu()
	if got := m.Handle(hold(core.ActionDown, core.ActionConfirm)); got != MenuNone {
		t.Errorf("held keys = %v, expected MenuNone", got)
	}
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected 0", m.Cursor())
	}
}
