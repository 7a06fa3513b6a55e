package window

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/core"
)

// ErrUnknownBinding is returned for key or button names with no mapping.
var ErrUnknownBinding = errors.New("window: unknown binding")

// keyAliases are the short names used by the configuration. Other names
// go through ebiten's own key names ("F1", "Digit1", "ArrowUp").
var keyAliases = map[string]ebiten.Key{
	"esc":       ebiten.KeyEscape,
	"escape":    ebiten.KeyEscape,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
}

var modifiers = map[string]ebiten.Key{
	"ctrl":  ebiten.KeyControl,
	"shift": ebiten.KeyShift,
	"alt":   ebiten.KeyAlt,
}

// gamepadButtons maps configuration names to standard layout buttons.
var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"a":           ebiten.StandardGamepadButtonRightBottom,
	"b":           ebiten.StandardGamepadButtonRightRight,
	"x":           ebiten.StandardGamepadButtonRightLeft,
	"y":           ebiten.StandardGamepadButtonRightTop,
	"lb":          ebiten.StandardGamepadButtonFrontTopLeft,
	"rb":          ebiten.StandardGamepadButtonFrontTopRight,
	"lt":          ebiten.StandardGamepadButtonFrontBottomLeft,
	"rt":          ebiten.StandardGamepadButtonFrontBottomRight,
	"select":      ebiten.StandardGamepadButtonCenterLeft,
	"start":       ebiten.StandardGamepadButtonCenterRight,
	"home":        ebiten.StandardGamepadButtonCenterCenter,
	"left_stick":  ebiten.StandardGamepadButtonLeftStick,
	"right_stick": ebiten.StandardGamepadButtonRightStick,
	"dpad_up":     ebiten.StandardGamepadButtonLeftTop,
	"dpad_down":   ebiten.StandardGamepadButtonLeftBottom,
	"dpad_left":   ebiten.StandardGamepadButtonLeftLeft,
	"dpad_right":  ebiten.StandardGamepadButtonLeftRight,
}

// Combo is a key with optional modifiers that must be held together.
type Combo struct {
	Mods []ebiten.Key
	Key  ebiten.Key
}

// ParseKey converts a configured key name such as "space" or "ctrl+c".
func ParseKey(name string) (Combo, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	var c Combo
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifiers[p]
		if !ok {
			return Combo{}, fmt.Errorf("%w: modifier %q in %q", ErrUnknownBinding, p, name)
		}
		c.Mods = append(c.Mods, m)
	}

	last := parts[len(parts)-1]
	if k, ok := keyAliases[last]; ok {
		c.Key = k
		return c, nil
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(last)); err != nil {
		return Combo{}, fmt.Errorf("%w: key %q", ErrUnknownBinding, name)
	}
	c.Key = k
	return c, nil
}

// ParseButton converts a configured gamepad button name.
func ParseButton(name string) (ebiten.StandardGamepadButton, error) {
	b, ok := gamepadButtons[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: button %q", ErrUnknownBinding, name)
	}
	return b, nil
}

// Device reports the level state of physical inputs.
type Device interface {
	KeyPressed(k ebiten.Key) bool
	ButtonPressed(b ebiten.StandardGamepadButton) bool
}

// Bindings maps physical inputs to actions.
type Bindings struct {
	keys    map[core.Action][]Combo
	buttons map[core.Action][]ebiten.StandardGamepadButton
}

// NewBindings builds bindings from the input configuration. Unknown names
// are collected into the returned error; the rest stay bound.
func NewBindings(cfg config.InputConfig) (Bindings, error) {
	b := Bindings{
		keys:    make(map[core.Action][]Combo),
		buttons: make(map[core.Action][]ebiten.StandardGamepadButton),
	}
	var errs []error
	for _, a := range core.AllActions {
		for _, name := range cfg.KeysFor(a) {
			c, err := ParseKey(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			b.keys[a] = append(b.keys[a], c)
		}
		for _, name := range cfg.ButtonsFor(a) {
			btn, err := ParseButton(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			b.buttons[a] = append(b.buttons[a], btn)
		}
	}
	return b, errors.Join(errs...)
}

// Held returns the actions whose inputs are down on the device.
func (b Bindings) Held(d Device) []core.Action {
	var out []core.Action
	for _, a := range core.AllActions {
		if b.held(a, d) {
			out = append(out, a)
		}
	}
	return out
}

func (b Bindings) held(a core.Action, d Device) bool {
	for _, c := range b.keys[a] {
		if c.down(d) {
			return true
		}
	}
	for _, btn := range b.buttons[a] {
		if d.ButtonPressed(btn) {
			return true
		}
	}
	return false
}

func (c Combo) down(d Device) bool {
	for _, m := range c.Mods {
		if !d.KeyPressed(m) {
			return false
		}
	}
	return d.KeyPressed(c.Key)
}

// ebitenDevice reads the keyboard and every gamepad with a standard layout.
type ebitenDevice struct {
	pads []ebiten.GamepadID
}

func (d *ebitenDevice) poll() {
	d.pads = ebiten.AppendGamepadIDs(d.pads[:0])
}

func (d *ebitenDevice) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (d *ebitenDevice) ButtonPressed(b ebiten.StandardGamepadButton) bool {
	for _, id := range d.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return false
}
