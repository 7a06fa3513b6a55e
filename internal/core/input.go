package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys and gamepad buttons to actions; the game only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionPause            // Escape, P, gamepad Start - leave the run for the menu
	ActionJump             // Space, W, Up, gamepad A
	ActionMoveLeft         // A, Left, d-pad left
	ActionMoveRight        // D, Right, d-pad right
	ActionUp               // menu cursor up
	ActionDown             // menu cursor down
	ActionConfirm          // Enter - activate the selected menu item
	ActionBack             // Backspace, B - leave a submenu
	ActionQuit             // Q, Ctrl+C - exit the process
)

// AllActions lists every bindable action in declaration order.
var AllActions = []Action{
	ActionPause, ActionJump, ActionMoveLeft, ActionMoveRight,
	ActionUp, ActionDown, ActionConfirm, ActionBack, ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionJump:
		return "Jump"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Pressed is level-triggered (true every tick while held); JustPressed is
// edge-triggered (true only on the tick the action went down).
type InputFrame struct {
	held map[Action]bool
	just map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held: make(map[Action]bool),
		just: make(map[Action]bool),
	}
}

// Set marks an action as both held and just pressed for this frame.
func (f *InputFrame) Set(a Action) {
	f.Hold(a)
	f.just[a] = true
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.just == nil {
		f.just = make(map[Action]bool)
	}
	f.held[a] = true
}

// Pressed reports whether the action is held this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.held[a]
}

// JustPressed reports whether the action went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.just[a]
}

// Without returns a copy of the frame with the given actions released.
func (f InputFrame) Without(actions ...Action) InputFrame {
	out := NewInputFrame()
	for a := range f.held {
		out.held[a] = f.held[a]
	}
	for a := range f.just {
		out.just[a] = f.just[a]
	}
	for _, a := range actions {
		delete(out.held, a)
		delete(out.just, a)
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.held)
	clear(f.just)
}

// InputTracker derives press edges from successive held sets.
// Level sources (keyboard state, gamepads) report what is held each tick;
// event-only sources such as terminals report taps that stay held for a
// short window so that auto-repeat reads as a continuous hold.
type InputTracker struct {
	prev map[Action]bool
	taps map[Action]int
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		prev: make(map[Action]bool),
		taps: make(map[Action]int),
	}
}

// Tap records a key event that keeps the action held for the given number
// of ticks. A tap on an action that is still held extends the hold without
// producing a new edge.
func (t *InputTracker) Tap(a Action, holdTicks int) {
	if holdTicks < 1 {
		holdTicks = 1
	}
	if t.taps[a] < holdTicks {
		t.taps[a] = holdTicks
	}
}

// Release drops any pending hold for the action.
func (t *InputTracker) Release(a Action) {
	delete(t.taps, a)
}

// Frame builds the frame for this tick from the actions held by level
// sources plus any live taps, then advances the tap windows.
func (t *InputTracker) Frame(held ...Action) InputFrame {
	frame := NewInputFrame()
	now := make(map[Action]bool, len(held)+len(t.taps))
	for _, a := range held {
		now[a] = true
	}
	for a, left := range t.taps {
		now[a] = true
		if left <= 1 {
			delete(t.taps, a)
		} else {
			t.taps[a] = left - 1
		}
	}

	for a := range now {
		if t.prev[a] {
			frame.Hold(a)
		} else {
			frame.Set(a)
		}
	}
	t.prev = now
	return frame
}
