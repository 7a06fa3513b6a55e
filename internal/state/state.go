// Package state implements the top-level game state machine.
//
// Subsystems never mutate the state directly. They produce a Request
// (through Fire or RequestTransition) and the owner of the Machine applies it.
package state

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// ErrInvalidTransition is returned when a trigger has no target in the
// current state, or a request names an unknown state.
var ErrInvalidTransition = errors.New("state: invalid transition")

// GameState is the top-level state of the runner.
type GameState int

const (
	Splash GameState = iota
	SplashEnd
	MainMenu
	GameLoading
	InGame
	Paused
	GameOver
)

// All lists every state in declaration order.
var All = []GameState{Splash, SplashEnd, MainMenu, GameLoading, InGame, Paused, GameOver}

// String returns the string representation of the game state.
func (s GameState) String() string {
	switch s {
	case Splash:
		return "Splash"
	case SplashEnd:
		return "SplashEnd"
	case MainMenu:
		return "MainMenu"
	case GameLoading:
		return "GameLoading"
	case InGame:
		return "InGame"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a declared state.
func (s GameState) Valid() bool {
	return s >= Splash && s <= GameOver
}

// Trigger is an external event evaluated against the transition table.
type Trigger int

const (
	SplashCompleted Trigger = iota
	MenuPlay
	MenuQuit
	PauseEdge
	QuitAction
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case SplashCompleted:
		return "SplashCompleted"
	case MenuPlay:
		return "MenuPlay"
	case MenuQuit:
		return "MenuQuit"
	case PauseEdge:
		return "PauseEdge"
	case QuitAction:
		return "QuitAction"
	default:
		return "Unknown"
	}
}

// Request is an explicit transition request. Quit requests terminate the
// process regardless of the current state and ignore To.
type Request struct {
	To   GameState
	Quit bool
}

// Go requests a transition to s.
func Go(s GameState) Request {
	return Request{To: s}
}

// QuitRequest requests process termination.
func QuitRequest() Request {
	return Request{Quit: true}
}

func (r Request) String() string {
	if r.Quit {
		return "quit"
	}
	return "to " + r.To.String()
}

// table is the transition table. Paused and GameOver have no triggers;
// they are reachable only through RequestTransition.
var table = map[GameState]map[Trigger]Request{
	Splash: {
		SplashCompleted: Go(MainMenu),
	},
	MainMenu: {
		MenuPlay: Go(InGame),
		MenuQuit: QuitRequest(),
	},
	InGame: {
		PauseEdge: Go(MainMenu),
	},
}

// Hook runs on state entry or exit.
type Hook func(from, to GameState) error

// Machine is the game state machine. It is not safe for concurrent use;
// it belongs to the frame loop.
type Machine struct {
	current GameState
	quit    bool
	enter   map[GameState][]Hook
	exit    map[GameState][]Hook
	once    map[string]bool
	logger  *log.Logger
}

// NewMachine creates a machine in the Splash state. A nil logger discards output.
func NewMachine(logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		current: Splash,
		enter:   make(map[GameState][]Hook),
		exit:    make(map[GameState][]Hook),
		once:    make(map[string]bool),
		logger:  logger,
	}
}

// Current returns the active state.
func (m *Machine) Current() GameState {
	return m.current
}

// Quitting reports whether a quit request has been applied.
func (m *Machine) Quitting() bool {
	return m.quit
}

// Fire looks up the transition for a trigger in the current state.
// Quit is available in every state. A trigger with no target is logged
// and reported as ErrInvalidTransition; the state does not change.
func (m *Machine) Fire(t Trigger) (Request, error) {
	if t == QuitAction {
		return QuitRequest(), nil
	}
	if r, ok := table[m.current][t]; ok {
		return r, nil
	}
	m.logger.Warn("ignoring trigger", "trigger", t, "state", m.current)
	return Request{}, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, t, m.current)
}

// RequestTransition is the generic entry point for states without a
// trigger, such as Paused and GameOver.
func (m *Machine) RequestTransition(to GameState) (Request, error) {
	if !to.Valid() {
		m.logger.Warn("ignoring request for unknown state", "state", int(to))
		return Request{}, fmt.Errorf("%w: unknown state %d", ErrInvalidTransition, int(to))
	}
	return Go(to), nil
}

// Apply performs a request. Exit hooks of the old state run before the
// state changes and enter hooks of the new state after. Requesting the
// current state is a no-op. Hook errors are joined and returned after all
// hooks have run.
func (m *Machine) Apply(r Request) (bool, error) {
	if r.Quit {
		if !m.quit {
			m.logger.Info("quit requested", "state", m.current)
		}
		m.quit = true
		return true, nil
	}
	if !r.To.Valid() {
		return false, fmt.Errorf("%w: unknown state %d", ErrInvalidTransition, int(r.To))
	}
	if r.To == m.current {
		return false, nil
	}

	from := m.current
	var errs []error
	for _, h := range m.exit[from] {
		if err := h(from, r.To); err != nil {
			errs = append(errs, err)
		}
	}
	m.current = r.To
	m.logger.Info("state transition", "from", from, "to", r.To)
	for _, h := range m.enter[r.To] {
		if err := h(from, r.To); err != nil {
			errs = append(errs, err)
		}
	}
	return true, errors.Join(errs...)
}

// OnEnter registers a hook that runs when s becomes active.
func (m *Machine) OnEnter(s GameState, h Hook) {
	m.enter[s] = append(m.enter[s], h)
}

// OnExit registers a hook that runs when s stops being active.
func (m *Machine) OnExit(s GameState, h Hook) {
	m.exit[s] = append(m.exit[s], h)
}

// Once runs fn the first time key is seen. A failed run does not count,
// so the next call retries.
func (m *Machine) Once(key string, fn func() error) error {
	if m.once[key] {
		return nil
	}
	if err := fn(); err != nil {
		return err
	}
	m.once[key] = true
	return nil
}

// Done reports whether the Once guard for key has completed.
func (m *Machine) Done(key string) bool {
	return m.once[key]
}

// Targets returns the triggers defined for s, sorted.
func Targets(s GameState) []Trigger {
	var out []Trigger
	for t := range table[s] {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
