package core

import (
	"fmt"
	"slices"
)

type Mode string

const (
	NormalMode  Mode = "normal"
	InsertMode  Mode = "insert"
	CommandMode Mode = "command"
)

var transitions = map[Mode][]Mode{
	NormalMode:  {InsertMode, CommandMode},
	InsertMode:  {NormalMode},
	CommandMode: {NormalMode},
}

// CanTransition reports whether the state machine allows moving from one
// mode to another in a single step.
func CanTransition(from, to Mode) bool {
	return slices.Contains(transitions[from], to)
}

// Successors lists the modes reachable from m in one transition.
func Successors(m Mode) []Mode {
	return slices.Clone(transitions[m])
}

func (m Mode) Label() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case InsertMode:
		return "INSERT"
	case CommandMode:
		return "COMMAND"
	default:
		return string(m)
	}
}

// EditorMode is the per-mode behaviour the dispatcher and engine consult.
type EditorMode interface {
	Name() Mode
	// Resolve maps the pending keys plus the new key to an action.
	Resolve(pending []KeyEvent, key KeyEvent) Resolution
	Enter(e *Engine) // Called when entering the mode
	Exit(e *Engine)  // Called when exiting the mode
}

func invalidTransition(from, to Mode) error {
	return NewError(ErrInvalidTransitionId, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to))
}
