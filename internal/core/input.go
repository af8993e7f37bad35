package core

import "strings"

// Action is a semantic intent derived from raw device input.
// The simulation only ever sees actions, never keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionDuck           // S, Down (held)
	ActionBack           // B - back to the character picker
	ActionRestart        // R, Enter - play again after game over
	ActionQuit           // Q
	ActionPause          // P, Esc - toggle pause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions pressed during one tick. It is a plain
// value: copies never share state.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func actionBit(a Action) uint16 {
	if a <= ActionNone || a > ActionPause {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	f.bits |= actionBit(a)
}

// Has reports whether the action was pressed.
func (f InputFrame) Has(a Action) bool {
	b := actionBit(a)
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the pressed actions, e.g. "[Jump Pause]".
func (f InputFrame) String() string {
	var names []string
	for a := ActionJump; a <= ActionPause; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
