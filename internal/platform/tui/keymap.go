package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// duckHoldTicks is how long one duck key press keeps the character down.
// Terminals send no key-up events, so holding the key shows up as a press
// followed by auto-repeats after the OS repeat delay; the hold has to bridge
// that gap.
const duckHoldTicks = 15

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether the program should
// exit right away.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionDuck, false
	case "p", "esc":
		return core.ActionPause, false
	case "r", "enter":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Printable keys are
// left alone so they can be typed into the character field.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "esc":
		return MenuActionQuit
	case "up", "ctrl+p":
		return MenuActionUp
	case "down", "ctrl+n":
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DuckLatch turns discrete duck key presses into a held duck.
type DuckLatch struct {
	hold      int
	remaining int
}

// NewDuckLatch creates a latch that holds for the given number of ticks.
func NewDuckLatch(hold int) DuckLatch {
	return DuckLatch{hold: hold}
}

// Press starts or refreshes the hold.
func (l *DuckLatch) Press() {
	l.remaining = l.hold
}

// Release ends the hold immediately.
func (l *DuckLatch) Release() {
	l.remaining = 0
}

// Held reports whether duck is still latched.
func (l DuckLatch) Held() bool {
	return l.remaining > 0
}

// Apply adds Duck to the frame while held and consumes one tick of the hold.
func (l *DuckLatch) Apply(frame *core.InputFrame) {
	if l.remaining <= 0 {
		return
	}
	frame.Set(core.ActionDuck)
	l.remaining--
}
