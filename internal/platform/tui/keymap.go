package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tri-hunt/internal/core"
)

// Action is what a key press asks the terminal frontend to do.
type Action int

const (
	ActionNone    Action = iota
	ActionMove           // Press a direction key
	ActionConfirm        // Dismiss the open modal
	ActionRestart        // New game after the previous one ended
	ActionScores         // Open the leaderboard after the game ended
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. For ActionMove the
// direction key is returned as well.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, core.Key) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit, core.KeyNone
	case "up", "w":
		return ActionMove, core.KeyUp
	case "down", "s":
		return ActionMove, core.KeyDown
	case "left", "a":
		return ActionMove, core.KeyLeft
	case "right", "d":
		return ActionMove, core.KeyRight
	case "enter", " ":
		return ActionConfirm, core.KeyNone
	case "r":
		return ActionRestart, core.KeyNone
	case "tab":
		return ActionScores, core.KeyNone
	}

	return ActionNone, core.KeyNone
}
