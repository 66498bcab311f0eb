// Package input translates terminal key and mouse events into game intents
package input

import (
	"github.com/lixenwraith/berry-snake/core"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentDirection  // arrows, WASD, hjkl, mouse swipe
	IntentRestart    // r, Enter
	IntentDifficulty // 1, 2, 3
)

// String returns a short name for logging
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentDirection:
		return "direction"
	case IntentRestart:
		return "restart"
	case IntentDifficulty:
		return "difficulty"
	default:
		return "none"
	}
}

// Intent is a parsed user action
type Intent struct {
	Type       IntentType
	Direction  core.Direction  // IntentDirection
	Difficulty core.Difficulty // IntentDifficulty
}
