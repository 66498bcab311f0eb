package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/berry-snake/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  core.Direction
	Difficulty core.Difficulty
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

func dir(d core.Direction) KeyEntry { return KeyEntry{IntentType: IntentDirection, Direction: d} }
func tier(d core.Difficulty) KeyEntry { return KeyEntry{IntentType: IntentDifficulty, Difficulty: d} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     dir(core.DirUp),
			tcell.KeyDown:   dir(core.DirDown),
			tcell.KeyLeft:   dir(core.DirLeft),
			tcell.KeyRight:  dir(core.DirRight),
			tcell.KeyEnter:  {IntentType: IntentRestart},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			// WASD
			'w': dir(core.DirUp),
			'a': dir(core.DirLeft),
			's': dir(core.DirDown),
			'd': dir(core.DirRight),

			// vi
			'k': dir(core.DirUp),
			'h': dir(core.DirLeft),
			'j': dir(core.DirDown),
			'l': dir(core.DirRight),

			'r': {IntentType: IntentRestart},
			'q': {IntentType: IntentQuit},

			'1': tier(core.DifficultyEasy),
			'2': tier(core.DifficultyMedium),
			'3': tier(core.DifficultyHard),
		},
	}
}
