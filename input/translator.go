package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/berry-snake/constants"
)

// Translator parses tcell events into Intents
// It tracks the primary-button press so a release can be read as a swipe
type Translator struct {
	keyTable *KeyTable

	pressed bool
	originX int
	originY int
}

// NewTranslator creates a translator with the default key table
func NewTranslator() *Translator {
	return &Translator{keyTable: DefaultKeyTable()}
}

// Reset forgets any in-progress drag
func (t *Translator) Reset() {
	t.pressed = false
	t.originX = 0
	t.originY = 0
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (t *Translator) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return t.processKey(ev)
	case *tcell.EventMouse:
		return t.processMouse(ev)
	}
	return nil
}

func (t *Translator) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		entry, ok := t.keyTable.Runes[unicode.ToLower(ev.Rune())]
		if !ok {
			return nil
		}
		return entry.intent()
	}

	if entry, ok := t.keyTable.SpecialKeys[ev.Key()]; ok {
		return entry.intent()
	}
	return nil
}

// processMouse turns press-then-release of the primary button into a swipe
func (t *Translator) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.pressed:
		t.pressed = true
		t.originX, t.originY = x, y
		return nil

	case down:
		// Drag in progress
		return nil

	case t.pressed:
		t.pressed = false
		// Terminal cells are about twice as tall as wide
		d := Swipe(x-t.originX, (y-t.originY)*constants.CellWidth)
		if !d.Valid() {
			return nil
		}
		return &Intent{Type: IntentDirection, Direction: d}
	}
	return nil
}

func (e KeyEntry) intent() *Intent {
	if e.IntentType == IntentNone {
		return nil
	}
	return &Intent{
		Type:       e.IntentType,
		Direction:  e.Direction,
		Difficulty: e.Difficulty,
	}
}
