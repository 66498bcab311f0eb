package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/input"
)

type fakeControl struct {
	dirs     []core.Direction
	restarts int
	diffs    []core.Difficulty
}

func (f *fakeControl) QueueDirection(dir core.Direction) { f.dirs = append(f.dirs, dir) }
func (f *fakeControl) Restart()                          { f.restarts++ }
func (f *fakeControl) SetDifficulty(d core.Difficulty)   { f.diffs = append(f.diffs, d) }

type fakeGate bool

func (g fakeGate) RestartAvailable() bool { return bool(g) }

type fakeView struct{ redraws int }

func (v *fakeView) Redraw() { v.redraws++ }

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleIntentQuit(t *testing.T) {
	tr := input.NewTranslator()
	ctl, view := &fakeControl{}, &fakeView{}

	assert.True(t, handleIntent(tr.Process(key('q')), ctl, fakeGate(false), view))
	assert.True(t, handleIntent(tr.Process(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)), ctl, fakeGate(false), view))
	assert.False(t, handleIntent(nil, ctl, fakeGate(false), view))
}

func TestHandleIntentDirectionAndDifficulty(t *testing.T) {
	tr := input.NewTranslator()
	ctl, view := &fakeControl{}, &fakeView{}

	assert.False(t, handleIntent(tr.Process(key('w')), ctl, fakeGate(false), view))
	assert.False(t, handleIntent(tr.Process(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)), ctl, fakeGate(false), view))
	assert.False(t, handleIntent(tr.Process(key('1')), ctl, fakeGate(false), view))

	assert.Equal(t, []core.Direction{core.DirUp, core.DirLeft}, ctl.dirs)
	assert.Equal(t, []core.Difficulty{core.DifficultyEasy}, ctl.diffs)
}

func TestHandleIntentRestartGated(t *testing.T) {
	tr := input.NewTranslator()
	ctl, view := &fakeControl{}, &fakeView{}

	handleIntent(tr.Process(key('r')), ctl, fakeGate(false), view)
	assert.Equal(t, 0, ctl.restarts, "restart ignored mid-episode")

	handleIntent(tr.Process(key('r')), ctl, fakeGate(true), view)
	assert.Equal(t, 1, ctl.restarts)
}

func TestHandleIntentResizeRedraws(t *testing.T) {
	tr := input.NewTranslator()
	ctl, view := &fakeControl{}, &fakeView{}

	handleIntent(tr.Process(tcell.NewEventResize(80, 24)), ctl, fakeGate(false), view)
	assert.Equal(t, 1, view.redraws)
}
