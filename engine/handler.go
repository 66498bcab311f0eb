package engine

import (
	"github.com/lixenwraith/berry-snake/core"
)

// TickHandler receives the post-tick state after every tick
// Called synchronously on the driver goroutine; must not call back into the driver
type TickHandler interface {
	HandleTick(snap Snapshot, result core.TickResult)
}

// GameOverHandler is notified exactly once per episode when it ends
type GameOverHandler interface {
	HandleGameOver(snap Snapshot)
}

// ResetHandler is notified after restart or difficulty change with the fresh state
type ResetHandler interface {
	HandleReset(snap Snapshot)
}

// TickFunc adapts a plain function to TickHandler
type TickFunc func(snap Snapshot, result core.TickResult)

func (f TickFunc) HandleTick(snap Snapshot, result core.TickResult) { f(snap, result) }

// handlerSet routes notifications to every registered handler that accepts them
// Handlers are invoked in registration order
type handlerSet struct {
	tick     []TickHandler
	gameOver []GameOverHandler
	reset    []ResetHandler
}

// register files h under every handler interface it implements, returns false if none
func (hs *handlerSet) register(h any) bool {
	ok := false
	if th, is := h.(TickHandler); is {
		hs.tick = append(hs.tick, th)
		ok = true
	}
	if gh, is := h.(GameOverHandler); is {
		hs.gameOver = append(hs.gameOver, gh)
		ok = true
	}
	if rh, is := h.(ResetHandler); is {
		hs.reset = append(hs.reset, rh)
		ok = true
	}
	return ok
}

func (hs *handlerSet) dispatchTick(snap Snapshot, result core.TickResult) {
	for _, h := range hs.tick {
		h.HandleTick(snap, result)
	}
}

func (hs *handlerSet) dispatchGameOver(snap Snapshot) {
	for _, h := range hs.gameOver {
		h.HandleGameOver(snap)
	}
}

func (hs *handlerSet) dispatchReset(snap Snapshot) {
	for _, h := range hs.reset {
		h.HandleReset(snap)
	}
}
