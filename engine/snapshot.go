package engine

import (
	"github.com/lixenwraith/berry-snake/core"
)

// Snapshot is an immutable copy of the live state handed to handlers
type Snapshot struct {
	Snake      []core.Cell // head first
	Fruit      core.Cell
	Score      int
	Direction  core.Direction
	Over       bool
	Difficulty core.Difficulty
	Episode    uint64
	Width      int
	Height     int
}

// Head returns the head cell, zero Cell for an empty snapshot
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}

// snapshot copies gs together with driver-owned fields
func snapshot(gs *GameState, difficulty core.Difficulty, episode uint64) Snapshot {
	w, h := gs.Size()
	return Snapshot{
		Snake:      gs.Snake(),
		Fruit:      gs.Fruit(),
		Score:      gs.Score(),
		Direction:  gs.Direction(),
		Over:       gs.IsOver(),
		Difficulty: difficulty,
		Episode:    episode,
		Width:      w,
		Height:     h,
	}
}
