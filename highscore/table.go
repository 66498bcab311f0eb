// Package highscore keeps the best score per difficulty tier and persists it
package highscore

import (
	"github.com/lixenwraith/berry-snake/core"
)

// Table holds the best score recorded for each tier
// JSON shape matches {"easy":0,"medium":0,"hard":0}
type Table struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Get returns the best score for d, unknown tiers read the Hard slot
func (t Table) Get(d core.Difficulty) int {
	switch d.Normalize() {
	case core.DifficultyEasy:
		return t.Easy
	case core.DifficultyMedium:
		return t.Medium
	default:
		return t.Hard
	}
}

// Set overwrites the slot for d
func (t *Table) Set(d core.Difficulty, score int) {
	if score < 0 {
		score = 0
	}
	switch d.Normalize() {
	case core.DifficultyEasy:
		t.Easy = score
	case core.DifficultyMedium:
		t.Medium = score
	default:
		t.Hard = score
	}
}

// Update raises the slot for d to score if it is a new record, reports whether it changed
func (t *Table) Update(d core.Difficulty, score int) bool {
	if score <= t.Get(d) {
		return false
	}
	t.Set(d, score)
	return true
}
