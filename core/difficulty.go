package core

import "strings"

// Difficulty is a speed tier with its own high-score slot
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyCount
)

// Difficulties lists all tiers in display order
var Difficulties = [DifficultyCount]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Key returns the lowercase persistence key ("easy", "medium", "hard")
func (d Difficulty) Key() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	default:
		return "hard"
	}
}

// String returns the capitalized tier name for display
func (d Difficulty) String() string {
	k := d.Key()
	return strings.ToUpper(k[:1]) + k[1:]
}

// Valid reports whether d is a known tier
func (d Difficulty) Valid() bool {
	return d < DifficultyCount
}

// Normalize maps unknown tiers to Hard
func (d Difficulty) Normalize() Difficulty {
	if !d.Valid() {
		return DifficultyHard
	}
	return d
}

// ParseDifficulty maps a tier name to a Difficulty, unrecognized input yields Hard
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy
	case "medium", "2":
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
