package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Opposite(), "opposite of %s", d)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	assert.Equal(t, DirNone, DirNone.Opposite())
}

func TestCellStep(t *testing.T) {
	c := Cell{X: 9, Y: 10}
	assert.Equal(t, Cell{X: 10, Y: 10}, c.Step(DirRight))
	assert.Equal(t, Cell{X: 8, Y: 10}, c.Step(DirLeft))
	assert.Equal(t, Cell{X: 9, Y: 9}, c.Step(DirUp))
	assert.Equal(t, Cell{X: 9, Y: 11}, c.Step(DirDown))
	assert.Equal(t, c, c.Step(DirNone))
}

func TestCellInBounds(t *testing.T) {
	assert.True(t, Cell{X: 0, Y: 0}.InBounds(20, 20))
	assert.True(t, Cell{X: 19, Y: 19}.InBounds(20, 20))
	assert.False(t, Cell{X: -1, Y: 5}.InBounds(20, 20))
	assert.False(t, Cell{X: 20, Y: 5}.InBounds(20, 20))
	assert.False(t, Cell{X: 5, Y: -1}.InBounds(20, 20))
	assert.False(t, Cell{X: 5, Y: 20}.InBounds(20, 20))
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{" medium ", DifficultyMedium},
		{"2", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyHard},
		{"nightmare", DifficultyHard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDifficulty(tt.in), "input %q", tt.in)
	}
}

func TestDifficultyNames(t *testing.T) {
	assert.Equal(t, "easy", DifficultyEasy.Key())
	assert.Equal(t, "Medium", DifficultyMedium.String())
	assert.Equal(t, DifficultyHard, Difficulty(42).Normalize())
	assert.Equal(t, "hard", Difficulty(42).Key())
}
