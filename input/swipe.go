package input

import (
	"github.com/lixenwraith/berry-snake/core"
)

// Swipe converts a drag displacement into a direction
// The greater axis wins, ties go vertical, zero displacement yields DirNone
func Swipe(dx, dy int) core.Direction {
	if dx == 0 && dy == 0 {
		return core.DirNone
	}

	if abs(dx) > abs(dy) {
		if dx > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}

	if dy > 0 {
		return core.DirDown
	}
	return core.DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
