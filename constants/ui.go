package constants

// UI Layout Constants
const (
	// BoardOffsetX is the screen column of the left border
	BoardOffsetX = 1

	// BoardOffsetY is the screen row of the top border
	BoardOffsetY = 1

	// CellWidth is the number of terminal columns per board unit
	// Terminal cells are roughly twice as tall as wide
	CellWidth = 2

	// StatusBarGap is the number of rows between board and status bar
	StatusBarGap = 1
)

// Glyphs
const (
	GlyphHead  = '█'
	GlyphBody  = '▓'
	GlyphFruit = '●'
)

// Game-over banner text
const (
	GameOverText    = "BERRYCRASHED! Your Score: %d"
	RestartHintText = "r: restart  1/2/3: difficulty  q: quit"
)
