package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted gray-blue

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbSnakeDead = tcell.NewRGBColor(130, 130, 130)

	RgbBerry = tcell.NewRGBColor(200, 40, 120) // Berry magenta

	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusLabel = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBestScore   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbDebug       = tcell.NewRGBColor(100, 100, 100)

	RgbGameOver = tcell.NewRGBColor(255, 80, 80) // Normal Red
	RgbHint     = tcell.NewRGBColor(255, 165, 0) // Orange
)

// Difficulty badge backgrounds, indexed by core.Difficulty
var RgbDifficulty = [...]tcell.Color{
	tcell.NewRGBColor(0, 130, 0),   // Easy
	tcell.NewRGBColor(180, 130, 0), // Medium
	tcell.NewRGBColor(180, 50, 50), // Hard
}
