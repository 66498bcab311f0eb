// Package render draws the board and status bar on a tcell screen
package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/engine"
	"github.com/lixenwraith/berry-snake/status"
)

// BestSource reports the stored record for a tier
type BestSource interface {
	Best(d core.Difficulty) int
}

// TerminalRenderer handles all terminal rendering
// It redraws on every tick, reset and game over notification
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	best   BestSource
	stats  *status.Registry // nil hides the debug line

	last     engine.Snapshot
	hasFrame bool
}

// NewTerminalRenderer creates a renderer; best and stats may be nil
func NewTerminalRenderer(screen tcell.Screen, best BestSource, stats *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		best:   best,
		stats:  stats,
	}
}

func (r *TerminalRenderer) HandleTick(snap engine.Snapshot, result core.TickResult) {
	r.render(snap)
}

func (r *TerminalRenderer) HandleGameOver(snap engine.Snapshot) {
	r.render(snap)
}

func (r *TerminalRenderer) HandleReset(snap engine.Snapshot) {
	r.render(snap)
}

// Redraw repaints the last frame, used after terminal resize
func (r *TerminalRenderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasFrame {
		r.drawFrame(r.last)
	}
}

func (r *TerminalRenderer) render(snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = snap
	r.hasFrame = true
	r.drawFrame(snap)
}

// CellOrigin returns the screen position of the first column of board cell c
func CellOrigin(c core.Cell) (x, y int) {
	return constants.BoardOffsetX + 1 + c.X*constants.CellWidth, constants.BoardOffsetY + 1 + c.Y
}

// StatusRow returns the screen row of the status bar for a board of the given height
func StatusRow(height int) int {
	return constants.BoardOffsetY + height + 2 + constants.StatusBarGap
}

func (r *TerminalRenderer) drawFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawBorder(snap.Width, snap.Height, defaultStyle)
	r.drawFruit(snap, defaultStyle)
	r.drawSnake(snap, defaultStyle)
	r.drawStatusBar(snap, defaultStyle)
	if snap.Over {
		r.drawGameOver(snap, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(w, h int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	left := constants.BoardOffsetX
	top := constants.BoardOffsetY
	right := left + 1 + w*constants.CellWidth
	bottom := top + 1 + h

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// fillCell paints glyph across every column of board cell c
func (r *TerminalRenderer) fillCell(c core.Cell, glyph rune, style tcell.Style) {
	x, y := CellOrigin(c)
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawFruit(snap engine.Snapshot, defaultStyle tcell.Style) {
	if !snap.Fruit.InBounds(snap.Width, snap.Height) {
		return
	}
	x, y := CellOrigin(snap.Fruit)
	r.screen.SetContent(x, y, constants.GlyphFruit, nil, defaultStyle.Foreground(RgbBerry))
}

func (r *TerminalRenderer) drawSnake(snap engine.Snapshot, defaultStyle tcell.Style) {
	headStyle := defaultStyle.Foreground(RgbSnakeHead)
	bodyStyle := defaultStyle.Foreground(RgbSnakeBody)
	if snap.Over {
		bodyStyle = defaultStyle.Foreground(RgbSnakeDead)
	}

	// Body first so the head wins on overlap
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		if snap.Snake[i].InBounds(snap.Width, snap.Height) {
			r.fillCell(snap.Snake[i], constants.GlyphBody, bodyStyle)
		}
	}
	if len(snap.Snake) > 0 && snap.Snake[0].InBounds(snap.Width, snap.Height) {
		r.fillCell(snap.Snake[0], constants.GlyphHead, headStyle)
	}
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, defaultStyle tcell.Style) {
	y := StatusRow(snap.Height)
	x := constants.BoardOffsetX

	labelStyle := defaultStyle.Foreground(RgbStatusLabel)
	valueStyle := defaultStyle.Foreground(RgbStatusBar)

	d := snap.Difficulty.Normalize()
	badgeStyle := defaultStyle.Foreground(RgbStatusBar).Background(RgbDifficulty[d])
	x = r.drawText(x, y, " "+d.String()+" ", badgeStyle)
	x++

	x = r.drawText(x, y, "Score: ", labelStyle)
	x = r.drawText(x, y, fmt.Sprintf("%d", snap.Score), valueStyle)
	x += 2

	best := 0
	if r.best != nil {
		best = r.best.Best(d)
	}
	bestStyle := valueStyle
	if snap.Score > 0 && snap.Score >= best {
		bestStyle = defaultStyle.Foreground(RgbBestScore)
	}
	x = r.drawText(x, y, "Best: ", labelStyle)
	r.drawText(x, y, fmt.Sprintf("%d", max(best, snap.Score)), bestStyle)

	if r.stats != nil {
		r.drawText(constants.BoardOffsetX, y+1, r.stats.Summary(), defaultStyle.Foreground(RgbDebug))
	}
}

func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, defaultStyle tcell.Style) {
	innerX := constants.BoardOffsetX + 1
	innerW := snap.Width * constants.CellWidth
	midY := constants.BoardOffsetY + 1 + snap.Height/2 - 1

	banner := fmt.Sprintf(constants.GameOverText, snap.Score)
	r.drawCentered(innerX, innerW, midY, banner, defaultStyle.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(innerX, innerW, midY+1, constants.RestartHintText, defaultStyle.Foreground(RgbHint))
}

// drawCentered centers s within [x, x+w), overflowing to the right when s is wider
func (r *TerminalRenderer) drawCentered(x, w, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	if n < w {
		x += (w - n) / 2
	}
	r.drawText(x, y, s, style)
}
