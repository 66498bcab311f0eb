package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
)

// FruitPlacer picks fruit cells inside the board interior
// The outermost ring is never used, matching [margin, size-1-margin] on both axes
type FruitPlacer struct {
	rng   *rand.Rand
	minX  int
	minY  int
	spanX int
	spanY int
}

// NewFruitPlacer creates a placer for a w x h board; seed 0 selects a time-based seed
func NewFruitPlacer(w, h int, seed uint64) *FruitPlacer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return newFruitPlacer(w, h, rand.New(rand.NewSource(seed)))
}

func newFruitPlacer(w, h int, rng *rand.Rand) *FruitPlacer {
	m := constants.FruitMargin
	spanX := w - 2*m
	spanY := h - 2*m
	// Boards too small for a margin fall back to the full area
	if spanX < 1 || spanY < 1 {
		m, spanX, spanY = 0, w, h
	}
	return &FruitPlacer{
		rng:   rng,
		minX:  m,
		minY:  m,
		spanX: spanX,
		spanY: spanY,
	}
}

// Random returns a uniformly random interior cell without looking at the board
func (p *FruitPlacer) Random() core.Cell {
	return core.Cell{
		X: p.minX + p.rng.Intn(p.spanX),
		Y: p.minY + p.rng.Intn(p.spanY),
	}
}

// Unoccupied returns a random interior cell not in occupied
// If every interior cell is taken it scans once and falls back to the last draw
func (p *FruitPlacer) Unoccupied(occupied []core.Cell) core.Cell {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	interior := p.spanX * p.spanY
	var cell core.Cell
	for i := 0; i < interior*4; i++ {
		cell = p.Random()
		if _, hit := taken[cell]; !hit {
			return cell
		}
	}

	// Dense board: deterministic sweep so placement still terminates
	for y := p.minY; y < p.minY+p.spanY; y++ {
		for x := p.minX; x < p.minX+p.spanX; x++ {
			c := core.Cell{X: x, Y: y}
			if _, hit := taken[c]; !hit {
				return c
			}
		}
	}
	return cell
}
