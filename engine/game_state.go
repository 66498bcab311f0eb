package engine

import (
	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
)

// GameState owns one episode: snake body, heading, fruit, score and the game-over flag
// Not safe for concurrent use; LoopDriver serializes all access
type GameState struct {
	width  int
	height int

	snake     []core.Cell // head at index 0
	direction core.Direction
	fruit     core.Cell
	score     int
	over      bool

	placer     *FruitPlacer
	fruitRetry bool
}

// Option configures a GameState at construction
type Option func(*GameState)

// WithSeed seeds fruit placement, 0 selects a time-based seed
func WithSeed(seed uint64) Option {
	return func(gs *GameState) {
		gs.placer = NewFruitPlacer(gs.width, gs.height, seed)
	}
}

// WithFruitRetry makes in-game fruit placement avoid the snake body
// Off by default: eaten fruit respawns anywhere in the interior, even under the snake
func WithFruitRetry(enabled bool) Option {
	return func(gs *GameState) {
		gs.fruitRetry = enabled
	}
}

// ResetConfig is the starting layout applied by Reset
type ResetConfig struct {
	Length    int
	Start     core.Cell
	Direction core.Direction
}

// ResetOption overrides one field of the default ResetConfig
type ResetOption func(*ResetConfig)

// WithLength sets the initial snake length, values below 1 are treated as 1
func WithLength(n int) ResetOption {
	return func(rc *ResetConfig) { rc.Length = n }
}

// WithStart sets the initial head cell
func WithStart(c core.Cell) ResetOption {
	return func(rc *ResetConfig) { rc.Start = c }
}

// WithDirection sets the initial heading, invalid values keep the default
func WithDirection(d core.Direction) ResetOption {
	return func(rc *ResetConfig) {
		if d.Valid() {
			rc.Direction = d
		}
	}
}

// DefaultResetConfig returns the standard single-cell start at (9,10) heading right
func DefaultResetConfig() ResetConfig {
	return ResetConfig{
		Length:    constants.StartLength,
		Start:     core.Cell{X: constants.StartX, Y: constants.StartY},
		Direction: core.DirRight,
	}
}

// NewGameState creates a running state on the standard board, already reset
func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		width:  constants.GridWidth,
		height: constants.GridHeight,
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.placer == nil {
		gs.placer = NewFruitPlacer(gs.width, gs.height, 0)
	}
	gs.Reset()
	return gs
}

// Reset reinitializes every field and places a fresh fruit off the snake
func (gs *GameState) Reset(opts ...ResetOption) {
	rc := DefaultResetConfig()
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.Length < 1 {
		rc.Length = 1
	}

	// Body trails behind the head, opposite to the heading
	back := rc.Direction.Opposite()
	gs.snake = make([]core.Cell, 0, rc.Length+8)
	cell := rc.Start
	for i := 0; i < rc.Length; i++ {
		gs.snake = append(gs.snake, cell)
		cell = cell.Step(back)
	}

	gs.direction = rc.Direction
	gs.score = 0
	gs.over = false
	gs.fruit = gs.placer.Unoccupied(gs.snake)
}

// SetDirection changes heading unless d is the exact reverse of the current one
func (gs *GameState) SetDirection(d core.Direction) {
	if !d.Valid() || d == gs.direction.Opposite() {
		return
	}
	gs.direction = d
}

// Tick advances the snake one board unit
// Check order is fixed: boundary, then self-collision on the pre-move body, then fruit
func (gs *GameState) Tick() core.TickResult {
	if gs.over {
		return core.TickGameOver
	}

	newHead := gs.snake[0].Step(gs.direction)

	if !newHead.InBounds(gs.width, gs.height) {
		gs.over = true
		return core.TickGameOver
	}

	// Tail cell still counts as an obstacle on this tick even if it would vacate
	if gs.occupies(newHead) {
		gs.over = true
		return core.TickGameOver
	}

	result := core.TickContinue
	if newHead == gs.fruit {
		gs.score++
		result = core.TickAte
	} else {
		gs.snake = gs.snake[:len(gs.snake)-1]
	}

	gs.snake = append(gs.snake, core.Cell{})
	copy(gs.snake[1:], gs.snake)
	gs.snake[0] = newHead

	if result == core.TickAte {
		if gs.fruitRetry {
			gs.fruit = gs.placer.Unoccupied(gs.snake)
		} else {
			gs.fruit = gs.placer.Random()
		}
	}

	return result
}

func (gs *GameState) occupies(c core.Cell) bool {
	for _, s := range gs.snake {
		if s == c {
			return true
		}
	}
	return false
}

// PlaceFruit moves the fruit to c, used for scripted boards and tests
func (gs *GameState) PlaceFruit(c core.Cell) {
	gs.fruit = c
}

// Snake returns a copy of the body, head first
func (gs *GameState) Snake() []core.Cell {
	out := make([]core.Cell, len(gs.snake))
	copy(out, gs.snake)
	return out
}

// Head returns the head cell
func (gs *GameState) Head() core.Cell {
	return gs.snake[0]
}

// Len returns the snake length
func (gs *GameState) Len() int {
	return len(gs.snake)
}

func (gs *GameState) Fruit() core.Cell { return gs.fruit }
func (gs *GameState) Score() int { return gs.score }
func (gs *GameState) Direction() core.Direction { return gs.direction }
func (gs *GameState) IsOver() bool { return gs.over }
func (gs *GameState) Size() (width, height int) { return gs.width, gs.height }
func (gs *GameState) FruitRetry() bool { return gs.fruitRetry }
