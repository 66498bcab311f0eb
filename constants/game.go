package constants

import "time"

// Board geometry in board units
const (
	// GridWidth is the number of columns on the board
	GridWidth = 20

	// GridHeight is the number of rows on the board
	GridHeight = 20

	// FruitMargin is the outer ring excluded from fruit placement
	FruitMargin = 1
)

// Snake start configuration
const (
	StartX      = 9
	StartY      = 10
	StartLength = 1
)

// Tick intervals per difficulty tier
const (
	EasyTickInterval   = 200 * time.Millisecond
	MediumTickInterval = 120 * time.Millisecond
	HardTickInterval   = 70 * time.Millisecond
)

// Game Loop Timing Constants
const (
	// InputPollBuffer is the capacity of the terminal event channel
	InputPollBuffer = 256

	// StopTimeout bounds how long shutdown waits for the scheduler goroutine
	StopTimeout = 500 * time.Millisecond

	// StoreTimeout bounds a single high-score load or save
	StoreTimeout = 2 * time.Second
)
