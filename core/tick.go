package core

// TickResult is the outcome of one simulation step
type TickResult uint8

const (
	TickContinue TickResult = iota
	TickAte
	TickGameOver
)

func (r TickResult) String() string {
	switch r {
	case TickContinue:
		return "Continue"
	case TickAte:
		return "Ate"
	case TickGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
