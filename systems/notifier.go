package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/berry-snake/engine"
)

// Notifier tracks whether the restart affordance is showing
// It is written on the driver goroutine and read by the input loop
type Notifier struct {
	restartAvailable atomic.Bool
	finalScore       atomic.Int64
	gameOvers        atomic.Int64
}

// NewNotifier creates a notifier with no finished episode
func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) HandleGameOver(snap engine.Snapshot) {
	n.finalScore.Store(int64(snap.Score))
	n.gameOvers.Add(1)
	n.restartAvailable.Store(true)
}

func (n *Notifier) HandleReset(snap engine.Snapshot) {
	n.restartAvailable.Store(false)
	n.finalScore.Store(0)
}

// RestartAvailable reports whether the last episode ended and no reset has happened since
func (n *Notifier) RestartAvailable() bool {
	return n.restartAvailable.Load()
}

// FinalScore returns the score of the episode that just ended, 0 while playing
func (n *Notifier) FinalScore() int {
	return int(n.finalScore.Load())
}

// GameOvers returns how many episodes have ended
func (n *Notifier) GameOvers() int {
	return int(n.gameOvers.Load())
}
