// Package systems holds the side-effect handlers attached to the loop driver
package systems

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/engine"
)

// ScoreRecorder stores a finished episode's score if it beats the tier record
type ScoreRecorder interface {
	Record(ctx context.Context, d core.Difficulty, score int) (bool, error)
}

// ScoreSystem compares each finished episode against the high-score table
type ScoreSystem struct {
	recorder ScoreRecorder
	log      zerolog.Logger
}

// NewScoreSystem creates a score system writing through recorder
func NewScoreSystem(recorder ScoreRecorder, log zerolog.Logger) *ScoreSystem {
	return &ScoreSystem{
		recorder: recorder,
		log:      log,
	}
}

// HandleGameOver persists the score when it is a new record
// Store failures are logged and never interrupt the game
func (s *ScoreSystem) HandleGameOver(snap engine.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
	defer cancel()

	updated, err := s.recorder.Record(ctx, snap.Difficulty, snap.Score)
	if err != nil {
		s.log.Error().Err(err).
			Str("difficulty", snap.Difficulty.Key()).
			Int("score", snap.Score).
			Msg("high score not persisted")
	}

	s.log.Info().
		Uint64("episode", snap.Episode).
		Str("difficulty", snap.Difficulty.Key()).
		Int("score", snap.Score).
		Bool("record", updated).
		Msg("episode finished")
}
