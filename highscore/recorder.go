package highscore

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/berry-snake/core"
)

// Recorder is the in-memory HighScoreTable backed by a Store
// The table is loaded once; every new record is persisted immediately
type Recorder struct {
	mu    sync.RWMutex
	store Store
	table Table
	log   zerolog.Logger
}

// NewRecorder loads the table from store
// Load failures are logged and leave every tier at 0 so startup never fails
func NewRecorder(ctx context.Context, store Store, log zerolog.Logger) *Recorder {
	r := &Recorder{store: store, log: log}

	t, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("high scores unavailable, starting from zero")
		t = Table{}
	}
	r.table = t
	return r
}

// Best returns the stored record for d
func (r *Recorder) Best(d core.Difficulty) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.Get(d)
}

// Table returns a copy of the current table
func (r *Recorder) Table() Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table
}

// Record stores score for d if it beats the record, reports whether it did
// The in-memory table is updated even when persisting fails
func (r *Recorder) Record(ctx context.Context, d core.Difficulty, score int) (bool, error) {
	d = d.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.store.(Updater); ok {
		best, updated, err := u.UpdateIfHigher(ctx, d, score)
		if err != nil {
			changed := r.table.Update(d, score)
			return changed, fmt.Errorf("update %s record: %w", d.Key(), err)
		}
		// Backend maximum may come from another writer
		if best > r.table.Get(d) {
			r.table.Set(d, best)
		}
		if updated {
			r.log.Info().Str("difficulty", d.Key()).Int("score", score).Msg("new high score")
		}
		return updated, nil
	}

	if !r.table.Update(d, score) {
		return false, nil
	}
	r.log.Info().Str("difficulty", d.Key()).Int("score", score).Msg("new high score")

	if err := r.store.Save(ctx, r.table); err != nil {
		return true, fmt.Errorf("save %s record: %w", d.Key(), err)
	}
	return true, nil
}

// Close closes the underlying store
func (r *Recorder) Close() error {
	return r.store.Close()
}
