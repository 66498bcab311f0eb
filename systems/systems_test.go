package systems

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/berry-snake/audio"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/engine"
	"github.com/lixenwraith/berry-snake/highscore"
)

// fakePlayer records every requested sound
type fakePlayer struct {
	mu     sync.Mutex
	played []audio.SoundType
}

func (p *fakePlayer) Play(st audio.SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, st)
}

func (p *fakePlayer) sounds() []audio.SoundType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]audio.SoundType(nil), p.played...)
}

// failingRecorder always fails to persist
type failingRecorder struct{ calls int }

func (f *failingRecorder) Record(context.Context, core.Difficulty, int) (bool, error) {
	f.calls++
	return false, errors.New("store down")
}

// newDriver builds a driver at the default start with fruit directly ahead
func newDriver(t *testing.T, diff core.Difficulty) (*engine.LoopDriver, *engine.GameState) {
	t.Helper()
	gs := engine.NewGameState(engine.WithSeed(7))
	gs.PlaceFruit(core.Cell{X: 10, Y: 10})
	d := engine.NewLoopDriver(gs, diff)
	t.Cleanup(d.Stop)
	return d, gs
}

// farFruit sits off the snake's path along row 10
var farFruit = core.Cell{X: 1, Y: 1}

// playUntilOver steps the driver until the episode ends
func playUntilOver(t *testing.T, d *engine.LoopDriver) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if d.Step() == core.TickGameOver {
			return
		}
	}
	t.Fatal("episode did not end")
}

// eatThenCrash eats the fruit ahead once, then runs into the right wall
func eatThenCrash(t *testing.T, d *engine.LoopDriver, gs *engine.GameState) {
	t.Helper()
	require.Equal(t, core.TickAte, d.Step())
	gs.PlaceFruit(farFruit)
	playUntilOver(t, d)
}

func TestAudioSystemPlaysEatAndCrash(t *testing.T) {
	d, gs := newDriver(t, core.DifficultyHard)
	player := &fakePlayer{}
	require.True(t, d.RegisterHandler(NewAudioSystem(player)))

	require.Equal(t, core.TickAte, d.Step())
	assert.Equal(t, []audio.SoundType{audio.SoundEat}, player.sounds())

	gs.PlaceFruit(farFruit)
	playUntilOver(t, d)
	assert.Equal(t, []audio.SoundType{audio.SoundEat, audio.SoundCrash}, player.sounds())

	// Terminal steps are silent
	d.Step()
	assert.Len(t, player.sounds(), 2)
}

func TestAudioSystemNilPlayer(t *testing.T) {
	s := NewAudioSystem(nil)
	assert.NotPanics(t, func() {
		s.HandleTick(engine.Snapshot{}, core.TickAte)
		s.HandleTick(engine.Snapshot{}, core.TickGameOver)
	})
}

func TestScoreSystemRecordsNewHigh(t *testing.T) {
	ctx := context.Background()
	store := highscore.NewMemoryStore(highscore.Table{Medium: 5})
	rec := highscore.NewRecorder(ctx, store, zerolog.Nop())

	s := NewScoreSystem(rec, zerolog.Nop())

	s.HandleGameOver(engine.Snapshot{Difficulty: core.DifficultyMedium, Score: 7})
	tbl, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Medium)

	s.HandleGameOver(engine.Snapshot{Difficulty: core.DifficultyMedium, Score: 3})
	tbl, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Medium)
	assert.Equal(t, 1, store.Saves())
}

func TestScoreSystemDrivenEpisode(t *testing.T) {
	ctx := context.Background()
	store := highscore.NewMemoryStore(highscore.Table{})
	rec := highscore.NewRecorder(ctx, store, zerolog.Nop())

	d, gs := newDriver(t, core.DifficultyEasy)
	require.True(t, d.RegisterHandler(NewScoreSystem(rec, zerolog.Nop())))

	eatThenCrash(t, d, gs)
	d.Step()

	assert.Equal(t, 1, rec.Best(core.DifficultyEasy))
	assert.Equal(t, 0, rec.Best(core.DifficultyHard))
	assert.Equal(t, 1, store.Saves(), "game over recorded exactly once")
}

func TestScoreSystemSurvivesStoreFailure(t *testing.T) {
	fr := &failingRecorder{}
	s := NewScoreSystem(fr, zerolog.Nop())

	assert.NotPanics(t, func() {
		s.HandleGameOver(engine.Snapshot{Difficulty: core.DifficultyHard, Score: 4})
	})
	assert.Equal(t, 1, fr.calls)
}

func TestNotifierRestartAffordance(t *testing.T) {
	d, gs := newDriver(t, core.DifficultyMedium)
	n := NewNotifier()
	require.True(t, d.RegisterHandler(n))

	assert.False(t, n.RestartAvailable())

	eatThenCrash(t, d, gs)
	assert.True(t, n.RestartAvailable())
	assert.Equal(t, 1, n.FinalScore())
	assert.Equal(t, 1, n.GameOvers())

	d.Restart()
	assert.False(t, n.RestartAvailable())
	assert.Equal(t, 0, n.FinalScore())
	assert.False(t, gs.IsOver())

	// Difficulty change also clears the affordance
	gs.PlaceFruit(farFruit)
	playUntilOver(t, d)
	assert.True(t, n.RestartAvailable())
	assert.Equal(t, 0, n.FinalScore())
	d.SetDifficulty(core.DifficultyEasy)
	assert.False(t, n.RestartAvailable())
	assert.Equal(t, 2, n.GameOvers())
}
