package highscore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/berry-snake/core"
)

func TestTableGetSetUpdate(t *testing.T) {
	var tbl Table
	for _, d := range core.Difficulties {
		assert.Equal(t, 0, tbl.Get(d), d.Key())
	}

	assert.True(t, tbl.Update(core.DifficultyMedium, 5))
	assert.False(t, tbl.Update(core.DifficultyMedium, 5), "equal score is not a record")
	assert.False(t, tbl.Update(core.DifficultyMedium, 3))
	assert.Equal(t, 5, tbl.Medium)
	assert.Equal(t, 0, tbl.Easy)
	assert.Equal(t, 0, tbl.Hard)

	tbl.Set(core.DifficultyEasy, -4)
	assert.Equal(t, 0, tbl.Easy, "negative scores clamp to zero")

	tbl.Set(core.Difficulty(42), 9)
	assert.Equal(t, 9, tbl.Hard, "unknown tier maps to hard")
}

func TestFileStoreMissingFileLoadsZero(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "none", "scores.json"))

	tbl, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Table{}, tbl)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	want := Table{Easy: 3, Medium: 7, Hard: 11}
	require.NoError(t, fs.Save(ctx, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"easy":3,"medium":7,"hard":11}`, string(raw))

	got, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not linger")
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestMemoryStoreClosed(t *testing.T) {
	m := NewMemoryStore(Table{Hard: 2})
	require.NoError(t, m.Close())

	_, err := m.Load(context.Background())
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, m.Save(context.Background(), Table{}), ErrStoreClosed)
}

func TestRecorderPersistsOnlyNewRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Table{Medium: 5})
	rec := NewRecorder(ctx, store, zerolog.Nop())

	assert.Equal(t, 5, rec.Best(core.DifficultyMedium))

	updated, err := rec.Record(ctx, core.DifficultyMedium, 7)
	require.NoError(t, err)
	assert.True(t, updated)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, persisted.Medium)

	updated, err = rec.Record(ctx, core.DifficultyMedium, 3)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 7, rec.Best(core.DifficultyMedium))
	assert.Equal(t, 1, store.Saves())
}

func TestRecorderFileStoreScenario(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, NewFileStore(path).Save(ctx, Table{Medium: 5}))

	rec := NewRecorder(ctx, NewFileStore(path), zerolog.Nop())
	_, err := rec.Record(ctx, core.DifficultyMedium, 3)
	require.NoError(t, err)

	tbl, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Medium)

	_, err = rec.Record(ctx, core.DifficultyMedium, 7)
	require.NoError(t, err)

	tbl, err = NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Medium)
	assert.Equal(t, 0, tbl.Easy)
}

// failingStore fails every operation
type failingStore struct{}

var errBackend = errors.New("backend down")

func (failingStore) Load(context.Context) (Table, error) { return Table{}, errBackend }
func (failingStore) Save(context.Context, Table) error { return errBackend }
func (failingStore) Close() error { return nil }

func TestRecorderSurvivesFailingStore(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder(ctx, failingStore{}, zerolog.Nop())

	assert.Equal(t, Table{}, rec.Table(), "load failure starts from zero")

	updated, err := rec.Record(ctx, core.DifficultyEasy, 4)
	assert.ErrorIs(t, err, errBackend)
	assert.True(t, updated)
	assert.Equal(t, 4, rec.Best(core.DifficultyEasy), "in-memory record kept")
}

// updaterStore reports a backend maximum higher than anything recorded locally
type updaterStore struct {
	MemoryStore
	best  int
	calls int
}

func (u *updaterStore) UpdateIfHigher(ctx context.Context, d core.Difficulty, score int) (int, bool, error) {
	u.calls++
	if score > u.best {
		u.best = score
		return score, true, nil
	}
	return u.best, false, nil
}

func TestRecorderPrefersUpdater(t *testing.T) {
	ctx := context.Background()
	store := &updaterStore{best: 20}
	rec := NewRecorder(ctx, store, zerolog.Nop())

	updated, err := rec.Record(ctx, core.DifficultyHard, 10)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 20, rec.Best(core.DifficultyHard), "backend maximum adopted")

	updated, err = rec.Record(ctx, core.DifficultyHard, 25)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 25, rec.Best(core.DifficultyHard))
	assert.Equal(t, 2, store.calls)
	assert.Equal(t, 0, store.Saves(), "Save bypassed when Updater is available")
}

func TestOpenBackends(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	path := filepath.Join(t.TempDir(), "scores.json")
	s, err = Open(ctx, Options{FilePath: path})
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, s)
	assert.Equal(t, path, s.(*FileStore).Path())

	_, err = Open(ctx, Options{Backend: "file"})
	assert.Error(t, err)

	_, err = Open(ctx, Options{Backend: "sqlite"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
