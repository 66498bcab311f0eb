package highscore

import (
	"context"
	"errors"
	"sync"

	"github.com/lixenwraith/berry-snake/core"
)

// Sentinel errors
var (
	ErrUnknownBackend = errors.New("unknown high-score backend")
	ErrStoreClosed    = errors.New("high-score store closed")
)

// Store persists a Table
// Load on an empty store returns a zero Table and nil error
type Store interface {
	Load(ctx context.Context) (Table, error)
	Save(ctx context.Context, t Table) error
	Close() error
}

// Updater is implemented by stores that can raise one slot atomically on the backend
// Recorder prefers it over Save
type Updater interface {
	UpdateIfHigher(ctx context.Context, d core.Difficulty, score int) (best int, updated bool, err error)
}

// MemoryStore keeps the table in process, used by tests and the "memory" backend
type MemoryStore struct {
	mu     sync.Mutex
	table  Table
	saves  int
	closed bool
}

// NewMemoryStore creates a store pre-populated with t
func NewMemoryStore(t Table) *MemoryStore {
	return &MemoryStore{table: t}
}

func (m *MemoryStore) Load(ctx context.Context) (Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Table{}, ErrStoreClosed
	}
	return m.table, nil
}

func (m *MemoryStore) Save(ctx context.Context, t Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	m.table = t
	m.saves++
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times Save succeeded
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
