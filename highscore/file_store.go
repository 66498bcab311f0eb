package highscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the table as a JSON object in a single file
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store at path; the file is created on first Save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the table, a missing file yields a zero Table
func (f *FileStore) Load(ctx context.Context) (Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read high scores %s: %w", f.path, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("decode high scores %s: %w", f.path, err)
	}
	return t, nil
}

// Save writes the table through a temp file and rename
func (f *FileStore) Save(ctx context.Context, t Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace high scores %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
