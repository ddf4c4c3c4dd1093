package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fixonz/malakainvadors/internal/engine"
)

// FileStore keeps the high-score table as a JSON array in a single file.
// Only the top engine.MaxHighScores entries are retained.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ Maintainer = (*FileStore)(nil)

// OpenFile returns a FileStore backed by path. The file is created on the
// first save.
func OpenFile(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// TopScores returns up to limit entries, highest first. A missing file is
// an empty table. A malformed file is reported as an error alongside an
// empty table.
func (f *FileStore) TopScores(limit int) ([]engine.HighScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := f.read()
	if err != nil {
		return []engine.HighScore{}, err
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// SaveScore inserts entry and rewrites the file with the new top table.
// A corrupt file is replaced.
func (f *FileStore) SaveScore(entry engine.HighScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := f.read()
	if err != nil {
		list = nil
	}
	list, _ = engine.InsertHighScore(list, entry)
	return f.write(list)
}

// Count returns the number of entries in the file.
func (f *FileStore) Count() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := f.read()
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Clear empties the table.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(nil)
}

func (f *FileStore) read() ([]engine.HighScore, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []engine.HighScore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var list []engine.HighScore
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("storage: malformed score file %s: %w", f.path, err)
	}
	return engine.NormalizeHighScores(list), nil
}

// write replaces the file atomically via a temp file in the same directory.
func (f *FileStore) write(list []engine.HighScore) error {
	if list == nil {
		list = []engine.HighScore{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
