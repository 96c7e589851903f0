// Package legacy migrates flat key-value data written by the old
// localStorage-era persistence into the record store.
package legacy

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_source.go -package=mocks banana-studio/internal/legacy Source

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Well-known keys the old storage wrote its flat blobs under.
const (
	GenerationHistoryKey = "nano-banana-generation-history"
	PromptHistoryKey     = "nano-banana-prompt-history"
)

// Source is the legacy key-value mechanism the migration reads from. It is
// only ever read and erased, never written.
type Source interface {
	// Read returns the value for key and whether it was present.
	Read(key string) (string, bool, error)
	// Erase removes the key. Erasing an absent key is a no-op.
	Erase(key string) error
}

// FileSource reads a flat JSON dump (one object mapping key to string
// value, the shape of a localStorage export). A missing file means there is
// nothing to migrate.
type FileSource struct {
	mu   sync.Mutex
	path string
}

// NewFileSource creates a FileSource for the dump file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Read returns the value stored under key, if any.
func (s *FileSource) Read(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// Erase removes key from the dump, rewriting the file without it. When the
// last key is erased the file itself is removed.
func (s *FileSource) Erase(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)

	if len(entries) == 0 {
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("remove legacy dump: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode legacy dump: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("rewrite legacy dump: %w", err)
	}
	return nil
}

// load reads the dump file. Callers must hold s.mu.
func (s *FileSource) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read legacy dump: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode legacy dump: %w", err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}
