package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore is the plain-file backend, selected when the config path ends
// in .json. Useful for inspection and for environments without SQLite.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: expandPath(path),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'blink init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Records == nil {
		s.file.Records = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string, out any) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, ok := s.file.Records[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse value for %q: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Set(key string, value any) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}
	s.file.Records[key] = raw
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.file.Records, key)
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.file.Records = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
