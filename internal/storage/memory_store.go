package storage

import (
	"encoding/json"
	"fmt"
)

// MemoryStore holds records for a single process lifetime. It backs tests
// and the fallback overlay; nothing survives an exit.
type MemoryStore struct {
	records map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]json.RawMessage),
	}
}

func (s *MemoryStore) Init() error { return nil }
func (s *MemoryStore) Load() error { return nil }
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string, out any) error {
	raw, ok := s.records[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}
	s.records[key] = raw
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	delete(s.records, key)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.records = make(map[string]json.RawMessage)
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
