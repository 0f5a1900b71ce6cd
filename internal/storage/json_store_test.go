package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blink.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := s.Set("stats", map[string]int{"total_rests": 3}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// A fresh store instance must see the persisted value.
	s2 := NewJSONStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var stats map[string]int
	if err := s2.Get("stats", &stats); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stats["total_rests"] != 3 {
		t.Errorf("Get() total_rests = %d, want 3", stats["total_rests"])
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "blink.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	var out int
	if err := s.Get("nope", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreRemoveAndClear(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "blink.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := s.Set("a", 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("b", 2); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	var out int
	if err := s.Get("a", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Remove error = %v, want ErrNotFound", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := s.Get("b", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Clear error = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blink.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("Init() on existing storage succeeded, want error")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); err == nil {
		t.Error("Load() on missing storage succeeded, want error")
	}
}
