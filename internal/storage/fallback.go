package storage

import (
	"encoding/json"

	"github.com/evanmoss/blink/internal/logger"
)

// Fallback wraps a Provider and degrades failed operations to an
// in-memory overlay for the rest of the process lifetime. A storage
// hiccup must never interrupt a rest-reward flow, so writes here are
// best-effort: the failure is logged and the value lives on in memory.
type Fallback struct {
	backing Provider
	overlay map[string]json.RawMessage
	removed map[string]bool
}

func WithFallback(backing Provider) *Fallback {
	return &Fallback{
		backing: backing,
		overlay: make(map[string]json.RawMessage),
		removed: make(map[string]bool),
	}
}

func (f *Fallback) Init() error  { return f.backing.Init() }
func (f *Fallback) Load() error  { return f.backing.Load() }
func (f *Fallback) Close() error { return f.backing.Close() }

func (f *Fallback) Get(key string, out any) error {
	if raw, ok := f.overlay[key]; ok {
		return json.Unmarshal(raw, out)
	}
	if f.removed[key] {
		return ErrNotFound
	}
	return f.backing.Get(key, out)
}

func (f *Fallback) Set(key string, value any) error {
	if err := f.backing.Set(key, value); err != nil {
		logger.Warn("Storage write failed, keeping value in memory", "key", key, "error", err)
		raw, merr := json.Marshal(value)
		if merr != nil {
			return merr
		}
		f.overlay[key] = raw
		delete(f.removed, key)
		return nil
	}
	delete(f.overlay, key)
	delete(f.removed, key)
	return nil
}

func (f *Fallback) Remove(key string) error {
	delete(f.overlay, key)
	if err := f.backing.Remove(key); err != nil {
		logger.Warn("Storage remove failed, masking key in memory", "key", key, "error", err)
		f.removed[key] = true
	}
	return nil
}

func (f *Fallback) Clear() error {
	f.overlay = make(map[string]json.RawMessage)
	f.removed = make(map[string]bool)
	return f.backing.Clear()
}

func (f *Fallback) GetConfigPath() string {
	return f.backing.GetConfigPath()
}
