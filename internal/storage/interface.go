package storage

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Provider is the persistent key-value contract the core runs against:
// string keys holding JSON-serializable values. Each key is owned by
// exactly one writer component; see internal/constants for the key list.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string, out any) error
	Set(key string, value any) error
	Remove(key string) error
	Clear() error

	// Utils
	GetConfigPath() string
}
