package storage

import (
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/logger"
)

// Value is one persisted entry held in memory. Reads never fail: a store
// error while loading leaves the initial value in place. Writes update memory
// first, so a failed write still leaves the new value usable for the session.
type Value[T any] struct {
	store   Provider
	key     string
	initial T
	current T
}

// NewValue loads key from store, falling back to initial.
func NewValue[T any](store Provider, key string, initial T) *Value[T] {
	v := &Value[T]{store: store, key: key, initial: initial}
	v.Reload()
	return v
}

// Reload re-reads the entry, e.g. after an import replaced it.
func (v *Value[T]) Reload() {
	var loaded T
	ok, err := GetJSON(v.store, v.key, &loaded)
	switch {
	case err != nil:
		logger.Warn("Failed to load stored value, using default", "key", v.key, "error", err)
		v.current = v.initial
	case !ok:
		v.current = v.initial
	default:
		v.current = loaded
	}
}

func (v *Value[T]) Get() T {
	return v.current
}

func (v *Value[T]) Key() string {
	return v.key
}

// Set replaces the value and persists it. The returned error only means the
// value was not persisted.
func (v *Value[T]) Set(value T) error {
	v.current = value
	if err := SetJSON(v.store, v.key, value); err != nil {
		logger.Warn("Failed to persist value, keeping it in memory", "key", v.key, "error", err)
		return fmt.Errorf("%s %w: %w", v.key, ErrNotPersisted, err)
	}
	return nil
}

// Reset restores the initial value and removes the stored entry.
func (v *Value[T]) Reset() error {
	v.current = v.initial
	if err := v.store.Remove(v.key); err != nil {
		logger.Warn("Failed to remove stored value", "key", v.key, "error", err)
		return fmt.Errorf("failed to remove %s: %w", v.key, err)
	}
	return nil
}
