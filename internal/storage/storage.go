package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNotLoaded          = errors.New("storage not loaded")
	ErrNotInitialized     = errors.New("storage not initialized, run 'campusbuddy init' first")
	ErrAlreadyInitialized = errors.New("storage already initialized")
	ErrNotPersisted       = errors.New("kept in memory only")
)

// GetJSON decodes the value stored under key into out. It reports false
// without touching out when the key is missing.
func GetJSON(p Provider, key string, out any) (bool, error) {
	data, ok, err := p.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(p Provider, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.Set(key, data)
}

// Kind identifies a storage backend.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindJSON     Kind = "json"
	KindMemory   Kind = "memory"
)

// DetectKind picks the backend for a --config location.
func DetectKind(location string) Kind {
	switch {
	case IsPostgres(location):
		return KindPostgres
	case location == ":memory:":
		return KindMemory
	case strings.HasSuffix(strings.ToLower(location), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// IsPostgres reports whether location is a PostgreSQL URL.
func IsPostgres(location string) bool {
	return strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
