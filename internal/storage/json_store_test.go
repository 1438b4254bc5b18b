package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/storage/storagetest"
)

func setupJSONStore(t *testing.T) (*storage.JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "campusbuddy.json")
	s := storage.NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s, path
}

func TestJSONStore(t *testing.T) {
	s, _ := setupJSONStore(t)
	storagetest.Run(t, s)
}

func TestJSONStore_Persists(t *testing.T) {
	s, path := setupJSONStore(t)
	if err := s.Set("campusbuddy-cgpa-data", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened := storage.NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, ok, err := reopened.Get("campusbuddy-cgpa-data")
	if err != nil || !ok || string(got) != "[]" {
		t.Errorf("Get() after reopen = %s, %v, %v", got, ok, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestJSONStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campusbuddy.json")
	s := storage.NewJSONStore(path)

	if err := s.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() before Init error = %v, want %v", err, storage.ErrNotInitialized)
	}
	if _, _, err := s.Get("k"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Get() before Load error = %v, want %v", err, storage.ErrNotLoaded)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Init(); !errors.Is(err, storage.ErrAlreadyInitialized) {
		t.Errorf("second Init() error = %v, want %v", err, storage.ErrAlreadyInitialized)
	}
}

func TestJSONStore_RejectsInvalidJSON(t *testing.T) {
	s, _ := setupJSONStore(t)
	if err := s.Set("k", []byte("{not json")); err == nil {
		t.Error("Set() accepted invalid JSON")
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusbuddy.json")
	if err := os.WriteFile(path, []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := storage.NewJSONStore(path).Load(); err == nil {
		t.Error("Load() accepted a corrupt file")
	}
}
