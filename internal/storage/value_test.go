package storage_test

import (
	"errors"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/storage"
)

// failingStore wraps a MemoryStore and fails reads or writes on demand.
type failingStore struct {
	*storage.MemoryStore
	failGet bool
	failSet bool
}

var errBroken = errors.New("quota exceeded")

func (f *failingStore) Get(key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errBroken
	}
	return f.MemoryStore.Get(key)
}

func (f *failingStore) Set(key string, value []byte) error {
	if f.failSet {
		return errBroken
	}
	return f.MemoryStore.Set(key, value)
}

func TestValue_LoadsStoredEntry(t *testing.T) {
	s := storage.NewMemoryStore()
	if err := storage.SetJSON(s, "scores", []int{1, 2}); err != nil {
		t.Fatal(err)
	}

	v := storage.NewValue(s, "scores", []int{})
	if got := v.Get(); len(got) != 2 || got[1] != 2 {
		t.Errorf("Get() = %v, want [1 2]", got)
	}
}

func TestValue_MissingUsesInitial(t *testing.T) {
	v := storage.NewValue(storage.NewMemoryStore(), "scores", []int{7})
	if got := v.Get(); len(got) != 1 || got[0] != 7 {
		t.Errorf("Get() = %v, want [7]", got)
	}
}

func TestValue_LoadFailureFallsBack(t *testing.T) {
	s := &failingStore{MemoryStore: storage.NewMemoryStore(), failGet: true}
	v := storage.NewValue(s, "scores", []int{})
	if got := v.Get(); len(got) != 0 {
		t.Errorf("Get() = %v, want empty", got)
	}
}

func TestValue_CorruptEntryFallsBack(t *testing.T) {
	s := storage.NewMemoryStore()
	_ = s.Set("scores", []byte(`{"not":"a list"}`))
	v := storage.NewValue(s, "scores", []int{})
	if got := v.Get(); len(got) != 0 {
		t.Errorf("Get() = %v, want empty", got)
	}
}

func TestValue_WriteFailureKeepsMemory(t *testing.T) {
	s := &failingStore{MemoryStore: storage.NewMemoryStore(), failSet: true}
	v := storage.NewValue(s, "scores", []int{})

	err := v.Set([]int{9})
	if !errors.Is(err, errBroken) || !errors.Is(err, storage.ErrNotPersisted) {
		t.Errorf("Set() error = %v, want %v and %v", err, errBroken, storage.ErrNotPersisted)
	}
	if got := v.Get(); len(got) != 1 || got[0] != 9 {
		t.Errorf("Get() after failed Set() = %v, want [9]", got)
	}
	if _, ok, _ := s.MemoryStore.Get("scores"); ok {
		t.Error("value should not have been persisted")
	}
}

func TestValue_ResetAndReload(t *testing.T) {
	s := storage.NewMemoryStore()
	v := storage.NewValue(s, "scores", []int{})
	if err := v.Set([]int{1}); err != nil {
		t.Fatal(err)
	}

	_ = storage.SetJSON(s, "scores", []int{4, 5})
	v.Reload()
	if got := v.Get(); len(got) != 2 {
		t.Errorf("Get() after Reload() = %v", got)
	}

	if err := v.Reset(); err != nil {
		t.Fatal(err)
	}
	if len(v.Get()) != 0 {
		t.Error("Reset() did not restore the initial value")
	}
	if _, ok, _ := s.Get("scores"); ok {
		t.Error("Reset() did not remove the stored entry")
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		location string
		want     storage.Kind
	}{
		{"postgres://student@localhost/campusbuddy", storage.KindPostgres},
		{"postgresql://student@localhost/campusbuddy", storage.KindPostgres},
		{":memory:", storage.KindMemory},
		{"/home/me/campusbuddy.JSON", storage.KindJSON},
		{"~/.config/campusbuddy/campusbuddy.db", storage.KindSQLite},
	}
	for _, tt := range tests {
		if got := storage.DetectKind(tt.location); got != tt.want {
			t.Errorf("DetectKind(%q) = %s, want %s", tt.location, got, tt.want)
		}
	}
}
