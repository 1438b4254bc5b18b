package storage_test

import (
	"testing"

	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, storage.NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := storage.NewMemoryStore()
	buf := []byte(`[1]`)
	if err := s.Set("k", buf); err != nil {
		t.Fatal(err)
	}
	buf[1] = '2'

	got, _, _ := s.Get("k")
	if string(got) != `[1]` {
		t.Errorf("stored value changed with caller buffer: %s", got)
	}
}
