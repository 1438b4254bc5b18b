// Package storagetest checks that a storage.Provider behaves like a keyed
// JSON store.
package storagetest

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/storage"
)

// Run exercises p, which must be initialised, loaded and empty.
func Run(t *testing.T, p storage.Provider) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := p.Get("campusbuddy-missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok || v != nil {
			t.Errorf("Get() = %q, %v; want nil, false", v, ok)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		want := `[{"id":"1","name":"Maths","credits":4,"grade":"A"}]`
		if err := p.Set("campusbuddy-cgpa-data", []byte(want)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, ok, err := p.Get("campusbuddy-cgpa-data")
		if err != nil || !ok {
			t.Fatalf("Get() = %v, %v", ok, err)
		}
		assertSameJSON(t, got, []byte(want))
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := p.Set("campusbuddy-attendance-data", []byte(`[]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := p.Set("campusbuddy-attendance-data", []byte(`[{"id":"a","subject":"OS","attendance":72}]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, _, err := p.Get("campusbuddy-attendance-data")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		assertSameJSON(t, got, []byte(`[{"id":"a","subject":"OS","attendance":72}]`))
	})

	t.Run("keys sorted", func(t *testing.T) {
		keys, err := p.Keys()
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		want := []string{"campusbuddy-attendance-data", "campusbuddy-cgpa-data"}
		if !slices.Equal(keys, want) {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := p.Remove("campusbuddy-cgpa-data"); err != nil {
				t.Fatalf("Remove() #%d error = %v", i+1, err)
			}
		}
		if _, ok, _ := p.Get("campusbuddy-cgpa-data"); ok {
			t.Error("key still present after Remove()")
		}
	})

	t.Run("json helpers", func(t *testing.T) {
		type day struct {
			Date      string   `json:"date"`
			Tasks     []string `json:"tasks"`
			Completed bool     `json:"completed"`
		}
		in := []day{{Date: "2025-03-10", Tasks: []string{"Study: Graphs"}}}
		if err := storage.SetJSON(p, "campusbuddy-revision-plan", in); err != nil {
			t.Fatalf("SetJSON() error = %v", err)
		}
		var out []day
		ok, err := storage.GetJSON(p, "campusbuddy-revision-plan", &out)
		if err != nil || !ok {
			t.Fatalf("GetJSON() = %v, %v", ok, err)
		}
		if len(out) != 1 || out[0].Tasks[0] != "Study: Graphs" {
			t.Errorf("GetJSON() decoded %+v", out)
		}
	})
}

func assertSameJSON(t *testing.T, got, want []byte) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if err := json.Unmarshal(want, &w); err != nil {
		t.Fatalf("expected value is not JSON: %v", err)
	}
	gb, _ := json.Marshal(g)
	wb, _ := json.Marshal(w)
	if string(gb) != string(wb) {
		t.Errorf("value = %s, want %s", gb, wb)
	}
}
