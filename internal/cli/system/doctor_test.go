package system

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/storage/sqlite"
)

func setupDoctor(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "campusbuddy.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	return &cli.Context{Store: store, Location: path, ConfigDir: dir, Out: &out}, store, &out
}

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, _, out := setupDoctor(t)
	ctx.Dashboard().Tracker.LoadSampleData()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on a healthy store: %v\n%s", err, out)
	}
	// missing backups only warn
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected a backup warning:\n%s", out)
	}
}

func TestDoctorCmd_WithBackup(t *testing.T) {
	ctx, _, out := setupDoctor(t)
	if _, err := ctx.BackupManager().CreateBackup(); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "✓ Backups present: OK") {
		t.Errorf("output:\n%s", out)
	}
}

func TestDoctorCmd_Failures(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantOut string
	}{
		{"undecodable value", constants.KeyCGPAData, `{"not":"a list"}`, "❌ Stored data decodes: FAIL"},
		{"invalid grade", constants.KeyCGPAData, `[{"id":"1","name":"Maths","credits":4,"grade":"Z"}]`, "❌ Data validation: FAIL"},
		{"attendance out of range", constants.KeyAttendance, `[{"id":"1","subject":"Maths","attendance":140}]`, "❌ Data validation: FAIL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store, out := setupDoctor(t)
			if err := store.Set(tt.key, []byte(tt.value)); err != nil {
				t.Fatal(err)
			}
			if err := (&DoctorCmd{}).Run(ctx); err == nil {
				t.Fatal("expected doctor to fail")
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, out)
			}
		})
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	ctx, store, out := setupDoctor(t)
	if _, err := store.GetDB().Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected schema failure")
	}
	if !strings.Contains(out.String(), "❌ Schema version: FAIL") {
		t.Errorf("output:\n%s", out)
	}
}

func TestDoctorCmd_Unreachable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.db")
	var out bytes.Buffer
	ctx := &cli.Context{Store: sqlite.NewStore(path), Location: path, ConfigDir: dir, Out: &out}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected failure for a missing database")
	}
	for _, want := range []string{"❌ Storage reachable: FAIL", "⊘ Schema version: SKIPPED", "⊘ Data validation: SKIPPED"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCmd_MemoryStore(t *testing.T) {
	var out bytes.Buffer
	ctx := &cli.Context{Store: storage.NewMemoryStore(), Location: constants.ConfigMemory, Out: &out}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("memory store should pass: %v\n%s", err, out)
	}
}
