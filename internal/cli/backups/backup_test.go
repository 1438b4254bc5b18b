package backups

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

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	configDir := t.TempDir()
	dbPath := filepath.Join(configDir, "campusbuddy.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	return &cli.Context{
		Store:     store,
		Location:  dbPath,
		ConfigDir: configDir,
		Out:       &out,
		Err:       &out,
	}, &out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupContext(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("list output = %q", out.String())
	}

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("list output = %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, out := setupContext(t)
	if err := ctx.Store.Set(constants.KeyCGPAData, []byte(`["before"]`)); err != nil {
		t.Fatal(err)
	}
	backupPath, err := ctx.BackupManager().CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.Set(constants.KeyCGPAData, []byte(`["after"]`)); err != nil {
		t.Fatal(err)
	}

	ctx.In = strings.NewReader("n\n")
	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath)}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Fatalf("output = %q", out.String())
	}

	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	reopened := sqlite.NewStore(ctx.Location)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	if v, _, _ := reopened.Get(constants.KeyCGPAData); string(v) != `["before"]` {
		t.Errorf("restored value = %s", v)
	}
}

func TestBackupRestore_NotFound(t *testing.T) {
	ctx, _ := setupContext(t)
	cmd := &BackupRestoreCmd{BackupFile: "campusbuddy-20200101-000000.db", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}

func TestBackupCreate_MemoryStore(t *testing.T) {
	var out bytes.Buffer
	ctx := &cli.Context{
		Store:     storage.NewMemoryStore(),
		Location:  constants.ConfigMemory,
		ConfigDir: t.TempDir(),
		Out:       &out,
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), ".json") {
		t.Errorf("memory stores are snapshotted as JSON, got %q", out.String())
	}
}
