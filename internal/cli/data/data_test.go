package data

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/lockfile"
	"github.com/julianstephens/campusbuddy/internal/storage"
)

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &cli.Context{
		Store:     storage.NewMemoryStore(),
		Location:  ":memory:",
		ConfigDir: t.TempDir(),
		Out:       &out,
	}, &out
}

func TestExportImport(t *testing.T) {
	for _, name := range []string{"backup.json", "backup.yaml"} {
		t.Run(name, func(t *testing.T) {
			src, _ := setupContext(t)
			if err := src.Dashboard().Tracker.LoadSampleData(); err != nil {
				t.Fatal(err)
			}

			file := filepath.Join(t.TempDir(), name)
			if err := (&DataExportCmd{Out: file}).Run(src); err != nil {
				t.Fatal(err)
			}

			dst, out := setupContext(t)
			if err := (&DataImportCmd{File: file}).Run(dst); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), "campusbuddy-cgpa-data") {
				t.Errorf("import output = %q", out.String())
			}
			if got := dst.Dashboard().Tracker.CGPA(); got != 8.44 {
				t.Errorf("CGPA after import = %v", got)
			}
		})
	}
}

func TestExport_DirectoryUsesDefaultName(t *testing.T) {
	ctx, _ := setupContext(t)
	dir := t.TempDir()
	if err := (&DataExportCmd{Out: dir}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "campusbuddy-data.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("empty export = %q", data)
	}
}

func TestImport_Invalid(t *testing.T) {
	ctx, _ := setupContext(t)
	file := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := (&DataImportCmd{File: file}).Run(ctx); err == nil {
		t.Error("expected an error")
	}
}

func TestClear(t *testing.T) {
	ctx, out := setupContext(t)
	if err := ctx.Dashboard().Tracker.LoadSampleData(); err != nil {
		t.Fatal(err)
	}

	ctx.In = strings.NewReader("\n")
	if err := (&DataClearCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Errorf("output = %q", out.String())
	}

	ctx.In = strings.NewReader("yes\n")
	if err := (&DataClearCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if keys, _ := ctx.Store.Keys(); len(keys) != 0 {
		t.Errorf("keys left: %v", keys)
	}
}

func TestClear_IgnoresOwnAndStaleLocks(t *testing.T) {
	ctx, _ := setupContext(t)
	lock, err := lockfile.Acquire(ctx.LockPath())
	if err != nil {
		t.Fatal(err)
	}
	defer lock.Release()

	if err := (&DataClearCmd{Yes: true}).Run(ctx); err != nil {
		t.Errorf("own lock should not block: %v", err)
	}

	stale := fmt.Sprintf("%d|not-running", os.Getpid()+100000)
	if err := os.WriteFile(ctx.LockPath(), []byte(stale), 0600); err != nil {
		t.Fatal(err)
	}
	if err := (&DataClearCmd{Yes: true}).Run(ctx); errors.Is(err, lockfile.ErrLocked) {
		t.Errorf("stale lock should not block: %v", err)
	}
}
