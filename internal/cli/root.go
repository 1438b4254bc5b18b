package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/backup"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
	cberrors "github.com/julianstephens/campusbuddy/internal/errors"
	"github.com/julianstephens/campusbuddy/internal/lockfile"
	"github.com/julianstephens/campusbuddy/internal/logger"
	"github.com/julianstephens/campusbuddy/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Location  string // resolved --config value
	ConfigDir string

	Out io.Writer // defaults to stdout
	Err io.Writer // defaults to stderr
	In  io.Reader // defaults to stdin

	// Options are applied when the dashboard is first built.
	Options []dashboard.Option

	dash *dashboard.Dashboard
}

// Dashboard builds the feature views over the loaded store on first use.
func (c *Context) Dashboard() *dashboard.Dashboard {
	if c.dash == nil {
		c.dash = dashboard.New(c.Store, c.Options...)
	}
	return c.dash
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) errOut() io.Writer {
	if c.Err == nil {
		return os.Stderr
	}
	return c.Err
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Warn prints a non-fatal notice such as a value kept only in memory.
func (c *Context) Warn(err error) {
	if err != nil {
		fmt.Fprintln(c.errOut(), cberrors.Warning(err))
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// BackupManager returns the backup manager for the current store.
func (c *Context) BackupManager() *backup.Manager {
	return backup.NewManager(c.Location, c.ConfigDir, c.Store)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if storage.DetectKind(c.Location) == storage.KindMemory {
		return
	}
	if _, err := c.BackupManager().CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) LockPath() string {
	return lockfile.Path(c.ConfigDir)
}

// EnsureUnlocked fails while another process, such as the TUI, holds the lock.
func (c *Context) EnsureUnlocked() error {
	if err := lockfile.Check(c.LockPath()); err != nil {
		return fmt.Errorf("%w; close it before running this command", err)
	}
	return nil
}

// ReadInput returns text, or the contents of file ("-" reads stdin).
func (c *Context) ReadInput(file, text string) (string, error) {
	if file == "" {
		return text, nil
	}
	if file == "-" {
		in := c.In
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}

// Emit prints text, or writes it to path when one is given. A path that is
// an existing directory receives the suggested filename.
func (c *Context) Emit(path, filename, text string) error {
	if path == "" {
		c.Println(text)
		return nil
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, filename)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	c.Printf("✓ Saved to %s\n", path)
	return nil
}
