// Package lockfile keeps a single interactive writer per config directory.
// The lock is a file holding "pid|executable"; a lock whose process is gone
// or now runs another executable is stale and may be replaced.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

var (
	ErrLocked    = errors.New("another campusbuddy process is running")
	errMalformed = errors.New("lockfile is malformed")
)

// Lock is a held lockfile.
type Lock struct {
	path string
	pid  int
}

// Path returns the lockfile location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

type holder struct {
	pid        int
	executable string
}

func readHolder(path string) (holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return holder{}, err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return holder{}, errMalformed
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return holder{}, errMalformed
	}
	return holder{pid: pid, executable: parts[1]}, nil
}

// alive reports whether h still names a running process of the same executable.
func (h holder) alive() bool {
	process, err := findProcessFunc(h.pid)
	if err != nil || process == nil {
		return false
	}
	return process.Executable() == h.executable
}

func executable() string {
	return filepath.Base(os.Args[0])
}

// Check returns ErrLocked when a live process other than this one holds the
// lock at path. Missing, malformed and stale locks are not errors.
func Check(path string) error {
	h, err := readHolder(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, errMalformed) {
			return nil
		}
		return fmt.Errorf("failed to read lockfile: %w", err)
	}
	if h.pid != getpidFunc() && h.alive() {
		return fmt.Errorf("%w (pid %d)", ErrLocked, h.pid)
	}
	return nil
}

// Acquire takes the lock at path, replacing a stale one.
func Acquire(path string) (*Lock, error) {
	if err := Check(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	if err := os.Remove(path); err == nil {
		logger.Info("Replaced stale lockfile", "path", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			// lost a race with another starting process
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	pid := getpidFunc()
	if _, err := fmt.Fprintf(f, "%d|%s", pid, executable()); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path, pid: pid}, nil
}

// Release removes the lockfile if this process still holds it.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	h, err := readHolder(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if h.pid != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}
