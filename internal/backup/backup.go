package backup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/logger"
	"github.com/julianstephens/campusbuddy/internal/storage"
)

const (
	// SQLiteSuffix marks a VACUUM INTO copy of a SQLite store
	SQLiteSuffix = ".db"
	// SnapshotSuffix marks a JSON object of every stored key
	SnapshotSuffix = ".json"

	timestampFormat = "20060102-150405"
)

var ErrNoStore = errors.New("backup of this store kind needs an open store")

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists and restores snapshots of one store. SQLite stores
// are copied with VACUUM INTO, JSON stores file by file, and every other
// kind through its keys.
type Manager struct {
	location  string
	kind      storage.Kind
	store     storage.Provider
	backupDir string
	now       func() time.Time
}

// NewManager creates a backup manager for the store at location. store is
// only needed for kinds without a local file (Postgres, memory).
func NewManager(location, configDir string, store storage.Provider) *Manager {
	return &Manager{
		location:  location,
		kind:      storage.DetectKind(location),
		store:     store,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	if m.kind == storage.KindSQLite {
		return SQLiteSuffix
	}
	return SnapshotSuffix
}

// CreateBackup creates a new backup and prunes the oldest beyond 14.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup skips rotation during restore so the pre-restore copy
// cannot push out the backup being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.nextPath()
	if err != nil {
		return "", err
	}

	switch m.kind {
	case storage.KindSQLite:
		err = m.vacuumInto(backupPath)
	case storage.KindJSON:
		if _, statErr := os.Stat(m.location); os.IsNotExist(statErr) {
			return "", fmt.Errorf("store does not exist: %s", m.location)
		}
		err = copyFile(m.location, backupPath)
	default:
		err = m.dumpKeys(backupPath)
	}
	if err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to backup store: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	logger.Info("Created backup", "path", backupPath)
	return backupPath, nil
}

// nextPath picks an unused file name for the current second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix())
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix())
		path = filepath.Join(m.backupDir, name)
	}
}

func (m *Manager) vacuumInto(destPath string) error {
	if _, err := os.Stat(m.location); os.IsNotExist(err) {
		return fmt.Errorf("database does not exist: %s", m.location)
	}

	srcDB, err := sql.Open("sqlite", m.location+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		srcDB.Close()
		return copyFile(m.location, destPath)
	}
	return nil
}

// dumpKeys writes every key of the open store as one JSON object, the same
// layout the JSON store uses on disk.
func (m *Manager) dumpKeys(destPath string) error {
	if m.store == nil {
		return ErrNoStore
	}
	keys, err := m.store.Keys()
	if err != nil {
		return err
	}

	entries := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, ok, err := m.store.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if ok {
			entries[key] = value
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, data, 0600)
}

// parseName extracts the timestamp from a backup file name.
func parseName(name string) (time.Time, bool) {
	var stamp string
	switch {
	case strings.HasSuffix(name, SQLiteSuffix):
		stamp = strings.TrimSuffix(name, SQLiteSuffix)
	case strings.HasSuffix(name, SnapshotSuffix):
		stamp = strings.TrimSuffix(name, SnapshotSuffix)
	default:
		return time.Time{}, false
	}
	if !strings.HasPrefix(stamp, constants.BackupFilePrefix) {
		return time.Time{}, false
	}
	stamp = strings.TrimPrefix(stamp, constants.BackupFilePrefix)

	// drop a collision counter: YYYYMMDD-HHMMSS-N
	if parts := strings.Split(stamp, "-"); len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err == nil {
			stamp = parts[0] + "-" + parts[1]
		}
	}

	ts, err := time.ParseInLocation(timestampFormat, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		timestamp, ok := parseName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the store with a backup after first snapshotting
// the current state. It returns the path of that pre-restore snapshot, or ""
// when there was nothing to snapshot. SQLite and JSON stores must not be
// open elsewhere while restoring.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if !strings.HasSuffix(backupPath, m.suffix()) {
		return "", fmt.Errorf("backup %s does not match a %s store", filepath.Base(backupPath), m.kind)
	}

	var entries map[string]json.RawMessage
	if m.kind == storage.KindSQLite {
		if err := verifySQLite(backupPath); err != nil {
			return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	} else {
		var err error
		if entries, err = readSnapshot(backupPath); err != nil {
			return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	}

	var current string
	if m.hasCurrent() {
		var err error
		if current, err = m.createBackup(true); err != nil {
			return "", fmt.Errorf("failed to backup current store before restore: %w", err)
		}
	}

	switch m.kind {
	case storage.KindSQLite, storage.KindJSON:
		if err := replaceFile(backupPath, m.location); err != nil {
			return current, err
		}
	default:
		if err := m.loadKeys(entries); err != nil {
			return current, err
		}
	}

	logger.Info("Restored backup", "path", backupPath)
	return current, nil
}

func (m *Manager) hasCurrent() bool {
	switch m.kind {
	case storage.KindSQLite, storage.KindJSON:
		_, err := os.Stat(m.location)
		return err == nil
	default:
		return m.store != nil
	}
}

// loadKeys makes the store hold exactly entries.
func (m *Manager) loadKeys(entries map[string]json.RawMessage) error {
	if m.store == nil {
		return ErrNoStore
	}
	keys, err := m.store.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := entries[key]; !ok {
			if err := m.store.Remove(key); err != nil {
				return fmt.Errorf("failed to remove %s: %w", key, err)
			}
		}
	}
	for key, value := range entries {
		if err := m.store.Set(key, value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	return nil
}

func readSnapshot(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// verifySQLite checks that path is a SQLite database with the kv table.
func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count)
}

// replaceFile copies src over dst through a temporary file and rename.
func replaceFile(src, dst string) error {
	tempPath := dst + ".restore.tmp"
	if err := copyFile(src, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, dst); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
