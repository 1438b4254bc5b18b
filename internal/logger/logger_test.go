package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(filepath.Dir(Path(configDir))); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", filepath.Dir(Path(configDir)))
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Warn("store write failed", "key", "campusbuddy-cgpa-data")

	data, err := os.ReadFile(Path(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "store write failed") {
		t.Errorf("log file missing warning: %q", data)
	}
}

func TestPath(t *testing.T) {
	got := Path("/cfg")
	if got != filepath.Join("/cfg", "logs", "campusbuddy.log") {
		t.Errorf("Path() = %q", got)
	}
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false)
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered outside debug mode")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warnings should always be written")
	}

	buf.Reset()
	New(&buf, true).Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Error("debug should be written in debug mode")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
