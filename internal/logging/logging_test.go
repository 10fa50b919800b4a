package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ballfreq.log")
	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("dataset loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "dataset loaded") {
		t.Fatalf("expected debug entry in log, got %q", string(data))
	}
}

func TestNewSkipsDebugWhenQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballfreq.log")
	logger, err := New(path, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log contents: %q", string(data))
	}
}

func TestNewRejectsEmptyPath(t *testing.T) {
	if _, err := New("", false); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
