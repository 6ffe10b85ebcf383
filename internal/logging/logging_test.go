package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	opts := DefaultOptions()
	opts.File = path
	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("level start", "seed", 7)
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "level start") || !strings.Contains(out, "seed=7") {
		t.Errorf("log file missing record: %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Errorf("debug record written at info level: %q", out)
	}
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closer.Close()

	// Must not panic or write anywhere.
	logger.Info("nothing to see")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "chatty"
	if _, _, err := New(opts); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
