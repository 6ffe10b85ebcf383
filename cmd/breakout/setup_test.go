package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// withFlags restores the global flags touched by a test.
func withFlags(t *testing.T) {
	t.Helper()
	difficulty, db, logFile, stats := flagDifficulty, flagDBPath, flagLogFile, flagStats
	t.Cleanup(func() {
		flagDifficulty, flagDBPath, flagLogFile, flagStats = difficulty, db, logFile, stats
	})
}

func TestCloseWith(t *testing.T) {
	first := errors.New("first")
	closeErr := errors.New("close")

	tests := []struct {
		name     string
		err      error
		close    error
		expected error
	}{
		{"both nil", nil, nil, nil},
		{"close error surfaces", nil, closeErr, closeErr},
		{"earlier error wins", first, closeErr, first},
		{"clean close keeps error", first, nil, first},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			called := false
			closeWith(&err, func() error {
				called = true
				return tt.close
			})
			if !called {
				t.Error("close func not called")
			}
			if err != tt.expected {
				t.Errorf("err = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestNewLoggerFileCloses(t *testing.T) {
	withFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "breakout.log")

	logger, closeLog, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	if err := closeLog(); err != nil {
		t.Errorf("closeLog() = %v", err)
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	commands := []struct {
		name string
		run  func() error
	}{
		{"play", func() error { return runPlay(nil, nil) }},
		{"scores", func() error { return runScores(nil, nil) }},
		{"serve", func() error { return runServe(nil, nil) }},
	}

	for _, c := range commands {
		t.Run(c.name, func(t *testing.T) {
			withFlags(t)
			flagDifficulty = "insane"
			flagDBPath = filepath.Join(t.TempDir(), "runs.db")

			err := c.run()
			if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
				t.Errorf("%s returned %v, expected an unknown difficulty error", c.name, err)
			}
		})
	}
}

func TestScoresStatsOnEmptyHistory(t *testing.T) {
	withFlags(t)
	flagDifficulty = ""
	flagStats = true
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")

	if err := runScores(nil, nil); err != nil {
		t.Errorf("runScores() = %v", err)
	}
}
