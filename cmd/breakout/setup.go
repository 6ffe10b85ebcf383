package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// loadGameConfig resolves the config file, applies the difficulty preset and
// command-line overrides, and validates the result.
func loadGameConfig() (config.BreakoutConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Playfield.FrameRate = flagFPS
	}
	return cfg, preset, nil
}

// newLogger builds the logger for a command. Without --log-file, fallback is
// used when non-nil and everything is discarded otherwise.
func newLogger(prefix string, fallback *log.Logger) (*log.Logger, func() error, error) {
	if flagLogFile == "" && fallback != nil {
		return fallback, func() error { return nil }, nil
	}

	opts := logging.DefaultOptions()
	opts.File = flagLogFile
	opts.Level = flagLogLevel
	opts.Prefix = prefix
	logger, closer, err := logging.New(opts)
	if err != nil {
		return nil, nil, err
	}
	return logger, closer.Close, nil
}

// dataDir returns ~/.breakout/<name>, or "" if the home directory is unknown.
func dataDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", name)
}

// closeWith runs fn and keeps its error unless *err is already set.
func closeWith(err *error, fn func() error) {
	if cerr := fn(); cerr != nil && *err == nil {
		*err = cerr
	}
}
