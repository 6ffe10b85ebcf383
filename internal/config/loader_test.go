package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML and DefaultBreakoutConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadBreakoutCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
gameplay:
  lives: 7
  input_mode: hold
bricks:
  rows: 0
  color: magenta
effects:
  duration: 1500ms
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.InputMode != InputHold {
		t.Errorf("InputMode = %q, expected hold", cfg.Gameplay.InputMode)
	}
	if cfg.Bricks.Rows != 0 || cfg.Bricks.Color != core.ColorMagenta {
		t.Errorf("Bricks = %+v, expected 0 magenta rows", cfg.Bricks)
	}
	if cfg.Effects.Duration != 1500*time.Millisecond {
		t.Errorf("Effects.Duration = %v, expected 1.5s", cfg.Effects.Duration)
	}

	// Untouched keys keep their defaults
	if cfg.Paddle != DefaultBreakoutConfig().Paddle {
		t.Errorf("Paddle = %+v, expected defaults", cfg.Paddle)
	}
	if len(cfg.Sounds) != len(DefaultBreakoutConfig().Sounds) {
		t.Errorf("Sounds has %d cues, expected defaults", len(cfg.Sounds))
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball:\n  color: plaid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(bad)
	if err == nil || !strings.Contains(err.Error(), "plaid") {
		t.Errorf("unknown color should fail with its name, got %v", err)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		paddleWidth int
		ballSpeed   int
		duration    time.Duration
	}{
		{DifficultyEasy, 5, 150, 2, 15 * time.Second},
		{DifficultyNormal, 3, 100, 2, 10 * time.Second},
		{DifficultyHard, 2, 70, 3, 5 * time.Second},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Paddle.Width != tc.paddleWidth {
				t.Errorf("Paddle.Width = %d, expected %d", cfg.Paddle.Width, tc.paddleWidth)
			}
			if cfg.Ball.Speed != tc.ballSpeed {
				t.Errorf("Ball.Speed = %d, expected %d", cfg.Ball.Speed, tc.ballSpeed)
			}
			if cfg.Effects.Duration != tc.duration {
				t.Errorf("Effects.Duration = %v, expected %v", cfg.Effects.Duration, tc.duration)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty difficulty = %q, %v; expected normal", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.Speed = 0
	cfg.Gameplay.Lives = -1
	cfg.Gameplay.InputMode = "mash"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"ball.speed", "gameplay.lives", "gameplay.input_mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}
