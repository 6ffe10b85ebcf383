// Package config provides YAML-based game configuration loading,
// difficulty presets, and validation for the breakout game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutConfig contains all configuration for the Breakout game.
// Lengths are in world units unless noted; the playfield is the terminal size
// in cells multiplied by Playfield.UnitsPerCell.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield   `yaml:"playfield"`
	Ball      BreakoutBall        `yaml:"ball"`
	Paddle    BreakoutPaddle      `yaml:"paddle"`
	Bricks    BreakoutBricks      `yaml:"bricks"`
	Gameplay  BreakoutGameplay    `yaml:"gameplay"`
	Scoring   BreakoutScoring     `yaml:"scoring"`
	Effects   BreakoutEffects     `yaml:"effects"`
	Text      BreakoutText        `yaml:"text"`
	Menu      BreakoutMenu        `yaml:"menu"`
	Audio     AudioConfig         `yaml:"audio"`
	Sounds    map[string]SoundCue `yaml:"sounds"`
}

// BreakoutPlayfield defines world scaling and timing.
type BreakoutPlayfield struct {
	UnitsPerCell int `yaml:"units_per_cell"`
	FrameRate    int `yaml:"frame_rate"`
}

// BreakoutBall defines the ball's size and launch velocity.
type BreakoutBall struct {
	Radius int        `yaml:"radius"`
	Speed  int        `yaml:"speed"`  // vertical launch speed
	Spread int        `yaml:"spread"` // horizontal speed is drawn from [-spread, spread]
	Color  core.Color `yaml:"color"`
}

// BreakoutPaddle defines paddle geometry and speed.
type BreakoutPaddle struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Speed  int        `yaml:"speed"` // max displacement per tick
	Color  core.Color `yaml:"color"`
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Gap     int        `yaml:"gap"`
	Rows    int        `yaml:"rows"`
	OffsetY int        `yaml:"offset_y"`
	Color   core.Color `yaml:"color"`
}

// Input modes for paddle keys.
const (
	InputToggle = "toggle" // each key event flips the direction flag
	InputHold   = "hold"   // key events set the direction flag directly
)

// BreakoutGameplay defines lives, messages, and input handling.
type BreakoutGameplay struct {
	Lives           int           `yaml:"lives"`
	MessageDuration time.Duration `yaml:"message_duration"`
	InputMode       string        `yaml:"input_mode"`
	// HoldReleaseTicks is how long a held key stays down without a repeat
	// before the host synthesizes a release. Terminals do not report key-up.
	HoldReleaseTicks int `yaml:"hold_release_ticks"`
}

// BreakoutScoring defines points awarded per brick.
type BreakoutScoring struct {
	PointsPerBrick int `yaml:"points_per_brick"`
	BonusPoints    int `yaml:"bonus_points"` // while triple_points is active
}

// BreakoutEffects defines special brick effects.
type BreakoutEffects struct {
	Duration  time.Duration `yaml:"duration"`
	RollRange int           `yaml:"roll_range"` // each brick rolls [0, roll_range)
	Colors    EffectColors  `yaml:"colors"`
}

// EffectColors tags each effect brick with a color.
type EffectColors struct {
	LongPaddle   core.Color `yaml:"long_paddle"`
	SlowBall     core.Color `yaml:"slow_ball"`
	TriplePoints core.Color `yaml:"triple_points"`
	ExtraLife    core.Color `yaml:"extra_life"`
}

// BreakoutText defines HUD and message text styling.
type BreakoutText struct {
	Font          string     `yaml:"font"`
	Size          int        `yaml:"size"`
	Color         core.Color `yaml:"color"`
	StatusOffsetY int        `yaml:"status_offset_y"`
	ScoreOffsetX  int        `yaml:"score_offset_x"`
	LivesOffsetX  int        `yaml:"lives_offset_x"`
}

// BreakoutMenu defines the PLAY/QUIT button layout.
type BreakoutMenu struct {
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
	ButtonW int `yaml:"button_w"`
	ButtonH int `yaml:"button_h"`
	Spacing int `yaml:"spacing"`
}

// AudioConfig defines the output device settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
}

// SoundCue describes a synthesized tone played for a named event.
type SoundCue struct {
	Wave      string        `yaml:"wave"` // "square" or "sine"
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
