package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Sound cue names emitted by the game.
const (
	SoundPaddleHit     = "paddle_hit"
	SoundBrickHit      = "brick_hit"
	SoundEffectDone    = "effect_done"
	SoundLifeLost      = "life_lost"
	SoundLevelComplete = "level_complete"
)

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			UnitsPerCell: 10,
			FrameRate:    60,
		},
		Ball: BreakoutBall{
			Radius: 5,
			Speed:  2,
			Spread: 2,
			Color:  core.ColorBrightWhite,
		},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 10,
			Speed:  6,
			Color:  core.ColorBrightBlue,
		},
		Bricks: BreakoutBricks{
			Width:   50,
			Height:  10,
			Gap:     10,
			Rows:    4,
			OffsetY: 30,
			Color:   core.ColorRed,
		},
		Gameplay: BreakoutGameplay{
			Lives:            3,
			MessageDuration:  2 * time.Second,
			InputMode:        InputToggle,
			HoldReleaseTicks: 30,
		},
		Scoring: BreakoutScoring{
			PointsPerBrick: 1,
			BonusPoints:    3,
		},
		Effects: BreakoutEffects{
			Duration:  10 * time.Second,
			RollRange: 11,
			Colors: EffectColors{
				LongPaddle:   core.ColorOrange,
				SlowBall:     core.ColorCyan,
				TriplePoints: core.ColorGreen,
				ExtraLife:    core.ColorYellow,
			},
		},
		Text: BreakoutText{
			Font:          "Arial",
			Size:          20,
			Color:         core.ColorWhite,
			StatusOffsetY: 0,
			ScoreOffsetX:  10,
			LivesOffsetX:  680,
		},
		Menu: BreakoutMenu{
			OffsetX: 20,
			OffsetY: 80,
			ButtonW: 80,
			ButtonH: 30,
			Spacing: 10,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.4,
		},
		Sounds: map[string]SoundCue{
			SoundPaddleHit:     {Wave: "square", Frequency: 440, Duration: 40 * time.Millisecond},
			SoundBrickHit:      {Wave: "square", Frequency: 660, Duration: 30 * time.Millisecond},
			SoundEffectDone:    {Wave: "sine", Frequency: 330, Duration: 120 * time.Millisecond},
			SoundLifeLost:      {Wave: "sine", Frequency: 196, Duration: 300 * time.Millisecond},
			SoundLevelComplete: {Wave: "sine", Frequency: 880, Duration: 400 * time.Millisecond},
		},
	}
}
