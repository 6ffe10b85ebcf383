package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting the game cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("playfield.units_per_cell", c.Playfield.UnitsPerCell)
	positive("playfield.frame_rate", c.Playfield.FrameRate)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("gameplay.lives", c.Gameplay.Lives)
	positive("scoring.points_per_brick", c.Scoring.PointsPerBrick)
	positive("scoring.bonus_points", c.Scoring.BonusPoints)
	positive("effects.roll_range", c.Effects.RollRange)

	if c.Ball.Spread < 0 {
		errs = append(errs, fmt.Errorf("ball.spread must not be negative, got %d", c.Ball.Spread))
	}
	if c.Bricks.Gap < 0 {
		errs = append(errs, fmt.Errorf("bricks.gap must not be negative, got %d", c.Bricks.Gap))
	}
	if c.Bricks.Rows < 0 {
		errs = append(errs, fmt.Errorf("bricks.rows must not be negative, got %d", c.Bricks.Rows))
	}
	if c.Effects.Duration <= 0 {
		errs = append(errs, fmt.Errorf("effects.duration must be positive, got %s", c.Effects.Duration))
	}
	if c.Gameplay.MessageDuration < 0 {
		errs = append(errs, fmt.Errorf("gameplay.message_duration must not be negative, got %s", c.Gameplay.MessageDuration))
	}
	switch c.Gameplay.InputMode {
	case InputToggle, InputHold:
	default:
		errs = append(errs, fmt.Errorf("gameplay.input_mode must be %q or %q, got %q", InputToggle, InputHold, c.Gameplay.InputMode))
	}
	if c.Gameplay.InputMode == InputHold && c.Gameplay.HoldReleaseTicks <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.hold_release_ticks must be positive in hold mode, got %d", c.Gameplay.HoldReleaseTicks))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	for name, cue := range c.Sounds {
		if cue.Frequency <= 0 || cue.Duration <= 0 {
			errs = append(errs, fmt.Errorf("sounds.%s needs a positive frequency and duration", name))
		}
		if cue.Wave != "square" && cue.Wave != "sine" {
			errs = append(errs, fmt.Errorf("sounds.%s: unknown wave %q", name, cue.Wave))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}
