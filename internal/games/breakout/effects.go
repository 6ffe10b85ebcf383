package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// EffectKind identifies a special brick effect.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectLongPaddle
	EffectSlowBall
	EffectTriplePoints
	EffectExtraLife
)

// effectDef is one row of the effect table. apply and revert mutate the
// session they are given and hold no state of their own.
type effectDef struct {
	name   string
	label  string
	color  func(config.EffectColors) core.Color
	apply  func(*Session)
	revert func(*Session)
}

// effectTable is indexed by EffectKind-1. A brick roll below len(effectTable)
// selects the effect at that index.
var effectTable = [...]effectDef{
	{
		name:   "long_paddle",
		label:  "LONG PADDLE",
		color:  func(c config.EffectColors) core.Color { return c.LongPaddle },
		apply:  func(s *Session) { s.Paddle.resize(s.Paddle.W+s.cfg.Paddle.Width/2, s.FieldW) },
		revert: func(s *Session) { s.Paddle.resize(s.cfg.Paddle.Width, s.FieldW) },
	},
	{
		name:   "slow_ball",
		label:  "SLOW BALL",
		color:  func(c config.EffectColors) core.Color { return c.SlowBall },
		apply:  slowBall,
		revert: restoreBallSpeed,
	},
	{
		name:   "triple_points",
		label:  "TRIPLE POINTS",
		color:  func(c config.EffectColors) core.Color { return c.TriplePoints },
		apply:  func(s *Session) { s.PointsPerBrick = s.cfg.Scoring.BonusPoints },
		revert: func(s *Session) { s.PointsPerBrick = s.cfg.Scoring.PointsPerBrick },
	},
	{
		name:   "extra_life",
		label:  "EXTRA LIFE",
		color:  func(c config.EffectColors) core.Color { return c.ExtraLife },
		apply:  func(s *Session) { s.Lives++; s.stats.ExtraLives++ },
		revert: func(*Session) {},
	},
}

func (k EffectKind) def() (effectDef, bool) {
	i := int(k) - 1
	if i < 0 || i >= len(effectTable) {
		return effectDef{}, false
	}
	return effectTable[i], true
}

// String returns the config name of the effect.
func (k EffectKind) String() string {
	if d, ok := k.def(); ok {
		return d.name
	}
	return "none"
}

// Label returns the HUD text for the effect.
func (k EffectKind) Label() string {
	if d, ok := k.def(); ok {
		return d.label
	}
	return ""
}

// Color returns the brick color tagging this effect.
func (k EffectKind) Color(c config.EffectColors) core.Color {
	if d, ok := k.def(); ok {
		return d.color(c)
	}
	return core.ColorDefault
}

// Apply activates the effect on s. EffectNone is a no-op.
func (k EffectKind) Apply(s *Session) {
	if d, ok := k.def(); ok {
		d.apply(s)
	}
}

// Revert deactivates the effect on s. EffectNone is a no-op.
func (k EffectKind) Revert(s *Session) {
	if d, ok := k.def(); ok {
		d.revert(s)
	}
}

// effectForRoll maps a brick roll to an effect; rolls past the table are plain bricks.
func effectForRoll(roll int) EffectKind {
	if roll >= 0 && roll < len(effectTable) {
		return EffectKind(roll + 1)
	}
	return EffectNone
}

// slowBall takes one unit off the ball's vertical speed, keeping it moving.
func slowBall(s *Session) {
	if core.Abs(s.Ball.VY) <= 1 {
		return
	}
	s.Ball.VY -= sign(s.Ball.VY)
	s.slowedBy++
}

// restoreBallSpeed gives back what slowBall took from the current ball.
// A respawned ball starts at full speed, so there may be nothing to restore.
func restoreBallSpeed(s *Session) {
	if s.slowedBy == 0 {
		return
	}
	if s.Ball.VY < 0 {
		s.Ball.VY -= s.slowedBy
	} else {
		s.Ball.VY += s.slowedBy
	}
	s.slowedBy = 0
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// EffectState tracks the one effect that may be active at a time.
type EffectState struct {
	Kind  EffectKind
	Since time.Time // Activation time; zero when Kind is EffectNone
}

// Active reports whether an effect is pending expiry.
func (e EffectState) Active() bool {
	return e.Kind != EffectNone
}

// Remaining returns how long the effect has left at now.
func (e EffectState) Remaining(now time.Time, d time.Duration) time.Duration {
	if !e.Active() {
		return 0
	}
	return max(0, d-now.Sub(e.Since))
}
