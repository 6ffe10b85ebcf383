package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Session is the mutable state of one game: the ball, the paddle, the live
// bricks and the score/lives/effect bookkeeping. The state machine owns it
// and the collision engine mutates it once per tick.
type Session struct {
	FieldW, FieldH int // Playfield size in world units

	Ball   *Ball
	Paddle *Paddle
	Bricks []*Brick // Live bricks in creation order

	Score          int
	Lives          int
	PointsPerBrick int
	Over           bool // Lives exhausted
	Effect         EffectState

	cfg      config.BreakoutConfig
	rng      *SimpleRNG
	clock    core.Clock
	sound    SoundPlayer
	tick     uint64
	slowedBy int // Vertical speed removed from the current ball by slow_ball
	stats    Stats
	events   []Event
}

// NewSession lays out a fresh level on a fieldW x fieldH playfield.
func NewSession(cfg config.BreakoutConfig, fieldW, fieldH int, seed int64, clock core.Clock, sound SoundPlayer) *Session {
	if clock == nil {
		clock = core.RealClock{}
	}
	if sound == nil {
		sound = Silent{}
	}
	s := &Session{
		FieldW:         fieldW,
		FieldH:         fieldH,
		Lives:          cfg.Gameplay.Lives,
		PointsPerBrick: cfg.Scoring.PointsPerBrick,
		cfg:            cfg,
		rng:            NewSimpleRNG(seed),
		clock:          clock,
		sound:          sound,
	}
	s.Bricks = LayoutBricks(cfg.Bricks, cfg.Effects, fieldW, s.rng)
	s.Paddle = NewPaddle(fieldW, fieldH, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed, cfg.Paddle.Color)
	s.spawnBall()
	return s
}

// spawnBall replaces the ball with a new one at the field center, launched
// downward with a random horizontal component.
func (s *Session) spawnBall() {
	vx := s.rng.IntRange(-s.cfg.Ball.Spread, s.cfg.Ball.Spread)
	s.Ball = NewBall(s.FieldW/2, s.FieldH/2, s.cfg.Ball.Radius, vx, s.cfg.Ball.Speed, s.cfg.Ball.Color)
	s.slowedBy = 0
}

// ExpireEffect reverts the active effect once its duration has elapsed.
// It reports whether an effect was reverted.
func (s *Session) ExpireEffect() bool {
	if !s.Effect.Active() {
		return false
	}
	if s.clock.Now().Sub(s.Effect.Since) < s.cfg.Effects.Duration {
		return false
	}
	kind := s.Effect.Kind
	kind.Revert(s)
	s.Effect = EffectState{}
	s.sound.PlaySound(config.SoundEffectDone)
	s.emit(Event{Kind: EventEffectOff, Effect: kind})
	return true
}

// Resolve runs one tick of collision resolution: paddle, floor, ceiling,
// walls, then at most one brick. Every bounce is computed from the velocity
// the ball had when the tick started and only rewrites the axis it reflects,
// so a later check can override an earlier one on the same axis.
func (s *Session) Resolve() {
	if s.Over {
		return
	}
	s.tick++
	s.stats.Ticks++
	b := s.Ball
	vx, vy := b.VX, b.VY

	if edge := Classify(s.Paddle.Rect, b.Rect); edge != EdgeNone {
		s.sound.PlaySound(config.SoundPaddleHit)
		s.stats.PaddleHits++
		s.emit(Event{Kind: EventPaddleHit, Edge: edge})
		switch edge {
		case EdgeTop:
			b.VY = -vy
			switch {
			case s.Paddle.MovingLeft:
				b.VX = vx - 1
			case s.Paddle.MovingRight:
				b.VX = vx + 1
			}
		case EdgeLeft, EdgeRight:
			b.VX = -vx
		}
	}

	if b.Y > s.FieldH {
		s.loseLife()
		return
	}

	if b.Y < 0 {
		b.VY = -vy
	}

	if b.X < 0 || b.Right() > s.FieldW {
		b.VX = -vx
	}

	for i, brick := range s.Bricks {
		edge := Classify(brick.Rect, b.Rect)
		if edge == EdgeNone {
			continue
		}
		s.Bricks = append(s.Bricks[:i], s.Bricks[i+1:]...)
		s.Score += s.PointsPerBrick
		s.stats.BricksDestroyed++
		if edge.Vertical() {
			b.VY = -vy
		} else {
			b.VX = -vx
		}
		s.sound.PlaySound(config.SoundBrickHit)
		s.emit(Event{Kind: EventBrickDestroyed, Edge: edge, Effect: brick.Effect})
		s.trigger(brick.Effect)
		break
	}
}

// loseLife takes a life and either ends the session or serves a new ball.
func (s *Session) loseLife() {
	s.Lives--
	s.stats.LivesLost++
	s.sound.PlaySound(config.SoundLifeLost)
	if s.Lives <= 0 {
		s.Lives = 0
		s.Over = true
		s.emit(Event{Kind: EventLifeLost})
		return
	}
	s.spawnBall()
	s.emit(Event{Kind: EventLifeLost})
}

// trigger activates kind, first reverting whatever effect is active.
// Effects never stack.
func (s *Session) trigger(kind EffectKind) {
	if kind == EffectNone {
		return
	}
	if s.Effect.Active() {
		prev := s.Effect.Kind
		prev.Revert(s)
		s.emit(Event{Kind: EventEffectOff, Effect: prev})
	}
	kind.Apply(s)
	s.Effect = EffectState{Kind: kind, Since: s.clock.Now()}
	s.stats.EffectsTriggered++
	s.emit(Event{Kind: EventEffectOn, Effect: kind})
}

// Advance applies each object's own motion for the tick.
func (s *Session) Advance() {
	s.Paddle.Update(s.FieldW)
	s.Ball.Update()
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) emit(ev Event) {
	ev.Tick = s.tick
	ev.Score = s.Score
	ev.Lives = s.Lives
	s.events = append(s.events, ev)
}

// drainEvents returns the events recorded since the last call.
func (s *Session) drainEvents() []Event {
	evs := s.events
	s.events = nil
	return evs
}
