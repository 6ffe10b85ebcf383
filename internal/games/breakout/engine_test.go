package breakout

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type soundLog struct {
	names []string
}

func (l *soundLog) PlaySound(name string) {
	l.names = append(l.names, name)
}

func (l *soundLog) count(name string) int {
	n := 0
	for _, s := range l.names {
		if s == name {
			n++
		}
	}
	return n
}

// newTestSession returns an 800x240 session with no bricks.
func newTestSession(t *testing.T, mutate func(*config.BreakoutConfig)) (*Session, *core.ManualClock, *soundLog) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	if mutate != nil {
		mutate(&cfg)
	}
	clock := core.NewManualClock(epoch)
	sounds := &soundLog{}
	return NewSession(cfg, 800, 240, 1, clock, sounds), clock, sounds
}

func placeBall(s *Session, x, y, vx, vy int) {
	s.Ball.Rect = core.NewRect(x, y, 10, 10)
	s.Ball.VX, s.Ball.VY = vx, vy
}

// hitBrick puts a single brick under the ball so the next Resolve destroys it
// through its top face.
func hitBrick(s *Session, effect EffectKind) {
	s.Bricks = []*Brick{{Rect: core.NewRect(100, 100, 50, 10), Effect: effect}}
	placeBall(s, 120, 91, 0, 2)
	s.Resolve()
}

func TestWallBounceFlipsHorizontalOnly(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy int
		expVX, expVY int
	}{
		{"left wall", -1, 100, 2, 3, -2, 3},
		{"right wall", 795, 100, 2, 3, -2, 3},
		{"ceiling", 400, -1, 1, -2, 1, 2},
		{"open field", 400, 100, 2, 3, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, nil)
			placeBall(s, tc.x, tc.y, tc.vx, tc.vy)

			s.Resolve()

			if s.Ball.VX != tc.expVX || s.Ball.VY != tc.expVY {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", s.Ball.VX, s.Ball.VY, tc.expVX, tc.expVY)
			}
			if s.Ball.X != tc.x || s.Ball.Y != tc.y {
				t.Errorf("Resolve moved the ball to (%d, %d)", s.Ball.X, s.Ball.Y)
			}
		})
	}
}

func TestPaddleTopHitAddsSpin(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		expVX       int
	}{
		{"still paddle", false, false, 1},
		{"paddle moving left", true, false, 0},
		{"paddle moving right", false, true, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, sounds := newTestSession(t, nil)
			s.Paddle.MovingLeft, s.Paddle.MovingRight = tc.left, tc.right
			placeBall(s, 395, 211, 1, 2)

			s.Resolve()

			if s.Ball.VX != tc.expVX || s.Ball.VY != -2 {
				t.Errorf("velocity = (%d, %d), expected (%d, -2)", s.Ball.VX, s.Ball.VY, tc.expVX)
			}
			if sounds.count(config.SoundPaddleHit) != 1 {
				t.Errorf("expected one paddle_hit cue, got %v", sounds.names)
			}
		})
	}
}

func TestPaddleSideHitFlipsHorizontal(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.Ball.Rect = core.NewRect(341, 222, 10, 5)
	s.Ball.VX, s.Ball.VY = 2, 1

	s.Resolve()

	if s.Ball.VX != -2 || s.Ball.VY != 1 {
		t.Errorf("velocity = (%d, %d), expected (-2, 1)", s.Ball.VX, s.Ball.VY)
	}
}

func TestFloorCostsLifeAndRespawns(t *testing.T) {
	s, _, sounds := newTestSession(t, nil)
	placeBall(s, 400, 241, 1, 2)

	s.Resolve()

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if s.Over {
		t.Error("session should not be over with lives left")
	}
	if s.Ball.Rect != core.NewRect(395, 115, 10, 10) {
		t.Errorf("ball should respawn at the center, got %+v", s.Ball.Rect)
	}
	if s.Ball.VY != 2 || s.Ball.VX < -2 || s.Ball.VX > 2 {
		t.Errorf("respawn velocity = (%d, %d)", s.Ball.VX, s.Ball.VY)
	}
	if sounds.count(config.SoundLifeLost) != 1 {
		t.Errorf("expected life_lost cue, got %v", sounds.names)
	}
}

func TestLastLifeEndsSessionWithoutRespawn(t *testing.T) {
	s, _, _ := newTestSession(t, func(c *config.BreakoutConfig) { c.Gameplay.Lives = 1 })
	placeBall(s, 400, 241, 1, 2)

	s.Resolve()

	if s.Lives != 0 || !s.Over {
		t.Errorf("Lives = %d Over = %v, expected 0 and over", s.Lives, s.Over)
	}
	if s.Ball.Y != 241 {
		t.Errorf("ball should not respawn, got %+v", s.Ball.Rect)
	}

	// Resolving a finished session changes nothing
	s.Resolve()
	if s.Lives != 0 {
		t.Errorf("Lives went to %d after game over", s.Lives)
	}
}

func TestLivesNeverNegative(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.Lives = 0
	placeBall(s, 400, 241, 1, 2)

	s.Resolve()

	if s.Lives != 0 || !s.Over {
		t.Errorf("Lives = %d Over = %v, expected 0 and over", s.Lives, s.Over)
	}
}

func TestBrickHit(t *testing.T) {
	s, _, sounds := newTestSession(t, nil)
	s.Bricks = []*Brick{{Rect: core.NewRect(100, 100, 50, 10)}}
	placeBall(s, 120, 91, 1, 2)

	s.Resolve()

	if len(s.Bricks) != 0 {
		t.Errorf("brick should be destroyed, %d left", len(s.Bricks))
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.Score)
	}
	if s.Ball.VX != 1 || s.Ball.VY != -2 {
		t.Errorf("velocity = (%d, %d), expected (1, -2)", s.Ball.VX, s.Ball.VY)
	}
	if sounds.count(config.SoundBrickHit) != 1 {
		t.Errorf("expected brick_hit cue, got %v", sounds.names)
	}
}

func TestOneBrickPerTick(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	first := &Brick{Rect: core.NewRect(100, 100, 50, 10)}
	second := &Brick{Rect: core.NewRect(150, 100, 50, 10)}
	s.Bricks = []*Brick{first, second}
	placeBall(s, 145, 91, 1, 2)

	s.Resolve()

	if len(s.Bricks) != 1 || s.Bricks[0] != second {
		t.Fatalf("only the first brick should go, left %v", s.Bricks)
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.Score)
	}
	// First brick was struck on its right face
	if s.Ball.VX != -1 || s.Ball.VY != 2 {
		t.Errorf("velocity = (%d, %d), expected (-1, 2)", s.Ball.VX, s.Ball.VY)
	}
}

func TestTriplePointsUntilExpiry(t *testing.T) {
	s, clock, sounds := newTestSession(t, nil)

	hitBrick(s, EffectTriplePoints)
	if s.Score != 1 {
		t.Fatalf("effect brick itself scores at the old rate, Score = %d", s.Score)
	}

	hitBrick(s, EffectNone)
	hitBrick(s, EffectNone)
	if s.Score != 7 {
		t.Errorf("Score = %d, expected 1 + 3 + 3", s.Score)
	}

	clock.Advance(10 * time.Second)
	if !s.ExpireEffect() {
		t.Fatal("effect should expire after its duration")
	}
	if sounds.count(config.SoundEffectDone) != 1 {
		t.Errorf("expected effect_done cue, got %v", sounds.names)
	}

	hitBrick(s, EffectNone)
	if s.Score != 8 {
		t.Errorf("Score = %d, expected 8 after expiry", s.Score)
	}
}

func TestEffectExpiresExactlyOnce(t *testing.T) {
	s, clock, sounds := newTestSession(t, nil)
	hitBrick(s, EffectTriplePoints)

	clock.Advance(10*time.Second - time.Nanosecond)
	if s.ExpireEffect() {
		t.Fatal("effect expired early")
	}

	clock.Advance(time.Nanosecond)
	if !s.ExpireEffect() {
		t.Fatal("effect should expire at exactly the duration")
	}
	if s.Effect.Active() || s.PointsPerBrick != 1 {
		t.Errorf("effect state after expiry = %+v, points %d", s.Effect, s.PointsPerBrick)
	}

	clock.Advance(time.Minute)
	if s.ExpireEffect() {
		t.Error("second expiry should be a no-op")
	}
	if n := sounds.count(config.SoundEffectDone); n != 1 {
		t.Errorf("effect_done played %d times, expected 1", n)
	}
}

func TestNewEffectRevertsActiveOne(t *testing.T) {
	s, clock, _ := newTestSession(t, nil)

	hitBrick(s, EffectLongPaddle)
	if s.Paddle.W != 150 || s.Paddle.X != 325 {
		t.Fatalf("long paddle = %+v, expected X 325 W 150", s.Paddle.Rect)
	}
	s.drainEvents()

	clock.Advance(3 * time.Second)
	hitBrick(s, EffectTriplePoints)

	if s.Paddle.W != 100 || s.Paddle.X != 350 {
		t.Errorf("long paddle not reverted: %+v", s.Paddle.Rect)
	}
	if s.Effect.Kind != EffectTriplePoints || !s.Effect.Since.Equal(clock.Now()) {
		t.Errorf("effect state = %+v, expected triple points since now", s.Effect)
	}

	var kinds []EventKind
	for _, ev := range s.drainEvents() {
		if ev.Kind == EventEffectOn || ev.Kind == EventEffectOff {
			kinds = append(kinds, ev.Kind)
		}
	}
	if len(kinds) != 2 || kinds[0] != EventEffectOff || kinds[1] != EventEffectOn {
		t.Errorf("effect events = %v, expected off then on", kinds)
	}

	// The replacement runs its full duration from its own start
	clock.Advance(9 * time.Second)
	if s.ExpireEffect() {
		t.Error("replacement effect expired on the old timer")
	}
}

func TestSlowBall(t *testing.T) {
	tests := []struct {
		name              string
		vy                int
		respawn           bool
		slowedVY, finalVY int
	}{
		{"falling ball", 2, false, 1, 2},
		{"rising ball", -3, false, -2, -3},
		{"already at minimum", 1, false, 1, 1},
		{"respawned before revert", 2, true, 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, nil)
			s.Ball.VY = tc.vy

			EffectSlowBall.Apply(s)
			if s.Ball.VY != tc.slowedVY {
				t.Errorf("slowed VY = %d, expected %d", s.Ball.VY, tc.slowedVY)
			}

			if tc.respawn {
				s.spawnBall()
			}
			EffectSlowBall.Revert(s)
			if s.Ball.VY != tc.finalVY {
				t.Errorf("restored VY = %d, expected %d", s.Ball.VY, tc.finalVY)
			}
		})
	}
}

func TestExtraLifeIsPermanent(t *testing.T) {
	s, clock, _ := newTestSession(t, nil)

	hitBrick(s, EffectExtraLife)
	if s.Lives != 4 {
		t.Fatalf("Lives = %d, expected 4", s.Lives)
	}

	clock.Advance(time.Hour)
	s.ExpireEffect()
	if s.Lives != 4 {
		t.Errorf("Lives = %d after expiry, expected 4", s.Lives)
	}
	if s.Stats().ExtraLives != 1 {
		t.Errorf("ExtraLives = %d, expected 1", s.Stats().ExtraLives)
	}
}

func TestLongPaddleStaysInField(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.Paddle.X = 0

	EffectLongPaddle.Apply(s)
	if s.Paddle.X != 0 || s.Paddle.W != 150 {
		t.Errorf("long paddle at wall = %+v", s.Paddle.Rect)
	}

	EffectLongPaddle.Revert(s)
	if s.Paddle.W != 100 || s.Paddle.X < 0 {
		t.Errorf("reverted paddle = %+v", s.Paddle.Rect)
	}
}

func TestEffectTable(t *testing.T) {
	colors := config.DefaultBreakoutConfig().Effects.Colors

	tests := []struct {
		roll  int
		kind  EffectKind
		name  string
		color core.Color
	}{
		{0, EffectLongPaddle, "long_paddle", colors.LongPaddle},
		{1, EffectSlowBall, "slow_ball", colors.SlowBall},
		{2, EffectTriplePoints, "triple_points", colors.TriplePoints},
		{3, EffectExtraLife, "extra_life", colors.ExtraLife},
		{4, EffectNone, "none", core.ColorDefault},
		{10, EffectNone, "none", core.ColorDefault},
	}

	for _, tc := range tests {
		kind := effectForRoll(tc.roll)
		if kind != tc.kind {
			t.Errorf("roll %d = %s, expected %s", tc.roll, kind, tc.kind)
		}
		if kind.String() != tc.name {
			t.Errorf("roll %d name = %q, expected %q", tc.roll, kind.String(), tc.name)
		}
		if kind.Color(colors) != tc.color {
			t.Errorf("roll %d color = %s, expected %s", tc.roll, kind.Color(colors), tc.color)
		}
	}
}
