package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick           uint64
	State          int
	Quit           bool
	Score          int
	Lives          int
	PointsPerBrick int
	Over           bool

	BallX, BallY   int
	BallVX, BallVY int
	SlowedBy       int

	PaddleX, PaddleWidth    int
	MovingLeft, MovingRight bool

	Effect      int
	EffectSince int64 // Unix nanoseconds; 0 when no effect is active

	// Bricks in creation order, 3 ints each: X, Y, Effect
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	brickData := make([]int, 0, len(s.Bricks)*3)
	for _, b := range s.Bricks {
		brickData = append(brickData, b.X, b.Y, int(b.Effect))
	}

	var since int64
	if s.Effect.Active() {
		since = s.Effect.Since.UnixNano()
	}

	return Snapshot{
		Tick:           s.tick,
		State:          int(g.state),
		Quit:           g.quit,
		Score:          s.Score,
		Lives:          s.Lives,
		PointsPerBrick: s.PointsPerBrick,
		Over:           s.Over,

		BallX:    s.Ball.X,
		BallY:    s.Ball.Y,
		BallVX:   s.Ball.VX,
		BallVY:   s.Ball.VY,
		SlowedBy: s.slowedBy,

		PaddleX:     s.Paddle.X,
		PaddleWidth: s.Paddle.W,
		MovingLeft:  s.Paddle.MovingLeft,
		MovingRight: s.Paddle.MovingRight,

		Effect:      int(s.Effect.Kind),
		EffectSince: since,

		BrickData: brickData,
		RNGState:  s.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot taken with the same config.
func (g *Game) ApplySnapshot(snap Snapshot) {
	s := g.session
	g.state = State(snap.State)
	g.quit = snap.Quit

	s.tick = snap.Tick
	s.Score = snap.Score
	s.Lives = snap.Lives
	s.PointsPerBrick = snap.PointsPerBrick
	s.Over = snap.Over

	s.Ball.X, s.Ball.Y = snap.BallX, snap.BallY
	s.Ball.VX, s.Ball.VY = snap.BallVX, snap.BallVY
	s.slowedBy = snap.SlowedBy

	s.Paddle.X = snap.PaddleX
	s.Paddle.W = snap.PaddleWidth
	s.Paddle.MovingLeft = snap.MovingLeft
	s.Paddle.MovingRight = snap.MovingRight

	s.Effect = EffectState{Kind: EffectKind(snap.Effect)}
	if s.Effect.Active() {
		s.Effect.Since = time.Unix(0, snap.EffectSince)
	}

	bc := g.cfg.Bricks
	s.Bricks = make([]*Brick, 0, len(snap.BrickData)/3)
	for i := 0; i+2 < len(snap.BrickData); i += 3 {
		kind := EffectKind(snap.BrickData[i+2])
		color := bc.Color
		if kind != EffectNone {
			color = kind.Color(g.cfg.Effects.Colors)
		}
		s.Bricks = append(s.Bricks, &Brick{
			Rect:   core.NewRect(snap.BrickData[i], snap.BrickData[i+1], bc.Width, bc.Height),
			Color:  color,
			Effect: kind,
		})
	}

	s.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.State, boolInt(snap.Quit), snap.Score, snap.Lives, snap.PointsPerBrick, boolInt(snap.Over),
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.SlowedBy,
		snap.PaddleX, snap.PaddleWidth, boolInt(snap.MovingLeft), boolInt(snap.MovingRight),
		snap.Effect,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.EffectSince) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
