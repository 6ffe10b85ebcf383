package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the single moving ball. Its rectangle bounds a circle of radius W/2.
type Ball struct {
	core.Rect
	VX, VY int // Velocity per tick in world units
	Color  core.Color
}

// NewBall creates a ball centered on (cx, cy).
func NewBall(cx, cy, radius, vx, vy int, color core.Color) *Ball {
	return &Ball{
		Rect:  core.NewRect(cx-radius, cy-radius, radius*2, radius*2),
		VX:    vx,
		VY:    vy,
		Color: color,
	}
}

// Update advances the ball by its velocity.
func (b *Ball) Update() {
	b.Move(b.VX, b.VY)
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	core.Rect
	MovingLeft  bool
	MovingRight bool
	Speed       int // Max displacement per tick
	Color       core.Color
}

// NewPaddle creates a paddle centered horizontally, two paddle heights above the floor.
func NewPaddle(fieldW, fieldH, w, h, speed int, color core.Color) *Paddle {
	return &Paddle{
		Rect:  core.NewRect((fieldW-w)/2, fieldH-h*2, w, h),
		Speed: speed,
		Color: color,
	}
}

// Toggle flips the direction flag for k. Every press and every release flips,
// so a missed event leaves the flag out of step with the physical key.
func (p *Paddle) Toggle(k core.Key) {
	switch k {
	case core.KeyLeft:
		p.MovingLeft = !p.MovingLeft
	case core.KeyRight:
		p.MovingRight = !p.MovingRight
	}
}

// Hold sets the direction flag for k to the key's physical state.
func (p *Paddle) Hold(k core.Key, down bool) {
	switch k {
	case core.KeyLeft:
		p.MovingLeft = down
	case core.KeyRight:
		p.MovingRight = down
	}
}

// Update slides the paddle, never past either side of the field.
// Left wins when both flags are set.
func (p *Paddle) Update(fieldW int) {
	var dx int
	switch {
	case p.MovingLeft:
		dx = -max(0, min(p.Speed, p.X))
	case p.MovingRight:
		dx = max(0, min(p.Speed, fieldW-p.Right()))
	default:
		return
	}
	p.Move(dx, 0)
}

// resize sets the paddle width around its current center and pulls it back
// inside the field if that pushed an edge out.
func (p *Paddle) resize(w, fieldW int) {
	w = min(w, fieldW)
	p.Inflate(w-p.W, 0)
	p.X = core.Clamp(p.X, 0, fieldW-p.W)
}

// Brick is a destructible block, optionally carrying a special effect.
type Brick struct {
	core.Rect
	Color  core.Color
	Effect EffectKind
}
