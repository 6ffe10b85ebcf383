// Package breakout implements a Breakout brick breaker: the collision and
// effect engine, the game state machine, and the objects they move.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GridColumns returns how many bricks fit across a field and the margin that
// centers them.
func GridColumns(bc config.BreakoutBricks, fieldW int) (count, offsetX int) {
	step := bc.Width + bc.Gap
	if step <= 0 {
		return 0, 0
	}
	count = fieldW / step
	offsetX = (fieldW - count*step) / 2
	return count, offsetX
}

// LayoutBricks builds the brick grid row by row, left to right. Each brick
// rolls [0, effects.RollRange); rolls that land inside the effect table give
// the brick that effect and its color, the rest are plain.
func LayoutBricks(bc config.BreakoutBricks, ec config.BreakoutEffects, fieldW int, rng *SimpleRNG) []*Brick {
	count, offsetX := GridColumns(bc, fieldW)
	bricks := make([]*Brick, 0, count*max(bc.Rows, 0))

	for row := range max(bc.Rows, 0) {
		for col := range count {
			kind := effectForRoll(rng.Intn(ec.RollRange))
			color := bc.Color
			if kind != EffectNone {
				color = kind.Color(ec.Colors)
			}
			bricks = append(bricks, &Brick{
				Rect: core.NewRect(
					offsetX+col*(bc.Width+bc.Gap),
					bc.OffsetY+row*(bc.Height+bc.Gap),
					bc.Width,
					bc.Height,
				),
				Color:  color,
				Effect: kind,
			})
		}
	}
	return bricks
}
