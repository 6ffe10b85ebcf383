package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestGridColumns(t *testing.T) {
	tests := []struct {
		name          string
		width, gap    int
		fieldW        int
		count, offset int
	}{
		{"default field", 50, 10, 800, 13, 10},
		{"exact fit", 50, 10, 600, 10, 0},
		{"one unit gap", 60, 1, 800, 13, 3},
		{"too narrow", 50, 10, 40, 0, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := config.BreakoutBricks{Width: tc.width, Gap: tc.gap}
			count, offset := GridColumns(bc, tc.fieldW)
			if count != tc.count || offset != tc.offset {
				t.Errorf("GridColumns() = (%d, %d), expected (%d, %d)", count, offset, tc.count, tc.offset)
			}
		})
	}
}

func TestLayoutBricksGrid(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	bricks := LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(7))

	if len(bricks) != 13*4 {
		t.Fatalf("got %d bricks, expected 52", len(bricks))
	}
	if bricks[0].Rect != core.NewRect(10, 30, 50, 10) {
		t.Errorf("first brick = %+v, expected (10, 30, 50, 10)", bricks[0].Rect)
	}
	if bricks[13].Rect != core.NewRect(10, 50, 50, 10) {
		t.Errorf("second row starts at %+v, expected (10, 50, 50, 10)", bricks[13].Rect)
	}
	last := bricks[len(bricks)-1]
	if last.Rect != core.NewRect(730, 90, 50, 10) {
		t.Errorf("last brick = %+v, expected (730, 90, 50, 10)", last.Rect)
	}

	for i, b := range bricks {
		if b.Right() > 800 || b.X < 0 {
			t.Errorf("brick %d outside the field: %+v", i, b.Rect)
		}
		if b.Effect == EffectNone && b.Color != cfg.Bricks.Color {
			t.Errorf("plain brick %d has color %s", i, b.Color)
		}
		if b.Effect != EffectNone && b.Color != b.Effect.Color(cfg.Effects.Colors) {
			t.Errorf("effect brick %d (%s) has color %s", i, b.Effect, b.Color)
		}
	}
}

func TestLayoutBricksRollRange(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	// A range of one always rolls 0, the first effect
	cfg.Effects.RollRange = 1
	for _, b := range LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(3)) {
		if b.Effect != EffectLongPaddle {
			t.Fatalf("roll range 1 gave %s", b.Effect)
		}
	}

	// A range inside the table never yields a plain brick
	cfg.Effects.RollRange = len(effectTable)
	for _, b := range LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(3)) {
		if b.Effect == EffectNone {
			t.Fatal("roll range equal to table size gave a plain brick")
		}
	}
}

func TestLayoutBricksNoRows(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	if bricks := LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(1)); len(bricks) != 0 {
		t.Errorf("expected no bricks, got %d", len(bricks))
	}
}

func TestLayoutBricksDeterministic(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	a := LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(99))
	b := LayoutBricks(cfg.Bricks, cfg.Effects, 800, NewSimpleRNG(99))

	for i := range a {
		if *a[i] != *b[i] {
			t.Fatalf("brick %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimpleRNGIntRange(t *testing.T) {
	r := NewSimpleRNG(5)
	seen := map[int]bool{}
	for range 1000 {
		v := r.IntRange(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("IntRange(-2, 2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntRange(-2, 2) produced %v, expected all five values", seen)
	}
}
