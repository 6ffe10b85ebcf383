package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestScreenRendererCells(t *testing.T) {
	r := NewScreenRenderer(core.NewScreen(80, 24), 10, 10)

	tests := []struct {
		name     string
		world    core.Rect
		expected core.Rect
	}{
		{"paddle", core.NewRect(350, 220, 100, 10), core.NewRect(35, 22, 10, 1)},
		{"paddle off grid", core.NewRect(347, 220, 100, 10), core.NewRect(35, 22, 10, 1)},
		{"ball on grid", core.NewRect(390, 110, 10, 10), core.NewRect(39, 11, 1, 1)},
		{"ball straddling cells", core.NewRect(395, 115, 10, 10), core.NewRect(40, 12, 1, 1)},
		{"ball just past a cell", core.NewRect(394, 114, 10, 10), core.NewRect(39, 11, 1, 1)},
		{"smaller than a cell", core.NewRect(3, 3, 2, 2), core.NewRect(0, 0, 1, 1)},
		{"negative origin", core.NewRect(-5, 0, 10, 10), core.NewRect(0, 0, 1, 1)},
		{"left of the field", core.NewRect(-6, 0, 10, 10), core.NewRect(-1, 0, 1, 1)},
		{"brick", core.NewRect(10, 30, 50, 10), core.NewRect(1, 3, 5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Cells(tt.world); got != tt.expected {
				t.Errorf("Cells(%+v) = %+v, expected %+v", tt.world, got, tt.expected)
			}
		})
	}
}

func TestScreenRendererSpawnedBallIsOneCell(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	u := cfg.Playfield.UnitsPerCell

	for _, size := range [][2]int{{80, 24}, {81, 25}, {79, 23}} {
		screen := core.NewScreen(size[0], size[1])
		r := NewScreenRenderer(screen, u, 2*cfg.Ball.Radius)
		s := breakout.NewSession(cfg, size[0]*u, size[1]*u, 1, nil, nil)

		for i := 0; i < 8; i++ {
			screen.Clear()
			r.DrawRect(s.Ball.Rect, s.Ball.Color)

			n := 0
			for y := range screen.Height() {
				for x := range screen.Width() {
					if screen.Get(x, y) == ballRune {
						n++
					}
				}
			}
			if n != 1 {
				t.Fatalf("%dx%d step %d: ball at %+v drawn as %d cells, expected 1", size[0], size[1], i, s.Ball.Rect, n)
			}
			s.Ball.Update()
		}
	}
}

func TestScreenRendererDraw(t *testing.T) {
	screen := core.NewScreen(20, 5)
	r := NewScreenRenderer(screen, 10, 10)

	r.DrawRect(core.NewRect(0, 0, 50, 10), core.ColorRed)
	r.DrawRect(core.NewRect(100, 20, 10, 10), core.ColorBrightWhite)
	r.DrawText(100, 40, "HI", core.TextStyle{Color: core.ColorWhite, Centered: true})

	if got := screen.Row(0); !strings.HasPrefix(got, "█████ ") {
		t.Errorf("row 0 = %q, expected a five cell block", got)
	}
	if cell := screen.GetCell(10, 2); cell.Rune != ballRune || cell.Color != core.ColorBrightWhite {
		t.Errorf("ball cell = %+v", cell)
	}
	if got := strings.TrimSpace(screen.Row(4)); got != "HI" {
		t.Errorf("row 4 = %q, expected centered HI", got)
	}
	if screen.Get(9, 4) != 'H' {
		t.Errorf("centered text starts at %q, expected H at column 9", screen.Get(9, 4))
	}
}

func TestScreenRendererWorldPoint(t *testing.T) {
	r := NewScreenRenderer(core.NewScreen(80, 24), 10, 10)
	x, y := r.WorldPoint(5, 9)
	if x != 55 || y != 95 {
		t.Errorf("WorldPoint(5, 9) = (%d, %d), expected (55, 95)", x, y)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "SCORE: 3", core.ColorWhite)
	screen.DrawText(0, 1, "ab", core.ColorRed)
	screen.SetCell(2, 1, 'c', core.ColorGreen)

	out := RenderScreen(screen)
	if !strings.Contains(out, "SCORE: 3") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
