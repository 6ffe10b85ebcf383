package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used for solid game objects.
const (
	blockRune = '█'
	ballRune  = '●'
)

// ScreenRenderer draws world-unit geometry onto a cell Screen. Every
// unitsPerCell world units map to one terminal cell.
type ScreenRenderer struct {
	screen       *core.Screen
	unitsPerCell int
	ballSize     int
}

// NewScreenRenderer creates a renderer over screen. Rects no larger than
// ballSize on both axes are drawn with the ball glyph.
func NewScreenRenderer(screen *core.Screen, unitsPerCell, ballSize int) *ScreenRenderer {
	if unitsPerCell <= 0 {
		unitsPerCell = 1
	}
	return &ScreenRenderer{screen: screen, unitsPerCell: unitsPerCell, ballSize: ballSize}
}

// Cells converts a world rect to cells. The origin snaps to the nearest cell
// and the size rounds to whole cells, so an object keeps the same cell size
// wherever it sits. Any rect covers at least one cell.
func (r *ScreenRenderer) Cells(world core.Rect) core.Rect {
	u := r.unitsPerCell
	half := u / 2
	return core.NewRect(
		core.FloorDiv(world.X+half, u),
		core.FloorDiv(world.Y+half, u),
		max(1, (world.W+half)/u),
		max(1, (world.H+half)/u),
	)
}

// DrawRect fills the cells covered by rect.
func (r *ScreenRenderer) DrawRect(rect core.Rect, c core.Color) {
	fill := blockRune
	if rect.W <= r.ballSize && rect.H <= r.ballSize {
		fill = ballRune
	}
	r.screen.DrawRect(r.Cells(rect), fill, c)
}

// DrawText writes text at a world position. Font and size are ignored.
func (r *ScreenRenderer) DrawText(x, y int, text string, style core.TextStyle) {
	cx := core.FloorDiv(x, r.unitsPerCell)
	cy := core.FloorDiv(y, r.unitsPerCell)
	if style.Centered {
		r.screen.DrawTextCentered(cx, cy, text, style.Color)
		return
	}
	r.screen.DrawText(cx, cy, text, style.Color)
}

// WorldPoint maps a cell to the world coordinate of its center.
func (r *ScreenRenderer) WorldPoint(cellX, cellY int) (int, int) {
	u := r.unitsPerCell
	return cellX*u + u/2, cellY*u + u/2
}
