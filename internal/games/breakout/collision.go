package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Edge names the face of a rectangle the ball struck.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the name of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Vertical reports whether the edge is the top or bottom face.
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Classify returns which 1-unit edge strip of obj the ball overlaps.
//
// Strips are tested in the order left, right, top, bottom. A single hit is
// returned as is. Corner hits that include the top strip resolve to top when
// the ball's center is at or below obj's top, otherwise to the side the
// ball's center is on; the bottom strip is handled the same way against
// obj's bottom. When only side strips overlap, the first one in test order wins.
func Classify(obj, ball core.Rect) Edge {
	strips := [...]struct {
		edge Edge
		rect core.Rect
	}{
		{EdgeLeft, obj.LeftEdge()},
		{EdgeRight, obj.RightEdge()},
		{EdgeTop, obj.TopEdge()},
		{EdgeBottom, obj.BottomEdge()},
	}

	var hit [EdgeBottom + 1]bool
	first := EdgeNone
	count := 0
	for _, s := range strips {
		if ball.Intersects(s.rect) {
			hit[s.edge] = true
			count++
			if first == EdgeNone {
				first = s.edge
			}
		}
	}

	switch {
	case count <= 1:
		return first
	case hit[EdgeTop]:
		if ball.CenterY() >= obj.Y {
			return EdgeTop
		}
		return sideOf(obj, ball)
	case hit[EdgeBottom]:
		if ball.CenterY() >= obj.Bottom() {
			return EdgeBottom
		}
		return sideOf(obj, ball)
	default:
		return first
	}
}

func sideOf(obj, ball core.Rect) Edge {
	if ball.CenterX() < obj.X {
		return EdgeLeft
	}
	return EdgeRight
}
