package layout

import (
	"math"

	"github.com/inkgraph/inkgraph/pkg/diagram"
)

// anchorPoint is an absolute arrow endpoint on a shape boundary.
type anchorPoint struct {
	X, Y float64
}

// anchors picks the arrow endpoints for a connection between two boxes.
//
// The rule is shared verbatim by every consumer in the system and must not
// drift: compare |dx| and |dy| between the box centers; when |dx| > |dy|
// anchor on the left/right edges facing the other box, otherwise on the
// top/bottom edges. Ties resolve toward horizontal.
func anchors(from, to Box) (start, end anchorPoint, horizontal bool) {
	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()

	if math.Abs(dx) >= math.Abs(dy) {
		horizontal = true
		if dx > 0 {
			start = anchorPoint{from.X + from.Width, from.CenterY()}
			end = anchorPoint{to.X, to.CenterY()}
		} else {
			start = anchorPoint{from.X, from.CenterY()}
			end = anchorPoint{to.X + to.Width, to.CenterY()}
		}
		return start, end, horizontal
	}

	if dy > 0 {
		start = anchorPoint{from.CenterX(), from.Y + from.Height}
		end = anchorPoint{to.CenterX(), to.Y}
	} else {
		start = anchorPoint{from.CenterX(), from.Y}
		end = anchorPoint{to.CenterX(), to.Y + to.Height}
	}
	return start, end, false
}

// routeArrow constructs the positioned path between two boxes. Straight
// routing emits a 2-point relative path. Elbow routing emits a 4-point
// orthogonal path that travels half the dominant-axis distance, turns to
// cover the full secondary-axis distance, then finishes the remainder.
func routeArrow(a diagram.ArrowElement, from, to Box, elbow bool, arrowhead string) PositionedArrow {
	start, end, horizontal := anchors(from, to)
	dx := end.X - start.X
	dy := end.Y - start.Y

	var points [][2]float64
	if elbow {
		if horizontal {
			points = [][2]float64{{0, 0}, {dx / 2, 0}, {dx / 2, dy}, {dx, dy}}
		} else {
			points = [][2]float64{{0, 0}, {0, dy / 2}, {dx, dy / 2}, {dx, dy}}
		}
	} else {
		points = [][2]float64{{0, 0}, {dx, dy}}
	}

	return PositionedArrow{
		ID:        a.ID,
		From:      a.From,
		To:        a.To,
		Label:     a.Label,
		Arrowhead: arrowhead,
		X:         start.X,
		Y:         start.Y,
		Width:     math.Abs(dx),
		Height:    math.Abs(dy),
		Points:    points,
		Elbowed:   elbow,
	}
}

// placeholderArrow stands in for an arrow whose endpoints are not part of
// the laid-out shape set. It is zero-length and straight, keeping the
// output structurally complete without inventing geometry.
func placeholderArrow(a diagram.ArrowElement, arrowhead string) PositionedArrow {
	return PositionedArrow{
		ID:        a.ID,
		From:      a.From,
		To:        a.To,
		Label:     a.Label,
		Arrowhead: arrowhead,
		Points:    [][2]float64{{0, 0}, {0, 0}},
	}
}

// radialArrow routes an arrow along the straight center-to-center line of
// two boxes, starting and ending on each box's boundary proportionally to
// its half-extents along the line's direction. Used by the radial layout,
// where axis-aligned edge anchoring would look wrong on a circle.
func radialArrow(a diagram.ArrowElement, from, to Box, arrowhead string) PositionedArrow {
	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()
	dist := math.Hypot(dx, dy)

	var start, end anchorPoint
	if dist == 0 {
		start = anchorPoint{from.CenterX(), from.CenterY()}
		end = start
	} else {
		ux, uy := dx/dist, dy/dist
		start = anchorPoint{
			from.CenterX() + ux*from.Width/2,
			from.CenterY() + uy*from.Height/2,
		}
		end = anchorPoint{
			to.CenterX() - ux*to.Width/2,
			to.CenterY() - uy*to.Height/2,
		}
	}

	return PositionedArrow{
		ID:        a.ID,
		From:      a.From,
		To:        a.To,
		Label:     a.Label,
		Arrowhead: arrowhead,
		X:         start.X,
		Y:         start.Y,
		Width:     math.Abs(end.X - start.X),
		Height:    math.Abs(end.Y - start.Y),
		Points:    [][2]float64{{0, 0}, {end.X - start.X, end.Y - start.Y}},
	}
}
