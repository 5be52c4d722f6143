package layout

import (
	"math"
	"slices"

	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// Radial geometry constants shared with the renderer.
const (
	radialCenterX = 400.0
	radialCenterY = 400.0
	radialStep    = 200.0 // radius(depth) = depth * radialStep
)

// radialLayout positions a mindmap as a rooted tree on concentric circles:
// the root sits at the shared center, and each node's angular sector is
// subdivided evenly among its children, one circle further out.
//
// The input must form a single rooted tree. When no unambiguous root
// exists, or the walk detects a cycle or leaves shapes unreached, the
// result is deliberately empty rather than an error: the caller renders
// nothing instead of something wrong.
func radialLayout(d diagram.Diagram, tmpl template.Template) Result {
	if len(d.Shapes) == 0 {
		return emptyResult()
	}

	shapeByID := make(map[string]diagram.ShapeElement, len(d.Shapes))
	for _, s := range d.Shapes {
		shapeByID[s.ID] = s
	}

	children := make(map[string][]string)
	incoming := make(map[string]int)
	for _, a := range d.Arrows {
		if _, ok := shapeByID[a.From]; !ok {
			continue
		}
		if _, ok := shapeByID[a.To]; !ok {
			continue
		}
		children[a.From] = append(children[a.From], a.To)
		incoming[a.To]++
	}
	for _, kids := range children {
		slices.Sort(kids)
	}

	var root string
	rootCount := 0
	for _, s := range d.Shapes {
		if incoming[s.ID] == 0 {
			root = s.ID
			rootCount++
		}
	}
	if rootCount != 1 {
		return emptyResult()
	}

	type point struct{ x, y float64 }
	positions := make(map[string]point, len(d.Shapes))
	cyclic := false

	var place func(id string, depth int, startAngle, span float64)
	place = func(id string, depth int, startAngle, span float64) {
		if cyclic {
			return
		}
		if _, visited := positions[id]; visited {
			cyclic = true
			return
		}

		if depth == 0 {
			positions[id] = point{radialCenterX, radialCenterY}
		} else {
			angle := startAngle + span/2
			radius := float64(depth) * radialStep
			positions[id] = point{
				radialCenterX + radius*math.Cos(angle),
				radialCenterY + radius*math.Sin(angle),
			}
		}

		kids := children[id]
		if len(kids) == 0 {
			return
		}
		childSpan := span / float64(len(kids))
		for i, kid := range kids {
			place(kid, depth+1, startAngle+float64(i)*childSpan, childSpan)
		}
	}
	place(root, 0, 0, 2*math.Pi)

	// Unreached shapes mean the arrows do not form one tree under the
	// root (a detached cycle, typically). Same fail-soft answer.
	if cyclic || len(positions) != len(d.Shapes) {
		return emptyResult()
	}

	res := Result{
		Shapes: make([]PositionedShape, 0, len(d.Shapes)),
		Arrows: make([]PositionedArrow, 0, len(d.Arrows)),
	}
	boxes := make(map[string]Box, len(d.Shapes))
	for _, s := range d.Shapes {
		w, h := shapeSize(s, tmpl)
		p := positions[s.ID]
		ps := PositionedShape{
			ID:              s.ID,
			Type:            s.Type,
			Label:           s.Label,
			BackgroundColor: fillColor(s, tmpl),
			X:               p.x - w/2,
			Y:               p.y - h/2,
			Width:           w,
			Height:          h,
		}
		res.Shapes = append(res.Shapes, ps)
		boxes[s.ID] = ps.box()
	}

	for _, a := range d.Arrows {
		from, okFrom := boxes[a.From]
		to, okTo := boxes[a.To]
		if !okFrom || !okTo {
			res.Arrows = append(res.Arrows, placeholderArrow(a, tmpl.Arrowhead))
			continue
		}
		res.Arrows = append(res.Arrows, radialArrow(a, from, to, tmpl.Arrowhead))
	}

	return res
}
