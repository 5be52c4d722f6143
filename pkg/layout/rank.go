package layout

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/inkgraph/inkgraph/pkg/dag"
	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// Fallback geometry when neither the shape nor the template fixes a size.
const (
	defaultShapeWidth  = 180.0
	defaultShapeHeight = 80.0
)

// rankLayout positions a diagram with the layered algorithm: break cycles,
// assign discrete ranks top-down, order nodes within each rank to reduce
// crossings, then spread ranks along the rank axis and nodes along the
// cross axis. Rankdir remaps the two axes onto x/y at the end.
func rankLayout(d diagram.Diagram, tmpl template.Template, cfg template.Layout) Result {
	res := emptyResult()

	g := dag.New()
	for _, s := range d.Shapes {
		w, h := shapeSize(s, tmpl)
		// Duplicate shape ids are structurally invalid; keep the first
		// occurrence rather than failing the whole layout.
		_ = g.AddNode(dag.Node{ID: s.ID, Width: w, Height: h})
	}
	for i, a := range d.Arrows {
		name := a.ID
		if name == "" {
			name = fmt.Sprintf("edge_%d", i)
		}
		// Dangling endpoints are tolerated; those arrows become
		// placeholders below.
		_ = g.AddEdge(dag.Edge{Name: name, From: a.From, To: a.To})
	}

	dag.BreakCycles(g)
	ranks := dag.AssignRanks(g)
	orders := dag.OrderRanks(g, ranks)

	horizontal := cfg.Rankdir == template.RankLR || cfg.Rankdir == template.RankRL
	depthOf := func(n *dag.Node) float64 {
		if horizontal {
			return n.Width
		}
		return n.Height
	}
	breadthOf := func(n *dag.Node) float64 {
		if horizontal {
			return n.Height
		}
		return n.Width
	}

	// Rank axis: stack ranks with RankSep gaps; each node centers on its
	// rank's midline.
	rankIDs := slices.Sorted(maps.Keys(orders))
	depthCenter := make(map[int]float64, len(rankIDs))
	offset := 0.0
	for _, r := range rankIDs {
		extent := 0.0
		for _, id := range orders[r] {
			if n, ok := g.Node(id); ok && depthOf(n) > extent {
				extent = depthOf(n)
			}
		}
		depthCenter[r] = offset + extent/2
		offset += extent + cfg.RankSep
	}
	totalDepth := math.Max(offset-cfg.RankSep, 0)

	// Cross axis: lay nodes out in order with NodeSep gaps, centering each
	// rank around zero so narrow ranks align with wide ones.
	crossCenter := make(map[string]float64, g.NodeCount())
	for _, r := range rankIDs {
		ids := orders[r]
		span := 0.0
		for _, id := range ids {
			n, _ := g.Node(id)
			span += breadthOf(n)
		}
		span += cfg.NodeSep * float64(len(ids)-1)

		cursor := -span / 2
		for _, id := range ids {
			n, _ := g.Node(id)
			crossCenter[id] = cursor + breadthOf(n)/2
			cursor += breadthOf(n) + cfg.NodeSep
		}
	}

	res.Shapes = make([]PositionedShape, 0, len(d.Shapes))
	seen := make(map[string]bool, len(d.Shapes))
	for _, s := range d.Shapes {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true

		n, ok := g.Node(s.ID)
		if !ok {
			continue
		}
		dc := depthCenter[ranks[s.ID]]
		cc := crossCenter[s.ID]

		var cx, cy float64
		switch cfg.Rankdir {
		case template.RankBT:
			cx, cy = cc, totalDepth-dc
		case template.RankLR:
			cx, cy = dc, cc
		case template.RankRL:
			cx, cy = totalDepth-dc, cc
		default: // TB
			cx, cy = cc, dc
		}

		res.Shapes = append(res.Shapes, PositionedShape{
			ID:              s.ID,
			Type:            s.Type,
			Label:           s.Label,
			BackgroundColor: fillColor(s, tmpl),
			X:               cx - n.Width/2,
			Y:               cy - n.Height/2,
			Width:           n.Width,
			Height:          n.Height,
		})
	}
	normalizeOrigin(res.Shapes)

	boxes := make(map[string]Box, len(res.Shapes))
	for _, s := range res.Shapes {
		boxes[s.ID] = s.box()
	}

	elbow := cfg.EdgeRouting == template.RoutingElbow
	parallel := parallelOffsets(d.Arrows, cfg.EdgeSep)

	res.Arrows = make([]PositionedArrow, 0, len(d.Arrows))
	for i, a := range d.Arrows {
		from, okFrom := boxes[a.From]
		to, okTo := boxes[a.To]
		if !okFrom || !okTo {
			res.Arrows = append(res.Arrows, placeholderArrow(a, tmpl.Arrowhead))
			continue
		}

		pa := routeArrow(a, from, to, elbow, tmpl.Arrowhead)
		if off := parallel[i]; off != 0 {
			// Fan parallel arrows out perpendicular to the dominant axis
			// so they do not overlap pixel for pixel.
			if math.Abs(to.CenterX()-from.CenterX()) >= math.Abs(to.CenterY()-from.CenterY()) {
				pa.Y += off
			} else {
				pa.X += off
			}
		}
		res.Arrows = append(res.Arrows, pa)
	}

	return res
}

// parallelOffsets assigns each arrow a perpendicular displacement spreading
// arrows that share the same (from, to) pair EdgeSep apart, centered on the
// natural anchor line. Lone arrows get zero.
func parallelOffsets(arrows []diagram.ArrowElement, edgeSep float64) map[int]float64 {
	type pair struct{ from, to string }
	counts := make(map[pair]int)
	for _, a := range arrows {
		counts[pair{a.From, a.To}]++
	}

	offsets := make(map[int]float64, len(arrows))
	index := make(map[pair]int)
	for i, a := range arrows {
		p := pair{a.From, a.To}
		if counts[p] < 2 || edgeSep <= 0 {
			continue
		}
		k := index[p]
		index[p]++
		offsets[i] = (float64(k) - float64(counts[p]-1)/2) * edgeSep
	}
	return offsets
}

// normalizeOrigin translates all shapes so the bounding box starts at (0,0).
func normalizeOrigin(shapes []PositionedShape) {
	if len(shapes) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for _, s := range shapes {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
	}
	for i := range shapes {
		shapes[i].X -= minX
		shapes[i].Y -= minY
	}
}

func shapeSize(s diagram.ShapeElement, tmpl template.Template) (w, h float64) {
	w, h = s.Width, s.Height
	if w <= 0 {
		w = tmpl.Shape.Width
	}
	if w <= 0 {
		w = defaultShapeWidth
	}
	if h <= 0 {
		h = tmpl.Shape.Height
	}
	if h <= 0 {
		h = defaultShapeHeight
	}
	return w, h
}

func fillColor(s diagram.ShapeElement, tmpl template.Template) string {
	if s.BackgroundColor != "" {
		return s.BackgroundColor
	}
	return tmpl.Shape.BackgroundColor
}
