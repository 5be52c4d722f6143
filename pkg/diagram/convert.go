package diagram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/inkgraph/inkgraph/pkg/ir"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// Node metadata keys honored during conversion.
const (
	metaShape           = "shape"
	metaColor           = "color"
	metaBackgroundColor = "backgroundColor"
	metaWidth           = "width"
	metaHeight          = "height"
)

// kindRule maps a case-insensitive substring of a node kind to a shape
// type. Rules are evaluated in fixed order; the first match wins.
type kindRule struct {
	substr string
	shape  string
}

var kindRules = []kindRule{
	{"decision", ShapeDiamond},
	{"start", ShapeEllipse},
	{"end", ShapeEllipse},
	{"actor", ShapeEllipse},
	{"external", ShapeEllipse},
}

// Convert maps an intermediate graph to typed shapes and arrows. It is pure
// and deterministic: nodes are sorted by id and edges by (from, to, label,
// id) before the output is built, so semantically identical inputs yield
// byte-identical diagrams regardless of input ordering. Synthesized edge
// ids embed the post-sort index and are therefore reproducible too.
//
// Convert never fails. It does not validate that arrows reference existing
// shapes; dangling references are tolerated downstream by the layout engine
// and rejected, where it matters, by the modification engine.
func Convert(g ir.Graph, tmpl template.Template) Diagram {
	nodes := slices.Clone(g.Nodes)
	slices.SortFunc(nodes, ir.CompareNodes)
	edges := slices.Clone(g.Edges)
	slices.SortFunc(edges, ir.CompareEdges)

	d := Diagram{
		Shapes: make([]ShapeElement, len(nodes)),
		Arrows: make([]ArrowElement, len(edges)),
	}

	for i, n := range nodes {
		d.Shapes[i] = ShapeElement{
			ID:              n.ID,
			Type:            resolveShapeType(n, tmpl),
			Label:           n.DisplayLabel(),
			BackgroundColor: resolveColor(n),
			Width:           metaFloat(n, metaWidth),
			Height:          metaFloat(n, metaHeight),
		}
	}

	for i, e := range edges {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("edge_%d_%s_%s", i, e.From, e.To)
		}
		d.Arrows[i] = ArrowElement{ID: id, From: e.From, To: e.To, Label: e.Label}
	}

	return d
}

// resolveShapeType picks the shape for a node. Resolution order: explicit
// per-node metadata override, then the template's kind override map, then
// the built-in substring rules, then rectangle.
func resolveShapeType(n ir.Node, tmpl template.Template) string {
	if s, ok := n.MetaString(metaShape); ok && isShapeType(s) {
		return s
	}

	kind := strings.ToLower(n.Kind)
	if s, ok := tmpl.KindShapes[kind]; ok && isShapeType(s) {
		return s
	}
	if kind != "" {
		for _, rule := range kindRules {
			if strings.Contains(kind, rule.substr) {
				return rule.shape
			}
		}
	}

	return ShapeRectangle
}

func isShapeType(s string) bool {
	return s == ShapeRectangle || s == ShapeEllipse || s == ShapeDiamond
}

// resolveColor returns the node's explicit color, if any. An empty result
// means the template background fills in at layout time.
func resolveColor(n ir.Node) string {
	if c, ok := n.MetaString(metaBackgroundColor); ok {
		return c
	}
	if c, ok := n.MetaString(metaColor); ok {
		return c
	}
	return ""
}

func metaFloat(n ir.Node, key string) float64 {
	if n.Meta == nil {
		return 0
	}
	switch v := n.Meta[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
