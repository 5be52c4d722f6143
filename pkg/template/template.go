// Package template holds the per-diagram-type static defaults used during
// conversion and layout: shape geometry and colors, spacing, layout
// direction, edge routing mode, arrowhead style, and kind→shape overrides.
//
// A Registry is an immutable map built at startup and passed by reference
// into conversion and layout calls. Lookups never fail: unknown or missing
// diagram types fall back to the default template. Applying defaults is a
// pure merge where explicit values always win.
package template

import "maps"

// Routing modes for arrow paths.
const (
	RoutingStraight = "straight"
	RoutingElbow    = "elbow"
)

// Rank directions for layered layouts.
const (
	RankTB = "TB"
	RankBT = "BT"
	RankLR = "LR"
	RankRL = "RL"
)

// Arrowhead styles.
const (
	ArrowheadArrow    = "arrow"
	ArrowheadTriangle = "triangle"
	ArrowheadNone     = "none"
)

// DefaultType is the registry key of the fallback template.
const DefaultType = "default"

// Layout fixes the layered-layout parameters for a diagram type.
type Layout struct {
	Rankdir     string  // TB, BT, LR, or RL
	NodeSep     float64 // Gap between nodes in the same rank
	RankSep     float64 // Gap between consecutive ranks
	EdgeSep     float64 // Gap between parallel edges
	EdgeRouting string  // RoutingStraight or RoutingElbow
}

// Shape fixes the default geometry and colors for shapes whose elements
// leave them unset.
type Shape struct {
	Width           float64
	Height          float64
	BackgroundColor string
	StrokeColor     string
}

// Template is the full set of static defaults for one diagram type.
type Template struct {
	Layout    Layout
	Shape     Shape
	Arrowhead string
	// KindShapes maps a node kind (exact, lowercase) to a shape type,
	// taking precedence over the built-in substring inference rules.
	KindShapes map[string]string
}

// Registry is an immutable collection of templates keyed by diagram type.
type Registry struct {
	templates map[string]Template
}

// TemplateFor returns the template for the diagram type, falling back to
// the default template for unknown or empty types. It never fails.
func (r *Registry) TemplateFor(diagramType string) Template {
	if t, ok := r.templates[diagramType]; ok {
		return t
	}
	return r.templates[DefaultType]
}

// Types returns the diagram types the registry knows about.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.templates))
	for k := range r.templates {
		types = append(types, k)
	}
	return types
}

// MergeLayout overlays explicit override values onto the template's layout
// parameters. Zero values in the override leave the template value intact.
func (t Template) MergeLayout(o Layout) Layout {
	merged := t.Layout
	if o.Rankdir != "" {
		merged.Rankdir = o.Rankdir
	}
	if o.NodeSep > 0 {
		merged.NodeSep = o.NodeSep
	}
	if o.RankSep > 0 {
		merged.RankSep = o.RankSep
	}
	if o.EdgeSep > 0 {
		merged.EdgeSep = o.EdgeSep
	}
	if o.EdgeRouting != "" {
		merged.EdgeRouting = o.EdgeRouting
	}
	return merged
}

// Default builds the built-in registry. The returned registry is freshly
// allocated so callers can never alias each other's view of the defaults.
func Default() *Registry {
	base := Template{
		Layout:    Layout{Rankdir: RankTB, NodeSep: 60, RankSep: 90, EdgeSep: 20, EdgeRouting: RoutingStraight},
		Shape:     Shape{Width: 180, Height: 80, BackgroundColor: "#f8f9fa", StrokeColor: "#1e1e1e"},
		Arrowhead: ArrowheadArrow,
	}

	flowchart := base
	flowchart.Layout.EdgeRouting = RoutingElbow
	flowchart.KindShapes = map[string]string{
		"process":  "rectangle",
		"terminal": "ellipse",
	}

	orgchart := base
	orgchart.Layout.NodeSep = 40
	orgchart.Layout.RankSep = 110
	orgchart.Shape.BackgroundColor = "#e7f5ff"

	architecture := base
	architecture.Layout.Rankdir = RankLR
	architecture.Layout.RankSep = 140
	architecture.Layout.EdgeRouting = RoutingElbow
	architecture.KindShapes = map[string]string{
		"queue": "ellipse",
		"user":  "ellipse",
	}

	timeline := base
	timeline.Layout.Rankdir = RankLR
	timeline.Layout.NodeSep = 30
	timeline.Shape.Width = 160
	timeline.Shape.Height = 64

	// Mindmaps use the radial layout; the rank parameters are ignored but
	// kept so overrides merge uniformly across types.
	mindmap := base
	mindmap.Shape.Width = 150
	mindmap.Shape.Height = 56
	mindmap.Shape.BackgroundColor = "#fff9db"

	return &Registry{templates: map[string]Template{
		DefaultType:    base,
		"flowchart":    flowchart,
		"orgchart":     orgchart,
		"architecture": architecture,
		"timeline":     timeline,
		"mindmap":      mindmap,
	}}
}

// withTemplates builds a registry from a template map, copying it so later
// mutation of the argument cannot leak into the registry.
func withTemplates(templates map[string]Template) *Registry {
	return &Registry{templates: maps.Clone(templates)}
}
