package layout

import (
	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// Engine dispatches diagrams to a layout algorithm. It is stateless apart
// from the read-only template registry, so a single Engine can serve
// concurrent callers.
type Engine struct {
	templates *template.Registry
}

// NewEngine creates an engine over the given registry.
// A nil registry means the built-in defaults.
func NewEngine(reg *template.Registry) *Engine {
	if reg == nil {
		reg = template.Default()
	}
	return &Engine{templates: reg}
}

// Layout positions a diagram. Overrides, when non-nil, are merged over the
// type's template layout parameters with explicit values winning.
//
// Dispatch is a literal branch, not data-driven: mindmaps take the radial
// algorithm, every other type takes the rank algorithm. Layout never
// returns an error; see the package documentation for how invalid input
// degrades.
func (e *Engine) Layout(d diagram.Diagram, diagramType string, overrides *template.Layout) Result {
	tmpl := e.templates.TemplateFor(diagramType)
	cfg := tmpl.Layout
	if overrides != nil {
		cfg = tmpl.MergeLayout(*overrides)
	}

	if diagramType == "mindmap" {
		return radialLayout(d, tmpl)
	}
	return rankLayout(d, tmpl, cfg)
}
