// Package dot renders a diagram as Graphviz DOT for quick structural
// previews. The output is diagnostic only; positioned geometry comes from
// the layout package, not from Graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// graphviz shape names per diagram shape type.
var dotShapes = map[string]string{
	diagram.ShapeRectangle: "box",
	diagram.ShapeEllipse:   "ellipse",
	diagram.ShapeDiamond:   "diamond",
}

// ToDOT converts a diagram to Graphviz DOT. The template supplies the rank
// direction and default fill color so the preview roughly matches what the
// layout engine will produce.
func ToDOT(d diagram.Diagram, tmpl template.Template) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", tmpl.Layout.Rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"rounded,filled\", fontsize=14];\n")
	buf.WriteString("\n")

	for _, s := range d.Shapes {
		shape, ok := dotShapes[s.Type]
		if !ok {
			shape = "box"
		}
		fill := s.BackgroundColor
		if fill == "" {
			fill = tmpl.Shape.BackgroundColor
		}
		label := s.Label
		if label == "" {
			label = s.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, shape=%s, fillcolor=%q];\n", s.ID, label, shape, fill)
	}

	buf.WriteString("\n")
	for _, a := range d.Arrows {
		if a.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", a.From, a.To, a.Label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", a.From, a.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT string to SVG with Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
