package template

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// fileTemplate is the TOML shape of a per-type override. Unset keys leave
// the built-in template value intact.
type fileTemplate struct {
	Rankdir     string            `toml:"rankdir"`
	NodeSep     float64           `toml:"nodesep"`
	RankSep     float64           `toml:"ranksep"`
	EdgeSep     float64           `toml:"edgesep"`
	EdgeRouting string            `toml:"edge_routing"`
	Arrowhead   string            `toml:"arrowhead"`
	Shape       fileShape         `toml:"shape"`
	Kinds       map[string]string `toml:"kinds"`
}

type fileShape struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	BackgroundColor string  `toml:"background_color"`
	StrokeColor     string  `toml:"stroke_color"`
}

// Load reads per-diagram-type template overrides from TOML and merges them
// over the built-in defaults. Types not present in the built-in registry
// are created from the default template plus the overrides, so deployments
// can register custom diagram types:
//
//	[flowchart]
//	rankdir = "LR"
//	edge_routing = "elbow"
//
//	[flowchart.shape]
//	width = 220
//
//	[flowchart.kinds]
//	datastore = "ellipse"
func Load(r io.Reader) (*Registry, error) {
	var file map[string]fileTemplate
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode template overrides: %w", err)
	}

	base := Default()
	templates := make(map[string]Template, len(base.templates)+len(file))
	for k, t := range base.templates {
		templates[k] = t
	}

	for name, ft := range file {
		t, ok := templates[name]
		if !ok {
			t = templates[DefaultType]
		}
		templates[name] = applyFileTemplate(t, ft)
	}

	return withTemplates(templates), nil
}

func applyFileTemplate(t Template, ft fileTemplate) Template {
	t.Layout = t.MergeLayout(Layout{
		Rankdir:     ft.Rankdir,
		NodeSep:     ft.NodeSep,
		RankSep:     ft.RankSep,
		EdgeSep:     ft.EdgeSep,
		EdgeRouting: ft.EdgeRouting,
	})
	if ft.Arrowhead != "" {
		t.Arrowhead = ft.Arrowhead
	}
	if ft.Shape.Width > 0 {
		t.Shape.Width = ft.Shape.Width
	}
	if ft.Shape.Height > 0 {
		t.Shape.Height = ft.Shape.Height
	}
	if ft.Shape.BackgroundColor != "" {
		t.Shape.BackgroundColor = ft.Shape.BackgroundColor
	}
	if ft.Shape.StrokeColor != "" {
		t.Shape.StrokeColor = ft.Shape.StrokeColor
	}
	if len(ft.Kinds) > 0 {
		kinds := make(map[string]string, len(t.KindShapes)+len(ft.Kinds))
		for k, v := range t.KindShapes {
			kinds[k] = v
		}
		for k, v := range ft.Kinds {
			kinds[k] = v
		}
		t.KindShapes = kinds
	}
	return t
}
