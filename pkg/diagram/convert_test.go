package diagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkgraph/inkgraph/pkg/ir"
	"github.com/inkgraph/inkgraph/pkg/template"
)

func defaultTemplate() template.Template {
	return template.Default().TemplateFor(template.DefaultType)
}

func TestConvert_Basic(t *testing.T) {
	g := ir.Graph{
		Nodes: []ir.Node{{ID: "a", Label: "Start"}, {ID: "b", Label: "End"}},
		Edges: []ir.Edge{{From: "a", To: "b"}},
	}

	d := Convert(g, defaultTemplate())

	require.Len(t, d.Shapes, 2)
	require.Len(t, d.Arrows, 1)
	assert.Equal(t, ShapeRectangle, d.Shapes[0].Type)
	assert.Equal(t, ShapeRectangle, d.Shapes[1].Type)
	assert.Equal(t, "edge_0_a_b", d.Arrows[0].ID)
	assert.Equal(t, "a", d.Arrows[0].From)
	assert.Equal(t, "b", d.Arrows[0].To)
}

func TestConvert_DeterministicUnderPermutation(t *testing.T) {
	forward := ir.Graph{
		Nodes: []ir.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []ir.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "a", To: "c"}},
	}
	shuffled := ir.Graph{
		Nodes: []ir.Node{{ID: "c"}, {ID: "a"}, {ID: "b"}},
		Edges: []ir.Edge{{From: "b", To: "c"}, {From: "a", To: "c"}, {From: "a", To: "b"}},
	}

	d1 := Convert(forward, defaultTemplate())
	d2 := Convert(shuffled, defaultTemplate())

	b1, err := json.Marshal(d1)
	require.NoError(t, err)
	b2, err := json.Marshal(d2)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2), "permuted input must produce byte-identical output")
}

func TestConvert_ShapeInference(t *testing.T) {
	tests := []struct {
		name string
		node ir.Node
		want string
	}{
		{"decision kind", ir.Node{ID: "n", Kind: "decision"}, ShapeDiamond},
		{"decision prefix", ir.Node{ID: "n", Kind: "DecisionPoint"}, ShapeDiamond},
		{"start", ir.Node{ID: "n", Kind: "start"}, ShapeEllipse},
		{"end", ir.Node{ID: "n", Kind: "end-state"}, ShapeEllipse},
		{"actor", ir.Node{ID: "n", Kind: "Actor"}, ShapeEllipse},
		{"external system", ir.Node{ID: "n", Kind: "external_service"}, ShapeEllipse},
		{"unknown kind", ir.Node{ID: "n", Kind: "service"}, ShapeRectangle},
		{"no kind", ir.Node{ID: "n"}, ShapeRectangle},
		{
			"explicit override beats kind",
			ir.Node{ID: "n", Kind: "decision", Meta: map[string]any{"shape": "ellipse"}},
			ShapeEllipse,
		},
		{
			"invalid override falls through",
			ir.Node{ID: "n", Kind: "decision", Meta: map[string]any{"shape": "hexagon"}},
			ShapeDiamond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Convert(ir.Graph{Nodes: []ir.Node{tt.node}}, defaultTemplate())
			assert.Equal(t, tt.want, d.Shapes[0].Type)
		})
	}
}

func TestConvert_TemplateKindOverride(t *testing.T) {
	tmpl := defaultTemplate()
	tmpl.KindShapes = map[string]string{"queue": "ellipse"}

	d := Convert(ir.Graph{Nodes: []ir.Node{{ID: "q", Kind: "Queue"}}}, tmpl)

	assert.Equal(t, ShapeEllipse, d.Shapes[0].Type)
}

func TestConvert_Color(t *testing.T) {
	g := ir.Graph{Nodes: []ir.Node{
		{ID: "a", Meta: map[string]any{"backgroundColor": "#ff0000"}},
		{ID: "b", Meta: map[string]any{"color": "#00ff00"}},
		{ID: "c"},
	}}

	d := Convert(g, defaultTemplate())

	assert.Equal(t, "#ff0000", d.Shapes[0].BackgroundColor)
	assert.Equal(t, "#00ff00", d.Shapes[1].BackgroundColor)
	assert.Empty(t, d.Shapes[2].BackgroundColor, "unset color is left for the template to fill at layout")
}

func TestConvert_ExplicitEdgeID(t *testing.T) {
	g := ir.Graph{
		Nodes: []ir.Node{{ID: "a"}, {ID: "b"}},
		Edges: []ir.Edge{{From: "a", To: "b", ID: "my-edge"}, {From: "b", To: "a"}},
	}

	d := Convert(g, defaultTemplate())

	require.Len(t, d.Arrows, 2)
	assert.Equal(t, "my-edge", d.Arrows[0].ID)
	assert.Equal(t, "edge_1_b_a", d.Arrows[1].ID)
}

func TestConvert_DanglingEdgesKept(t *testing.T) {
	g := ir.Graph{
		Nodes: []ir.Node{{ID: "a"}},
		Edges: []ir.Edge{{From: "a", To: "ghost"}},
	}

	d := Convert(g, defaultTemplate())

	require.Len(t, d.Arrows, 1, "conversion must not validate references")
	assert.Equal(t, "ghost", d.Arrows[0].To)
}

func TestConvert_ExplicitSize(t *testing.T) {
	g := ir.Graph{Nodes: []ir.Node{
		{ID: "a", Meta: map[string]any{"width": 240.0, "height": 120}},
	}}

	d := Convert(g, defaultTemplate())

	assert.Equal(t, 240.0, d.Shapes[0].Width)
	assert.Equal(t, 120.0, d.Shapes[0].Height)
}
