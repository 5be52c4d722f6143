// Package diagram defines the typed, unpositioned diagram primitives and
// the conversion from the intermediate node/edge format into them.
package diagram

// Shape types supported by the renderer.
const (
	ShapeRectangle = "rectangle"
	ShapeEllipse   = "ellipse"
	ShapeDiamond   = "diamond"
)

// ShapeElement is a typed node without resolved geometry. Width and Height
// are optional; zero means "use the template default at layout time".
type ShapeElement struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Label           string  `json:"label,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
}

// ArrowElement is a directed connection binding two shape ids.
type ArrowElement struct {
	ID    string `json:"id"`
	From  string `json:"fromId"`
	To    string `json:"toId"`
	Label string `json:"label,omitempty"`
}

// Diagram is the unpositioned structural graph produced by Convert and
// consumed by the layout engine. Shapes and arrows are created once per
// conversion and never mutated afterwards.
type Diagram struct {
	Shapes []ShapeElement `json:"shapes"`
	Arrows []ArrowElement `json:"arrows"`
}
