// Package layout turns an unpositioned diagram into concrete geometry:
// shapes with coordinates and arrows with routed point paths.
//
// Two algorithms are dispatched by diagram type: a layered (rank-based)
// layout for everything except mindmaps, and a radial tree layout for
// mindmaps. Both are stateless pure functions over their inputs; every call
// allocates fresh output, so concurrent invocations are safe.
//
// Layout never fails. Structurally invalid diagrams degrade instead of
// erroring: arrows referencing missing shapes get zero-length placeholder
// geometry, and a mindmap without a single unambiguous root (or with a
// cycle) produces an empty result. A malformed diagram thus renders with
// missing connections rather than crashing the pipeline around it.
package layout

// PositionedShape is a shape with resolved geometry. X and Y are the
// top-left corner; colors are template-filled when the element left them
// unset.
type PositionedShape struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Label           string       `json:"label,omitempty"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	X               float64      `json:"x"`
	Y               float64      `json:"y"`
	Width           float64      `json:"width"`
	Height          float64      `json:"height"`
}

// PositionedArrow is an arrow with a routed path. Points are offsets
// relative to the (X, Y) anchor; the first point is always [0,0]. Elbowed
// marks a 4-point orthogonal path as opposed to a straight 2-point one.
type PositionedArrow struct {
	ID        string       `json:"id"`
	From      string       `json:"fromId"`
	To        string       `json:"toId"`
	Label     string       `json:"label,omitempty"`
	Arrowhead string       `json:"arrowhead,omitempty"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Points    [][2]float64 `json:"points"`
	Elbowed   bool         `json:"elbowed"`
}

// Result is the positioned output of a layout call. Both slices are always
// non-nil, freshly allocated per call.
type Result struct {
	Shapes []PositionedShape `json:"shapes"`
	Arrows []PositionedArrow `json:"arrows"`
}

func emptyResult() Result {
	return Result{Shapes: []PositionedShape{}, Arrows: []PositionedArrow{}}
}

// Box is an axis-aligned rectangle in absolute coordinates, used by the
// edge router to anchor arrow endpoints on shape boundaries.
type Box struct {
	X, Y, Width, Height float64
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.Height/2 }

func (s PositionedShape) box() Box {
	return Box{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}
