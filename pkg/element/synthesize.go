package element

// Default geometry for skeleton adds that carry no size of their own.
const (
	defaultShapeWidth  = 180.0
	defaultShapeHeight = 80.0
	defaultTextWidth   = 100.0
	defaultTextHeight  = 25.0
	defaultArrowWidth  = 100.0
	defaultArrowHeight = 0.0
)

// Synthesize completes a skeleton element with renderer defaults. Fields
// already present in the skeleton always win; only missing fields are
// filled in. A skeleton without an id gets a fresh one. The index argument
// is the fractional order index assigned by the caller's IndexAllocator.
func Synthesize(skel Element, index string) Element {
	e := Clone(skel)

	if ID(e) == "" {
		e["id"] = NewID()
	}
	setDefault(e, "index", index)
	setDefault(e, "x", 0.0)
	setDefault(e, "y", 0.0)
	setDefault(e, "angle", 0.0)
	setDefault(e, "strokeColor", "#1e1e1e")
	setDefault(e, "backgroundColor", "transparent")
	setDefault(e, "fillStyle", "solid")
	setDefault(e, "strokeWidth", 1.0)
	setDefault(e, "strokeStyle", "solid")
	setDefault(e, "roughness", 1.0)
	setDefault(e, "opacity", 100.0)
	setDefault(e, "groupIds", []any{})
	setDefault(e, "frameId", nil)
	setDefault(e, "roundness", nil)
	setDefault(e, "isDeleted", false)
	setDefault(e, "link", nil)
	setDefault(e, "locked", false)
	setDefault(e, "seed", NewSeed())
	setDefault(e, "version", 1.0)
	setDefault(e, "versionNonce", NewSeed())

	switch TypeOf(e) {
	case "arrow", "line":
		synthesizeLinear(e)
	case "text":
		synthesizeText(e)
	default:
		setDefault(e, "width", defaultShapeWidth)
		setDefault(e, "height", defaultShapeHeight)
	}
	return e
}

// synthesizeLinear fills in a straight two-point path spanning the
// element's own width and height.
func synthesizeLinear(e Element) {
	setDefault(e, "width", defaultArrowWidth)
	setDefault(e, "height", defaultArrowHeight)
	w, _ := toFloat(e["width"])
	h, _ := toFloat(e["height"])
	setDefault(e, "points", []any{
		[]any{0.0, 0.0},
		[]any{w, h},
	})
	setDefault(e, "lastCommittedPoint", nil)
	setDefault(e, "startBinding", nil)
	setDefault(e, "endBinding", nil)
	setDefault(e, "startArrowhead", nil)
	if TypeOf(e) == "arrow" {
		setDefault(e, "endArrowhead", "arrow")
	} else {
		setDefault(e, "endArrowhead", nil)
	}
}

// synthesizeText derives the text content from "text", falling back to a
// nested label object when present.
func synthesizeText(e Element) {
	if _, ok := e["text"].(string); !ok {
		text := ""
		if label, ok := e["label"].(map[string]any); ok {
			text, _ = label["text"].(string)
		}
		e["text"] = text
	}
	text, _ := e["text"].(string)
	setDefault(e, "originalText", text)
	setDefault(e, "fontSize", 20.0)
	setDefault(e, "fontFamily", 1.0)
	setDefault(e, "textAlign", "center")
	setDefault(e, "verticalAlign", "middle")
	setDefault(e, "containerId", nil)
	setDefault(e, "lineHeight", 1.25)
	setDefault(e, "width", defaultTextWidth)
	setDefault(e, "height", defaultTextHeight)
}

func setDefault(e Element, key string, value any) {
	if _, ok := e[key]; !ok {
		e[key] = value
	}
}
