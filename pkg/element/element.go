// Package element provides helpers for the persisted Excalidraw-style
// element collection: deep cloning, structural equality, default-element
// synthesis, and fractional order indices.
//
// Elements are generic maps rather than structs on purpose. The collection
// is a renderer-native JSON interop format and a superset of what this
// module manages; every field we do not explicitly touch must pass through
// byte-for-byte, which a struct schema cannot guarantee.
package element

import (
	"encoding/json"
	"math/rand"
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// Element is one persisted diagram element. Keys this module manages are
// documented on the functions below; everything else is opaque passthrough.
type Element = map[string]any

// ID returns the element's id, or "" when missing or not a string.
func ID(e Element) string {
	id, _ := e["id"].(string)
	return id
}

// TypeOf returns the element's type, or "" when missing.
func TypeOf(e Element) string {
	t, _ := e["type"].(string)
	return t
}

// IsLinear reports whether the element is an arrow or line, i.e. carries a
// points path and start/end bindings.
func IsLinear(e Element) bool {
	t := TypeOf(e)
	return t == "arrow" || t == "line"
}

// =============================================================================
// Cloning and Equality
// =============================================================================

// Clone deep-copies an element. Plain JSON values (maps, slices,
// primitives) are copied structurally; typed containers that snuck in from
// Go callers are normalized through a JSON round trip.
func Clone(e Element) Element {
	return cloneValue(e).(map[string]any)
}

// CloneAll deep-copies a collection. The result shares no storage with the
// input, so callers never observe their collection mutated.
func CloneAll(list []Element) []Element {
	out := make([]Element, len(list))
	for i, e := range list {
		out[i] = Clone(e)
	}
	return out
}

// CloneValue deep-copies a single field value with the same rules as Clone.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case nil, bool, string, float64, float32, int, int64, json.Number:
		return v
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return v
		}
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return v
		}
		return out
	}
}

// Equal reports structural deep equality of two elements. Numbers compare
// by value regardless of Go type, so a patch written with int literals is
// a no-op against a collection decoded from JSON.
func Equal(a, b Element) bool {
	return equalValue(a, b)
}

func equalValue(a, b any) bool {
	if am, ok := a.(map[string]any); ok {
		bm, ok := b.(map[string]any)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !equalValue(av, bv) {
				return false
			}
		}
		return true
	}
	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !equalValue(as[i], bs[i]) {
				return false
			}
		}
		return true
	}

	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}

	switch at := a.(type) {
	case nil:
		return b == nil
	case bool:
		bt, ok := b.(bool)
		return ok && at == bt
	case string:
		bt, ok := b.(string)
		return ok && at == bt
	default:
		// Typed containers: normalize both sides and compare again.
		return equalValue(cloneValue(a), cloneValue(b))
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// =============================================================================
// Randomized Fields and IDs
// =============================================================================

// NewSeed returns a renderer seed in Excalidraw's expected range.
func NewSeed() int64 { return rand.Int63n(2147483646) + 1 }

// NewID returns a fresh element id.
func NewID() string { return uuid.NewString() }

// =============================================================================
// Fractional Order Index
// =============================================================================

var indexPattern = regexp.MustCompile(`^a(\d+)$`)

// IndexAllocator hands out monotonically increasing fractional order
// indices of the form "a{N}". N starts at 1 + the highest numeric suffix
// seen across the existing collection, so elements added by concurrent
// editors keep a stable z-order.
type IndexAllocator struct {
	next int
}

// NewIndexAllocator scans the collection's index fields for the highest
// numeric suffix.
func NewIndexAllocator(existing []Element) *IndexAllocator {
	max := -1
	for _, e := range existing {
		idx, _ := e["index"].(string)
		m := indexPattern.FindStringSubmatch(idx)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return &IndexAllocator{next: max + 1}
}

// Next returns the next order index.
func (a *IndexAllocator) Next() string {
	idx := "a" + strconv.Itoa(a.next)
	a.next++
	return idx
}
