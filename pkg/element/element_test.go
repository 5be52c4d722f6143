package element

import (
	"encoding/json"
	"testing"
)

func TestClone_SharesNoStorage(t *testing.T) {
	orig := Element{
		"id":   "a",
		"type": "rectangle",
		"boundElements": []any{
			map[string]any{"id": "t1", "type": "text"},
		},
	}
	copied := Clone(orig)

	copied["id"] = "b"
	copied["boundElements"].([]any)[0].(map[string]any)["id"] = "mutated"

	if got := orig["id"]; got != "a" {
		t.Errorf("original id = %v, want a", got)
	}
	inner := orig["boundElements"].([]any)[0].(map[string]any)
	if got := inner["id"]; got != "t1" {
		t.Errorf("original bound element id = %v, want t1", got)
	}
}

func TestClone_NormalizesTypedContainers(t *testing.T) {
	orig := Element{"id": "a", "points": [][]float64{{0, 0}, {10, 5}}}
	copied := Clone(orig)

	points, ok := copied["points"].([]any)
	if !ok {
		t.Fatalf("points = %T, want []any", copied["points"])
	}
	first, ok := points[1].([]any)
	if !ok {
		t.Fatalf("points[1] = %T, want []any", points[1])
	}
	if got := first[0].(float64); got != 10 {
		t.Errorf("points[1][0] = %v, want 10", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Element
		want bool
	}{
		{
			name: "identical",
			a:    Element{"id": "a", "x": 1.0},
			b:    Element{"id": "a", "x": 1.0},
			want: true,
		},
		{
			name: "int versus float",
			a:    Element{"x": 1},
			b:    Element{"x": 1.0},
			want: true,
		},
		{
			name: "nested difference",
			a:    Element{"startBinding": map[string]any{"elementId": "s1"}},
			b:    Element{"startBinding": map[string]any{"elementId": "s2"}},
			want: false,
		},
		{
			name: "extra key",
			a:    Element{"id": "a"},
			b:    Element{"id": "a", "locked": false},
			want: false,
		},
		{
			name: "slice order matters",
			a:    Element{"points": []any{[]any{0.0, 0.0}, []any{1.0, 1.0}}},
			b:    Element{"points": []any{[]any{1.0, 1.0}, []any{0.0, 0.0}}},
			want: false,
		},
		{
			name: "nil versus missing",
			a:    Element{"frameId": nil},
			b:    Element{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual_AfterJSONRoundTrip(t *testing.T) {
	orig := Element{
		"id":     "a",
		"width":  180,
		"points": []any{[]any{0, 0}, []any{100, 0}},
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Element
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !Equal(orig, decoded) {
		t.Error("element not equal to its JSON round trip")
	}
}

func TestIndexAllocator(t *testing.T) {
	existing := []Element{
		{"id": "a", "index": "a3"},
		{"id": "b", "index": "a7"},
		{"id": "c", "index": "b2"},   // foreign prefix, ignored
		{"id": "d", "index": "aV4x"}, // non-numeric suffix, ignored
		{"id": "e"},
	}
	alloc := NewIndexAllocator(existing)
	if got := alloc.Next(); got != "a8" {
		t.Errorf("first index = %q, want a8", got)
	}
	if got := alloc.Next(); got != "a9" {
		t.Errorf("second index = %q, want a9", got)
	}
}

func TestIndexAllocator_EmptyCollection(t *testing.T) {
	alloc := NewIndexAllocator(nil)
	if got := alloc.Next(); got != "a0" {
		t.Errorf("first index = %q, want a0", got)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestNewSeed_InRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := NewSeed()
		if s < 1 || s > 2147483646 {
			t.Fatalf("seed %d out of range", s)
		}
	}
}
