package ir

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// =============================================================================
// Intermediate Format - Abstract Node/Edge Graph
// =============================================================================

// Graph is the intermediate format produced by the external generation
// collaborator: an abstract node/edge graph prior to shape/arrow typing.
//
// The format is human-readable and designed for round-trip fidelity:
// decode → convert → encode of the same logical graph produces identical
// bytes regardless of the order nodes and edges arrived in.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a single abstract node. ID must be unique within a graph; that
// uniqueness is the producer's responsibility, not enforced here.
type Node struct {
	ID          string         `json:"id"`
	Label       string         `json:"label,omitempty"`
	Kind        string         `json:"kind,omitempty"`        // Shape inference hint ("decision", "actor", ...)
	Description string         `json:"description,omitempty"` // Free-form, passed through untouched
	Meta        map[string]any `json:"metadata,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// MetaString returns the string value stored under key, if present.
func (n Node) MetaString(key string) (string, bool) {
	if n.Meta == nil {
		return "", false
	}
	s, ok := n.Meta[key].(string)
	return s, ok
}

// Edge is a directed connection between two nodes. Reference validity
// (From/To naming existing nodes) is the producer's responsibility.
type Edge struct {
	From  string `json:"fromId"`
	To    string `json:"toId"`
	Label string `json:"label,omitempty"`
	ID    string `json:"id,omitempty"`
}

// =============================================================================
// Deterministic Ordering
// =============================================================================

// CompareNodes orders nodes by ID.
func CompareNodes(a, b Node) int { return strings.Compare(a.ID, b.ID) }

// CompareEdges orders edges by (From, To, Label, ID). This ordering is part
// of the conversion contract: synthesized edge ids embed the post-sort index.
func CompareEdges(a, b Edge) int {
	if c := strings.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := strings.Compare(a.To, b.To); c != 0 {
		return c
	}
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a graph to pretty-printed JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// Unmarshal deserializes JSON bytes into a graph.
func Unmarshal(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	return g, nil
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode graph: %w", err)
	}
	return g, nil
}

// Write encodes a graph as indented JSON to an io.Writer.
func Write(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}
