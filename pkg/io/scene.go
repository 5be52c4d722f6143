// Package io reads and writes scene files: the persisted element
// collection wrapped in the renderer's standard JSON envelope.
//
// A scene looks like:
//
//	{
//	  "type": "excalidraw",
//	  "version": 2,
//	  "elements": [{"id": "a", "type": "rectangle", ...}],
//	  "appState": {...}
//	}
//
// Only the elements array is interpreted; appState, files, and any unknown
// element fields round-trip untouched. Import a scene, apply a diff with
// the modify package, and export the result without losing renderer state.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inkgraph/inkgraph/pkg/element"
)

// SceneVersion is the envelope version this package writes.
const SceneVersion = 2

// sceneSource identifies scenes produced by this module.
const sceneSource = "https://github.com/inkgraph/inkgraph"

// Scene is the boundary representation of a persisted diagram.
type Scene struct {
	Type     string            `json:"type"`
	Version  int               `json:"version"`
	Source   string            `json:"source,omitempty"`
	Elements []element.Element `json:"elements"`
	AppState map[string]any    `json:"appState,omitempty"`
	Files    map[string]any    `json:"files,omitempty"`
}

// NewScene wraps an element collection in a fresh envelope.
func NewScene(elements []element.Element) Scene {
	if elements == nil {
		elements = []element.Element{}
	}
	return Scene{
		Type:     "excalidraw",
		Version:  SceneVersion,
		Source:   sceneSource,
		Elements: elements,
	}
}

// ReadScene decodes a scene from r. A bare top-level element array (without
// the envelope) is accepted too, since diff tooling often passes collections
// around unwrapped.
func ReadScene(r io.Reader) (Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Scene{}, fmt.Errorf("read: %w", err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err == nil && s.Elements != nil {
		return s, nil
	}

	var elements []element.Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}
	scene := NewScene(elements)
	scene.Source = ""
	return scene, nil
}

// WriteScene encodes a scene to w with stable indentation.
func WriteScene(w io.Writer, s Scene) error {
	if s.Elements == nil {
		s.Elements = []element.Element{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// ImportScene reads a scene from a file.
func ImportScene(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()
	return ReadScene(f)
}

// ExportScene writes a scene to a file.
func ExportScene(path string, s Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteScene(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
