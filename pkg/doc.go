// Package pkg provides the core libraries for Inkgraph diagram generation.
//
// # Overview
//
// Inkgraph turns abstract node/edge graphs into positioned diagrams and
// applies edit diffs to persisted element collections. The pkg directory is
// organized around that flow:
//
//   - [ir]: the intermediate node/edge graph consumed at the boundary
//   - [template]: per-diagram-type defaults (direction, spacing, shapes)
//   - [diagram]: conversion from intermediate graph to typed shapes/arrows
//   - [layout]: rank-based and radial positioning with edge routing
//   - [element], [modify]: the persisted element collection and its
//     fail-atomic diff engine
//   - [pipeline], [cache]: the convert → layout runner with memoization
//   - [io]: scene file import/export
//   - [render/dot]: Graphviz DOT previews
//
// # Architecture
//
// The typical data flow:
//
//	intermediate graph (ir)
//	         ↓
//	    diagram package (typed shapes and arrows)
//	         ↓
//	    layout package (positioned geometry)
//	         ↓
//	    positioned output consumed by a renderer
//
// Independently of that flow, the modify package edits a persisted scene:
//
//	scene elements + diff → modify.Apply → new scene elements
//
// # Quick Start
//
// Convert and lay out a graph:
//
//	import (
//	    "context"
//	    "github.com/inkgraph/inkgraph/pkg/ir"
//	    "github.com/inkgraph/inkgraph/pkg/pipeline"
//	)
//
//	g := ir.Graph{
//	    Nodes: []ir.Node{{ID: "a", Label: "Start"}, {ID: "b", Label: "End"}},
//	    Edges: []ir.Edge{{From: "a", To: "b"}},
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Generate(context.Background(), g, pipeline.Options{
//	    DiagramType: "flowchart",
//	})
package pkg
