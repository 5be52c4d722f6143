// Package pipeline runs the convert → layout flow over an intermediate
// graph. Library embedders, CLIs, and services all call through the same
// Runner so caching and logging behave identically everywhere.
//
// Both stages are deterministic over their inputs, which makes them
// cacheable by content hash: identical logical graphs convert to
// byte-identical diagrams, and identical diagrams lay out identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	result, err := runner.Generate(ctx, g, pipeline.Options{DiagramType: "flowchart"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	positioned := result.Layout
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/layout"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// DefaultDiagramType is used when Options.DiagramType is empty.
const DefaultDiagramType = template.DefaultType

// DefaultCacheTTL bounds how long memoized layout results live.
const DefaultCacheTTL = 24 * time.Hour

// Options configures a pipeline run. This struct supports JSON
// serialization for API requests.
type Options struct {
	// DiagramType selects the template and the layout algorithm
	// ("mindmap" is radial, everything else is ranked).
	DiagramType string `json:"diagram_type,omitempty"`

	// Overrides replaces individual layout settings from the template.
	// Zero-valued fields keep the template's value.
	Overrides *template.Layout `json:"overrides,omitempty"`

	// Preview requests a Graphviz DOT preview of the converted diagram
	// alongside the positioned output.
	Preview bool `json:"preview,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the converted, unpositioned diagram.
	Diagram diagram.Diagram

	// DiagramHash is the content hash of the converted diagram, usable as
	// an external cache or ETag key.
	DiagramHash string

	// Layout is the positioned output.
	Layout layout.Result

	// PreviewDOT is the Graphviz DOT preview, set only when requested.
	PreviewDOT string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount  int
	ArrowCount  int
	ConvertTime time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	LayoutHit bool
}

// normalize fills option defaults.
func (o *Options) normalize() {
	if o.DiagramType == "" {
		o.DiagramType = DefaultDiagramType
	}
}

// stageLogger returns a logger annotated with the run id and stage name.
func stageLogger(logger *log.Logger, runID, stage string) *log.Logger {
	return logger.With("run", runID, "stage", stage)
}
