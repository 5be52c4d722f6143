package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/inkgraph/inkgraph/pkg/cache"
	"github.com/inkgraph/inkgraph/pkg/diagram"
	"github.com/inkgraph/inkgraph/pkg/ir"
	"github.com/inkgraph/inkgraph/pkg/layout"
	"github.com/inkgraph/inkgraph/pkg/render/dot"
	"github.com/inkgraph/inkgraph/pkg/template"
)

// Runner executes the pipeline with caching. It is stateless apart from
// the cache, templates, and logger, so one Runner can serve concurrent
// callers with different options.
type Runner struct {
	Cache     cache.Cache
	Templates *template.Registry
	Logger    *log.Logger

	engine *layout.Engine
}

// NewRunner creates a runner. A nil cache disables memoization, a nil
// registry uses the built-in templates, and a nil logger uses the default
// logger.
func NewRunner(c cache.Cache, templates *template.Registry, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if templates == nil {
		templates = template.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Templates: templates,
		Logger:    logger,
		engine:    layout.NewEngine(templates),
	}
}

// Generate runs convert → layout and returns the combined result.
func (r *Runner) Generate(ctx context.Context, g ir.Graph, opts Options) (*Result, error) {
	opts.normalize()
	runID := uuid.NewString()[:8]

	result := &Result{}

	convertStart := time.Now()
	d := r.Convert(g, opts.DiagramType)
	result.Diagram = d
	result.Stats.ConvertTime = time.Since(convertStart)
	result.Stats.ShapeCount = len(d.Shapes)
	result.Stats.ArrowCount = len(d.Arrows)

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("hash diagram: %w", err)
	}
	result.DiagramHash = cache.Hash(data)

	stageLogger(r.Logger, runID, "convert").Info("converted graph",
		"type", opts.DiagramType,
		"shapes", result.Stats.ShapeCount,
		"arrows", result.Stats.ArrowCount,
		"duration", result.Stats.ConvertTime)

	layoutStart := time.Now()
	positioned, hit, err := r.layoutCached(ctx, d, result.DiagramHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = positioned
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = hit

	stageLogger(r.Logger, runID, "layout").Info("computed layout",
		"cache_hit", hit,
		"duration", result.Stats.LayoutTime)

	if opts.Preview {
		result.PreviewDOT = dot.ToDOT(d, r.Templates.TemplateFor(opts.DiagramType))
	}
	return result, nil
}

// Convert turns an intermediate graph into a typed diagram using the
// template registered for the diagram type.
func (r *Runner) Convert(g ir.Graph, diagramType string) diagram.Diagram {
	if diagramType == "" {
		diagramType = DefaultDiagramType
	}
	return diagram.Convert(g, r.Templates.TemplateFor(diagramType))
}

// Layout positions a diagram without caching. Use Generate to get the
// memoized path.
func (r *Runner) Layout(d diagram.Diagram, diagramType string, overrides *template.Layout) layout.Result {
	return r.engine.Layout(d, diagramType, overrides)
}

// layoutCached memoizes layout results keyed by the diagram hash, the
// diagram type, and any overrides. Layout is deterministic, so a hit is
// exactly what a recomputation would produce.
func (r *Runner) layoutCached(ctx context.Context, d diagram.Diagram, hash string, opts Options) (layout.Result, bool, error) {
	key := cache.Key("layout", hash, opts.DiagramType, opts.Overrides)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil
			}
			// Corrupt entry: fall through and recompute.
			_ = r.Cache.Delete(ctx, key)
		}
	}

	res := r.engine.Layout(d, opts.DiagramType, opts.Overrides)

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err != nil {
			r.Logger.Warn("cache layout result", "err", err)
		}
	}
	return res, false, nil
}
