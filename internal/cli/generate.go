package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/inkgraph/inkgraph/pkg/cache"
	"github.com/inkgraph/inkgraph/pkg/ir"
	"github.com/inkgraph/inkgraph/pkg/pipeline"
	"github.com/inkgraph/inkgraph/pkg/render/dot"
	"github.com/inkgraph/inkgraph/pkg/template"
)

type generateFlags struct {
	input     string
	output    string
	diagType  string
	templates string
	rankdir   string
	nodesep   float64
	ranksep   float64
	edgesep   float64
	routing   string
	preview   bool
	cache     string
	refresh   bool
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert and lay out an intermediate graph",
		Long: `Read an intermediate node/edge graph as JSON, convert it into typed
shapes and arrows, and compute positioned geometry.

The input format:

  {
    "nodes": [{"id": "a", "label": "Start"}, {"id": "b", "label": "End"}],
    "edges": [{"fromId": "a", "toId": "b"}]
  }

Use "-" for stdin/stdout (the default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "input graph JSON (\"-\" for stdin)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "-", "output path (\"-\" for stdout)")
	cmd.Flags().StringVarP(&flags.diagType, "type", "t", "default", "diagram type (flowchart, orgchart, architecture, timeline, mindmap, ...)")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "TOML file with template overrides")
	cmd.Flags().StringVar(&flags.rankdir, "rankdir", "", "rank direction override (TB, BT, LR, RL)")
	cmd.Flags().Float64Var(&flags.nodesep, "nodesep", 0, "separation between shapes in a rank")
	cmd.Flags().Float64Var(&flags.ranksep, "ranksep", 0, "separation between ranks")
	cmd.Flags().Float64Var(&flags.edgesep, "edgesep", 0, "separation between parallel arrows")
	cmd.Flags().StringVar(&flags.routing, "routing", "", "edge routing override (straight, elbow)")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "emit a Graphviz preview instead of positioned JSON (SVG when --output ends in .svg, DOT text otherwise)")
	cmd.Flags().StringVar(&flags.cache, "cache", "", "layout cache backend (\"memory\" or a redis:// URL)")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute the layout even when cached")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, closeIn, err := openInput(flags.input)
	if err != nil {
		return err
	}
	defer closeIn()

	g, err := ir.Read(in)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}

	registry, err := loadTemplates(flags.templates)
	if err != nil {
		return err
	}

	store, err := cacheFrom(flags.cache)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	track := newProgress(logger)
	runner := pipeline.NewRunner(store, registry, logger)
	result, err := runner.Generate(ctx, g, pipeline.Options{
		DiagramType: flags.diagType,
		Overrides:   overridesFrom(flags),
		Preview:     flags.preview,
		Refresh:     flags.refresh,
	})
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Positioned %d shapes and %d arrows",
		result.Stats.ShapeCount, result.Stats.ArrowCount))

	out, closeOut, err := openOutput(flags.output)
	if err != nil {
		return err
	}
	defer closeOut()

	if flags.preview {
		if previewAsSVG(flags.output) {
			svg, err := dot.RenderSVG(ctx, result.PreviewDOT)
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			_, err = out.Write(svg)
			return err
		}
		_, err = io.WriteString(out, result.PreviewDOT)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Layout)
}

// cacheFrom builds the layout cache the flag asks for: nil (runner falls
// back to its null cache), an in-process memory cache, or Redis via a
// connection URL.
func cacheFrom(spec string) (cache.Cache, error) {
	switch spec {
	case "":
		return nil, nil
	case "memory":
		return cache.NewMemoryCache(), nil
	}
	opts, err := redis.ParseURL(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cache URL %q: %w", spec, err)
	}
	return cache.NewRedisCache(redis.NewClient(opts)), nil
}

// previewAsSVG reports whether the preview should be rendered to SVG with
// Graphviz instead of emitted as DOT text, based on the output extension.
func previewAsSVG(output string) bool {
	return strings.EqualFold(filepath.Ext(output), ".svg")
}

// overridesFrom builds layout overrides from flags; nil when no override
// flag was set, so the template's values apply untouched.
func overridesFrom(flags generateFlags) *template.Layout {
	o := template.Layout{
		Rankdir:     flags.rankdir,
		NodeSep:     flags.nodesep,
		RankSep:     flags.ranksep,
		EdgeSep:     flags.edgesep,
		EdgeRouting: flags.routing,
	}
	if o == (template.Layout{}) {
		return nil
	}
	return &o
}

func loadTemplates(path string) (*template.Registry, error) {
	if path == "" {
		return template.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open templates: %w", err)
	}
	defer f.Close()
	reg, err := template.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load templates %s: %w", path, err)
	}
	return reg, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
