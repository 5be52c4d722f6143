package cli

import (
	"testing"

	"github.com/inkgraph/inkgraph/pkg/cache"
	"github.com/inkgraph/inkgraph/pkg/template"
)

func TestOverridesFrom(t *testing.T) {
	if got := overridesFrom(generateFlags{}); got != nil {
		t.Errorf("no flags set should give nil overrides, got %+v", got)
	}

	got := overridesFrom(generateFlags{rankdir: "LR", ranksep: 120})
	if got == nil {
		t.Fatal("expected overrides")
	}
	if got.Rankdir != template.RankLR {
		t.Errorf("Rankdir = %q, want LR", got.Rankdir)
	}
	if got.RankSep != 120 {
		t.Errorf("RankSep = %v, want 120", got.RankSep)
	}
	if got.NodeSep != 0 {
		t.Errorf("NodeSep = %v, want 0 (unset keeps template value)", got.NodeSep)
	}
}

func TestCacheFrom(t *testing.T) {
	if c, err := cacheFrom(""); err != nil || c != nil {
		t.Errorf("cacheFrom(\"\") = %v, %v; want nil, nil", c, err)
	}

	c, err := cacheFrom("memory")
	if err != nil {
		t.Fatalf("cacheFrom(memory) error = %v", err)
	}
	if _, ok := c.(*cache.MemoryCache); !ok {
		t.Errorf("cacheFrom(memory) = %T, want *cache.MemoryCache", c)
	}

	// Building a Redis cache only parses the URL; no connection is made.
	c, err = cacheFrom("redis://localhost:6379/1")
	if err != nil {
		t.Fatalf("cacheFrom(redis URL) error = %v", err)
	}
	if _, ok := c.(*cache.RedisCache); !ok {
		t.Errorf("cacheFrom(redis URL) = %T, want *cache.RedisCache", c)
	}
	c.Close()

	if _, err := cacheFrom("not-a-backend"); err == nil {
		t.Error("cacheFrom(bad spec) error = nil, want parse error")
	}
}

func TestPreviewAsSVG(t *testing.T) {
	tests := []struct {
		output string
		want   bool
	}{
		{"-", false},
		{"preview.dot", false},
		{"preview.svg", true},
		{"Preview.SVG", true},
		{"out/diagram.svg", true},
		{"svg", false},
	}
	for _, tt := range tests {
		if got := previewAsSVG(tt.output); got != tt.want {
			t.Errorf("previewAsSVG(%q) = %v, want %v", tt.output, got, tt.want)
		}
	}
}

func TestLoadTemplates_DefaultWhenUnset(t *testing.T) {
	reg, err := loadTemplates("")
	if err != nil {
		t.Fatal(err)
	}
	if reg.TemplateFor("flowchart").Layout.EdgeRouting != template.RoutingElbow {
		t.Error("default registry missing flowchart template")
	}
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	if _, err := loadTemplates("does-not-exist.toml"); err == nil {
		t.Error("expected error for missing templates file")
	}
}
