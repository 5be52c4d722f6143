package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("value"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "value" {
		t.Errorf("got %q, want value", data)
	}
}

func TestMemoryCache_MissAndDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, hit, _ := c.Get(ctx, "absent"); hit {
		t.Error("unexpected hit for absent key")
	}

	c.Set(ctx, "k", []byte("v"), 0)
	c.Delete(ctx, "k")
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("unexpected hit after delete")
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("unexpected hit after expiration")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not evicted, Len() = %d", c.Len())
	}
}

func TestMemoryCache_CopiesData(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	in := []byte("abc")
	c.Set(ctx, "k", in, 0)
	in[0] = 'x'

	out, _, _ := c.Get(ctx, "k")
	if string(out) != "abc" {
		t.Errorf("stored value aliased caller's slice, got %q", out)
	}

	out[0] = 'y'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned value aliased stored slice, got %q", again)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("null cache must never hit")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("layout", "flowchart", 1)
	k2 := Key("layout", "flowchart", 1)
	k3 := Key("layout", "flowchart", 2)

	if k1 != k2 {
		t.Error("identical parts must produce identical keys")
	}
	if k1 == k3 {
		t.Error("different parts must produce different keys")
	}
	if !strings.HasPrefix(k1, "layout:") {
		t.Errorf("key %q missing prefix", k1)
	}
}

func TestHash_Deterministic(t *testing.T) {
	if Hash([]byte("a")) != Hash([]byte("a")) {
		t.Error("hash not deterministic")
	}
	if len(Hash([]byte("a"))) != 64 {
		t.Errorf("hash length = %d, want 64", len(Hash([]byte("a"))))
	}
}
