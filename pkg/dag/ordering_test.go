package dag

import "testing"

func TestCountLayerCrossings(t *testing.T) {
	g := New()
	for _, id := range []string{"u1", "u2", "v1", "v2"} {
		g.AddNode(Node{ID: id})
	}
	// u1→v2 and u2→v1 cross when ordered [u1 u2] / [v1 v2].
	g.AddEdge(Edge{From: "u1", To: "v2"})
	g.AddEdge(Edge{From: "u2", To: "v1"})

	if got := CountLayerCrossings(g, []string{"u1", "u2"}, []string{"v1", "v2"}); got != 1 {
		t.Errorf("CountLayerCrossings() = %d, want 1", got)
	}
	if got := CountLayerCrossings(g, []string{"u1", "u2"}, []string{"v2", "v1"}); got != 0 {
		t.Errorf("CountLayerCrossings(swapped) = %d, want 0", got)
	}
}

func TestCountLayerCrossings_EmptyRank(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a"})

	if got := CountLayerCrossings(g, nil, []string{"a"}); got != 0 {
		t.Errorf("CountLayerCrossings(nil upper) = %d, want 0", got)
	}
}

func TestOrderRanks_RemovesCrossing(t *testing.T) {
	g := New()
	for _, id := range []string{"u1", "u2", "v1", "v2"} {
		g.AddNode(Node{ID: id})
	}
	g.AddEdge(Edge{From: "u1", To: "v2"})
	g.AddEdge(Edge{From: "u2", To: "v1"})

	ranks := map[string]int{"u1": 0, "u2": 0, "v1": 1, "v2": 1}
	orders := OrderRanks(g, ranks)

	if got := CountCrossings(g, orders); got != 0 {
		t.Errorf("CountCrossings(ordered) = %d, want 0 (orders: %v)", got, orders)
	}
}

func TestOrderRanks_NeverWorseThanInitial(t *testing.T) {
	g := New()
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for _, id := range ids {
		g.AddNode(Node{ID: id})
	}
	g.AddEdge(Edge{From: "a", To: "e"})
	g.AddEdge(Edge{From: "b", To: "d"})
	g.AddEdge(Edge{From: "c", To: "f"})
	g.AddEdge(Edge{From: "a", To: "d"})

	ranks := map[string]int{"a": 0, "b": 0, "c": 0, "d": 1, "e": 1, "f": 1}

	initial := map[int][]string{0: {"a", "b", "c"}, 1: {"d", "e", "f"}}
	ordered := OrderRanks(g, ranks)

	if CountCrossings(g, ordered) > CountCrossings(g, initial) {
		t.Errorf("OrderRanks() produced more crossings (%d) than initial (%d)",
			CountCrossings(g, ordered), CountCrossings(g, initial))
	}
}

func TestOrderRanks_Deterministic(t *testing.T) {
	build := func() (*Graph, map[string]int) {
		g := New()
		for _, id := range []string{"r", "x", "y", "z"} {
			g.AddNode(Node{ID: id})
		}
		g.AddEdge(Edge{From: "r", To: "x"})
		g.AddEdge(Edge{From: "r", To: "y"})
		g.AddEdge(Edge{From: "r", To: "z"})
		return g, map[string]int{"r": 0, "x": 1, "y": 1, "z": 1}
	}

	g1, r1 := build()
	g2, r2 := build()

	o1 := OrderRanks(g1, r1)
	o2 := OrderRanks(g2, r2)

	for rank, ids := range o1 {
		other := o2[rank]
		if len(ids) != len(other) {
			t.Fatalf("rank %d lengths differ", rank)
		}
		for i := range ids {
			if ids[i] != other[i] {
				t.Errorf("rank %d position %d: %q vs %q", rank, i, ids[i], other[i])
			}
		}
	}
}
