package layout

import (
	"math"
	"testing"

	"github.com/inkgraph/inkgraph/pkg/diagram"
)

func mindmap(shapes []string, arrows [][2]string) diagram.Diagram {
	d := diagram.Diagram{}
	for _, id := range shapes {
		d.Shapes = append(d.Shapes, diagram.ShapeElement{ID: id, Type: diagram.ShapeRectangle})
	}
	for i, a := range arrows {
		d.Arrows = append(d.Arrows, diagram.ArrowElement{
			ID: "e" + string(rune('0'+i)), From: a[0], To: a[1],
		})
	}
	return d
}

func TestRadialLayout_RootAtCenter(t *testing.T) {
	d := mindmap([]string{"root", "a", "b"}, [][2]string{{"root", "a"}, {"root", "b"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	root := findShape(t, res, "root")
	cx, cy := root.X+root.Width/2, root.Y+root.Height/2
	if cx != 400 || cy != 400 {
		t.Errorf("root center = (%v, %v), want (400, 400)", cx, cy)
	}
}

func TestRadialLayout_DepthRadius(t *testing.T) {
	d := mindmap([]string{"root", "a", "aa"}, [][2]string{{"root", "a"}, {"a", "aa"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	for _, tc := range []struct {
		id     string
		radius float64
	}{{"a", 200}, {"aa", 400}} {
		s := findShape(t, res, tc.id)
		cx, cy := s.X+s.Width/2, s.Y+s.Height/2
		r := math.Hypot(cx-400, cy-400)
		if math.Abs(r-tc.radius) > 1e-9 {
			t.Errorf("%s radius = %v, want %v", tc.id, r, tc.radius)
		}
	}
}

func TestRadialLayout_EvenAngularSubdivision(t *testing.T) {
	d := mindmap([]string{"root", "a", "b", "c", "d"},
		[][2]string{{"root", "a"}, {"root", "b"}, {"root", "c"}, {"root", "d"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	// Four children split the full circle into quarters; sector midpoints
	// are 90 degrees apart. Children are sorted lexicographically, so "a"
	// sits at 45 degrees, "b" at 135, and so on.
	for i, id := range []string{"a", "b", "c", "d"} {
		s := findShape(t, res, id)
		cx, cy := s.X+s.Width/2, s.Y+s.Height/2
		angle := math.Atan2(cy-400, cx-400)
		want := math.Pi/4 + float64(i)*math.Pi/2
		// Normalize both into [0, 2π).
		if want >= math.Pi {
			want -= 2 * math.Pi
		}
		if math.Abs(angle-want) > 1e-9 {
			t.Errorf("%s angle = %v, want %v", id, angle, want)
		}
	}
}

func TestRadialLayout_NoRoot(t *testing.T) {
	// Pure cycle: every shape has an incoming arrow, so no root exists.
	d := mindmap([]string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	if len(res.Shapes) != 0 || len(res.Arrows) != 0 {
		t.Errorf("cyclic mindmap = %d shapes, %d arrows, want empty result",
			len(res.Shapes), len(res.Arrows))
	}
	if res.Shapes == nil || res.Arrows == nil {
		t.Error("fail-soft result must have non-nil empty slices")
	}
}

func TestRadialLayout_AmbiguousRoot(t *testing.T) {
	// Two disconnected shapes: two candidate roots.
	d := mindmap([]string{"a", "b"}, nil)

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	if len(res.Shapes) != 0 {
		t.Errorf("ambiguous root = %d shapes, want empty result", len(res.Shapes))
	}
}

func TestRadialLayout_DetachedCycle(t *testing.T) {
	// A valid root plus a cycle the walk can never reach.
	d := mindmap([]string{"root", "x", "y"}, [][2]string{{"x", "y"}, {"y", "x"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	if len(res.Shapes) != 0 {
		t.Errorf("detached cycle = %d shapes, want empty result", len(res.Shapes))
	}
}

func TestRadialLayout_SingleNode(t *testing.T) {
	d := mindmap([]string{"solo"}, nil)

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	if len(res.Shapes) != 1 {
		t.Fatalf("len(Shapes) = %d, want 1", len(res.Shapes))
	}
}

func TestRadialLayout_ArrowsTouchBoundaries(t *testing.T) {
	d := mindmap([]string{"root", "a"}, [][2]string{{"root", "a"}})

	res := NewEngine(nil).Layout(d, "mindmap", nil)

	if len(res.Arrows) != 1 {
		t.Fatalf("len(Arrows) = %d, want 1", len(res.Arrows))
	}
	pa := res.Arrows[0]
	if pa.Elbowed {
		t.Error("radial arrows must be straight")
	}
	if len(pa.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(pa.Points))
	}

	// The arrow starts strictly between the two centers, not at either.
	root := findShape(t, res, "root")
	rootCX := root.X + root.Width/2
	if pa.X == rootCX && pa.Y == root.Y+root.Height/2 {
		t.Error("arrow starts at root center; want boundary offset")
	}
}

func TestRadialLayout_ChildrenSortedDeterministically(t *testing.T) {
	build := func() diagram.Diagram {
		return mindmap([]string{"root", "c", "a", "b"},
			[][2]string{{"root", "c"}, {"root", "a"}, {"root", "b"}})
	}

	r1 := NewEngine(nil).Layout(build(), "mindmap", nil)
	r2 := NewEngine(nil).Layout(build(), "mindmap", nil)

	for i := range r1.Shapes {
		if r1.Shapes[i] != r2.Shapes[i] {
			t.Errorf("shape %d differs across runs: %+v vs %+v", i, r1.Shapes[i], r2.Shapes[i])
		}
	}
}
