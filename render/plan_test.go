package render

import (
	"strings"
	"testing"

	"github.com/gogpu/skin"
)

// buildSpan creates a root group with one visible image layer per name,
// bottom to top, each holding one cel at frame 0.
func buildSpan(names ...string) (*Group, map[string]*Cel) {
	root := NewGroup("root")
	cels := make(map[string]*Cel, len(names))
	for _, name := range names {
		layer := NewImageLayer(name)
		cel := NewCel(0, skin.NewImageSurface(2, 2))
		layer.AddCel(cel)
		root.Add(layer)
		cels[name] = cel
	}
	return root, cels
}

// planOrder returns the layer names of a plan's items in order.
func planOrder(root *Group) string {
	plan := NewPlan()
	plan.AddLayer(root, 0)
	names := make([]string, 0, len(plan.Items()))
	for _, item := range plan.Items() {
		names = append(names, item.Layer.Name())
	}
	return strings.Join(names, ",")
}

// TestPlanZIndex reproduces the reference reorderings of a four-layer
// sibling span under z-index overrides.
func TestPlanZIndex(t *testing.T) {
	tests := []struct {
		name string
		z    map[string]int
		want string
	}{
		{"natural", nil, "a,b,c,d"},
		{"promote one", map[string]int{"a": 1}, "b,a,c,d"},
		{"promote two", map[string]int{"a": 2}, "b,c,a,d"},
		{"promote to top", map[string]int{"a": 3}, "b,c,d,a"},
		{"promote clamps", map[string]int{"a": 1000}, "b,c,d,a"},
		{"sink one", map[string]int{"b": -1}, "b,a,c,d"},
		{"sink clamps", map[string]int{"b": -1000}, "b,a,c,d"},
		{"uniform sink keeps order", map[string]int{"a": -1, "b": -1, "c": -1, "d": -1}, "a,b,c,d"},
		{"mixed", map[string]int{"a": 2, "b": -1, "c": 0, "d": -1}, "b,d,c,a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, cels := buildSpan("a", "b", "c", "d")
			for name, z := range tt.z {
				cels[name].SetZIndex(z)
			}
			if got := planOrder(root); got != tt.want {
				t.Errorf("plan order = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestPlanZIndexEmptyCelBarrier checks that a layer without a cel
// still occupies a slot in the z-index arithmetic.
func TestPlanZIndexEmptyCelBarrier(t *testing.T) {
	tests := []struct {
		name string
		z    int
		want string // non-empty cels only
	}{
		{"not enough to pass the empty layer", -1, "a,b,d"},
		{"past the empty layer", -2, "a,d,b"},
		{"to the bottom", -3, "d,a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewGroup("root")
			var d *Cel
			for _, name := range []string{"a", "b", "c", "d"} {
				layer := NewImageLayer(name)
				if name != "c" { // c stays empty
					cel := NewCel(0, skin.NewImageSurface(2, 2))
					layer.AddCel(cel)
					if name == "d" {
						d = cel
					}
				}
				root.Add(layer)
			}
			d.SetZIndex(tt.z)

			plan := NewPlan()
			plan.AddLayer(root, 0)

			var names []string
			for _, item := range plan.Items() {
				if item.Cel != nil {
					names = append(names, item.Layer.Name())
				}
			}
			if got := strings.Join(names, ","); got != tt.want {
				t.Errorf("plan order = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestPlanEmptyCelStaysInPlan checks that empty cels are emitted as
// nil-cel items rather than dropped.
func TestPlanEmptyCelStaysInPlan(t *testing.T) {
	root := NewGroup("root")
	root.Add(NewImageLayer("empty"))

	plan := NewPlan()
	plan.AddLayer(root, 0)

	items := plan.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Cel != nil {
		t.Errorf("Cel = %v, want nil", items[0].Cel)
	}
	if items[0].Z != 0 {
		t.Errorf("Z = %d, want 0", items[0].Z)
	}
}

// TestPlanEffectiveZClamped checks that recorded z values are clamped
// to the span size.
func TestPlanEffectiveZClamped(t *testing.T) {
	root, cels := buildSpan("a", "b", "c", "d")
	cels["a"].SetZIndex(1000)
	cels["b"].SetZIndex(-1000)

	plan := NewPlan()
	plan.AddLayer(root, 0)

	for _, item := range plan.Items() {
		switch item.Layer.Name() {
		case "a":
			if item.Z != 3 {
				t.Errorf("a: Z = %d, want 3", item.Z)
			}
		case "b":
			if item.Z != -3 {
				t.Errorf("b: Z = %d, want -3", item.Z)
			}
		}
	}
}

// TestPlanSkipsInvisibleLayers checks that hidden subtrees contribute
// nothing.
func TestPlanSkipsInvisibleLayers(t *testing.T) {
	root, _ := buildSpan("a", "b")
	hidden := NewImageLayer("hidden")
	hidden.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	hidden.SetVisible(false)
	root.Add(hidden)

	hiddenGroup := NewGroup("hg")
	inner := NewImageLayer("inner")
	inner.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	hiddenGroup.Add(inner)
	hiddenGroup.SetVisible(false)
	root.Add(hiddenGroup)

	if got := planOrder(root); got != "a,b" {
		t.Errorf("plan order = %s, want a,b", got)
	}
}

// TestPlanFlattensNestedGroups checks depth-first emission of nested
// visible groups in flatten mode.
func TestPlanFlattensNestedGroups(t *testing.T) {
	root := NewGroup("root")

	a := NewImageLayer("a")
	a.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	root.Add(a)

	g := NewGroup("g")
	b := NewImageLayer("b")
	b.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	g.Add(b)
	root.Add(g)

	c := NewImageLayer("c")
	c.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	root.Add(c)

	if got := planOrder(root); got != "a,b,c" {
		t.Errorf("plan order = %s, want a,b,c", got)
	}
}

// TestPlanGroupsOpaqueToZ checks that a sibling's z-index treats a
// nested group as a single slot and never lands inside it.
func TestPlanGroupsOpaqueToZ(t *testing.T) {
	root := NewGroup("root")

	g := NewGroup("g")
	for _, name := range []string{"g1", "g2"} {
		l := NewImageLayer(name)
		l.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
		g.Add(l)
	}
	root.Add(g)

	top := NewImageLayer("top")
	cel := NewCel(0, skin.NewImageSurface(2, 2))
	top.AddCel(cel)
	root.Add(top)

	cel.SetZIndex(-1)
	if got := planOrder(root); got != "top,g1,g2" {
		t.Errorf("plan order = %s, want top,g1,g2", got)
	}

	cel.SetZIndex(-1000)
	if got := planOrder(root); got != "top,g1,g2" {
		t.Errorf("plan order = %s, want top,g1,g2", got)
	}
}

// TestPlanComposeGroups checks the compose-groups construction mode:
// one item for the added group, sub-plans built per child.
func TestPlanComposeGroups(t *testing.T) {
	root := NewGroup("root")

	a := NewImageLayer("a")
	a.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	root.Add(a)

	g0 := NewGroup("g0")
	b := NewImageLayer("b")
	b.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	g0.Add(b)
	root.Add(g0)

	g1 := NewGroup("g1")
	root.Add(g1)

	c := NewImageLayer("c")
	c.AddCel(NewCel(0, skin.NewImageSurface(2, 2)))
	root.Add(c)

	plan := NewPlan(WithComposeGroups())
	plan.AddLayer(root, 0)

	items := plan.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Layer != Layer(root) {
		t.Errorf("item layer = %s, want root", items[0].Layer.Name())
	}

	sub := NewPlan(WithComposeGroups())
	for _, child := range root.Children() {
		if child.IsVisible() {
			sub.AddLayer(child, 0)
		}
	}

	subItems := sub.Items()
	if len(subItems) != 4 {
		t.Fatalf("sub items = %d, want 4", len(subItems))
	}
	want := []string{"a", "g0", "g1", "c"}
	for i, item := range subItems {
		if item.Layer.Name() != want[i] {
			t.Errorf("sub item %d = %s, want %s", i, item.Layer.Name(), want[i])
		}
	}
}

// TestPlanDeterminism checks that identical trees produce identical
// plans across runs.
func TestPlanDeterminism(t *testing.T) {
	build := func() string {
		root, cels := buildSpan("a", "b", "c", "d")
		cels["a"].SetZIndex(2)
		cels["b"].SetZIndex(-1)
		cels["d"].SetZIndex(-1)
		return planOrder(root)
	}

	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); got != first {
			t.Fatalf("run %d: plan order = %s, want %s", i, got, first)
		}
	}
}

// TestCelOpacity checks the default and the clamp.
func TestCelOpacity(t *testing.T) {
	c := NewCel(0, nil)
	if c.Opacity() != 255 {
		t.Errorf("default Opacity() = %d, want 255", c.Opacity())
	}

	c.SetOpacity(128)
	if c.Opacity() != 128 {
		t.Errorf("Opacity() = %d, want 128", c.Opacity())
	}

	c.SetOpacity(-5)
	if c.Opacity() != 0 {
		t.Errorf("Opacity() after -5 = %d, want 0", c.Opacity())
	}
	c.SetOpacity(999)
	if c.Opacity() != 255 {
		t.Errorf("Opacity() after 999 = %d, want 255", c.Opacity())
	}
}
