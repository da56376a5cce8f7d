package render

import "sort"

// Item is one entry of a render plan: the cel to composite (nil for an
// empty cel or a composed group), the layer it came from, and the
// effective z-index after clamping.
type Item struct {
	Cel   *Cel
	Layer Layer
	Z     int
}

// Option configures a Plan.
type Option func(*Plan)

// WithComposeGroups makes the plan emit a single item per group
// instead of recursing into its children. The caller then builds a
// sub-plan per group by adding each visible child separately, which is
// how group-level blending and opacity are composited.
func WithComposeGroups() Option {
	return func(p *Plan) { p.composeGroups = true }
}

// Plan is the flat, deterministically ordered sequence of cels to
// composite for a frame, bottom to top.
type Plan struct {
	composeGroups bool
	items         []Item
}

// NewPlan creates an empty plan.
func NewPlan(opts ...Option) *Plan {
	p := &Plan{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddLayer appends the subtree rooted at layer for the given frame.
// The caller is responsible for filtering the root itself; only the
// visibility of descendants is checked here.
func (p *Plan) AddLayer(layer Layer, frame int) {
	switch l := layer.(type) {
	case *ImageLayer:
		p.items = append(p.items, imageItem(l, frame))

	case *Group:
		if p.composeGroups {
			p.items = append(p.items, Item{Layer: l})
			return
		}
		p.addGroup(l, frame)
	}
}

// Items returns the plan entries in composite order.
func (p *Plan) Items() []Item { return p.items }

// imageItem builds the item for an image layer at a frame. An absent
// cel yields a nil-cel item with z 0: it still occupies a slot in the
// sibling span.
func imageItem(l *ImageLayer, frame int) Item {
	cel := l.Cel(frame)
	z := 0
	if cel != nil {
		z = cel.ZIndex()
	}
	return Item{Cel: cel, Layer: l, Z: z}
}

// addGroup emits the visible children of a group, reordered by their
// z-index overrides. Each child contributes one slot to the sibling
// span: image layers carry their cel's z, nested groups are opaque
// blocks with z 0 whose internal order was already fixed recursively.
func (p *Plan) addGroup(g *Group, frame int) {
	type block struct {
		items   []Item
		z       int
		natural int
		leaf    bool
	}

	var blocks []block
	hasZ := false

	for _, child := range g.Children() {
		if !child.IsVisible() {
			continue
		}

		natural := len(blocks)
		switch c := child.(type) {
		case *ImageLayer:
			it := imageItem(c, frame)
			if it.Z != 0 {
				hasZ = true
			}
			blocks = append(blocks, block{items: []Item{it}, z: it.Z, natural: natural, leaf: true})

		case *Group:
			sub := &Plan{}
			sub.addGroup(c, frame)
			blocks = append(blocks, block{items: sub.items, natural: natural})
		}
	}

	// Magnitudes beyond the span are indistinguishable from the span
	// edge, so the effective z recorded per item is clamped to span-1.
	if limit := len(blocks) - 1; limit >= 0 {
		for i := range blocks {
			if !blocks[i].leaf {
				continue
			}
			blocks[i].z = clampZ(blocks[i].z, limit)
			blocks[i].items[0].Z = blocks[i].z
		}
	}

	if hasZ {
		// Each block lands z slots away from its natural position.
		// Sorting by target slot keeps excess magnitudes naturally
		// clamped to the span: any |z| >= span size degenerates to the
		// first or last slot. Ties on a slot go to the lower z first,
		// then to declaration order (stable), so the higher z wins the
		// higher slot.
		sort.SliceStable(blocks, func(i, j int) bool {
			ti := blocks[i].natural + blocks[i].z
			tj := blocks[j].natural + blocks[j].z
			if ti != tj {
				return ti < tj
			}
			return blocks[i].z < blocks[j].z
		})
	}

	for _, b := range blocks {
		p.items = append(p.items, b.items...)
	}
}

// clampZ bounds a z-index to ±limit.
func clampZ(z, limit int) int {
	if z > limit {
		return limit
	}
	if z < -limit {
		return -limit
	}
	return z
}
