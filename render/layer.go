package render

// Layer is a node of the document layer tree: either an [ImageLayer]
// leaf or a [Group]. Siblings are ordered bottom to top; index 0 is
// drawn first.
type Layer interface {
	// Name returns the layer name.
	Name() string

	// IsVisible reports whether the layer participates in rendering.
	IsVisible() bool
}

// ImageLayer is a leaf layer holding one cel per frame.
type ImageLayer struct {
	name    string
	visible bool
	cels    map[int]*Cel
}

// NewImageLayer creates an empty visible image layer.
func NewImageLayer(name string) *ImageLayer {
	return &ImageLayer{name: name, visible: true, cels: map[int]*Cel{}}
}

// Name implements Layer.
func (l *ImageLayer) Name() string { return l.name }

// IsVisible implements Layer.
func (l *ImageLayer) IsVisible() bool { return l.visible }

// SetVisible shows or hides the layer.
func (l *ImageLayer) SetVisible(v bool) { l.visible = v }

// Cel returns the cel at the given frame, or nil.
func (l *ImageLayer) Cel(frame int) *Cel { return l.cels[frame] }

// AddCel attaches a cel to the layer at the cel's frame, replacing any
// previous cel there.
func (l *ImageLayer) AddCel(c *Cel) {
	c.layer = l
	l.cels[c.frame] = c
}

// RemoveCel detaches the cel at the given frame.
func (l *ImageLayer) RemoveCel(frame int) {
	if c, ok := l.cels[frame]; ok {
		c.layer = nil
		delete(l.cels, frame)
	}
}

// Group is a layer containing an ordered list of child layers.
type Group struct {
	name     string
	visible  bool
	children []Layer
}

// NewGroup creates an empty visible group.
func NewGroup(name string) *Group {
	return &Group{name: name, visible: true}
}

// Name implements Layer.
func (g *Group) Name() string { return g.name }

// IsVisible implements Layer.
func (g *Group) IsVisible() bool { return g.visible }

// SetVisible shows or hides the group and its subtree.
func (g *Group) SetVisible(v bool) { g.visible = v }

// Children returns the child layers, bottom to top.
func (g *Group) Children() []Layer { return g.children }

// Add appends a child at the top of the group.
func (g *Group) Add(child Layer) {
	g.children = append(g.children, child)
}

// Insert places a child at the given stack position.
func (g *Group) Insert(index int, child Layer) {
	if index < 0 {
		index = 0
	}
	if index > len(g.children) {
		index = len(g.children)
	}
	g.children = append(g.children[:index],
		append([]Layer{child}, g.children[index:]...)...)
}
