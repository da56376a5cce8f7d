package skin

import "math"

// LayerType identifies what a style layer contributes to a widget.
type LayerType int

const (
	// LayerBackground fills or tiles behind the widget content.
	LayerBackground LayerType = iota
	// LayerBackgroundBorder is a background whose nine-patch slices
	// also shrink the content rectangle, acting as a border.
	LayerBackgroundBorder
	// LayerBorder strokes or nine-patches the widget outline.
	LayerBorder
	// LayerText draws the widget text.
	LayerText
	// LayerIcon draws an icon surface.
	LayerIcon
)

// String returns the layer type name.
func (t LayerType) String() string {
	switch t {
	case LayerBackground:
		return "Background"
	case LayerBackgroundBorder:
		return "BackgroundBorder"
	case LayerBorder:
		return "Border"
	case LayerText:
		return "Text"
	case LayerIcon:
		return "Icon"
	default:
		return "Unknown"
	}
}

// LayerFlags is a bitmask of widget states a layer requires.
// Zero is the wildcard: the layer matches every state.
type LayerFlags int

const (
	// FlagDisabled requires the widget to be disabled.
	FlagDisabled LayerFlags = 1 << iota
	// FlagSelected requires the widget to be selected.
	FlagSelected
	// FlagMouse requires the mouse to be over the widget.
	FlagMouse
	// FlagFocus requires the widget to have keyboard focus.
	FlagFocus
	// FlagCapture requires the widget to have captured the mouse.
	FlagCapture
)

// UndefinedSide marks a raw border or padding side as "not set".
// Defined sides are never negative, so -1 is unambiguous.
const UndefinedSide = -1

// Layer is one typed visual contribution to a widget's rendering.
//
// Setters return the layer so themes can build layers fluently.
type Layer struct {
	typ          LayerType
	flags        LayerFlags
	align        Align
	color        Color
	offset       Point
	spriteSheet  Surface
	spriteBounds Rect
	slicesBounds Rect
	icon         Surface
}

// NewLayer creates a layer of the given type.
func NewLayer(t LayerType) *Layer {
	return &Layer{typ: t}
}

// Type returns the layer type.
func (l *Layer) Type() LayerType { return l.typ }

// Flags returns the required state flags (0 = wildcard).
func (l *Layer) Flags() LayerFlags { return l.flags }

// Align returns the alignment bitmask (0 = tile).
func (l *Layer) Align() Align { return l.align }

// Color returns the layer color, possibly ColorNone.
func (l *Layer) Color() Color { return l.color }

// Offset returns the layer's 2D pixel offset.
func (l *Layer) Offset() Point { return l.offset }

// SpriteSheet returns the sheet surface, or nil.
func (l *Layer) SpriteSheet() Surface { return l.spriteSheet }

// SpriteBounds returns the sprite rectangle inside the sheet.
func (l *Layer) SpriteBounds() Rect { return l.spriteBounds }

// SlicesBounds returns the inner nine-patch region inside the sprite.
// Empty means the sprite is not a nine-patch.
func (l *Layer) SlicesBounds() Rect { return l.slicesBounds }

// Icon returns the icon surface for Icon layers, or nil.
func (l *Layer) Icon() Surface { return l.icon }

// SetType sets the layer type.
func (l *Layer) SetType(t LayerType) *Layer { l.typ = t; return l }

// SetFlags sets the required state flags.
func (l *Layer) SetFlags(f LayerFlags) *Layer { l.flags = f; return l }

// SetAlign sets the alignment bitmask.
func (l *Layer) SetAlign(a Align) *Layer { l.align = a; return l }

// SetColor sets the layer color.
func (l *Layer) SetColor(c Color) *Layer { l.color = c; return l }

// SetOffset sets the layer offset.
func (l *Layer) SetOffset(p Point) *Layer { l.offset = p; return l }

// SetSpriteSheet sets the sheet surface. The layer borrows the surface;
// the owning theme keeps it alive.
func (l *Layer) SetSpriteSheet(s Surface) *Layer { l.spriteSheet = s; return l }

// SetSpriteBounds sets the sprite rectangle inside the sheet.
func (l *Layer) SetSpriteBounds(r Rect) *Layer { l.spriteBounds = r; return l }

// SetSlicesBounds sets the inner nine-patch region.
func (l *Layer) SetSlicesBounds(r Rect) *Layer { l.slicesBounds = r; return l }

// SetIcon sets the icon surface.
func (l *Layer) SetIcon(s Surface) *Layer { l.icon = s; return l }

// Style is an ordered list of layers plus widget-level metrics.
//
// Layers of the same type must be declared contiguously to compete for
// selection; see [ForEachLayer].
type Style struct {
	id         string
	layers     []Layer
	font       Font
	rawBorder  Border
	rawPadding Border
	minSize    Size
	maxSize    Size
	mnemonics  bool
}

// NewStyle creates an empty style with the given identifier.
// All raw border and padding sides start undefined; mnemonics are on.
func NewStyle(id string) *Style {
	undef := Border{
		Left: UndefinedSide, Top: UndefinedSide,
		Right: UndefinedSide, Bottom: UndefinedSide,
	}
	return &Style{
		id:         id,
		rawBorder:  undef,
		rawPadding: undef,
		minSize:    Size{0, 0},
		maxSize:    Size{math.MaxInt32, math.MaxInt32},
		mnemonics:  true,
	}
}

// ID returns the style identifier.
func (s *Style) ID() string { return s.id }

// Layers returns the layer list in declaration order.
func (s *Style) Layers() []Layer { return s.layers }

// AddLayer appends a layer and returns the style for chaining.
func (s *Style) AddLayer(l *Layer) *Style {
	s.layers = append(s.layers, *l)
	return s
}

// Font returns the style font, or nil to use the widget's font.
func (s *Style) Font() Font { return s.font }

// SetFont sets the style font.
func (s *Style) SetFont(f Font) *Style { s.font = f; return s }

// RawBorder returns the border with possibly-undefined sides.
func (s *Style) RawBorder() Border { return s.rawBorder }

// SetRawBorder sets the raw border.
func (s *Style) SetRawBorder(b Border) *Style { s.rawBorder = b; return s }

// RawPadding returns the padding with possibly-undefined sides.
func (s *Style) RawPadding() Border { return s.rawPadding }

// SetRawPadding sets the raw padding.
func (s *Style) SetRawPadding(b Border) *Style { s.rawPadding = b; return s }

// Border returns the resolved border: undefined sides read as zero.
func (s *Style) Border() Border { return resolveBorder(s.rawBorder) }

// Padding returns the resolved padding: undefined sides read as zero.
func (s *Style) Padding() Border { return resolveBorder(s.rawPadding) }

// MinSize returns the style minimum size (0 = no minimum).
func (s *Style) MinSize() Size { return s.minSize }

// SetMinSize sets the style minimum size.
func (s *Style) SetMinSize(sz Size) *Style { s.minSize = sz; return s }

// MaxSize returns the style maximum size (MaxInt32 = no maximum).
func (s *Style) MaxSize() Size { return s.maxSize }

// SetMaxSize sets the style maximum size.
func (s *Style) SetMaxSize(sz Size) *Style { s.maxSize = sz; return s }

// Mnemonics reports whether mnemonic underlines are drawn.
func (s *Style) Mnemonics() bool { return s.mnemonics }

// SetMnemonics enables or disables mnemonic underlines.
func (s *Style) SetMnemonics(on bool) *Style { s.mnemonics = on; return s }

// ApplyOnlyDefinedBorders copies only the defined sides of raw into dst.
// Undefined sides of raw leave dst untouched.
func ApplyOnlyDefinedBorders(dst *Border, raw Border) {
	if raw.Left != UndefinedSide {
		dst.Left = raw.Left
	}
	if raw.Top != UndefinedSide {
		dst.Top = raw.Top
	}
	if raw.Right != UndefinedSide {
		dst.Right = raw.Right
	}
	if raw.Bottom != UndefinedSide {
		dst.Bottom = raw.Bottom
	}
}

// resolveBorder replaces undefined sides with zero.
func resolveBorder(raw Border) Border {
	var b Border
	ApplyOnlyDefinedBorders(&b, raw)
	return b
}
