package skin

// Widget is the abstract view of a widget the engine consumes. The
// engine never mutates a widget; paint and measurement are read-only.
type Widget interface {
	// State queried for layer matching.
	IsEnabled() bool
	IsSelected() bool
	HasMouse() bool
	HasFocus() bool
	HasCapture() bool

	// IsTransparent reports whether the widget skips its own
	// background fill.
	IsTransparent() bool

	// BgColor returns the widget background color, possibly ColorNone.
	BgColor() Color

	// Text returns the widget text (may be empty).
	Text() string

	// TextBlob returns the cached shaped text, or nil.
	TextBlob() TextBlob

	// TextBaseline returns the y of the text baseline inside the
	// widget's client area.
	TextBaseline() float64

	// TextHeight returns the line height of the widget font.
	TextHeight() int

	// TextSize returns the size of the widget text in the widget font,
	// typically from the cached blob.
	TextSize() Size

	// Mnemonic returns the mnemonic codepoint, or 0.
	Mnemonic() rune

	// Font returns the widget font.
	Font() Font

	// MinSize and MaxSize bound the widget's size hint.
	MinSize() Size
	MaxSize() Size

	// Align returns the widget alignment (used by the text box).
	Align() Align

	// Bounds returns the widget bounds in parent coordinates.
	Bounds() Rect

	// ClientBounds returns the widget bounds in local coordinates.
	ClientBounds() Rect

	// ClientChildrenBounds returns the client area minus the border.
	ClientChildrenBounds() Rect

	// Border returns the widget's resolved border.
	Border() Border

	// Style returns the widget style, or nil.
	Style() *Style
}

// StyledWidget is a widget whose font and style the theme may assign
// during initialization.
type StyledWidget interface {
	Widget
	SetFont(Font)
	SetStyle(*Style)
}

// IconProvider is implemented by widgets that supply a runtime icon.
// A provided icon takes priority over the icon of a matched Icon layer.
type IconProvider interface {
	IconSurface() Surface
}

// ScrollView is the viewport a scrollable widget is hosted in.
type ScrollView interface {
	// ViewportBounds returns the visible region in the coordinates of
	// the scrolled widget's parent.
	ViewportBounds() Rect

	// ViewScroll returns the current scroll offset.
	ViewScroll() Point

	// ScrollableSize returns the full extent of the scrolled content.
	ScrollableSize() Size
}

// ScrollViewer is implemented by widgets hosted inside a scroll view.
// ScrollView returns nil when the widget is not currently scrolled.
type ScrollViewer interface {
	ScrollView() ScrollView
}

// StyleFlagsFor derives the layer-matching flags from a widget's state.
func StyleFlagsFor(w Widget) LayerFlags {
	var flags LayerFlags
	if !w.IsEnabled() {
		flags |= FlagDisabled
	}
	if w.IsSelected() {
		flags |= FlagSelected
	}
	if w.HasMouse() {
		flags |= FlagMouse
	}
	if w.HasFocus() {
		flags |= FlagFocus
	}
	if w.HasCapture() {
		flags |= FlagCapture
	}
	return flags
}

// PaintPartInfo carries the widget-derived inputs of PaintWidgetPart,
// so parts of a widget (e.g. a scrollbar thumb) can be painted with
// adjusted state.
type PaintPartInfo struct {
	// BgColor is the external background fill, possibly ColorNone.
	BgColor Color

	// StyleFlags selects the style layers to paint.
	StyleFlags LayerFlags

	// Text and the cached shaped blob, baseline, and mnemonic.
	Text     string
	TextBlob TextBlob
	Baseline float64
	Mnemonic rune

	// Icon is a widget-provided icon overriding Icon layers, or nil.
	Icon Surface
}

// NewPaintPartInfo captures the paintable state of a widget.
func NewPaintPartInfo(w Widget) PaintPartInfo {
	info := PaintPartInfo{
		StyleFlags: StyleFlagsFor(w),
		Text:       w.Text(),
		TextBlob:   w.TextBlob(),
		Baseline:   w.TextBaseline(),
		Mnemonic:   w.Mnemonic(),
	}
	if !w.IsTransparent() {
		info.BgColor = w.BgColor()
	}
	if ip, ok := w.(IconProvider); ok {
		info.Icon = ip.IconSurface()
	}
	return info
}
