package skin

import "math"

// widgetMetrics is the accumulator shared by the measurement entry
// points. It is filled by one matched-layer walk per call.
type widgetMetrics struct {
	sizeHint   Size
	borderHint Border
	textHint   Rect
	textAlign  Align
}

// CalcSizeHint returns the widget's preferred size for a style.
func (t *Theme) CalcSizeHint(w Widget, style *Style) Size {
	m := t.calcWidgetMetrics(w, style)
	return m.sizeHint
}

// CalcBorder returns the border the style imposes on the widget.
func (t *Theme) CalcBorder(w Widget, style *Style) Border {
	m := t.calcWidgetMetrics(w, style)
	return m.borderHint
}

// CalcTextInfo returns the text rectangle and alignment for a widget
// whose assigned bounds are known.
func (t *Theme) CalcTextInfo(w Widget, style *Style, bounds Rect) (Rect, Align) {
	m := t.calcWidgetMetrics(w, style)
	textBounds := bounds.Shrink(m.borderHint).Offset(m.textHint.Origin())
	return textBounds, m.textAlign
}

// CalcSlices returns the corner, center, and opposite-corner sizes of
// the largest nine-patch among the widget's matched layers.
func (t *Theme) CalcSlices(w Widget, style *Style) (topLeft, center, bottomRight Size) {
	ForEachWidgetLayer(w, style, func(layer *Layer) {
		if layer.SpriteSheet() == nil || layer.SpriteBounds().IsEmpty() ||
			layer.SlicesBounds().IsEmpty() {
			return
		}
		sprite := layer.SpriteBounds()
		slices := layer.SlicesBounds()
		topLeft.W = max(topLeft.W, slices.X)
		topLeft.H = max(topLeft.H, slices.Y)
		center.W = max(center.W, slices.W)
		center.H = max(center.H, slices.H)
		bottomRight.W = max(bottomRight.W, sprite.W-slices.X2())
		bottomRight.H = max(bottomRight.H, sprite.H-slices.Y2())
	})
	return topLeft, center, bottomRight
}

// CalcBgColor returns the background color of the last matched
// background layer, or ColorNone.
func (t *Theme) CalcBgColor(w Widget, style *Style) Color {
	bgColor := ColorNone
	ForEachWidgetLayer(w, style, func(layer *Layer) {
		if layer.Type() == LayerBackground || layer.Type() == LayerBackgroundBorder {
			bgColor = layer.Color()
		}
	})
	return bgColor
}

// CalcMinSize resolves the effective minimum size: the style minimum
// overrides the widget's on each axis the widget leaves unset (zero)
// or the style defines (positive).
func (t *Theme) CalcMinSize(w Widget, style *Style) Size {
	sz := w.MinSize()
	if sz.W == 0 || style.MinSize().W > 0 {
		sz.W = style.MinSize().W
	}
	if sz.H == 0 || style.MinSize().H > 0 {
		sz.H = style.MinSize().H
	}
	return sz
}

// CalcMaxSize resolves the effective maximum size, symmetrically to
// CalcMinSize with MaxInt32 as the unset sentinel.
func (t *Theme) CalcMaxSize(w Widget, style *Style) Size {
	sz := w.MaxSize()
	if sz.W == math.MaxInt32 || style.MaxSize().W < math.MaxInt32 {
		sz.W = style.MaxSize().W
	}
	if sz.H == math.MaxInt32 || style.MaxSize().H < math.MaxInt32 {
		sz.H = style.MaxSize().H
	}
	return sz
}

// calcWidgetMetrics accumulates hints over the matched layers and
// derives the final size hint.
func (t *Theme) calcWidgetMetrics(w Widget, style *Style) widgetMetrics {
	m := widgetMetrics{
		textAlign: AlignCenter | AlignMiddle,
	}
	if style == nil {
		Logger().Warn("skin: measuring widget without style")
		return m
	}

	var paddingHint Border
	iconHint := Size{}
	iconAlign := AlignCenter | AlignMiddle

	ForEachWidgetLayer(w, style, func(layer *Layer) {
		t.measureLayer(w, style, layer, &m.borderHint, &m.textHint, &m.textAlign,
			&iconHint, &iconAlign)
	})

	ApplyOnlyDefinedBorders(&m.borderHint, style.RawBorder())
	ApplyOnlyDefinedBorders(&paddingHint, style.RawPadding())

	m.sizeHint = Size{
		W: m.borderHint.Width() + paddingHint.Width(),
		H: m.borderHint.Height() + paddingHint.Height(),
	}

	// Text and icon overlap on an axis when they share its alignment
	// third; otherwise they stack.
	if m.textAlign.Horizontal() == iconAlign.Horizontal() {
		m.sizeHint.W += max(m.textHint.W, iconHint.W)
	} else {
		m.sizeHint.W += m.textHint.W + iconHint.W
	}
	if m.textAlign.Vertical() == iconAlign.Vertical() {
		m.sizeHint.H += max(m.textHint.H, iconHint.H)
	} else {
		m.sizeHint.H += m.textHint.H + iconHint.H
	}

	m.sizeHint.W = clampInt(m.sizeHint.W, w.MinSize().W, w.MaxSize().W)
	m.sizeHint.H = clampInt(m.sizeHint.H, w.MinSize().H, w.MaxSize().H)
	return m
}

// measureLayer accumulates one matched layer into the metric hints.
func (t *Theme) measureLayer(w Widget, style *Style, layer *Layer,
	borderHint *Border, textHint *Rect, textAlign *Align,
	iconHint *Size, iconAlign *Align,
) {
	switch layer.Type() {
	case LayerBackground, LayerBackgroundBorder, LayerBorder:
		if layer.SpriteSheet() == nil || layer.SpriteBounds().IsEmpty() {
			return
		}
		sprite := layer.SpriteBounds()
		if slices := layer.SlicesBounds(); !slices.IsEmpty() {
			borderHint.Left = max(borderHint.Left, slices.X)
			borderHint.Top = max(borderHint.Top, slices.Y)
			borderHint.Right = max(borderHint.Right, sprite.W-slices.X2())
			borderHint.Bottom = max(borderHint.Bottom, sprite.H-slices.Y2())
		} else {
			// A sprite without slices reserves the inner area.
			iconHint.W = max(iconHint.W, sprite.W)
			iconHint.H = max(iconHint.H, sprite.H)
		}

	case LayerText:
		if layer.Color().IsNone() {
			return
		}
		var textSize Size
		if styleFont := style.Font(); styleFont != nil && styleFont != w.Font() {
			textSize = Size{
				W: styleFont.TextLength(w.Text()),
				H: styleFont.LineHeight(),
			}
		} else {
			// The widget font applies, so the widget's cached text
			// size (usually from the cached blob) is valid.
			textSize = w.TextSize()
		}

		off := layer.Offset()
		*textHint = textHint.Offset(off)
		textHint.W = max(textHint.W, textSize.W+absInt(off.X))
		textHint.H = max(textHint.H, textSize.H+absInt(off.Y))
		*textAlign = layer.Align()

	case LayerIcon:
		icon := layer.Icon()
		if ip, ok := w.(IconProvider); ok {
			if provided := ip.IconSurface(); provided != nil {
				icon = provided
			}
		}
		if icon == nil {
			return
		}
		off := layer.Offset()
		iconHint.W = max(iconHint.W, icon.Width()+absInt(off.X))
		iconHint.H = max(iconHint.H, icon.Height()+absInt(off.Y))
		*iconAlign = layer.Align()
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
