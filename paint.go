package skin

import "unicode"

// PaintWidget paints a widget with the given style into its bounds.
func (t *Theme) PaintWidget(g Graphics, w Widget, style *Style, bounds Rect) {
	info := NewPaintPartInfo(w)
	t.PaintWidgetPart(g, style, bounds, &info)
}

// PaintWidgetPart paints one part of a widget: the external background
// fill, then every matched style layer in emission order. The content
// rectangle shrinks as BackgroundBorder and Border layers consume
// their nine-patch edges.
func (t *Theme) PaintWidgetPart(g Graphics, style *Style, bounds Rect, info *PaintPartInfo) {
	if style == nil {
		Logger().Warn("skin: painting widget part without style")
		return
	}

	if info.BgColor.Alpha() > 0 {
		g.FillRect(info.BgColor, bounds)
	}

	rc := bounds
	bgColor := ColorNone
	ForEachLayer(info.StyleFlags, style, func(layer *Layer) {
		t.paintLayer(g, style, layer, info.Text, info.TextBlob, info.Baseline,
			info.Mnemonic, info.Icon, &rc, &bgColor)
	})
}

// PaintScrollBar paints a scrollbar track and its thumb with separate
// styles but shared widget state.
func (t *Theme) PaintScrollBar(g Graphics, w Widget, style, thumbStyle *Style,
	bounds, thumbBounds Rect,
) {
	info := NewPaintPartInfo(w)
	t.PaintWidgetPart(g, style, bounds, &info)

	info.BgColor = ColorNone
	t.PaintWidgetPart(g, thumbStyle, thumbBounds, &info)
}

// PaintTooltip paints a tooltip body plus an arrow aligned toward the
// target rectangle. The arrow is a clipped nine-patch corner of the
// arrow style.
func (t *Theme) PaintTooltip(g Graphics, w Widget, style, arrowStyle *Style,
	bounds Rect, arrowAlign Align, target Rect,
) {
	if style != nil {
		t.PaintWidget(g, w, style, bounds)
	}
	if arrowStyle == nil || arrowAlign == 0 {
		return
	}

	topLeft, center, bottomRight := t.CalcSlices(w, arrowStyle)

	var clip Rect
	rc := Rect{
		W: topLeft.W + center.W + bottomRight.W,
		H: topLeft.H + center.H + bottomRight.H,
	}

	switch {
	case arrowAlign&AlignLeft != 0:
		clip.W = topLeft.W
		clip.X = bounds.X
		rc.X = bounds.X
	case arrowAlign&AlignRight != 0:
		clip.W = bottomRight.W
		clip.X = bounds.X + bounds.W - clip.W
		rc.X = bounds.X2() - rc.W
	default:
		clip.W = center.W
		clip.X = target.X + target.W/2 - clip.W/2
		rc.X = clip.X - topLeft.W
	}

	switch {
	case arrowAlign&AlignTop != 0:
		clip.H = topLeft.H
		clip.Y = bounds.Y
		rc.Y = bounds.Y
	case arrowAlign&AlignBottom != 0:
		clip.H = bottomRight.H
		clip.Y = bounds.Y + bounds.H - clip.H
		rc.Y = bounds.Y2() - rc.H
	default:
		clip.H = center.H
		clip.Y = target.Y + target.H/2 - clip.H/2
		rc.Y = clip.Y - topLeft.H
	}

	IntersectClip(g, clip, func() {
		t.PaintWidget(g, w, arrowStyle, rc)
	})
}

// PaintTextBoxWithStyle renders a multi-line text widget using the
// background and text colors of its matched layers.
func (t *Theme) PaintTextBoxWithStyle(g Graphics, w Widget) {
	bg, fg := ColorNone, ColorNone

	ForEachWidgetLayer(w, w.Style(), func(layer *Layer) {
		switch layer.Type() {
		case LayerBackground:
			bg = layer.Color()
		case LayerText:
			fg = layer.Color()
		}
	})

	if !fg.IsNone() {
		DrawTextBox(g, w, nil, nil, bg, fg)
	}
}

// paintLayer issues the graphics commands for one matched layer.
// rc shrinks when the layer consumes border space; bgColor records the
// last solid background so later text layers can paint a backplate.
func (t *Theme) paintLayer(g Graphics, style *Style, layer *Layer,
	text string, textBlob TextBlob, baseline float64, mnemonic rune,
	providedIcon Surface, rc *Rect, bgColor *Color,
) {
	switch layer.Type() {
	case LayerBackground, LayerBackgroundBorder:
		if layer.SpriteSheet() != nil && !layer.SpriteBounds().IsEmpty() {
			if !layer.SlicesBounds().IsEmpty() {
				drawSlices(g, layer.SpriteSheet(), *rc, layer.SpriteBounds(),
					layer.SlicesBounds(), layer.Color(), true)

				if layer.Type() == LayerBackgroundBorder {
					shrinkBySlices(rc, layer.SpriteBounds(), layer.SlicesBounds())
				}
			} else {
				t.paintSprite(g, layer, *rc)
			}
		} else if !layer.Color().IsNone() {
			*bgColor = layer.Color()
			g.FillRect(layer.Color(), *rc)
		}

	case LayerBorder:
		if layer.SpriteSheet() != nil && !layer.SpriteBounds().IsEmpty() &&
			!layer.SlicesBounds().IsEmpty() {
			drawSlices(g, layer.SpriteSheet(), *rc, layer.SpriteBounds(),
				layer.SlicesBounds(), layer.Color(), false)
			shrinkBySlices(rc, layer.SpriteBounds(), layer.SlicesBounds())
		} else if !layer.Color().IsNone() {
			g.DrawRect(layer.Color(), *rc)
		}

	case LayerText:
		if text == "" || layer.Color().IsNone() {
			return
		}

		oldFont := g.Font()
		if style.Font() != nil {
			g.SetFont(style.Font())
			defer g.SetFont(oldFont)
		}

		if layer.Align()&WordWrap != 0 {
			textBounds := rc.Offset(layer.Offset())
			g.DrawAlignedUIText(text, layer.Color(), *bgColor, textBounds, layer.Align())
			return
		}

		// The widget's cached blob was shaped with the widget font, so
		// a style font forces a fresh shape.
		if textBlob == nil || style.Font() != nil {
			textBlob = t.fontMgr.Shape(g.Font(), text)
		}
		if textBlob == nil {
			return
		}

		blobSize := textBlob.Bounds()
		padding := style.Padding()
		var pt PointF

		switch {
		case layer.Align()&AlignLeft != 0:
			pt.X = float64(rc.X + padding.Left)
		case layer.Align()&AlignRight != 0:
			pt.X = float64(rc.X+rc.W) - blobSize.W - float64(padding.Right)
		default:
			pt.X = centerSpanF(float64(rc.X+padding.Left), float64(rc.W-padding.Width()), blobSize.W)
		}

		switch {
		case layer.Align()&AlignTop != 0:
			pt.Y = float64(rc.Y + padding.Top)
		case layer.Align()&AlignBottom != 0:
			pt.Y = float64(rc.Y+rc.H) - blobSize.H - float64(padding.Bottom)
		default:
			pt.Y = baseline - textBlob.Baseline()
		}

		pt = pt.Add(layer.Offset().ToF())

		paint := Paint{}
		if bgColor.Alpha() > 0 {
			// Backplate so the text stays readable over sprites.
			paint.Color = *bgColor
			paint.Style = PaintFill
			g.DrawRectF(textBlob.Bounds().Offset(pt), &paint)
		}
		paint.Color = layer.Color()
		g.DrawTextBlob(textBlob, pt, &paint)

		if style.Mnemonics() && mnemonic != 0 {
			drawMnemonicUnderline(g, text, textBlob, pt, mnemonic, &paint)
		}

	case LayerIcon:
		icon := providedIcon
		if icon == nil {
			icon = layer.Icon()
		}
		if icon == nil {
			return
		}

		iconSize := Size{W: icon.Width(), H: icon.Height()}
		padding := style.Padding()
		var pt Point

		switch {
		case layer.Align()&AlignLeft != 0:
			pt.X = rc.X + padding.Left
		case layer.Align()&AlignRight != 0:
			pt.X = rc.X + rc.W - iconSize.W - padding.Right
		default:
			pt.X = centerSpan(rc.X+padding.Left, rc.W-padding.Width(), iconSize.W)
		}

		switch {
		case layer.Align()&AlignTop != 0:
			pt.Y = rc.Y + padding.Top
		case layer.Align()&AlignBottom != 0:
			pt.Y = rc.Y + rc.H - iconSize.H - padding.Bottom
		default:
			pt.Y = centerSpan(rc.Y+padding.Top, rc.H-padding.Height(), iconSize.H)
		}

		pt = pt.Add(layer.Offset())

		iconSrc := NewRect(0, 0, iconSize.W, iconSize.H)
		if !layer.Color().IsNone() {
			g.DrawColoredRgbaSurface(icon, layer.Color(), iconSrc, pt)
		} else {
			g.DrawRgbaSurface(icon, iconSrc, pt)
		}
	}
}

// paintSprite clips to rc and places the layer sprite according to its
// alignment: a horizontal strip (MIDDLE), a vertical strip (CENTER), a
// single centered instance (CENTER|MIDDLE), or a full tile pattern (0).
func (t *Theme) paintSprite(g Graphics, layer *Layer, rc Rect) {
	sprite := layer.SpriteBounds()
	IntersectClip(g, rc, func() {
		draw := sheetDrawer(g, layer.SpriteSheet(), layer.Color())

		switch layer.Align() {
		case AlignMiddle:
			y := centerSpan(rc.Y, rc.H, sprite.H)
			for x := rc.X; x < rc.X2(); x += sprite.W {
				draw(sprite, Pt(x, y))
			}

		case AlignCenter:
			x := centerSpan(rc.X, rc.W, sprite.W)
			for y := rc.Y; y < rc.Y2(); y += sprite.H {
				draw(sprite, Pt(x, y))
			}

		case AlignCenter | AlignMiddle:
			x := centerSpan(rc.X, rc.W, sprite.W)
			y := centerSpan(rc.Y, rc.H, sprite.H)
			draw(sprite, Pt(x, y))

		case 0:
			for y := rc.Y; y < rc.Y2(); y += sprite.H {
				for x := rc.X; x < rc.X2(); x += sprite.W {
					draw(sprite, Pt(x, y))
				}
			}
		}
	})
}

// drawSlices draws a nine-patch stretched into rc.
func drawSlices(g Graphics, sheet Surface, rc, sprite, slices Rect, c Color, drawCenter bool) {
	paint := Paint{Color: c}
	g.DrawSurfaceNine(sheet, sprite, slices, rc, drawCenter, &paint)
}

// shrinkBySlices moves rc inside the nine-patch border of a sprite.
func shrinkBySlices(rc *Rect, sprite, slices Rect) {
	rc.X += slices.X
	rc.Y += slices.Y
	rc.W -= sprite.W - slices.W
	rc.H -= sprite.H - slices.H
}

// drawMnemonicUnderline underlines the first glyph whose source
// character case-folds to the mnemonic.
//
// Cluster data may be unavailable during a run visit, so a utf8 cursor
// is stepped in lockstep with the glyph index and used as a fallback
// when RunInfo.Clusters returns nil.
func drawMnemonicUnderline(g Graphics, text string, blob TextBlob, pt PointF,
	mnemonic rune, paint *Paint,
) {
	mnemonicUtf8Pos := -1
	fold := unicode.ToLower(mnemonic)
	for pos, chr := range text {
		if unicode.ToLower(chr) == fold {
			mnemonicUtf8Pos = pos
			break
		}
	}
	if mnemonicUtf8Pos < 0 {
		return
	}

	// utf8 byte offset of each rune, advanced per glyph below.
	offsets := runeOffsets(text)
	cursor := 0

	baseline := blob.Baseline()
	blob.VisitRuns(func(run RunInfo) bool {
		clusters := run.Clusters()
		for i := 0; i < run.GlyphCount(); i++ {
			glyphUtf8Begin := 0
			if clusters != nil {
				glyphUtf8Begin, _ = run.GlyphUtf8Range(i)
			} else if cursor < len(offsets) {
				glyphUtf8Begin = offsets[cursor]
			}
			cursor++

			if glyphUtf8Begin != mnemonicUtf8Pos {
				continue
			}

			metrics := run.Font().Metrics()
			scale := float64(UIScale())

			thickness := metrics.UnderlineThickness * scale
			if thickness < 1 {
				thickness = 1
			}

			b := run.GlyphBounds(i)
			underline := RectF{
				X: pt.X + b.X,
				Y: pt.Y + baseline + metrics.UnderlinePosition*scale,
				W: b.W,
				H: thickness,
			}
			g.DrawRectF(underline, paint)
			return false
		}
		return true
	})
}

// runeOffsets returns the utf8 byte offset of each rune in text.
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text))
	for pos := range text {
		offsets = append(offsets, pos)
	}
	return offsets
}

// centerSpanF is centerSpan for fractional text extents.
func centerSpanF(x, size, length float64) float64 {
	scale := UIScale()
	return x + float64(int(size-length)/scale/2*scale)
}
