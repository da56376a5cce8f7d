package skin

// DrawTextBox renders a multi-line text widget line by line, or only
// measures it when g is nil.
//
// With WordWrap in the widget alignment, lines are built greedily:
// whitespace-delimited words accumulate until the next word would
// exceed the available width, and a '\n' forces a break. Without wrap,
// lines split on '\n' only.
//
// When wOut is non-nil it receives the longest line length plus the
// border width; when hOut is non-nil it receives the total text height
// plus scroll and border heights. A non-nil wOut also fixes the wrap
// width to its incoming value.
func DrawTextBox(g Graphics, w Widget, wOut, hOut *int, bg, fg Color) {
	var view ScrollView
	if g != nil {
		if sv, ok := w.(ScrollViewer); ok {
			view = sv.ScrollView()
		}
	}

	var vp Rect
	var scroll Point
	if view != nil {
		vp = view.ViewportBounds().Offset(Pt(-w.Bounds().X, -w.Bounds().Y))
		scroll = view.ViewScroll()
	} else {
		vp = w.ClientBounds()
	}

	x1 := w.ClientBounds().X + w.Border().Left
	y1 := w.ClientBounds().Y + w.Border().Top

	if g != nil && bg.Alpha() > 0 {
		g.FillRect(bg, vp)
	}

	wordwrap := w.Align()&WordWrap != 0
	font := w.Font()

	var width int
	switch {
	case !wordwrap:
		width = w.ClientChildrenBounds().W
	case wOut != nil:
		width = *wOut
		*wOut = 0
	default:
		// Make good use of the complete text box: wrap against the
		// scrollable extent when it exceeds the viewport.
		if view != nil {
			width = max(vp.W, view.ScrollableSize().W)
		} else {
			width = vp.W
		}
		width -= w.Border().Width()
	}

	text := w.Text()
	textHeight := w.TextHeight()
	y := y1

	for pos, done := 0, false; !done; {
		var line string
		line, pos, done = nextTextBoxLine(text, pos, font, wordwrap, width-scroll.X)

		length := font.TextLength(line)

		if g != nil && length > 0 {
			var xout int
			switch {
			case w.Align()&AlignCenter != 0:
				xout = x1 + width/2 - length/2
			case w.Align()&AlignRight != 0:
				xout = x1 + width - length
			default:
				xout = x1
			}
			g.DrawText(line, fg, ColorNone, Pt(xout, y))
		}

		if wOut != nil {
			*wOut = max(*wOut, length)
		}
		y += textHeight
	}

	if hOut != nil {
		*hOut = y - y1 + scroll.Y
	}
	if wOut != nil {
		*wOut += w.Border().Width()
	}
	if hOut != nil {
		*hOut += w.Border().Height()
	}
}

// nextTextBoxLine extracts the visual line starting at pos and returns
// it with the position of the following line. done reports that the
// returned line was the last one.
func nextTextBoxLine(text string, pos int, font Font, wordwrap bool, width int,
) (line string, next int, done bool) {
	if !wordwrap {
		for i := pos; i < len(text); i++ {
			if text[i] == '\n' {
				return text[pos:i], i + 1, false
			}
		}
		return text[pos:], len(text), true
	}

	// Greedy accumulation: lineEnd remembers the last separator that
	// still fit, so an overflowing word rolls the line back to it.
	lineEnd := -1
	for i := pos; ; i++ {
		atEnd := i == len(text)
		if !atEnd && text[i] != ' ' && text[i] != '\n' {
			continue
		}

		if lineEnd >= 0 && font.TextLength(text[pos:i]) > width {
			return text[pos:lineEnd], lineEnd + 1, false
		}

		switch {
		case atEnd:
			return text[pos:], len(text), true
		case text[i] == '\n':
			return text[pos:i], i + 1, false
		default:
			lineEnd = i
		}
	}
}
