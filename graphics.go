package skin

// PaintStyle selects between filling and stroking.
type PaintStyle int

const (
	// PaintFill fills the shape interior.
	PaintFill PaintStyle = iota
	// PaintStroke strokes the shape outline.
	PaintStroke
)

// Paint carries the styling for a single draw call.
type Paint struct {
	// Color is the draw color.
	Color Color

	// Style selects filling or stroking. Fill is the zero value.
	Style PaintStyle
}

// Graphics is the abstract drawing surface the engine paints into.
//
// Implementations translate these calls to a concrete backend. The
// engine issues calls synchronously on the UI goroutine; nothing here
// needs to be safe for concurrent use.
type Graphics interface {
	// Font returns the current font.
	Font() Font

	// SetFont replaces the current font.
	SetFont(f Font)

	// FillRect fills rc with a solid color.
	FillRect(c Color, rc Rect)

	// DrawRect strokes a 1-pixel rectangle outline.
	DrawRect(c Color, rc Rect)

	// DrawRectF draws a float rectangle with the given paint.
	DrawRectF(rc RectF, p *Paint)

	// DrawRgbaSurface blits the src region of sheet to dst.
	DrawRgbaSurface(sheet Surface, src Rect, dst Point)

	// DrawColoredRgbaSurface blits the src region of sheet to dst,
	// tinting opaque pixels with c.
	DrawColoredRgbaSurface(sheet Surface, c Color, src Rect, dst Point)

	// DrawSurfaceNine draws the sprite region of sheet stretched into
	// dst as a nine-patch: corners 1:1, edges stretched on one axis,
	// center on both. The center is skipped when drawCenter is false.
	// slices is the inner region, relative to sprite.
	DrawSurfaceNine(sheet Surface, sprite, slices, dst Rect, drawCenter bool, p *Paint)

	// DrawText draws unshaped text with fg on bg at pt. Pass ColorNone
	// as bg for no background.
	DrawText(text string, fg, bg Color, pt Point)

	// DrawTextBlob draws a shaped blob at pt.
	DrawTextBlob(blob TextBlob, pt PointF, p *Paint)

	// DrawAlignedUIText draws text wrapped and aligned inside rc.
	DrawAlignedUIText(text string, fg, bg Color, rc Rect, align Align)

	// ClipBounds returns the current clip rectangle.
	ClipBounds() Rect

	// PushClip intersects the clip stack with rc and reports whether
	// the resulting clip region is non-empty. Every PushClip must be
	// paired with a PopClip.
	PushClip(rc Rect) bool

	// PopClip restores the clip region saved by the matching PushClip.
	PopClip()
}

// IntersectClip runs fn with the clip region intersected with rc.
// fn is skipped when the intersection is empty. The previous clip is
// restored on all exit paths, including panics.
func IntersectClip(g Graphics, rc Rect, fn func()) {
	ok := g.PushClip(rc)
	defer g.PopClip()
	if ok {
		fn()
	}
}

// drawSheetFunc abstracts plain vs. tinted sheet blits so sprite
// placement logic is written once.
type drawSheetFunc func(src Rect, dst Point)

// sheetDrawer returns the blit function for a layer color: tinted when
// the color is set, plain otherwise.
func sheetDrawer(g Graphics, sheet Surface, c Color) drawSheetFunc {
	if !c.IsNone() {
		return func(src Rect, dst Point) {
			g.DrawColoredRgbaSurface(sheet, c, src, dst)
		}
	}
	return func(src Rect, dst Point) {
		g.DrawRgbaSurface(sheet, src, dst)
	}
}
