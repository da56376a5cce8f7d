package skin

import "fmt"

// fakeFont measures every rune as advance pixels wide. Deterministic
// metrics keep layout assertions exact without shaping a real font.
type fakeFont struct {
	advance int
	lineH   int
}

func newFakeFont() *fakeFont { return &fakeFont{advance: 6, lineH: 10} }

func (f *fakeFont) TextLength(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * f.advance
}

func (f *fakeFont) LineHeight() int { return f.lineH }

func (f *fakeFont) Metrics() FontMetrics {
	return FontMetrics{
		Ascent:             -8,
		Descent:            2,
		UnderlineThickness: 1,
		UnderlinePosition:  1,
	}
}

// fakeBlob is a shaped view of a string in a fakeFont: one run, one
// glyph per rune, glyphs laid out left to right.
type fakeBlob struct {
	run *fakeRun
}

func newFakeBlob(f *fakeFont, text string) *fakeBlob {
	run := &fakeRun{font: f}
	x := 0
	for pos := range text {
		run.bounds = append(run.bounds, RectF{
			X: float64(x), Y: 0, W: float64(f.advance), H: float64(f.lineH),
		})
		run.clusters = append(run.clusters, pos)
		x += f.advance
	}
	run.textLen = len(text)
	return &fakeBlob{run: run}
}

func (b *fakeBlob) Bounds() RectF {
	w := 0.0
	if n := len(b.run.bounds); n > 0 {
		last := b.run.bounds[n-1]
		w = last.X + last.W
	}
	return RectF{W: w, H: float64(b.run.font.lineH)}
}

func (b *fakeBlob) Baseline() float64 { return 8 }

func (b *fakeBlob) VisitRuns(fn func(RunInfo) bool) {
	if len(b.run.bounds) > 0 {
		fn(b.run)
	}
}

type fakeRun struct {
	font        *fakeFont
	bounds      []RectF
	clusters    []int
	textLen     int
	hideCluster bool
}

func (r *fakeRun) GlyphCount() int         { return len(r.bounds) }
func (r *fakeRun) Font() Font              { return r.font }
func (r *fakeRun) GlyphBounds(i int) RectF { return r.bounds[i] }

func (r *fakeRun) Clusters() []int {
	if r.hideCluster {
		return nil
	}
	return r.clusters
}

func (r *fakeRun) GlyphUtf8Range(i int) (begin, end int) {
	begin = r.clusters[i]
	end = r.textLen
	if i+1 < len(r.clusters) {
		end = r.clusters[i+1]
	}
	return begin, end
}

// fakeFontMgr shapes through fakeBlob.
type fakeFontMgr struct {
	font *fakeFont
}

func (m *fakeFontMgr) DefaultFont(height int) Font { return m.font }

func (m *fakeFontMgr) Shape(f Font, text string) TextBlob {
	ff, ok := f.(*fakeFont)
	if !ok {
		return nil
	}
	return newFakeBlob(ff, text)
}

func newFakeTheme() *Theme {
	return NewTheme(&fakeFontMgr{font: newFakeFont()})
}

// fakeWidget is a configurable Widget for measurement and paint tests.
type fakeWidget struct {
	enabled  bool
	selected bool
	mouse    bool
	focus    bool
	capture  bool

	transparent bool
	bgColor     Color

	text     string
	mnemonic rune
	font     Font
	style    *Style

	minSize Size
	maxSize Size
	align   Align
	bounds  Rect
	border  Border

	icon Surface
}

func newFakeWidget() *fakeWidget {
	return &fakeWidget{
		enabled: true,
		font:    newFakeFont(),
		maxSize: Size{W: 1 << 30, H: 1 << 30},
	}
}

func (w *fakeWidget) IsEnabled() bool     { return w.enabled }
func (w *fakeWidget) IsSelected() bool    { return w.selected }
func (w *fakeWidget) HasMouse() bool      { return w.mouse }
func (w *fakeWidget) HasFocus() bool      { return w.focus }
func (w *fakeWidget) HasCapture() bool    { return w.capture }
func (w *fakeWidget) IsTransparent() bool { return w.transparent }
func (w *fakeWidget) BgColor() Color      { return w.bgColor }
func (w *fakeWidget) Text() string        { return w.text }
func (w *fakeWidget) Mnemonic() rune      { return w.mnemonic }
func (w *fakeWidget) Font() Font          { return w.font }
func (w *fakeWidget) MinSize() Size       { return w.minSize }
func (w *fakeWidget) MaxSize() Size       { return w.maxSize }
func (w *fakeWidget) Align() Align        { return w.align }
func (w *fakeWidget) Bounds() Rect        { return w.bounds }
func (w *fakeWidget) Style() *Style       { return w.style }

func (w *fakeWidget) TextBlob() TextBlob {
	if w.text == "" {
		return nil
	}
	return newFakeBlob(w.font.(*fakeFont), w.text)
}

func (w *fakeWidget) TextBaseline() float64 { return 8 }
func (w *fakeWidget) TextHeight() int       { return w.font.LineHeight() }

func (w *fakeWidget) TextSize() Size {
	return Size{W: w.font.TextLength(w.text), H: w.font.LineHeight()}
}

func (w *fakeWidget) ClientBounds() Rect {
	return NewRect(0, 0, w.bounds.W, w.bounds.H)
}

func (w *fakeWidget) ClientChildrenBounds() Rect {
	return w.ClientBounds().Shrink(w.border)
}

func (w *fakeWidget) Border() Border { return w.border }

// iconWidget adds IconProvider to fakeWidget.
type iconWidget struct {
	*fakeWidget
	provided Surface
}

func (w *iconWidget) IconSurface() Surface { return w.provided }

// recGraphics records drawing commands as formatted strings so tests
// can assert on emission order and arguments.
type recGraphics struct {
	font  Font
	clips []Rect
	calls []string
}

func newRecGraphics() *recGraphics {
	return &recGraphics{clips: []Rect{NewRect(0, 0, 1000, 1000)}}
}

func (g *recGraphics) record(format string, args ...any) {
	g.calls = append(g.calls, fmt.Sprintf(format, args...))
}

func (g *recGraphics) Font() Font     { return g.font }
func (g *recGraphics) SetFont(f Font) { g.font = f }

func (g *recGraphics) FillRect(c Color, rc Rect) {
	g.record("FillRect %v %v", c, rc)
}

func (g *recGraphics) DrawRect(c Color, rc Rect) {
	g.record("DrawRect %v %v", c, rc)
}

func (g *recGraphics) DrawRectF(rc RectF, p *Paint) {
	g.record("DrawRectF %v %v %v", rc, p.Color, p.Style)
}

func (g *recGraphics) DrawRgbaSurface(sheet Surface, src Rect, dst Point) {
	g.record("DrawRgbaSurface %v %v", src, dst)
}

func (g *recGraphics) DrawColoredRgbaSurface(sheet Surface, c Color, src Rect, dst Point) {
	g.record("DrawColoredRgbaSurface %v %v %v", c, src, dst)
}

func (g *recGraphics) DrawSurfaceNine(sheet Surface, sprite, slices, dst Rect, drawCenter bool, p *Paint) {
	g.record("DrawSurfaceNine %v %v %v center=%v %v", sprite, slices, dst, drawCenter, p.Color)
}

func (g *recGraphics) DrawText(text string, fg, bg Color, pt Point) {
	g.record("DrawText %q %v %v %v", text, fg, bg, pt)
}

func (g *recGraphics) DrawTextBlob(blob TextBlob, pt PointF, p *Paint) {
	g.record("DrawTextBlob %v %v", pt, p.Color)
}

func (g *recGraphics) DrawAlignedUIText(text string, fg, bg Color, rc Rect, align Align) {
	g.record("DrawAlignedUIText %q %v %v %v", text, fg, bg, rc)
}

func (g *recGraphics) ClipBounds() Rect { return g.clips[len(g.clips)-1] }

func (g *recGraphics) PushClip(rc Rect) bool {
	nc := g.ClipBounds().Intersect(rc)
	g.clips = append(g.clips, nc)
	g.record("PushClip %v", nc)
	return !nc.IsEmpty()
}

func (g *recGraphics) PopClip() {
	if len(g.clips) > 1 {
		g.clips = g.clips[:len(g.clips)-1]
	}
	g.record("PopClip")
}
