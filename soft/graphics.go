package soft

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/skin"
	"github.com/gogpu/skin/text"
)

// Graphics draws into an in-memory NRGBA image. It implements
// skin.Graphics.
//
// Graphics keeps the engine's convention of a rectangle clip stack;
// the initial clip is the full image. It is not safe for concurrent
// use.
type Graphics struct {
	img   *image.NRGBA
	font  skin.Font
	clips []skin.Rect
}

// New creates a Graphics backed by a fresh transparent image.
func New(width, height int) *Graphics {
	return NewForImage(image.NewNRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a Graphics drawing into an existing image.
func NewForImage(img *image.NRGBA) *Graphics {
	b := img.Bounds()
	return &Graphics{
		img:   img,
		clips: []skin.Rect{skin.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())},
	}
}

// Image returns the backing image.
func (g *Graphics) Image() *image.NRGBA { return g.img }

// Surface wraps the backing image as a skin.Surface.
func (g *Graphics) Surface() skin.Surface { return skin.SurfaceFromImage(g.img) }

// Font returns the current font.
func (g *Graphics) Font() skin.Font { return g.font }

// SetFont replaces the current font.
func (g *Graphics) SetFont(f skin.Font) { g.font = f }

// ClipBounds returns the current clip rectangle.
func (g *Graphics) ClipBounds() skin.Rect { return g.clips[len(g.clips)-1] }

// PushClip intersects the clip stack with rc and reports whether the
// resulting clip region is non-empty.
func (g *Graphics) PushClip(rc skin.Rect) bool {
	nc := g.ClipBounds().Intersect(rc)
	g.clips = append(g.clips, nc)
	return !nc.IsEmpty()
}

// PopClip restores the clip region saved by the matching PushClip.
func (g *Graphics) PopClip() {
	if len(g.clips) > 1 {
		g.clips = g.clips[:len(g.clips)-1]
	}
}

// dst returns the clipped drawing target. Coordinates stay absolute;
// the sub-image only limits which pixels can change.
func (g *Graphics) dst() *image.NRGBA {
	return g.img.SubImage(imageRect(g.ClipBounds())).(*image.NRGBA)
}

// FillRect fills rc with a solid color.
func (g *Graphics) FillRect(c skin.Color, rc skin.Rect) {
	if c.IsNone() || c.Alpha() == 0 || rc.IsEmpty() {
		return
	}
	draw.Draw(g.dst(), imageRect(rc), image.NewUniform(nrgba(c)), image.Point{}, draw.Over)
}

// DrawRect strokes a 1-pixel rectangle outline.
func (g *Graphics) DrawRect(c skin.Color, rc skin.Rect) {
	if rc.IsEmpty() {
		return
	}
	g.FillRect(c, skin.NewRect(rc.X, rc.Y, rc.W, 1))
	g.FillRect(c, skin.NewRect(rc.X, rc.Y2()-1, rc.W, 1))
	if rc.H > 2 {
		g.FillRect(c, skin.NewRect(rc.X, rc.Y+1, 1, rc.H-2))
		g.FillRect(c, skin.NewRect(rc.X2()-1, rc.Y+1, 1, rc.H-2))
	}
}

// DrawRectF draws a float rectangle with the given paint.
func (g *Graphics) DrawRectF(rc skin.RectF, p *skin.Paint) {
	if p == nil {
		return
	}
	ri := skin.NewRect(
		int(math.Round(rc.X)), int(math.Round(rc.Y)),
		int(math.Round(rc.W)), int(math.Round(rc.H)),
	)
	if p.Style == skin.PaintStroke {
		g.DrawRect(p.Color, ri)
		return
	}
	g.FillRect(p.Color, ri)
}

// DrawRgbaSurface blits the src region of sheet to dst.
func (g *Graphics) DrawRgbaSurface(sheet skin.Surface, src skin.Rect, dst skin.Point) {
	if is, ok := sheet.(*skin.ImageSurface); ok {
		sheetImg := is.Image()
		sp := sheetImg.Bounds().Min.Add(image.Pt(src.X, src.Y))
		dr := image.Rect(dst.X, dst.Y, dst.X+src.W, dst.Y+src.H)
		draw.Draw(g.dst(), dr, sheetImg, sp, draw.Over)
		return
	}
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			c := color.NRGBAModel.Convert(sheet.At(src.X+x, src.Y+y)).(color.NRGBA)
			g.blendPixel(dst.X+x, dst.Y+y, c)
		}
	}
}

// DrawColoredRgbaSurface blits the src region of sheet to dst, using
// the sheet's alpha as a mask for c.
func (g *Graphics) DrawColoredRgbaSurface(sheet skin.Surface, c skin.Color, src skin.Rect, dst skin.Point) {
	if c.IsNone() || c.Alpha() == 0 {
		return
	}
	tint := nrgba(c)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			px := color.NRGBAModel.Convert(sheet.At(src.X+x, src.Y+y)).(color.NRGBA)
			if px.A == 0 {
				continue
			}
			out := tint
			out.A = uint8(uint32(px.A) * uint32(tint.A) / 255)
			g.blendPixel(dst.X+x, dst.Y+y, out)
		}
	}
}

// DrawSurfaceNine draws the sprite region of sheet stretched into dst
// as a nine-patch. slices is the inner region, relative to sprite.
func (g *Graphics) DrawSurfaceNine(sheet skin.Surface, sprite, slices, dst skin.Rect, drawCenter bool, p *skin.Paint) {
	tint := skin.ColorNone
	if p != nil {
		tint = p.Color
	}

	l := slices.X
	t := slices.Y
	r := sprite.W - slices.X - slices.W
	b := sprite.H - slices.Y - slices.H

	// Source and destination column/row spans. Middle spans stretch,
	// the rest map 1:1.
	srcX := [4]int{sprite.X, sprite.X + l, sprite.X + sprite.W - r, sprite.X + sprite.W}
	srcY := [4]int{sprite.Y, sprite.Y + t, sprite.Y + sprite.H - b, sprite.Y + sprite.H}
	dstX := [4]int{dst.X, dst.X + l, dst.X2() - r, dst.X2()}
	dstY := [4]int{dst.Y, dst.Y + t, dst.Y2() - b, dst.Y2()}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 && !drawCenter {
				continue
			}
			sr := skin.NewRect(srcX[col], srcY[row], srcX[col+1]-srcX[col], srcY[row+1]-srcY[row])
			dr := skin.NewRect(dstX[col], dstY[row], dstX[col+1]-dstX[col], dstY[row+1]-dstY[row])
			if sr.IsEmpty() || dr.IsEmpty() {
				continue
			}
			g.scaleBlit(sheet, tint, sr, dr)
		}
	}
}

// scaleBlit stretches the src region of sheet into the dst rectangle
// with nearest-neighbor sampling, optionally tinted.
func (g *Graphics) scaleBlit(sheet skin.Surface, tint skin.Color, src, dst skin.Rect) {
	region := sheetRegion(sheet, src)
	if !tint.IsNone() && tint.Alpha() > 0 {
		region = tintRegion(region, nrgba(tint))
	}
	draw.NearestNeighbor.Scale(g.dst(), imageRect(dst), region, region.Bounds(), draw.Over, nil)
}

// DrawText draws unshaped text with fg on bg at pt.
func (g *Graphics) DrawText(str string, fg, bg skin.Color, pt skin.Point) {
	f := g.font
	if f == nil {
		skin.Logger().Warn("soft: DrawText without a font")
		return
	}
	if !bg.IsNone() && bg.Alpha() > 0 {
		g.FillRect(bg, skin.NewRect(pt.X, pt.Y, f.TextLength(str), f.LineHeight()))
	}
	if fg.IsNone() || fg.Alpha() == 0 {
		return
	}
	baseline := float64(pt.Y) - f.Metrics().Ascent
	if err := text.Draw(g.dst(), str, f, float64(pt.X), baseline, fg.Color()); err != nil {
		skin.Logger().Warn("soft: DrawText failed", "error", err)
	}
}

// DrawTextBlob draws a shaped blob at pt.
func (g *Graphics) DrawTextBlob(blob skin.TextBlob, pt skin.PointF, p *skin.Paint) {
	tb, ok := blob.(*text.Blob)
	if !ok || p == nil {
		return
	}
	var f skin.Font
	tb.VisitRuns(func(run skin.RunInfo) bool {
		f = run.Font()
		return false
	})
	if f == nil {
		return
	}
	baseline := pt.Y + tb.Baseline()
	if err := text.Draw(g.dst(), tb.Text(), f, pt.X, baseline, p.Color.Color()); err != nil {
		skin.Logger().Warn("soft: DrawTextBlob failed", "error", err)
	}
}

// DrawAlignedUIText draws text wrapped and aligned inside rc.
func (g *Graphics) DrawAlignedUIText(str string, fg, bg skin.Color, rc skin.Rect, align skin.Align) {
	f := g.font
	if f == nil {
		skin.Logger().Warn("soft: DrawAlignedUIText without a font")
		return
	}
	if !bg.IsNone() && bg.Alpha() > 0 {
		g.FillRect(bg, rc)
	}

	lines := layoutLines(f, str, rc.W, align)
	lineH := f.LineHeight()
	total := len(lines) * lineH

	y := rc.Y
	switch align.Vertical() {
	case skin.AlignMiddle:
		y = rc.Y + (rc.H-total)/2
	case skin.AlignBottom:
		y = rc.Y2() - total
	}

	skin.IntersectClip(g, rc, func() {
		for _, line := range lines {
			x := rc.X
			switch align.Horizontal() {
			case skin.AlignCenter:
				x = rc.X + (rc.W-f.TextLength(line))/2
			case skin.AlignRight:
				x = rc.X2() - f.TextLength(line)
			}
			g.DrawText(line, fg, skin.ColorNone, skin.Pt(x, y))
			y += lineH
		}
	})
}

// blendPixel composites c over the pixel at (x, y), honoring the clip.
func (g *Graphics) blendPixel(x, y int, c color.NRGBA) {
	if !g.ClipBounds().Contains(skin.Pt(x, y)) {
		return
	}
	if !(image.Pt(x, y).In(g.img.Bounds())) {
		return
	}
	if c.A == 255 {
		g.img.SetNRGBA(x, y, c)
		return
	}
	if c.A == 0 {
		return
	}

	d := g.img.NRGBAAt(x, y)
	sa := uint32(c.A)
	da := uint32(d.A)
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		g.img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	den := outA * 255
	blend := func(s, dc uint8) uint8 {
		n := uint32(s)*sa*255 + uint32(dc)*da*(255-sa)
		return uint8(n / den)
	}
	g.img.SetNRGBA(x, y, color.NRGBA{
		R: blend(c.R, d.R),
		G: blend(c.G, d.G),
		B: blend(c.B, d.B),
		A: uint8(outA),
	})
}

// sheetRegion extracts the src region of sheet as an NRGBA image.
func sheetRegion(sheet skin.Surface, src skin.Rect) *image.NRGBA {
	if is, ok := sheet.(*skin.ImageSurface); ok {
		img := is.Image()
		r := imageRect(src).Add(img.Bounds().Min)
		return img.SubImage(r).(*image.NRGBA)
	}
	out := image.NewNRGBA(image.Rect(0, 0, src.W, src.H))
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			out.Set(x, y, sheet.At(src.X+x, src.Y+y))
		}
	}
	return out
}

// tintRegion returns a copy of region with every pixel replaced by the
// tint color masked by the source alpha.
func tintRegion(region *image.NRGBA, tint color.NRGBA) *image.NRGBA {
	b := region.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := region.NRGBAAt(x, y).A
			if a == 0 {
				continue
			}
			c := tint
			c.A = uint8(uint32(a) * uint32(tint.A) / 255)
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// layoutLines splits str into drawable lines: explicit newlines
// always break, and word wrap breaks greedily at rc width.
func layoutLines(f skin.Font, str string, width int, align skin.Align) []string {
	var lines []string
	for _, para := range strings.Split(str, "\n") {
		if align&skin.WordWrap == 0 || f.TextLength(para) <= width {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, wrapGreedy(f, para, width)...)
	}
	return lines
}

// wrapGreedy packs words into lines no wider than width. A single
// word wider than the line stands alone rather than being broken.
func wrapGreedy(f skin.Font, para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{para}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if f.TextLength(candidate) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// nrgba converts a skin.Color to color.NRGBA.
func nrgba(c skin.Color) color.NRGBA {
	r, gg, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: gg, B: b, A: a}
}

// imageRect converts a skin.Rect to image.Rectangle.
func imageRect(rc skin.Rect) image.Rectangle {
	return image.Rect(rc.X, rc.Y, rc.X2(), rc.Y2())
}
