// Command skindemo renders a sheet of themed widget states to a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/skin"
	"github.com/gogpu/skin/render"
	"github.com/gogpu/skin/soft"
	"github.com/gogpu/skin/text"
)

const fontHeight = 14

func main() {
	var (
		width  = flag.Int("width", 360, "image width")
		height = flag.Int("height", 220, "image height")
		scale  = flag.Int("scale", 1, "integer UI scale")
		output = flag.String("output", "skindemo.png", "output file")
	)
	flag.Parse()

	mgr, err := text.NewManagerFromData(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	theme := skin.NewTheme(mgr)
	skin.SetTheme(theme, *scale)
	defer theme.Close()

	g := soft.New(*width, *height)
	g.SetFont(mgr.DefaultFont(fontHeight))
	g.FillRect(skin.RGB(40, 44, 52), skin.NewRect(0, 0, *width, *height))

	drawButtonColumn(g, theme, mgr)
	drawComposedLayers(g, *width)

	if err := savePNG(*output, g.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawButtonColumn paints one button per widget state down the left
// side of the sheet.
func drawButtonColumn(g skin.Graphics, theme *skin.Theme, mgr *text.Manager) {
	style := buttonStyle()
	font := mgr.DefaultFont(fontHeight)

	states := []struct {
		label    string
		mnemonic rune
		selected bool
		enabled  bool
		focus    bool
	}{
		{label: "Normal", mnemonic: 'N', enabled: true},
		{label: "Selected", mnemonic: 'S', enabled: true, selected: true},
		{label: "Focused", mnemonic: 'F', enabled: true, focus: true},
		{label: "Disabled", mnemonic: 'D'},
	}

	y := 16
	for _, st := range states {
		w := newDemoWidget(st.label, font, mgr)
		w.mnemonic = st.mnemonic
		w.selected = st.selected
		w.enabled = st.enabled
		w.focus = st.focus
		w.style = style

		hint := theme.CalcSizeHint(w, style)
		w.bounds = skin.NewRect(16, y, max(hint.W, 120), hint.H)
		theme.PaintWidget(g, w, style, w.bounds)

		y = w.bounds.Y2() + 8
	}
}

// drawComposedLayers builds a small layer stack, orders it with a
// render plan, and blits the resulting cels into the right panel. The
// "badge" cel carries a z-index override lifting it above the frame.
func drawComposedLayers(g skin.Graphics, width int) {
	group := render.NewGroup("panel")

	sprites := []struct {
		name string
		fill skin.Color
		rc   skin.Rect
		z    int
	}{
		{name: "backdrop", fill: skin.RGB(60, 66, 80), rc: skin.NewRect(0, 0, 120, 120)},
		{name: "badge", fill: skin.RGB(224, 108, 117), rc: skin.NewRect(70, 10, 40, 40), z: 1},
		{name: "frame", fill: skin.RGB(152, 195, 121), rc: skin.NewRect(10, 10, 80, 80)},
	}

	origins := make(map[string]skin.Point, len(sprites))
	for _, sp := range sprites {
		layer := render.NewImageLayer(sp.name)
		cel := render.NewCel(0, fillSurface(sp.rc.W, sp.rc.H, sp.fill))
		cel.SetZIndex(sp.z)
		layer.AddCel(cel)
		group.Add(layer)
		origins[sp.name] = sp.rc.Origin()
	}

	plan := render.NewPlan()
	plan.AddLayer(group, 0)

	panel := skin.Pt(width-136, 16)
	for _, item := range plan.Items() {
		if item.Cel == nil {
			continue
		}
		img := item.Cel.Image()
		at := origins[item.Layer.Name()].Add(panel)
		g.DrawRgbaSurface(img, skin.NewRect(0, 0, img.Width(), img.Height()), at)
	}
}

// buttonStyle builds a nine-patch button with per-state text colors.
func buttonStyle() *skin.Style {
	sheet := buttonSheet()
	normal := skin.NewRect(0, 0, 8, 8)
	pressed := skin.NewRect(8, 0, 8, 8)
	slices := skin.NewRect(2, 2, 4, 4)

	return skin.NewStyle("button").
		SetRawPadding(skin.NewBorder(8, 4, 8, 4)).
		AddLayer(skin.NewLayer(skin.LayerBackgroundBorder).
			SetSpriteSheet(sheet).
			SetSpriteBounds(normal).
			SetSlicesBounds(slices)).
		AddLayer(skin.NewLayer(skin.LayerBackgroundBorder).
			SetFlags(skin.FlagSelected).
			SetSpriteSheet(sheet).
			SetSpriteBounds(pressed).
			SetSlicesBounds(slices)).
		AddLayer(skin.NewLayer(skin.LayerBorder).
			SetFlags(skin.FlagFocus).
			SetColor(skin.RGB(97, 175, 239))).
		AddLayer(skin.NewLayer(skin.LayerText).
			SetAlign(skin.AlignCenter | skin.AlignMiddle).
			SetColor(skin.RGB(30, 30, 30))).
		AddLayer(skin.NewLayer(skin.LayerText).
			SetFlags(skin.FlagSelected).
			SetAlign(skin.AlignCenter | skin.AlignMiddle).
			SetColor(skin.RGB(240, 240, 240))).
		AddLayer(skin.NewLayer(skin.LayerText).
			SetFlags(skin.FlagDisabled).
			SetAlign(skin.AlignCenter | skin.AlignMiddle).
			SetColor(skin.RGB(120, 120, 120)))
}

// buttonSheet paints a 16x8 sheet holding the normal and pressed
// button sprites side by side, each an 8x8 beveled box.
func buttonSheet() skin.Surface {
	s := skin.NewImageSurface(16, 8)
	bevel(s, 0, skin.RGB(250, 250, 250), skin.RGB(120, 120, 120), skin.RGB(200, 200, 200))
	bevel(s, 8, skin.RGB(90, 90, 90), skin.RGB(180, 180, 180), skin.RGB(110, 118, 140))
	return s
}

func bevel(s *skin.ImageSurface, x0 int, light, dark, face skin.Color) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := face
			switch {
			case x == 0 || y == 0:
				c = light
			case x == 7 || y == 7:
				c = dark
			}
			s.Set(x0+x, y, c.Color())
		}
	}
}

func fillSurface(w, h int, c skin.Color) skin.Surface {
	s := skin.NewImageSurface(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, c.Color())
		}
	}
	return s
}

func savePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// demoWidget is a minimal static widget: state is set once and the
// shaped text is cached at construction.
type demoWidget struct {
	label    string
	mnemonic rune
	selected bool
	enabled  bool
	focus    bool

	font   skin.Font
	blob   skin.TextBlob
	style  *skin.Style
	bounds skin.Rect
}

func newDemoWidget(label string, font skin.Font, mgr *text.Manager) *demoWidget {
	return &demoWidget{
		label: label,
		font:  font,
		blob:  mgr.Shape(font, label),
	}
}

func (w *demoWidget) IsEnabled() bool     { return w.enabled }
func (w *demoWidget) IsSelected() bool    { return w.selected }
func (w *demoWidget) HasMouse() bool      { return false }
func (w *demoWidget) HasFocus() bool      { return w.focus }
func (w *demoWidget) HasCapture() bool    { return false }
func (w *demoWidget) IsTransparent() bool { return true }
func (w *demoWidget) BgColor() skin.Color { return skin.ColorNone }
func (w *demoWidget) Text() string        { return w.label }
func (w *demoWidget) Mnemonic() rune      { return w.mnemonic }
func (w *demoWidget) Font() skin.Font     { return w.font }
func (w *demoWidget) MinSize() skin.Size  { return skin.Sz(0, 0) }
func (w *demoWidget) MaxSize() skin.Size  { return skin.Sz(1<<30, 1<<30) }
func (w *demoWidget) Align() skin.Align   { return skin.AlignCenter | skin.AlignMiddle }
func (w *demoWidget) Bounds() skin.Rect   { return w.bounds }
func (w *demoWidget) Style() *skin.Style  { return w.style }

func (w *demoWidget) TextBlob() skin.TextBlob { return w.blob }

// TextBaseline centers the shaped text vertically inside the widget
// bounds and returns the resulting baseline y.
func (w *demoWidget) TextBaseline() float64 {
	top := float64(w.bounds.Y) + (float64(w.bounds.H)-w.blob.Bounds().H)/2
	return top + w.blob.Baseline()
}

func (w *demoWidget) TextHeight() int { return w.font.LineHeight() }

func (w *demoWidget) TextSize() skin.Size {
	return skin.Sz(w.font.TextLength(w.label), w.font.LineHeight())
}

func (w *demoWidget) ClientBounds() skin.Rect {
	return skin.NewRect(0, 0, w.bounds.W, w.bounds.H)
}

func (w *demoWidget) ClientChildrenBounds() skin.Rect {
	return w.ClientBounds().Shrink(w.Border())
}

func (w *demoWidget) Border() skin.Border {
	if w.style == nil {
		return skin.Border{}
	}
	return w.style.Border()
}
