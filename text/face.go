package text

import (
	"math"
	"sync"

	xfont "golang.org/x/image/font"

	"github.com/gogpu/skin"
)

// Face is a Source at a specific pixel size. It implements skin.Font.
//
// Face is a lightweight handle; creating one per size is cheap. The
// shaping and metrics work is done against the shared Source.
//
// Face is safe for concurrent use.
type Face struct {
	source   *Source
	size     float64
	language string
	hinting  xfont.Hinting

	once    sync.Once
	metrics skin.FontMetrics
	lineH   int
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the face's pixel size.
func (f *Face) Size() float64 { return f.size }

// scale converts font units to pixels at this face's size.
func (f *Face) scale() float64 {
	return f.size / float64(f.source.upem)
}

// TextLength returns the advance width of text in pixels.
// The text is shaped, so kerning and ligatures are accounted for.
func (f *Face) TextLength(text string) int {
	if text == "" {
		return 0
	}
	out := defaultShaper.shape(f, []rune(text))
	var advance float64
	for _, g := range out.Glyphs {
		advance += fixedToFloat(g.Advance)
	}
	return int(math.Round(advance))
}

// LineHeight returns the line height in pixels.
func (f *Face) LineHeight() int {
	f.initMetrics()
	return f.lineH
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() skin.FontMetrics {
	f.initMetrics()
	return f.metrics
}

func (f *Face) initMetrics() {
	f.once.Do(func() {
		s := f.scale()

		shapeFace := newShapeFace(f.source)
		ext, ok := shapeFace.FontHExtents()
		if !ok {
			// Degenerate font. Approximate from the size so layout
			// stays usable.
			ext.Ascender = float32(f.source.upem) * 0.8
			ext.Descender = -float32(f.source.upem) * 0.2
		}

		// typesetting reports y-up font units: Ascender positive,
		// Descender negative. skin.FontMetrics uses the raster
		// convention (ascent negative).
		f.metrics.Ascent = -float64(ext.Ascender) * s
		f.metrics.Descent = -float64(ext.Descender) * s

		// Post table values are y-up as well: a negative position is
		// below the baseline.
		f.metrics.UnderlinePosition = -float64(f.source.underlinePosition) * s
		f.metrics.UnderlineThickness = float64(f.source.underlineThickness) * s
		if f.metrics.UnderlinePosition <= 0 {
			f.metrics.UnderlinePosition = math.Max(1, f.metrics.Descent/2)
		}
		if f.metrics.UnderlineThickness <= 0 {
			f.metrics.UnderlineThickness = math.Max(1, f.size/14)
		}

		f.lineH = int(math.Ceil(float64(ext.Ascender-ext.Descender+ext.LineGap) * s))
	})
}
