package skin

// FontMetrics holds the metrics the engine needs from a font at its
// configured size. Distances follow the raster convention: ascent is
// negative (above the baseline), descent positive.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the typographic top
	// (negative, above the baseline).
	Ascent float64

	// Descent is the distance from the baseline to the typographic
	// bottom (positive, below the baseline).
	Descent float64

	// UnderlineThickness is the recommended underline stroke thickness.
	UnderlineThickness float64

	// UnderlinePosition is the recommended underline offset from the
	// baseline (positive, below the baseline).
	UnderlinePosition float64
}

// Font is a sized font handle.
//
// Fonts are borrowed by styles and widgets; the font manager that
// created them keeps the underlying font data alive.
type Font interface {
	// TextLength returns the advance width of text in pixels.
	TextLength(text string) int

	// LineHeight returns the line height in pixels.
	LineHeight() int

	// Metrics returns the font metrics at this font's size.
	Metrics() FontMetrics
}

// TextBlob is a cached shaped-glyph representation of a string.
type TextBlob interface {
	// Bounds returns the blob bounds relative to the text origin.
	Bounds() RectF

	// Baseline returns the baseline offset from the blob top.
	Baseline() float64

	// VisitRuns calls fn for each glyph run in visual order.
	// Returning false from fn stops the visit.
	VisitRuns(fn func(run RunInfo) bool)
}

// RunInfo describes one glyph run within a shaped TextBlob.
type RunInfo interface {
	// GlyphCount returns the number of glyphs in the run.
	GlyphCount() int

	// Font returns the font the run was shaped with.
	Font() Font

	// GlyphBounds returns the bounds of glyph i relative to the blob
	// origin.
	GlyphBounds(i int) RectF

	// Clusters returns the utf8 byte offset of each glyph's source
	// character, or nil when cluster data is unavailable. Callers must
	// handle nil by tracking their own utf8 cursor.
	Clusters() []int

	// GlyphUtf8Range returns the utf8 byte range of glyph i's source
	// character. Only valid when Clusters is non-nil.
	GlyphUtf8Range(i int) (begin, end int)
}

// FontManager loads fonts and shapes text into blobs.
type FontManager interface {
	// DefaultFont returns the default font at the given pixel height.
	DefaultFont(height int) Font

	// Shape shapes text with the given font into a reusable blob.
	Shape(font Font, text string) TextBlob
}

// DefaultFontHeight is the pixel height for Theme.DefaultFont.
const DefaultFontHeight = 8
