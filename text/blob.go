package text

import (
	"sort"
	"unicode/utf8"

	"github.com/gogpu/skin"
)

// Blob is a shaped, positioned representation of a string. It
// implements skin.TextBlob.
//
// Blobs are immutable after creation and safe for concurrent use.
type Blob struct {
	text     string
	bounds   skin.RectF
	baseline float64
	runs     []*Run
}

// Run is one glyph run within a Blob. It implements skin.RunInfo.
// The engine shapes single-style UI labels, so a blob currently holds
// one run covering the whole string.
type Run struct {
	face     *Face
	bounds   []skin.RectF
	clusters []int
	ranges   [][2]int
}

// Shape shapes text with face into a Blob. An empty string produces a
// blob with no runs and zero-width bounds.
func Shape(face *Face, text string) *Blob {
	m := face.Metrics()
	baseline := -m.Ascent
	height := -m.Ascent + m.Descent

	b := &Blob{
		text:     text,
		baseline: baseline,
		bounds:   skin.RectF{W: 0, H: height},
	}
	if text == "" {
		return b
	}

	runes := []rune(text)

	// Byte offset of each rune, plus the end sentinel, to translate
	// shaper cluster indices (rune-based) into utf8 offsets.
	offs := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offs[i] = pos
		pos += utf8.RuneLen(r)
	}
	offs[len(runes)] = len(text)

	out := defaultShaper.shape(face, runes)
	scale := face.scale()
	shapeFace := newShapeFace(face.source)

	run := &Run{
		face:     face,
		bounds:   make([]skin.RectF, len(out.Glyphs)),
		clusters: make([]int, len(out.Glyphs)),
	}

	var x float64
	for i, g := range out.Glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)
		adv := fixedToFloat(g.Advance)

		if ext, ok := shapeFace.GlyphExtents(g.GlyphID); ok {
			// Glyph extents are y-up font units: YBearing is the top
			// edge above the baseline, Height extends downward as a
			// negative value.
			run.bounds[i] = skin.RectF{
				X: x + xOff + float64(ext.XBearing)*scale,
				Y: baseline - yOff - float64(ext.YBearing)*scale,
				W: float64(ext.Width) * scale,
				H: -float64(ext.Height) * scale,
			}
		} else {
			run.bounds[i] = skin.RectF{X: x, Y: 0, W: adv, H: height}
		}

		cluster := g.TextIndex()
		if cluster < 0 {
			cluster = 0
		}
		if cluster > len(runes) {
			cluster = len(runes)
		}
		run.clusters[i] = offs[cluster]

		x += adv
	}

	run.ranges = clusterRanges(run.clusters, len(text))

	b.runs = append(b.runs, run)
	b.bounds.W = x
	return b
}

// Bounds returns the blob bounds relative to the text origin.
func (b *Blob) Bounds() skin.RectF { return b.bounds }

// Baseline returns the baseline offset from the blob top.
func (b *Blob) Baseline() float64 { return b.baseline }

// Text returns the source string the blob was shaped from.
func (b *Blob) Text() string { return b.text }

// VisitRuns calls fn for each glyph run in visual order.
func (b *Blob) VisitRuns(fn func(run skin.RunInfo) bool) {
	for _, r := range b.runs {
		if !fn(r) {
			return
		}
	}
}

// GlyphCount returns the number of glyphs in the run.
func (r *Run) GlyphCount() int { return len(r.bounds) }

// Font returns the font the run was shaped with.
func (r *Run) Font() skin.Font { return r.face }

// GlyphBounds returns the bounds of glyph i relative to the blob
// origin.
func (r *Run) GlyphBounds(i int) skin.RectF { return r.bounds[i] }

// Clusters returns the utf8 byte offset of each glyph's source
// character.
func (r *Run) Clusters() []int { return r.clusters }

// GlyphUtf8Range returns the utf8 byte range of glyph i's source
// character.
func (r *Run) GlyphUtf8Range(i int) (begin, end int) {
	rg := r.ranges[i]
	return rg[0], rg[1]
}

// clusterRanges derives a byte range per glyph from the per-glyph
// cluster offsets. Glyphs in the same cluster (ligatures) share the
// cluster's full range; the range end is the next larger cluster
// offset present in the run, which also handles RTL visual order.
func clusterRanges(clusters []int, textLen int) [][2]int {
	uniq := make([]int, 0, len(clusters))
	seen := make(map[int]bool, len(clusters))
	for _, c := range clusters {
		if !seen[c] {
			seen[c] = true
			uniq = append(uniq, c)
		}
	}
	sort.Ints(uniq)

	ranges := make([][2]int, len(clusters))
	for i, c := range clusters {
		end := textLen
		j := sort.SearchInts(uniq, c)
		if j+1 < len(uniq) {
			end = uniq[j+1]
		}
		ranges[i] = [2]int{c, end}
	}
	return ranges
}
