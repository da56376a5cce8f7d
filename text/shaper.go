package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// defaultShaper is shared by all faces and managers in the process.
// Shaper is safe for concurrent use, so a single instance suffices.
var defaultShaper = newShaper()

// shaper wraps go-text/typesetting's HarfBuzz port. It pools
// HarfbuzzShaper instances because they carry internal mutable state
// and are not safe for concurrent use.
type shaper struct {
	pool sync.Pool
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// shape runs one shaping pass over runes with the given face.
func (s *shaper) shape(f *Face, runes []rune) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(runes),
		Face:      newShapeFace(f.source),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(f.language),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return out
}

// newShapeFace creates a lightweight font.Face for one shaping or
// metrics call. font.Face is not safe for concurrent use, so each
// call gets its own instance wrapping the shared read-only font.
func newShapeFace(src *Source) *font.Face {
	return font.NewFace(src.shapeFont)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text is shaped with the first
// script found; UI labels are short enough that this is adequate.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
