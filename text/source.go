package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use after creation.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection. It must point to the Source
	// itself.
	addr *Source

	data []byte

	// shapeFont is the parsed go-text font used for shaping and
	// metrics. font.Font is read-only and safe for concurrent use.
	shapeFont *font.Font

	// rasterFont is the parsed x/image font used by the software
	// rasterizer.
	rasterFont *sfnt.Font

	name string

	// Underline metrics in font units, from the post table. Zero when
	// the font does not provide them.
	underlinePosition  int16
	underlineThickness int16

	upem uint16
}

// NewSource creates a Source from font data.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var cfg sourceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	shapeFace, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	rasterFont, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	s := &Source{
		data:       dataCopy,
		shapeFont:  shapeFace.Font,
		rasterFont: rasterFont,
		upem:       shapeFace.Upem(),
	}
	s.addr = s

	var buf sfnt.Buffer
	if name, err := rasterFont.Name(&buf, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	if cfg.name != "" {
		s.name = cfg.name
	}
	if post := rasterFont.PostTable(); post != nil {
		s.underlinePosition = post.UnderlinePosition
		s.underlineThickness = post.UnderlineThickness
	}

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Face creates a Face at the specified pixel size.
// Multiple faces can be created from the same Source; they are
// lightweight and share the parsed font data.
// Panics if s is nil (e.g. when the NewSourceFromFile error was
// ignored).
func (s *Source) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: Source is nil")
	}
	s.copyCheck()

	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Face{source: s, size: size, language: cfg.language, hinting: cfg.hinting}
}

// Name returns the font family name, or "" when the font does not
// carry one.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Upem returns the font's units per em.
func (s *Source) Upem() int {
	s.copyCheck()
	return int(s.upem)
}

func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: illegal use of a Source copied by value")
	}
}
