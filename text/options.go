package text

import (
	xfont "golang.org/x/image/font"
)

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	name string
}

// WithName overrides the family name read from the font's name table.
// Useful for fonts with missing or unhelpful name records.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	language string
	hinting  xfont.Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		language: "en",
		hinting:  xfont.HintingFull,
	}
}

// WithLanguage sets the BCP 47 language tag used for shaping
// (e.g. "en", "ja", "ar").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithHinting sets the hinting mode for software rasterization.
func WithHinting(h xfont.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
