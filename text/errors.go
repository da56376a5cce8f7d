package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("text: invalid font data")

	// ErrForeignFont is returned when a skin.Font implemented outside
	// this package is passed to Shape or Draw.
	ErrForeignFont = errors.New("text: font was not created by this package")
)
