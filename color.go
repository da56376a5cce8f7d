package skin

import (
	"fmt"
	"image/color"
)

// Color represents a 32-bit RGBA color with an explicit "unset" state.
//
// The zero value is [ColorNone], the sentinel meaning "no color set".
// ColorNone is distinct from fully-transparent black: a layer whose
// color is ColorNone contributes nothing, while RGBA(0,0,0,0) is a real
// (if invisible) color that still participates in painting decisions.
type Color struct {
	r, g, b, a uint8
	set        bool
}

// ColorNone is the distinguished "no color" sentinel.
var ColorNone = Color{}

// RGB creates an opaque color from 8-bit RGB components.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, a: 255, set: true}
}

// RGBA creates a color from 8-bit RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{r: r, g: g, b: b, a: a, set: true}
}

// IsNone reports whether the color is the ColorNone sentinel.
func (c Color) IsNone() bool { return !c.set }

// RGBA8 returns the 8-bit components. ColorNone returns all zeros.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return c.r, c.g, c.b, c.a
}

// Alpha returns the 8-bit alpha component. ColorNone reads as 0, so
// "alpha > 0" checks treat an unset color as fully transparent.
func (c Color) Alpha() uint8 { return c.a }

// Color converts to the standard color.Color interface.
// ColorNone converts to transparent black.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Packed returns the color packed as 0xAABBGGRR, matching the memory
// layout of little-endian RGBA pixel data. ColorNone packs as 0.
func (c Color) Packed() uint32 {
	return uint32(c.r) | uint32(c.g)<<8 | uint32(c.b)<<16 | uint32(c.a)<<24
}

// String returns a debug representation.
func (c Color) String() string {
	if c.IsNone() {
		return "none"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.r, c.g, c.b, c.a)
}
