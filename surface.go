package skin

import (
	"image"
	"image/color"
)

// Surface is an opaque raster handle with sampleable pixels.
//
// Themes own their sheet surfaces; styles and layers borrow them.
// Implementations are not required to be safe for concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// At returns the pixel at (x, y).
	At(x, y int) color.Color
}

// ImageSurface is a Surface backed by an in-memory NRGBA image.
type ImageSurface struct {
	img *image.NRGBA
}

// NewImageSurface creates a blank surface of the given size.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// SurfaceFromImage wraps an existing image in a Surface, converting to
// NRGBA if needed.
func SurfaceFromImage(src image.Image) *ImageSurface {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return &ImageSurface{img: nrgba}
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return &ImageSurface{img: dst}
}

// Width implements Surface.
func (s *ImageSurface) Width() int { return s.img.Rect.Dx() }

// Height implements Surface.
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

// At implements Surface.
func (s *ImageSurface) At(x, y int) color.Color { return s.img.At(x, y) }

// Set writes the pixel at (x, y).
func (s *ImageSurface) Set(x, y int, c color.Color) { s.img.Set(x, y, c) }

// Image exposes the backing image for blitting backends.
func (s *ImageSurface) Image() *image.NRGBA { return s.img }
