package render

import "github.com/gogpu/skin"

// Cel is one image occurrence of a layer at a given frame.
//
// A cel owns its image; the layer owns its cels.
type Cel struct {
	layer   *ImageLayer
	frame   int
	image   skin.Surface
	zIndex  int
	opacity int
}

// NewCel creates a cel for a frame with the given image.
// The image may be nil for an empty cel.
func NewCel(frame int, image skin.Surface) *Cel {
	return &Cel{frame: frame, image: image, opacity: 255}
}

// Layer returns the image layer the cel belongs to, or nil while the
// cel is not yet attached.
func (c *Cel) Layer() *ImageLayer { return c.layer }

// Frame returns the frame the cel occupies.
func (c *Cel) Frame() int { return c.frame }

// Image returns the cel image, or nil for an empty cel.
func (c *Cel) Image() skin.Surface { return c.image }

// ZIndex returns the z-index override. Zero is the natural position.
func (c *Cel) ZIndex() int { return c.zIndex }

// SetZIndex sets the z-index override.
func (c *Cel) SetZIndex(z int) { c.zIndex = z }

// Opacity returns the cel opacity in the range 0-255.
func (c *Cel) Opacity() int { return c.opacity }

// SetOpacity sets the cel opacity, clamped to 0-255.
func (c *Cel) SetOpacity(o int) {
	c.opacity = min(max(o, 0), 255)
}
