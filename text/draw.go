package text

import (
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/skin"
)

// Draw renders text to a destination image using the x/image software
// rasterizer. Position (x, y) is the baseline origin. The font must be
// a *Face from this package; Draw returns ErrForeignFont otherwise.
func Draw(dst draw.Image, text string, f skin.Font, x, y float64, col color.Color) error {
	if text == "" {
		return nil
	}
	face, ok := f.(*Face)
	if !ok {
		return ErrForeignFont
	}

	otFace, err := opentype.NewFace(face.source.rasterFont, &opentype.FaceOptions{
		Size:    face.size,
		DPI:     72,
		Hinting: face.hinting,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
	return nil
}
