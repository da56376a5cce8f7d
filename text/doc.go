// Package text provides font loading, HarfBuzz shaping, and software
// glyph rendering for the skin engine.
//
// # Overview
//
// The package is built around three types:
//
//   - Source: a loaded font file. Heavyweight, shared, safe for
//     concurrent use.
//   - Face: a Source at a specific pixel size. Implements skin.Font.
//   - Manager: the default skin.FontManager. Owns a shaper and hands
//     out cached faces.
//
// # Quick Start
//
//	src, err := text.NewSource(goregular.TTF)
//	if err != nil {
//	    ...
//	}
//	mgr := text.NewManager(src)
//	font := mgr.DefaultFont(12)
//	blob := mgr.Shape(font, "Hello")
//
// Shaping goes through go-text/typesetting's HarfBuzz port, so
// kerning, ligatures, and complex scripts work out of the box.
// Rasterization for the software backend uses x/image's opentype
// rasterizer via Draw.
package text
