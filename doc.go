// Package skin provides a declarative widget styling and compositing
// engine for pixel-oriented user interfaces.
//
// # Overview
//
// skin is a Pure Go implementation of a sprite-sheet driven widget
// style engine in the style of classic pixel-art editors. A widget's
// look is described by a [Style]: an ordered list of typed layers
// (backgrounds, borders, text, icons), each guarded by a mask of
// widget-state flags. The same style drives both painting and
// measurement, so layout and rendering can never disagree about a
// widget's metrics.
//
// # Quick Start
//
//	import "github.com/gogpu/skin"
//
//	style := skin.NewStyle("button").
//		AddLayer(skin.NewLayer(skin.LayerBackground).SetColor(skin.RGB(32, 32, 32))).
//		AddLayer(skin.NewLayer(skin.LayerBorder).SetColor(skin.RGB(255, 255, 200))).
//		AddLayer(skin.NewLayer(skin.LayerText).SetColor(skin.RGB(255, 255, 200)))
//
//	theme := skin.NewTheme(fontMgr)
//	skin.SetTheme(theme, 1)
//
//	// Layout pass:
//	hint := theme.CalcSizeHint(widget, style)
//
//	// Paint pass:
//	theme.PaintWidget(g, widget, style, widget.Bounds())
//
// # Architecture
//
// The library is organized into:
//   - Public API: Style, Layer, Theme, Graphics, Widget contracts
//   - text: font management and shaping via go-text/typesetting
//   - render: layer-tree flattening with per-cel z-index reordering
//   - soft: software Graphics backend over image.NRGBA
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All widget geometry is in integer pixels; text positioning is
//     float64 because shaped glyph advances are fractional
//
// # Concurrency
//
// The engine is single-threaded by design: painting, measurement, and
// theme switching all run on the UI goroutine. The one exception is
// [SetLogger], which may be called from any goroutine.
package skin
