package skin

// ForEachLayer walks a style and invokes fn with the single best layer
// of each layer type for the given state flags, in the order the first
// layer of each type appears.
//
// A layer is eligible when its flags are zero (wildcard) or are all
// present in flags. Among eligible layers of one type, a later layer
// replaces the running best when its flags compare greater or equal, so
// a more specific layer declared later wins. A type switch in the
// declaration order emits the running best and restarts selection:
// layers of the same type must be declared contiguously to compete.
//
// The same scan drives both measurement and painting; any divergence
// between the two would be a layout/paint mismatch bug.
func ForEachLayer(flags LayerFlags, style *Style, fn func(*Layer)) {
	if style == nil {
		Logger().Warn("skin: ForEachLayer called without style")
		return
	}

	layers := style.Layers()
	var best *Layer

	for i := range layers {
		layer := &layers[i]

		if best != nil && best.Type() != layer.Type() {
			fn(best)
			best = nil
		}

		if (layer.Flags() == 0 || layer.Flags()&flags == layer.Flags()) &&
			(best == nil || compareLayerFlags(best.Flags(), layer.Flags()) <= 0) {
			best = layer
		}
	}

	if best != nil {
		fn(best)
	}
}

// ForEachWidgetLayer is ForEachLayer with the flags derived from the
// widget's current state.
func ForEachWidgetLayer(w Widget, style *Style, fn func(*Layer)) {
	ForEachLayer(StyleFlagsFor(w), style, fn)
}

// MatchLayers returns the matched layers in emission order.
func MatchLayers(flags LayerFlags, style *Style) []*Layer {
	var out []*Layer
	ForEachLayer(flags, style, func(l *Layer) {
		out = append(out, l)
	})
	return out
}

// compareLayerFlags orders two flag masks by specificity. Interpreting
// the masks as integers is crude but matches the established selection
// behavior that themes depend on.
func compareLayerFlags(a, b LayerFlags) int {
	return int(a) - int(b)
}
