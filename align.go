package skin

// Align is a bitmask of alignment flags for layers and widgets.
//
// The zero value is meaningful: a sprite layer with align 0 tiles its
// sprite across both axes.
type Align int

const (
	// AlignLeft aligns to the left edge.
	AlignLeft Align = 1 << iota
	// AlignCenter centers horizontally.
	AlignCenter
	// AlignRight aligns to the right edge.
	AlignRight
	// AlignTop aligns to the top edge.
	AlignTop
	// AlignMiddle centers vertically.
	AlignMiddle
	// AlignBottom aligns to the bottom edge.
	AlignBottom
	// WordWrap enables greedy word wrapping for text.
	WordWrap
)

// HorizontalMask selects the horizontal third of an alignment.
const HorizontalMask = AlignLeft | AlignCenter | AlignRight

// VerticalMask selects the vertical third of an alignment.
const VerticalMask = AlignTop | AlignMiddle | AlignBottom

// Horizontal returns the horizontal third of the alignment.
func (a Align) Horizontal() Align { return a & HorizontalMask }

// Vertical returns the vertical third of the alignment.
func (a Align) Vertical() Align { return a & VerticalMask }
