package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// baseDirection resolves the paragraph direction of runes using the
// Unicode bidi algorithm. Neutral text resolves to left-to-right.
func baseDirection(runes []rune) di.Direction {
	if len(runes) == 0 {
		return di.DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
