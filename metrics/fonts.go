package metrics

import (
	"unicode/utf8"

	"github.com/rjkroege/textflow/draw"
	"github.com/rjkroege/textflow/segment"
)

type fontAdvancer struct {
	*variants[draw.Font]
}

func (a fontAdvancer) advance(r rune, st segment.Style) int {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	return a.forStyle(st).BytesWidth(b[:n])
}

func (a fontAdvancer) height(st segment.Style) int {
	return a.forStyle(st).Height()
}

// NewFonts returns a Measurer for plan9 fonts. Text in styles without a
// configured variant is measured with regular.
func NewFonts(regular draw.Font, opts ...Option[draw.Font]) *Measurer {
	return &Measurer{adv: fontAdvancer{newVariants(regular, opts)}}
}
