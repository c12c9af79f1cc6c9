package metrics

import (
	"golang.org/x/image/font"

	"github.com/rjkroege/textflow/segment"
)

type faceAdvancer struct {
	*variants[font.Face]
}

func (a faceAdvancer) advance(r rune, st segment.Style) int {
	f := a.forStyle(st)
	adv, ok := f.GlyphAdvance(r)
	if !ok {
		adv, _ = f.GlyphAdvance('\uFFFD')
	}
	return adv.Round()
}

func (a faceAdvancer) height(st segment.Style) int {
	return a.forStyle(st).Metrics().Height.Ceil()
}

// NewFaces returns a Measurer for golang.org/x/image font faces. Runes
// missing from a face are measured as U+FFFD.
func NewFaces(regular font.Face, opts ...Option[font.Face]) *Measurer {
	return &Measurer{adv: faceAdvancer{newVariants(regular, opts)}}
}
