package metrics

import "github.com/rjkroege/textflow/segment"

type fixedAdvancer struct {
	w, h int
}

func (a fixedAdvancer) advance(rune, segment.Style) int { return a.w }
func (a fixedAdvancer) height(segment.Style) int      { return a.h }

// NewFixed returns a Measurer in which every character is width pixels
// wide and every line height pixels high, whatever the style.
func NewFixed(width, height int) *Measurer {
	return &Measurer{adv: fixedAdvancer{width, height}}
}
