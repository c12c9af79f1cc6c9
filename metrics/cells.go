package metrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/rjkroege/textflow/segment"
)

type cellAdvancer struct {
	cond *runewidth.Condition
}

func (a cellAdvancer) advance(r rune, _ segment.Style) int {
	return a.cond.RuneWidth(r)
}

func (cellAdvancer) height(segment.Style) int { return 1 }

// NewCells returns a Measurer counting terminal character cells. Every
// line is one cell high. With eastAsian set, ambiguous-width runes take
// two cells.
func NewCells(eastAsian bool) *Measurer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Measurer{adv: cellAdvancer{cond}}
}
