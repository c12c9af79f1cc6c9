// Package layout turns a segment stream into a table of visual lines.
package layout

import (
	"fmt"
	"image"
)

// Line is one visual row of the document.
type Line struct {
	// Start and End delimit the characters on the line. A line ending in
	// a hard break includes the '\n'; whitespace at a wrap point stays on
	// the line before the wrap.
	Start, End int

	// Rect is the line's extent in document coordinates.
	Rect image.Rectangle

	// Num is the logical line number: it counts hard breaks only, so the
	// rows of a wrapped line share it.
	Num int

	// Elided is the index where drawing stops and an ellipsis is drawn.
	// It equals End unless the line was cut short.
	Elided int
}

func (l Line) String() string {
	return fmt.Sprintf("[%d,%d) #%d %v", l.Start, l.End, l.Num, l.Rect)
}

// Align is the horizontal placement of lines narrower than the
// available width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Params are the geometry inputs of a layout pass.
type Params struct {
	// Width is the available text width in pixels.
	Width int

	WordWrap bool

	// Ellipses elides lines wider than Width when WordWrap is off.
	Ellipses bool

	Align Align

	// Line advance is height*SpacingMult + SpacingPixels. A zero
	// SpacingMult means 1.
	SpacingMult   float64
	SpacingPixels int

	// Left and Top place the first line in document coordinates.
	Left, Top int
}

func (p *Params) advance(height int) int {
	mult := p.SpacingMult
	if mult == 0 {
		mult = 1.0
	}
	return int(float64(height)*mult+0.5) + p.SpacingPixels
}

func (p *Params) alignOffset(width int) int {
	slack := p.Width - width
	if slack <= 0 {
		return 0
	}
	switch p.Align {
	case AlignCenter:
		return slack / 2
	case AlignRight:
		return slack
	}
	return 0
}
