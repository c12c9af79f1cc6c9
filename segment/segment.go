package segment

import (
	"fmt"
	"image"
)

// Kind identifies the behaviour of a Segment.
type Kind uint8

const (
	Plain        Kind = iota // ordinary styled text
	LineBreak                // a single '\n' that always ends its line
	InlineWidget             // an embedded widget standing in for its text
	Image                    // an image occupying one placeholder character
	Hover                    // text whose style changes under the pointer
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case LineBreak:
		return "LineBreak"
	case InlineWidget:
		return "InlineWidget"
	case Image:
		return "Image"
	case Hover:
		return "Hover"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ObjectReplacement is the placeholder character for images and widgets
// that have no text of their own.
const ObjectReplacement = '\uFFFC'

// Widget is an embedded view laid out inline with the text.
type Widget interface {
	// Size returns the widget's extent when at most maxWidth pixels are
	// available.
	Size(maxWidth int) (width, height int)
}

// Padding is extra space around an inline widget.
type Padding struct {
	Left, Right, Top, Bottom int
}

// Segment is a contiguous span [Start, End) of document text sharing one
// Style and behaviour. Segments are owned by a Store.
type Segment struct {
	Start, End int
	Kind       Kind
	Style      Style

	// Hover segments: HoverStyle applies while Hovered.
	HoverStyle Style
	Hovered    bool

	// InlineWidget segments.
	Widget       Widget
	Pad          Padding
	ForceNewline bool

	// Image segments.
	ImageSize image.Point

	// ToolTip is shown while the pointer rests on the segment.
	ToolTip string
}

// NewPlain returns a plain text segment covering [start, end).
func NewPlain(start, end int, st Style) *Segment {
	return &Segment{Start: start, End: end, Kind: Plain, Style: st}
}

// NewLineBreak returns a line break segment for the '\n' at pos.
func NewLineBreak(pos int, st Style) *Segment {
	return &Segment{Start: pos, End: pos + 1, Kind: LineBreak, Style: st}
}

// NewImage returns an image segment for the placeholder character at pos.
func NewImage(pos int, st Style, size image.Point) *Segment {
	return &Segment{Start: pos, End: pos + 1, Kind: Image, Style: st, ImageSize: size}
}

// NewWidget returns an inline widget segment covering [start, end).
func NewWidget(start, end int, w Widget, pad Padding, forceNewline bool) *Segment {
	return &Segment{
		Start:        start,
		End:          end,
		Kind:         InlineWidget,
		Style:        DefaultStyle(),
		Widget:       w,
		Pad:          pad,
		ForceNewline: forceNewline,
	}
}

// NewHover returns a hover segment covering [start, end) drawn in st
// normally and in hover while under the pointer.
func NewHover(start, end int, st, hover Style) *Segment {
	return &Segment{Start: start, End: end, Kind: Hover, Style: st, HoverStyle: hover}
}

func (s *Segment) String() string {
	return fmt.Sprintf("%v[%d,%d)", s.Kind, s.Start, s.End)
}

// Len returns the number of characters covered by s.
func (s *Segment) Len() int { return s.End - s.Start }

// Editable reports whether text may be inserted inside s.
func (s *Segment) Editable() bool {
	switch s.Kind {
	case Plain, Hover:
		return !s.Style.ReadOnly
	}
	return false
}

// ActiveStyle returns the style s is currently drawn and measured in.
func (s *Segment) ActiveStyle() Style {
	if s.Kind == Hover && s.Hovered {
		return s.HoverStyle
	}
	return s.Style
}

// Clone returns a copy of s.
func (s *Segment) Clone() *Segment {
	c := *s
	return &c
}

// remainder returns the part of s from at onward, used when another
// segment is inserted inside s. Atomic kinds leave a plain remainder.
func (s *Segment) remainder(at int) *Segment {
	r := s.Clone()
	r.Start = at
	switch s.Kind {
	case Image, InlineWidget, LineBreak:
		r.Kind = Plain
		r.Widget = nil
		r.ImageSize = image.Point{}
	}
	return r
}

// NumChars returns how many characters of s, starting segOffset
// characters in, belong on the current line given pixels of remaining
// width. lineOffset is the number of characters already on the line.
// A run at the start of an empty line always yields at least one
// character.
func (s *Segment) NumChars(ctx *Context, pixels, segOffset, lineOffset, maxChars int) int {
	left := s.Len() - segOffset
	if maxChars > left {
		maxChars = left
	}
	if maxChars <= 0 {
		return 0
	}

	switch s.Kind {
	case LineBreak:
		return maxChars

	case Image:
		if lineOffset != 0 && s.ImageSize.X > pixels {
			return 0
		}
		return maxChars

	case InlineWidget:
		if lineOffset != 0 && (s.ForceNewline || pixels < s.widgetWidth(ctx)) {
			return 0
		}
		return maxChars
	}

	wrap := WrapIfPossible
	if lineOffset != 0 {
		wrap = OnlyAtWordBoundary
	}
	start := s.Start + segOffset
	n := ctx.Metrics.MaxDrawable(ctx.Text, start, pixels, maxChars, wrap, s.ActiveStyle())
	if n == 0 && lineOffset == 0 {
		n = 1
	}
	// The newline ending a run stays on the line it ends.
	last := start + n
	if last < s.End && ctx.Text[last] == '\n' && (n == 0 || ctx.Text[last-1] != '\n') {
		n++
	}
	return n
}

// Dimensions returns the extent of the n characters of s starting first
// characters in, and whether they end with a forced line break.
func (s *Segment) Dimensions(ctx *Context, first, n int) (width, height int, breaks bool) {
	switch s.Kind {
	case LineBreak:
		return 0, ctx.Metrics.Height(s.Style), n > 0

	case Image:
		if n == 0 {
			return 0, 0, false
		}
		return s.ImageSize.X, s.ImageSize.Y, false

	case InlineWidget:
		if first == 0 && n == 0 {
			return 0, 0, false
		}
		w, h := s.Widget.Size(ctx.Width)
		return w + s.Pad.Left + s.Pad.Right, h + s.Pad.Top + s.Pad.Bottom, false
	}
	return ctx.Metrics.Measure(ctx.Text, s.Start+first, n, s.ActiveStyle())
}

// Offset returns the character offset, relative to first, of the
// boundary nearest pixel x within the n characters of s at first.
func (s *Segment) Offset(ctx *Context, x, first, n int, round bool) int {
	switch s.Kind {
	case Plain, Hover:
		return ctx.Metrics.CharAt(ctx.Text, s.Start+first, x, n, round, s.ActiveStyle())
	}
	return 0
}

func (s *Segment) widgetWidth(ctx *Context) int {
	w, _ := s.Widget.Size(ctx.Width)
	return w + s.Pad.Left + s.Pad.Right
}
